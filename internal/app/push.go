package app

import (
	"errors"
	"fmt"

	"github.com/javoire/githelper/internal/config"
	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/prompt"
	"github.com/javoire/githelper/internal/spinner"
	"github.com/javoire/githelper/internal/ui"
	"github.com/javoire/githelper/internal/undo"
)

// push pushes the current branch, recovering differently when there is no
// upstream and when the remote rejects the push
func (s *Session) push() error {
	branch, err := s.git.GetCurrentBranch()
	if err != nil {
		s.fail(err, "")
		return nil
	}
	if branch == "" {
		s.println(ui.Warning("HEAD is detached."))
		s.println(ui.Suggestion("check out a branch before pushing"))
		return nil
	}

	upstream := s.git.GetTrackingBranch()
	if upstream == "" {
		return s.pushNewUpstream(branch)
	}

	ok, err := s.confirm(fmt.Sprintf("Push %s to %s?", ui.Branch(branch), ui.Branch(upstream)))
	if err != nil || !ok {
		return err
	}

	err = spinner.WrapWithSuccess(s.out, "Pushing...", "Pushed "+branch, func() error {
		return s.git.Push(git.PushOptions{})
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, git.ErrPushRejected):
		return s.recoverRejectedPush(branch, err)
	case errors.Is(err, git.ErrNoUpstream):
		return s.pushNewUpstream(branch)
	}
	s.fail(err, "check your network connection and access to the remote")
	return nil
}

func (s *Session) pushNewUpstream(branch string) error {
	remote := s.cfg.Remote
	s.println(ui.Warning(fmt.Sprintf("%s has no upstream branch.", ui.Branch(branch))))

	choice, err := s.pick("What do you want to do?", []string{
		fmt.Sprintf("Push to %s/%s and track it", remote, branch),
		"Choose the remote and branch name",
		"Cancel",
	})
	if err != nil {
		return err
	}

	remoteBranch := branch
	switch choice {
	case 1:
		r, err := s.prompt.Line(fmt.Sprintf("Remote [%s]", remote))
		if err != nil {
			return err
		}
		if r != "" {
			remote = r
		}
		b, err := s.prompt.Line(fmt.Sprintf("Remote branch name [%s]", branch))
		if err != nil {
			return err
		}
		if b != "" {
			remoteBranch = b
		}
	case 2:
		return nil
	}

	refspec := branch
	if remoteBranch != branch {
		refspec = branch + ":" + remoteBranch
	}
	opts := git.PushOptions{Remote: remote, Branch: refspec, SetUpstream: true}
	prompt.Retry(s.prompt, s.out, func() error {
		return spinner.WrapWithSuccess(s.out, "Pushing...", fmt.Sprintf("Pushed %s to %s/%s", branch, remote, remoteBranch), func() error {
			return s.git.Push(opts)
		})
	})
	return nil
}

func (s *Session) recoverRejectedPush(branch string, pushErr error) error {
	s.println(ui.Error("The remote rejected the push: it has commits this branch does not."))
	s.println(ui.Dim(git.Diagnostic(pushErr)))

	choice, err := s.pick("How do you want to continue?", []string{
		"Pull, then push again",
		"Force push (overwrites the remote branch)",
		"Cancel",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		if !s.pullOnce() {
			s.println(ui.Suggestion("resolve the pull first, then push again"))
			return nil
		}
		if err := spinner.WrapWithSuccess(s.out, "Pushing...", "Pushed "+branch, func() error {
			return s.git.Push(git.PushOptions{})
		}); err != nil {
			s.fail(err, "")
		}
	case 1:
		return s.forcePush()
	}
	return nil
}

// offerForcePush is called after history was rewritten on a branch that
// may already be on the remote
func (s *Session) offerForcePush() error {
	if s.git.GetTrackingBranch() == "" {
		return nil
	}
	s.println(ui.Warning("History was rewritten. If this branch was already pushed, a force push is needed " +
		"and collaborators' clones will diverge from the remote."))
	return s.forcePush()
}

// forcePush runs only after two separate affirmative confirmations
func (s *Session) forcePush() error {
	ok, err := s.confirm("Force push to the remote?")
	if err != nil || !ok {
		return err
	}
	s.println(ui.Warning("This overwrites the remote branch. Anyone who already pulled it will have to reset their clone."))
	ok, err = s.confirm("Are you absolutely sure?")
	if err != nil {
		return err
	}
	if !ok {
		s.println(ui.Dim("Force push cancelled."))
		return nil
	}

	opts := git.PushOptions{ForceWithLease: true}
	if s.cfg.ForceMode == config.Force {
		opts = git.PushOptions{Force: true}
	}
	if err := spinner.WrapWithSuccess(s.out, "Force pushing...", "Force pushed", func() error {
		return s.git.Push(opts)
	}); err != nil {
		s.fail(err, "fetch and inspect the remote branch before trying again")
	}
	return nil
}

// pullOnce pulls the upstream, offering retries, and records an undo entry
// when HEAD moved. It reports whether the pull succeeded.
func (s *Session) pullOnce() bool {
	previous := s.head()
	ok := prompt.Retry(s.prompt, s.out, func() error {
		return spinner.WrapWithSuccess(s.out, "Pulling...", "Pulled", s.git.Pull)
	})
	if ok && previous != "" && s.head() != previous {
		s.record(undo.ResetTo("return to the commit before the pull", previous, true))
	}
	return ok
}
