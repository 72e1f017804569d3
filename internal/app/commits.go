package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/history"
	"github.com/javoire/githelper/internal/menu"
	"github.com/javoire/githelper/internal/prompt"
	"github.com/javoire/githelper/internal/ui"
	"github.com/javoire/githelper/internal/undo"
)

func (s *Session) commitMenu() *menu.Menu {
	return &menu.Menu{
		Title: "Commit Management",
		Items: []menu.Item{
			{Key: "1", Label: "Stage changes", Action: menu.ActionStage},
			{Key: "2", Label: "Commit changes", Action: menu.ActionCommit},
			{Key: "3", Label: "Amend last commit", Action: menu.ActionAmend},
			{Key: "4", Label: "View recent commits", Action: menu.ActionViewCommits},
			{Key: "5", Label: "Revert a commit's changes (keeps history entry)", Action: menu.ActionRevertFold},
			{Key: "6", Label: "Remove a commit from history (rewrites later commits)", Action: menu.ActionRebaseExcise},
			{Key: "7", Label: "Back", Action: menu.ActionBack},
		},
	}
}

// RunCommits shows the commit management menu
func (s *Session) RunCommits() error {
	return menu.Run(s.commitMenu(), s.prompt, s.out, map[menu.Action]menu.Handler{
		menu.ActionStage:        s.stage,
		menu.ActionCommit:       s.commit,
		menu.ActionAmend:        s.amend,
		menu.ActionViewCommits:  s.viewCommits,
		menu.ActionRevertFold:   s.revertFold,
		menu.ActionRebaseExcise: s.rebaseExcise,
	})
}

func (s *Session) stage() error {
	entries, err := s.git.Status()
	if err != nil {
		s.fail(err, "")
		return nil
	}
	if len(entries) == 0 {
		s.println(ui.Success("Nothing to stage, working tree clean."))
		return nil
	}

	s.println("Changes:")
	for i, e := range entries {
		s.printf("  %d. %s\n", i+1, e)
	}

	for {
		input, err := s.prompt.Line("Stage (a)ll, numbers separated by spaces, or (b)ack")
		if err != nil {
			return err
		}
		switch strings.ToLower(input) {
		case "", "b", "back":
			return nil
		case "a", "all":
			if err := s.git.StageAll(); err != nil {
				s.fail(err, "")
				return nil
			}
			s.record(undo.Stage())
			s.println(ui.Success("Staged all changes."))
			return nil
		}

		paths, err := selectPaths(input, entries)
		if err != nil {
			s.println(ui.Warning(err.Error()))
			continue
		}
		if err := s.git.StagePaths(paths...); err != nil {
			s.fail(err, "")
			return nil
		}
		s.record(undo.Stage(paths...))
		s.println(ui.Success(fmt.Sprintf("Staged %d path(s).", len(paths))))
		return nil
	}
}

func selectPaths(input string, entries []git.StatusEntry) ([]string, error) {
	var paths []string
	seen := make(map[int]bool)
	for _, field := range strings.Fields(strings.ReplaceAll(input, ",", " ")) {
		i, err := prompt.ParseIndex(field, len(entries))
		if err != nil {
			return nil, err
		}
		if !seen[i] {
			seen[i] = true
			paths = append(paths, entries[i-1].Path)
		}
	}
	if len(paths) == 0 {
		return nil, &prompt.ValidationError{Field: "selection", Reason: "no files selected"}
	}
	return paths, nil
}

func (s *Session) commit() error {
	staged, err := s.git.HasStagedChanges()
	if err != nil {
		s.fail(err, "")
		return nil
	}

	allowEmpty := false
	if !staged {
		clean, err := s.git.IsWorkingTreeClean()
		if err != nil {
			s.fail(err, "")
			return nil
		}
		stageAll := false
		if !clean {
			if stageAll, err = s.confirm("Nothing is staged. Stage all changes?"); err != nil {
				return err
			}
		}
		if stageAll {
			if err := s.git.StageAll(); err != nil {
				s.fail(err, "")
				return nil
			}
		} else {
			ok, err := s.confirm("Nothing to commit. Create an empty commit?")
			if err != nil || !ok {
				return err
			}
			allowEmpty = true
		}
	}

	date, err := s.prompt.Date("Commit date", s.now())
	if err != nil {
		return err
	}
	message, err := s.prompt.Required("Commit message")
	if err != nil {
		return err
	}

	previous := s.head()
	opts := git.CommitOptions{Message: message, Date: date, AllowEmpty: allowEmpty}
	if err := s.git.Commit(opts); err != nil {
		s.fail(err, "check that user.name and user.email are configured")
		return nil
	}
	s.record(undo.Commit(previous))
	s.println(ui.Success(fmt.Sprintf("Committed %q dated %s.", message, date.Format(git.DateLayout))))

	ok, err := s.confirm("Push now?")
	if err != nil || !ok {
		return err
	}
	return s.push()
}

func (s *Session) amend() error {
	current, err := s.git.LastCommitMessage()
	if err != nil {
		if errors.Is(err, git.ErrNoCommits) {
			s.println(ui.Warning("There is no commit to amend yet."))
			return nil
		}
		s.fail(err, "")
		return nil
	}
	s.println("Current message:")
	s.println(ui.Dim("  " + strings.ReplaceAll(current, "\n", "\n  ")))

	choice, err := s.prompt.Choose("What do you want to change?", []string{"Message", "Date", "Message and date"})
	if err != nil || choice < 0 {
		return err
	}

	opts := git.CommitOptions{Amend: true, NoEdit: true}
	if choice == 0 || choice == 2 {
		message, err := s.prompt.Required("New commit message")
		if err != nil {
			return err
		}
		opts.Message = message
		opts.NoEdit = false
	}
	if choice == 1 || choice == 2 {
		date, err := s.prompt.Date("New commit date", s.now())
		if err != nil {
			return err
		}
		opts.Date = date
	}

	previous := s.head()
	if err := s.git.Commit(opts); err != nil {
		s.fail(err, "")
		return nil
	}
	s.record(undo.ResetTo("restore the commit as it was before amending", previous, false))
	s.println(ui.Success("Amended the last commit."))
	return s.offerForcePush()
}

func (s *Session) viewCommits() error {
	var count int
	for {
		input, err := s.prompt.Line(fmt.Sprintf("How many commits? [%d]", s.cfg.CommitCount))
		if err != nil {
			return err
		}
		if count, err = prompt.ParseCount(input, s.cfg.CommitCount); err == nil {
			break
		}
		s.println(ui.Warning(err.Error()))
	}

	graph, err := s.git.LogGraph(count)
	if err != nil {
		if errors.Is(err, git.ErrNoCommits) {
			s.println(ui.Warning("No commits yet."))
			return nil
		}
		s.fail(err, "")
		return nil
	}
	s.println(graph)
	return nil
}

// selectCommit shows a fresh snapshot and resolves the user's pick against
// the history as it is when the pick is made
func (s *Session) selectCommit(verb string) (git.Commit, bool, error) {
	snap, err := s.lister.Snapshot()
	if err != nil {
		s.println(ui.Warning("No commits found."))
		s.println(ui.Dim(git.Diagnostic(err)))
		return git.Commit{}, false, nil
	}

	s.println(ui.Frame("Recent commits (newest first)", snap.Lines()...))
	for {
		input, err := s.prompt.Line(fmt.Sprintf("Commit to %s (1-%d, b to go back)", verb, snap.Len()))
		if err != nil {
			return git.Commit{}, false, err
		}
		if input == "" || strings.EqualFold(input, "b") {
			return git.Commit{}, false, nil
		}
		i, err := prompt.ParseIndex(input, snap.Len())
		if err != nil {
			s.println(ui.Warning(err.Error()))
			continue
		}

		target, err := s.lister.Resolve(snap, i)
		if err != nil {
			var stale *history.StaleSnapshotError
			var notFound *history.NotFoundError
			switch {
			case errors.As(err, &stale), errors.As(err, &notFound):
				s.println(ui.Warning(err.Error()))
				s.println(ui.Suggestion("nothing was changed; open this action again to see the current list"))
			default:
				s.fail(err, "")
			}
			return git.Commit{}, false, nil
		}
		return target, true, nil
	}
}

func (s *Session) requireCleanTree(action string) bool {
	clean, err := s.git.IsWorkingTreeClean()
	if err != nil {
		s.fail(err, "")
		return false
	}
	if !clean {
		s.println(ui.Warning("You have uncommitted changes."))
		s.println(ui.Suggestion("commit or stash them before " + action))
		return false
	}
	return true
}

func (s *Session) revertFold() error {
	if !s.requireCleanTree("reverting a commit") {
		return nil
	}
	target, ok, err := s.selectCommit("revert")
	if err != nil || !ok {
		return err
	}

	s.println(ui.Dim("The changes of " + target.String() + " will be undone and folded into the latest commit."))
	s.println(ui.Dim("No commit is removed; " + target.Hash + " stays in the history."))
	ok, err = s.confirm("Revert its changes?")
	if err != nil || !ok {
		return err
	}

	previous := s.head()
	if err := s.rewriter.RevertFold(target); err != nil {
		s.reportRewriteError(err)
		return nil
	}
	s.record(undo.ResetTo("restore history before reverting "+target.Hash, previous, true))
	s.println(ui.Success("Reverted the changes of " + ui.Hash(target.Hash) + " into the latest commit."))
	return s.offerForcePush()
}

func (s *Session) rebaseExcise() error {
	if !s.requireCleanTree("removing a commit") {
		return nil
	}
	target, ok, err := s.selectCommit("remove")
	if err != nil || !ok {
		return err
	}

	s.println(ui.Warning(target.String() + " will be removed from the history."))
	s.println(ui.Dim("Every commit after it is replayed and gets a new hash."))
	ok, err = s.confirm("Remove it?")
	if err != nil || !ok {
		return err
	}

	previous := s.head()
	if err := s.rewriter.RebaseExcise(target); err != nil {
		s.reportRewriteError(err)
		return nil
	}
	s.record(undo.ResetTo("restore history before removing "+target.Hash, previous, true))
	s.println(ui.Success("Removed " + ui.Hash(target.Hash) + " from the history."))
	return s.offerForcePush()
}

func (s *Session) reportRewriteError(err error) {
	var conflict *history.RewriteConflictError
	switch {
	case errors.Is(err, history.ErrRootCommit):
		s.println(ui.Warning(err.Error()))
		s.println(ui.Suggestion("the first commit has no parent to rebase onto; revert its changes instead"))
	case errors.As(err, &conflict):
		s.println(ui.Error(fmt.Sprintf("git stopped while running %s on %s:", conflict.Op, conflict.Commit.Hash)))
		s.println(conflict.Diagnostic)
		for _, hint := range conflict.Hints() {
			s.println(ui.Suggestion(hint))
		}
	default:
		s.fail(err, "")
	}
}
