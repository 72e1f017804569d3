package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/menu"
	"github.com/javoire/githelper/internal/spinner"
	"github.com/javoire/githelper/internal/ui"
	"github.com/javoire/githelper/internal/undo"
)

func (s *Session) branchMenu() *menu.Menu {
	return &menu.Menu{
		Title:  "Branch Management",
		Header: s.branchLines,
		Items: []menu.Item{
			{Key: "1", Label: "Switch branch", Action: menu.ActionSwitchBranch},
			{Key: "2", Label: "Create branch", Action: menu.ActionCreateBranch},
			{Key: "3", Label: "Delete branch", Action: menu.ActionDeleteBranch},
			{Key: "4", Label: "Push current branch", Action: menu.ActionPush},
			{Key: "5", Label: "Branch overview", Action: menu.ActionBranchInfo},
			{Key: "6", Label: "Branch details", Action: menu.ActionBranchDetails},
			{Key: "7", Label: "Back", Action: menu.ActionBack},
		},
	}
}

// RunBranches shows the branch management menu
func (s *Session) RunBranches() error {
	return menu.Run(s.branchMenu(), s.prompt, s.out, map[menu.Action]menu.Handler{
		menu.ActionSwitchBranch:  s.switchBranch,
		menu.ActionCreateBranch:  s.createBranch,
		menu.ActionDeleteBranch:  s.deleteBranch,
		menu.ActionPush:          s.push,
		menu.ActionBranchInfo:    s.branchInfo,
		menu.ActionBranchDetails: s.branchDetails,
	})
}

func (s *Session) branchLines() []string {
	branches, err := s.git.ListBranches()
	if err != nil {
		return []string{ui.Dim(git.Diagnostic(err))}
	}
	if len(branches) == 0 {
		return []string{ui.Dim("No branches yet.")}
	}
	lines := make([]string, 0, len(branches))
	for _, b := range branches {
		line := "  " + ui.Branch(b.Name)
		if b.Current {
			line += ui.CurrentBranchMarker()
		}
		if b.Worktree {
			line += ui.Dim(" (other worktree)")
		}
		lines = append(lines, line)
	}
	return lines
}

// otherBranches returns local branches that can be switched to or deleted
func (s *Session) otherBranches() ([]string, bool) {
	branches, err := s.git.ListBranches()
	if err != nil {
		s.fail(err, "")
		return nil, false
	}
	var names []string
	for _, b := range branches {
		if b.Current || b.Detached {
			continue
		}
		names = append(names, b.Name)
	}
	if len(names) == 0 {
		s.println(ui.Warning("There are no other local branches."))
		return nil, false
	}
	return names, true
}

func (s *Session) switchBranch() error {
	names, ok := s.otherBranches()
	if !ok {
		return nil
	}
	idx, err := s.prompt.Choose("Switch to", names)
	if err != nil || idx < 0 {
		return err
	}
	target := names[idx]

	proceed, err := s.guardChanges()
	if err != nil || !proceed {
		return err
	}

	previous := s.currentRef()
	if err := s.git.CheckoutBranch(target); err != nil {
		s.fail(err, "")
		return nil
	}
	s.record(undo.Checkout(previous))
	s.println(ui.Success("Switched to " + ui.Branch(target)))
	return s.afterSwitch(target)
}

// guardChanges makes the user deal with uncommitted changes before a switch.
// It reports whether the switch may proceed.
func (s *Session) guardChanges() (bool, error) {
	entries, err := s.git.Status()
	if err != nil {
		s.fail(err, "")
		return false, nil
	}
	if len(entries) == 0 {
		return true, nil
	}

	s.println(ui.Warning("You have uncommitted changes:"))
	for _, e := range entries {
		s.println(ui.Dim("  " + e.String()))
	}
	choice, err := s.pick("What do you want to do with them?", []string{"Stash them", "Commit them", "Abort the switch"})
	if err != nil {
		return false, err
	}

	switch choice {
	case 0:
		message, err := s.prompt.Line("Stash message (optional)")
		if err != nil {
			return false, err
		}
		if err := s.git.Stash(message); err != nil {
			s.fail(err, "")
			return false, nil
		}
		s.record(undo.Stash())
		s.println(ui.Success("Stashed your changes."))
		return true, nil
	case 1:
		message, err := s.prompt.Required("Commit message")
		if err != nil {
			return false, err
		}
		previous := s.head()
		if err := s.git.StageAll(); err != nil {
			s.fail(err, "")
			return false, nil
		}
		if err := s.git.Commit(git.CommitOptions{Message: message}); err != nil {
			s.fail(err, "")
			return false, nil
		}
		s.record(undo.Commit(previous))
		s.println(ui.Success("Committed your changes."))
		return true, nil
	}
	s.println(ui.Dim("Switch aborted, nothing was changed."))
	return false, nil
}

// afterSwitch pulls the upstream, or offers to set one up from the remote
// branches with the same name
func (s *Session) afterSwitch(branch string) error {
	if s.git.GetTrackingBranch() != "" {
		s.pullOnce()
		return nil
	}

	remoteBranches, err := s.git.ListRemoteBranches()
	if err != nil {
		s.fail(err, "")
		return nil
	}
	var matches []string
	for _, rb := range remoteBranches {
		if _, name, ok := strings.Cut(rb, "/"); ok && name == branch {
			matches = append(matches, rb)
		}
	}

	var chosen string
	switch len(matches) {
	case 0:
		s.println(ui.Dim(branch + " has no remote counterpart; push it to create one."))
		return nil
	case 1:
		ok, err := s.confirm(fmt.Sprintf("Track %s?", ui.Branch(matches[0])))
		if err != nil || !ok {
			return err
		}
		chosen = matches[0]
	default:
		s.println(fmt.Sprintf("Several remote branches are named %s:", branch))
		idx, err := s.prompt.Choose("Track which one", matches)
		if err != nil || idx < 0 {
			return err
		}
		chosen = matches[idx]
	}

	if err := s.git.SetUpstream(branch, chosen); err != nil {
		s.fail(err, "")
		return nil
	}
	s.println(ui.Success(fmt.Sprintf("%s now tracks %s", ui.Branch(branch), ui.Branch(chosen))))
	s.pullOnce()
	return nil
}

func (s *Session) createBranch() error {
	var name string
	for {
		n, err := s.prompt.Required("New branch name")
		if err != nil {
			return err
		}
		if !s.git.BranchExists(n) {
			name = n
			break
		}
		s.println(ui.Warning(fmt.Sprintf("A branch named %s already exists.", n)))
	}

	previous := s.currentRef()
	if err := s.git.CreateBranch(name); err != nil {
		s.fail(err, "branch names cannot contain spaces, '..', '~', '^' or ':'")
		return nil
	}
	s.record(undo.CreateBranch(name, previous))
	s.println(ui.Success("Created and switched to " + ui.Branch(name)))

	ok, err := s.confirm(fmt.Sprintf("Push %s to %s and track it?", name, s.cfg.Remote))
	if err != nil || !ok {
		return err
	}
	if err := spinner.WrapWithSuccess(s.out, "Pushing...", "Pushed "+name, func() error {
		return s.git.Push(git.PushOptions{Remote: s.cfg.Remote, Branch: name, SetUpstream: true})
	}); err != nil {
		s.fail(err, "")
	}
	return nil
}

func (s *Session) deleteBranch() error {
	names, ok := s.otherBranches()
	if !ok {
		return nil
	}
	idx, err := s.prompt.Choose("Delete which branch", names)
	if err != nil || idx < 0 {
		return err
	}
	name := names[idx]

	ok, err = s.confirm(fmt.Sprintf("Delete local branch %s?", ui.Branch(name)))
	if err != nil || !ok {
		return err
	}

	hash, _ := s.git.GetCommitHash("refs/heads/" + name)
	if err := s.git.DeleteBranch(name); err != nil {
		if !errors.Is(err, git.ErrBranchNotMerged) {
			s.fail(err, "")
			return nil
		}
		s.println(ui.Error(git.Diagnostic(err)))
		force, err := s.confirm("The branch is not fully merged. Delete it anyway?")
		if err != nil || !force {
			return err
		}
		if err := s.git.DeleteBranchForce(name); err != nil {
			s.fail(err, "")
			return nil
		}
	}
	if hash != "" {
		s.record(undo.DeleteBranch(name, hash))
	}
	s.println(ui.Success("Deleted " + name))

	remote := s.cfg.Remote
	exists, err := s.git.RemoteBranchExists(remote, name)
	if err != nil {
		s.println(ui.Dim("Could not check " + remote + ": " + git.Diagnostic(err)))
		return nil
	}
	if !exists {
		return nil
	}
	ok, err = s.confirm(fmt.Sprintf("Also delete %s/%s on the remote?", remote, name))
	if err != nil || !ok {
		return err
	}
	if err := spinner.WrapWithSuccess(s.out, "Deleting remote branch...", "Deleted "+remote+"/"+name, func() error {
		return s.git.DeleteRemoteBranch(remote, name)
	}); err != nil {
		s.fail(err, "")
	}
	return nil
}

func (s *Session) branchInfo() error {
	infos, err := s.git.GetBranchInfo()
	if err != nil {
		s.fail(err, "")
		return nil
	}
	if len(infos) == 0 {
		s.println(ui.Dim("No branches yet."))
		return nil
	}
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.Name, info.Author, info.Updated, info.Subject})
	}
	if err := ui.Table(s.out, []string{"Branch", "Author", "Updated", "Last commit"}, rows); err != nil {
		return fmt.Errorf("failed to render branch table: %w", err)
	}
	return nil
}

func (s *Session) branchDetails() error {
	branch := s.branchLabel()
	s.println("Current branch: " + ui.Branch(branch))
	if upstream := s.git.GetTrackingBranch(); upstream != "" {
		s.println("Tracking:       " + ui.Branch(upstream))
	} else {
		s.println("Tracking:       " + ui.Dim("none"))
	}

	if verbose, err := s.git.BranchVerbose(); err == nil && verbose != "" {
		s.println()
		s.println(verbose)
	}
	if remotes, err := s.git.ListRemoteBranches(); err == nil && len(remotes) > 0 {
		s.println()
		s.println("Remote branches:")
		for _, rb := range remotes {
			s.println("  " + ui.Branch(rb))
		}
	}
	if graph, err := s.git.LogGraph(5); err == nil && graph != "" {
		s.println()
		s.println("Last commits:")
		s.println(graph)
	}

	if s.prs != nil && branch != "" && !strings.HasPrefix(branch, "(") {
		pr, err := s.prs.GetPRForBranch(s.ctx, branch)
		switch {
		case err != nil:
			s.println(ui.Dim("Pull request lookup failed: " + err.Error()))
		case pr != nil:
			s.println()
			s.println(fmt.Sprintf("Pull request #%d %s %s", pr.Number, pr.Title, ui.PRInfo(pr.URL, pr.State)))
		}
	}
	return nil
}
