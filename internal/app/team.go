package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/github"
	"github.com/javoire/githelper/internal/menu"
	"github.com/javoire/githelper/internal/prompt"
	"github.com/javoire/githelper/internal/spinner"
	"github.com/javoire/githelper/internal/ui"
	"github.com/javoire/githelper/internal/undo"
)

func (s *Session) teamMenu() *menu.Menu {
	return &menu.Menu{
		Title: "Team Tools",
		Items: []menu.Item{
			{Key: "1", Label: "List remote branches", Action: menu.ActionRemoteBranches},
			{Key: "2", Label: "Check out a remote branch", Action: menu.ActionCheckoutRemote},
			{Key: "3", Label: "Open pull requests", Action: menu.ActionPullRequests},
			{Key: "4", Label: "Manage remotes", Action: menu.ActionRemotes},
			{Key: "5", Label: "Back", Action: menu.ActionBack},
		},
	}
}

// RunTeam shows the team tools menu
func (s *Session) RunTeam() error {
	return menu.Run(s.teamMenu(), s.prompt, s.out, map[menu.Action]menu.Handler{
		menu.ActionRemoteBranches: s.remoteBranches,
		menu.ActionCheckoutRemote: s.checkoutRemote,
		menu.ActionPullRequests:   s.pullRequests,
		menu.ActionRemotes:        s.manageRemotes,
	})
}

func (s *Session) remoteBranches() error {
	branches, err := s.git.ListRemoteBranches()
	if err != nil {
		s.fail(err, "")
		return nil
	}
	if len(branches) == 0 {
		s.println(ui.Dim("No remote branches. Fetch first or add a remote."))
		return nil
	}
	s.println("Remote branches:")
	for _, b := range branches {
		s.println("  " + ui.Branch(b))
	}
	return nil
}

// fetch updates remote-tracking branches, offering a retry on failure
func (s *Session) fetch() bool {
	return prompt.Retry(s.prompt, s.out, func() error {
		return spinner.WrapWithSuccess(s.out, "Fetching from "+s.cfg.Remote+"...", "Fetched "+s.cfg.Remote, func() error {
			return s.git.Fetch(s.cfg.Remote)
		})
	})
}

func (s *Session) checkoutRemote() error {
	if !s.fetch() {
		return nil
	}
	branches, err := s.git.ListRemoteBranches()
	if err != nil {
		s.fail(err, "")
		return nil
	}
	if len(branches) == 0 {
		s.println(ui.Warning("No remote branches to check out."))
		return nil
	}
	idx, err := s.prompt.Choose("Check out which branch", branches)
	if err != nil || idx < 0 {
		return err
	}
	remoteRef := branches[idx]
	_, local, ok := strings.Cut(remoteRef, "/")
	if !ok || local == "" {
		local = remoteRef
	}

	if s.git.BranchExists(local) {
		s.println(ui.Warning(fmt.Sprintf("A local branch named %s already exists.", local)))
		s.println(ui.Suggestion("switch to it from Branch management instead"))
		return nil
	}

	previous := s.currentRef()
	if err := s.git.CreateTrackingBranch(local, remoteRef); err != nil {
		s.fail(err, "commit or stash your changes if they conflict with the branch")
		return nil
	}
	s.record(undo.CreateBranch(local, previous))
	s.println(ui.Success(fmt.Sprintf("Checked out %s tracking %s", ui.Branch(local), ui.Branch(remoteRef))))
	return nil
}

func (s *Session) pullRequests() error {
	if s.prs == nil {
		s.println(ui.Warning("Pull requests are unavailable for this repository."))
		s.println(ui.Suggestion("add a GitHub remote, install gh or set github-token"))
		return nil
	}

	var prs []github.PRInfo
	err := spinner.Wrap(s.out, "Loading pull requests...", func() error {
		var err error
		prs, err = s.prs.ListOpenPRs(s.ctx, s.cfg.PRLimit)
		return err
	})
	if err != nil {
		if errors.Is(err, github.ErrCLIUnavailable) {
			s.println(ui.Warning("GitHub CLI (gh) is not installed."))
			s.println(ui.Suggestion("install it from https://cli.github.com/ or set github-token"))
			return nil
		}
		s.fail(err, "run 'gh auth status' to check your login")
		return nil
	}
	if len(prs) == 0 {
		s.println(ui.Dim("No open pull requests."))
		return nil
	}

	rows := make([][]string, 0, len(prs))
	for _, pr := range prs {
		rows = append(rows, []string{"#" + strconv.Itoa(pr.Number), pr.Title, pr.Head, pr.Author, pr.URL})
	}
	if err := ui.Table(s.out, []string{"PR", "Title", "Branch", "Author", "URL"}, rows); err != nil {
		return fmt.Errorf("failed to render pull requests: %w", err)
	}
	return nil
}

func (s *Session) manageRemotes() error {
	remotes, err := s.git.ListRemotes()
	if err != nil {
		s.fail(err, "")
		return nil
	}
	if len(remotes) == 0 {
		s.println(ui.Dim("No remotes configured."))
	} else {
		rows := make([][]string, 0, len(remotes))
		for _, r := range remotes {
			rows = append(rows, []string{r.Name, r.FetchURL, r.PushURL})
		}
		if err := ui.Table(s.out, []string{"Remote", "Fetch", "Push"}, rows); err != nil {
			return fmt.Errorf("failed to render remotes: %w", err)
		}
	}

	options := []string{"Add a remote"}
	if len(remotes) > 0 {
		options = append(options, "Change a remote URL", "Remove a remote")
	}
	idx, err := s.prompt.Choose("Remote action", options)
	if err != nil || idx < 0 {
		return err
	}
	switch idx {
	case 0:
		return s.addRemote()
	case 1:
		return s.setRemoteURL(remotes)
	}
	return s.removeRemote(remotes)
}

func (s *Session) addRemote() error {
	name, err := s.prompt.Required("Remote name")
	if err != nil {
		return err
	}
	url, err := s.prompt.Required("Remote URL")
	if err != nil {
		return err
	}
	if err := s.git.AddRemote(name, url); err != nil {
		s.fail(err, "")
		return nil
	}
	s.record(undo.AddRemote(name))
	s.println(ui.Success("Added remote " + name))
	return nil
}

func (s *Session) chooseRemote(label string, remotes []git.Remote) (git.Remote, bool, error) {
	names := make([]string, len(remotes))
	for i, r := range remotes {
		names[i] = r.Name
	}
	idx, err := s.prompt.Choose(label, names)
	if err != nil || idx < 0 {
		return git.Remote{}, false, err
	}
	return remotes[idx], true, nil
}

func (s *Session) setRemoteURL(remotes []git.Remote) error {
	r, ok, err := s.chooseRemote("Change which remote", remotes)
	if err != nil || !ok {
		return err
	}
	url, err := s.prompt.Required("New URL")
	if err != nil {
		return err
	}
	if err := s.git.SetRemoteURL(r.Name, url); err != nil {
		s.fail(err, "")
		return nil
	}
	s.record(undo.SetRemoteURL(r.Name, r.FetchURL))
	s.println(ui.Success(fmt.Sprintf("%s now points to %s", r.Name, url)))
	return nil
}

func (s *Session) removeRemote(remotes []git.Remote) error {
	r, ok, err := s.chooseRemote("Remove which remote", remotes)
	if err != nil || !ok {
		return err
	}
	ok, err = s.confirm(fmt.Sprintf("Remove remote %s (%s)?", r.Name, r.FetchURL))
	if err != nil || !ok {
		return err
	}
	if err := s.git.RemoveRemote(r.Name); err != nil {
		s.fail(err, "")
		return nil
	}
	s.record(undo.RemoveRemote(r.Name, r.FetchURL))
	s.println(ui.Success("Removed remote " + r.Name))
	return nil
}
