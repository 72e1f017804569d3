package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/javoire/githelper/internal/menu"
	"github.com/javoire/githelper/internal/ui"
	"github.com/javoire/githelper/internal/undo"
)

const recentMergeCount = 10

func (s *Session) quickMenu() *menu.Menu {
	return &menu.Menu{
		Title: "Quick Actions",
		Items: []menu.Item{
			{Key: "1", Label: "Push current branch", Action: menu.ActionPush},
			{Key: "2", Label: "Pull current branch", Action: menu.ActionQuickPull},
			{Key: "3", Label: "Stashes", Action: menu.ActionStashList},
			{Key: "4", Label: "Recent merges", Action: menu.ActionRecentMerges},
			{Key: "5", Label: "Back", Action: menu.ActionBack},
		},
	}
}

// RunQuick shows the quick actions menu
func (s *Session) RunQuick() error {
	return menu.Run(s.quickMenu(), s.prompt, s.out, map[menu.Action]menu.Handler{
		menu.ActionPush:         s.push,
		menu.ActionQuickPull:    s.quickPull,
		menu.ActionStashList:    s.stashes,
		menu.ActionRecentMerges: s.recentMerges,
	})
}

func (s *Session) quickPull() error {
	if s.git.GetTrackingBranch() == "" {
		s.println(ui.Warning("The current branch has no upstream."))
		s.println(ui.Suggestion("push it first, or switch to it from Branch management to pick one"))
		return nil
	}
	s.pullOnce()
	return nil
}

// stashAction is parsed from input like "2a": stash number then a, p or d
type stashAction struct {
	index int
	verb  byte
}

func parseStashAction(input string, n int) (stashAction, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if len(input) < 2 {
		return stashAction{}, false
	}
	verb := input[len(input)-1]
	if verb != 'a' && verb != 'p' && verb != 'd' {
		return stashAction{}, false
	}
	i, err := strconv.Atoi(input[:len(input)-1])
	if err != nil || i < 1 || i > n {
		return stashAction{}, false
	}
	return stashAction{index: i - 1, verb: verb}, true
}

func (s *Session) stashes() error {
	list, err := s.git.StashList()
	if err != nil {
		s.fail(err, "")
		return nil
	}
	if len(list) == 0 {
		s.println(ui.Dim("No stashes."))
		return nil
	}
	for i, st := range list {
		s.printf("  %d. %s %s\n", i+1, ui.Hash(st.Ref), st.Message)
	}

	var action stashAction
	for {
		input, err := s.prompt.Line("Stash action (e.g. 1a apply, 1p pop, 1d drop; b to go back)")
		if err != nil {
			return err
		}
		if in := strings.ToLower(strings.TrimSpace(input)); in == "b" || in == "back" {
			return nil
		}
		var ok bool
		if action, ok = parseStashAction(input, len(list)); ok {
			break
		}
		s.println(ui.Warning(fmt.Sprintf("Invalid stash action %q.", input)))
	}

	st := list[action.index]
	switch action.verb {
	case 'a':
		if err := s.git.StashApply(st.Index); err != nil {
			s.fail(err, "resolve the conflicts, or commit your changes and apply again")
			return nil
		}
		s.println(ui.Success("Applied " + st.Ref))
	case 'p':
		if err := s.git.StashPop(st.Index); err != nil {
			s.fail(err, "the stash was kept; resolve the conflicts and drop it when done")
			return nil
		}
		s.println(ui.Success("Popped " + st.Ref))
	case 'd':
		ok, err := s.confirm(fmt.Sprintf("Drop %s (%s)?", st.Ref, st.Message))
		if err != nil || !ok {
			return err
		}
		hash, _ := s.git.GetCommitHash(st.Ref)
		if err := s.git.StashDrop(st.Index); err != nil {
			s.fail(err, "")
			return nil
		}
		if hash != "" {
			s.record(undo.StashDrop(st.Message, hash))
		}
		s.println(ui.Success("Dropped " + st.Ref))
	}
	return nil
}

func (s *Session) recentMerges() error {
	out, err := s.git.RecentMerges(recentMergeCount)
	if err != nil {
		s.fail(err, "")
		return nil
	}
	if out == "" {
		s.println(ui.Dim("No merge commits found."))
		return nil
	}
	s.println("Recent merges:")
	s.println(out)
	return nil
}
