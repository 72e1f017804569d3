// Package app implements the interactive menus: each handler asks for what it
// needs, runs git through the client and prints the outcome.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/javoire/githelper/internal/config"
	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/github"
	"github.com/javoire/githelper/internal/history"
	"github.com/javoire/githelper/internal/menu"
	"github.com/javoire/githelper/internal/prompt"
	"github.com/javoire/githelper/internal/ui"
	"github.com/javoire/githelper/internal/undo"
)

// Options configures a Session
type Options struct {
	Git      git.GitClient
	Prompter prompt.Prompter
	Out      io.Writer
	Config   *config.Config
	// History defaults to parsing git log through Git
	History history.Source
	// GitHub may be nil when no pull request source is available
	GitHub github.GitHubClient
	// Now defaults to time.Now
	Now func() time.Time
}

// Session holds everything one interactive run needs. The undo stack lives
// here and nowhere else.
type Session struct {
	ctx      context.Context
	git      git.GitClient
	prompt   prompt.Prompter
	out      io.Writer
	cfg      *config.Config
	lister   *history.Lister
	rewriter *history.Rewriter
	prs      github.GitHubClient
	undo     undo.Stack
	now      func() time.Time
}

// New creates a Session
func New(ctx context.Context, opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	source := opts.History
	if source == nil {
		source = history.NewCLISource(opts.Git)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		ctx:      ctx,
		git:      opts.Git,
		prompt:   opts.Prompter,
		out:      opts.Out,
		cfg:      cfg,
		lister:   history.NewLister(source, cfg.CommitCount),
		rewriter: history.NewRewriter(opts.Git),
		prs:      opts.GitHub,
		now:      now,
	}
}

// UndoLen returns the number of recorded undo entries
func (s *Session) UndoLen() int {
	return s.undo.Len()
}

func (s *Session) println(a ...interface{}) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.out, format, a...)
}

// fail prints git's diagnostic and an optional suggestion. Command failures
// never leave the menu loop.
func (s *Session) fail(err error, suggestion string) {
	s.println(ui.Error(git.Diagnostic(err)))
	if suggestion != "" {
		s.println(ui.Suggestion(suggestion))
	}
}

// confirm reports whether the answer was Yes. No and Back both decline.
func (s *Session) confirm(question string) (bool, error) {
	answer, err := s.prompt.Confirm(question)
	if err != nil {
		return false, err
	}
	return answer == prompt.Yes, nil
}

// pick asks until one of options is chosen by number. Nothing is assumed.
func (s *Session) pick(label string, options []string) (int, error) {
	for i, opt := range options {
		s.printf("  %d. %s\n", i+1, opt)
	}
	for {
		input, err := s.prompt.Line(fmt.Sprintf("%s (1-%d)", label, len(options)))
		if err != nil {
			return -1, err
		}
		i, err := prompt.ParseIndex(input, len(options))
		if err != nil {
			s.println(ui.Warning(err.Error()))
			continue
		}
		return i - 1, nil
	}
}

func (s *Session) record(e undo.Entry) {
	s.undo.Push(e)
	slog.Debug("undo recorded", "description", e.Description, "depth", s.undo.Len())
}

// head returns the current commit hash, or "" on an unborn branch
func (s *Session) head() string {
	h, err := s.git.GetCommitHash("HEAD")
	if err != nil {
		return ""
	}
	return h
}

// currentRef returns the branch name, or the commit hash when detached
func (s *Session) currentRef() string {
	if b, err := s.git.GetCurrentBranch(); err == nil && b != "" {
		return b
	}
	return s.head()
}

func (s *Session) branchLabel() string {
	b, err := s.git.GetCurrentBranch()
	switch {
	case err != nil:
		return "(unknown)"
	case b == "":
		return "(detached HEAD)"
	}
	return b
}

func (s *Session) mainMenu() *menu.Menu {
	return &menu.Menu{
		Title: "Git Helper",
		Header: func() []string {
			return []string{"Current branch: " + ui.Branch(s.branchLabel())}
		},
		Items: []menu.Item{
			{Key: "1", Label: "Commit management", Action: menu.ActionCommits},
			{Key: "2", Label: "Branch management", Action: menu.ActionBranches},
			{Key: "3", Label: "Team tools", Action: menu.ActionTeam},
			{Key: "4", Label: "Quick actions", Action: menu.ActionQuick},
			{Key: "5", Label: "Undo last action", Action: menu.ActionUndo},
			{Key: "6", Label: "Help", Action: menu.ActionHelp},
			{Key: "7", Label: "Exit", Action: menu.ActionExit},
		},
	}
}

// Run shows the main menu until the user exits. End of input ends the
// session without error.
func (s *Session) Run() error {
	err := menu.Run(s.mainMenu(), s.prompt, s.out, map[menu.Action]menu.Handler{
		menu.ActionCommits:  s.RunCommits,
		menu.ActionBranches: s.RunBranches,
		menu.ActionTeam:     s.RunTeam,
		menu.ActionQuick:    s.RunQuick,
		menu.ActionUndo:     s.undoLast,
		menu.ActionHelp:     s.help,
		menu.ActionExit:     s.exit,
	})
	return endOfInput(err)
}

// endOfInput turns io.EOF into a clean exit
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) exit() error {
	ok, err := s.confirm("Are you sure you want to exit?")
	if err != nil {
		return err
	}
	if ok {
		s.println(ui.Dim("Goodbye."))
		return menu.ErrExit
	}
	return nil
}

func (s *Session) undoLast() error {
	e, ok := s.undo.Peek()
	if !ok {
		s.println(ui.Warning("No actions to undo."))
		return nil
	}

	s.println("Last action can be undone: " + e.Description)
	for _, step := range e.Steps {
		s.println(ui.Dim("  git " + strings.Join(step, " ")))
	}
	ok, err := s.confirm("Undo it?")
	if err != nil || !ok {
		return err
	}

	if _, err := s.undo.Pop(); err != nil {
		return err
	}
	if err := undo.Apply(s.git, e); err != nil {
		s.fail(err, "the repository may have changed since; check git status")
		return nil
	}
	s.println(ui.Success("Undone: " + e.Description))
	return nil
}

func (s *Session) help() error {
	s.println(ui.Frame("Help",
		ui.Command("Commit management")+"  stage, commit with a custom date, amend, view history,",
		"    revert a commit's changes (keeps its history entry),",
		"    or remove a commit from history (rewrites later commits)",
		ui.Command("Branch management")+"  switch (with a guard for uncommitted changes), create,",
		"    delete, push, branch overview and details",
		ui.Command("Team tools")+"  remote branches, check out a remote branch, pull requests, remotes",
		ui.Command("Quick actions")+"  push, pull, stashes, recent merges",
		ui.Command("Undo last action")+"  reverse the most recent change made in this session",
		"",
		"Confirmations accept y/yes/1, n/no/2 and b. Enter b in a menu to go back.",
	))
	return nil
}
