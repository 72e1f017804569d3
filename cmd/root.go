package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/javoire/githelper/internal/actionlog"
	"github.com/javoire/githelper/internal/app"
	"github.com/javoire/githelper/internal/config"
	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/github"
	"github.com/javoire/githelper/internal/history"
	"github.com/javoire/githelper/internal/prompt"
	"github.com/javoire/githelper/internal/spinner"
	"github.com/javoire/githelper/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v         = viper.New()
	session   *app.Session
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "githelper",
	Short: "Interactive menus for everyday git work",
	Long: `An interactive front-end for git.

Numbered menus walk you through committing (with custom dates), amending,
reverting or removing commits, switching branches safely, pushing and pulling,
stashes, remotes and pull requests. Every command is run through the git
executable, and most actions can be undone for the rest of the session.`,
	Example: `  # Open the main menu
  githelper

  # Jump straight to the branch menu
  githelper branches

  # Show the git commands without changing anything
  githelper --dry-run -v`,
	// errors are printed by main, after Execute has closed the action log
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd.Context()); err != nil {
			if errors.Is(err, git.ErrNotARepository) {
				return errors.New("not in a git repository")
			}
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(session, session.Run)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("dry-run", false, "Show what would happen without executing")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default .githelper.yaml in . or $HOME)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("log-file", config.DefaultLogFile(), "Action log path")
	rootCmd.PersistentFlags().String("history-backend", config.BackendCLI, "How commit lists are read: cli or native")
	rootCmd.PersistentFlags().String("remote", "origin", "Remote used for push, fetch and pull requests")
	if err := v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
		os.Exit(1)
	}
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCloser != nil {
			logCloser.Close()
		}
	}()
	return rootCmd.Execute()
}

func setup(ctx context.Context) error {
	configFile := v.GetString("config")
	config.Init(v, configFile)
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	git.DryRun = cfg.DryRun
	git.Verbose = cfg.Verbose
	github.Verbose = cfg.Verbose

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	ui.SetNoColor(cfg.NoColor || !tty)
	spinner.Enabled = tty && !cfg.Verbose

	level, err := actionlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if logCloser, err = actionlog.Open(cfg.LogFile, level); err != nil {
		fmt.Fprintln(os.Stderr, ui.Warning(fmt.Sprintf("Action log disabled: %v", err)))
		actionlog.Discard()
	}

	client := git.NewGitClient()
	gitVersion, err := client.Version()
	if err != nil {
		return fmt.Errorf("%w: install git and make sure it is on your PATH", err)
	}

	p := prompt.New(os.Stdin, os.Stdout)
	if err := app.EnsureRepository(client, p, os.Stdout, cfg.Remote); err != nil {
		if errors.Is(err, io.EOF) {
			return git.ErrNotARepository
		}
		return err
	}

	root, err := client.GetRepoRoot()
	if err != nil {
		return err
	}
	source, err := history.NewSource(cfg.HistoryBackend, client, root)
	if err != nil {
		return err
	}

	slog.Info("session started", "git", gitVersion, "repo", root, "dry_run", cfg.DryRun, "history", cfg.HistoryBackend)
	session = app.New(ctx, app.Options{
		Git:      client,
		Prompter: p,
		Out:      os.Stdout,
		Config:   cfg,
		History:  source,
		GitHub:   newPRClient(ctx, cfg, client),
	})
	return nil
}

// newPRClient prefers the REST API when a token is configured and falls
// back to the gh CLI
func newPRClient(ctx context.Context, cfg *config.Config, client git.GitClient) github.GitHubClient {
	repo := github.ParseRepoFromURL(client.GetRemoteURL(cfg.Remote))
	if cfg.GitHubToken != "" && repo != "" {
		api, err := github.NewAPIClient(ctx, cfg.GitHubToken, repo)
		if err == nil {
			return api
		}
		slog.Warn("github api client unavailable, using gh", "repo", repo, "error", err)
	}
	return github.NewGitHubClient(repo)
}

// runMenu runs one menu loop. End of input is a normal way to leave.
func runMenu(s *app.Session, run func() error) error {
	if err := run(); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("session failed", "error", err)
		return err
	}
	slog.Info("session ended", "undo_entries", s.UndoLen())
	return nil
}
