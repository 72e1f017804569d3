package app

import (
	"fmt"
	"io"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/prompt"
	"github.com/javoire/githelper/internal/ui"
)

// EnsureRepository offers to initialize a repository when the working
// directory is not inside one. Declining returns git.ErrNotARepository.
func EnsureRepository(client git.GitClient, p prompt.Prompter, out io.Writer, remote string) error {
	if client.IsInsideWorkTree() {
		return nil
	}

	fmt.Fprintln(out, ui.Warning("This directory is not a git repository."))
	answer, err := p.Confirm("Initialize a new repository here?")
	if err != nil {
		return err
	}
	if answer != prompt.Yes {
		return git.ErrNotARepository
	}
	if err := client.Init(); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	fmt.Fprintln(out, ui.Success("Initialized an empty repository."))

	answer, err = p.Confirm("Create an initial commit with the current files?")
	if err != nil {
		return err
	}
	if answer == prompt.Yes {
		if err := client.StageAll(); err != nil {
			return fmt.Errorf("failed to stage files: %w", err)
		}
		if err := client.Commit(git.CommitOptions{Message: "Initial commit", AllowEmpty: true}); err != nil {
			fmt.Fprintln(out, ui.Error(git.Diagnostic(err)))
			fmt.Fprintln(out, ui.Suggestion("set user.name and user.email with git config"))
		} else {
			fmt.Fprintln(out, ui.Success("Created the initial commit."))
		}
	}

	answer, err = p.Confirm(fmt.Sprintf("Add a remote named %s?", remote))
	if err != nil {
		return err
	}
	if answer != prompt.Yes {
		return nil
	}
	url, err := p.Required("Remote URL")
	if err != nil {
		return err
	}
	if err := client.AddRemote(remote, url); err != nil {
		fmt.Fprintln(out, ui.Error(git.Diagnostic(err)))
		return nil
	}
	fmt.Fprintln(out, ui.Success("Added remote "+remote))
	return nil
}
