package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// confirmPrompt asks a yes/no question. Replaced in tests.
var confirmPrompt = surveyConfirm

// stdinIsTerminal reports whether prompts can be answered. Replaced in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func surveyConfirm(message string) (bool, error) {
	ok := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
		Help:    "Every file in the directory is deleted, read-only files included. Use update to keep existing files.",
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return ok, nil
}

// confirmDelete asks before an existing plugin directory is removed.
func confirmDelete(targetDir string) (bool, error) {
	return confirmPrompt(fmt.Sprintf("Plugin directory %s already exists. Delete it and generate a fresh copy?", targetDir))
}
