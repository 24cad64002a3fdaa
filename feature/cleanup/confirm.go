package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// PromptConfirmer asks on the terminal with promptui.
type PromptConfirmer struct {
	// Label is shown before the [y/N] hint.
	Label string
	// AssumeYes skips the prompt and confirms.
	AssumeYes bool

	// Stdin and Stdout override the terminal; nil means os.Stdin/os.Stdout.
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewPromptConfirmer returns a confirmer with the default label.
func NewPromptConfirmer(assumeYes bool) *PromptConfirmer {
	return &PromptConfirmer{Label: "Do you want to continue", AssumeYes: assumeYes}
}

// Confirm returns true for y or yes in any case. Any other answer, Ctrl+C and
// end of input decline.
func (c *PromptConfirmer) Confirm(_ context.Context) (bool, error) {
	if c.AssumeYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true, nil
	}

	prompt := promptui.Prompt{
		Label:  c.Label + " [y/N]",
		Stdin:  c.Stdin,
		Stdout: c.Stdout,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, nil
		}
		return false, err
	}

	return isYes(result), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
