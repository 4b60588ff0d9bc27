package main

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

var errAborted = errors.New("prompt aborted")

// prompter asks the user for missing input. It is swapped out in tests.
type prompter interface {
	Input(ctx context.Context, message, help string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(ctx context.Context, message, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{Message: message, Help: help}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(survey.Required)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}
