// Package prompt drives interactive terminal editing of a field. The actual
// prompt library sits behind the Driver interface so edit flows can be
// tested without a real terminal and callers can swap implementations.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/transform"
)

// ErrInterrupted reports that the user aborted the prompt (Ctrl-C).
var ErrInterrupted = errors.New("prompt: interrupted")

// ErrTooManyAttempts reports that the configured attempt budget ran out
// before the field became valid.
var ErrTooManyAttempts = errors.New("prompt: attempt limit reached")

// InputConfig configures a single text prompt.
type InputConfig struct {
	Message string
	Help    string
	Default string
	// Validator rejects an answer with a descriptive error. Drivers that
	// support inline validation re-prompt without returning; drivers that
	// do not may ignore it and rely on the caller's edit loop.
	Validator func(answer string) error
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Help    string
	Default bool
}

// Config configures an Edit or Toggle loop.
type Config struct {
	Message string
	Help    string
	// MaxAttempts bounds how many invalid answers are tolerated before the
	// loop gives up. Zero means unlimited.
	MaxAttempts int
}

// Driver abstracts the terminal prompt implementation.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns the survey-backed Driver used in real terminals.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	ask := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			answer, ok := ans.(string)
			if !ok {
				return fmt.Errorf("prompt: expected a string answer, got %T", ans)
			}
			return validate(answer)
		}))
	}
	if err := survey.AskOne(ask, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	ask := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(ask, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

// Edit prompts for the field's value until the input validates, then
// persists it. The field's pipeline backs the prompt validator, so drivers
// with inline validation reject bad answers in place; for drivers without
// it the loop re-prompts with the field's error messages as help text. The
// previous answer is offered as the default.
func Edit[V any](ctx context.Context, d Driver, f *field.Field[V], cfg Config) error {
	if d == nil {
		return errors.New("prompt: driver must not be nil")
	}
	if f == nil {
		return errors.New("prompt: field must not be nil")
	}

	validate := func(answer string) error {
		f.SetUserInput(answer)
		if f.Valid() {
			return nil
		}
		return errors.New(strings.Join(f.Errors(), "; "))
	}

	help := cfg.Help
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := d.Input(ctx, InputConfig{
			Message:   cfg.Message,
			Help:      help,
			Default:   f.UserInput(),
			Validator: validate,
		})
		if err != nil {
			return err
		}

		f.SetUserInput(answer)
		if f.Valid() {
			f.Persist()
			return nil
		}

		attempts++
		if cfg.MaxAttempts > 0 && attempts >= cfg.MaxAttempts {
			return fmt.Errorf("%w after %d attempts", ErrTooManyAttempts, attempts)
		}
		help = strings.Join(f.Errors(), "; ")
	}
}

// Toggle prompts a yes/no answer for a boolean field, seeded with the
// field's current value, and persists the choice.
func Toggle(ctx context.Context, d Driver, f *field.Field[bool], cfg Config) error {
	if d == nil {
		return errors.New("prompt: driver must not be nil")
	}
	if f == nil {
		return errors.New("prompt: field must not be nil")
	}

	answer, err := d.Confirm(ctx, ConfirmConfig{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: f.Value(),
	})
	if err != nil {
		return err
	}

	f.SetUserInput(transform.FormatBool(answer))
	if !f.Valid() {
		return fmt.Errorf("prompt: confirmed value rejected: %s", strings.Join(f.Errors(), "; "))
	}
	f.Persist()
	return nil
}
