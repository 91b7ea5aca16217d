package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"group-maker/domain"
	"group-maker/errors"
	"group-maker/internal"
	"group-maker/prompt"
	"group-maker/render"
	"group-maker/services"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/mattn/go-isatty"
)

// Request holds the answers already given on the command line.
// A nil field is asked interactively.
type Request struct {
	Names  *string
	Groups *string
}

// reportedError marks an error already shown to the user by the App.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

type App struct {
	log         *slog.Logger
	service     services.IGroupService
	prompter    *prompt.Prompter
	printer     *render.Printer
	out         io.Writer
	separator   string
	spin        time.Duration
	interactive bool
}

func NewApp(config internal.Config, in io.Reader, out io.Writer) (*App, error) {
	log := logs.GetLoggerFromString(config.LogLevel)

	renderer, err := render.New(config.RenderStyle, config.BoxWidth, config.Colours)
	if err != nil {
		return nil, err
	}

	separator := config.NameSeparator
	if separator == "" {
		separator = domain.DefaultSeparator
	}

	source := domain.NewSource(config.SeedValue())
	return &App{
		log:         log,
		service:     services.NewGroupService(log, source, separator, renderer),
		prompter:    prompt.NewPrompter(in, out),
		printer:     render.NewPrinter(out, config.Colours),
		out:         out,
		separator:   separator,
		spin:        config.SpinnerDuration,
		interactive: isTerminal(in),
	}, nil
}

// isTerminal reports false only for files that are not a TTY (pipes, redirects),
// where a prompt could wait forever on a closed input.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run collects the names and the group count, then shuffles, groups and renders.
// Either the full GroupSet is rendered or nothing is.
func (a *App) Run(ctx context.Context, req Request) error {
	a.printer.Banner()

	names, count, err := a.collect(ctx, req)
	if err != nil {
		return a.stop(err)
	}

	if err = a.prompter.Spin(ctx, "Shuffling names...", a.spin); err != nil {
		return a.stop(err)
	}

	groups, err := a.service.MakeGroups(names, count)
	if err != nil {
		return a.stop(err)
	}

	if err = a.service.Publish(a.out, groups); err != nil {
		return a.stop(err)
	}
	a.printer.Summary(groups)
	a.printer.Success("Groups created!")
	return nil
}

// collect takes the answers given as flags and asks the missing ones,
// all questions in a single prompt session.
func (a *App) collect(ctx context.Context, req Request) (domain.NameList, int, error) {
	var (
		names domain.NameList
		steps []prompt.Step
		err   error
	)

	if req.Names != nil {
		if names, err = a.service.ParseNames(*req.Names); err != nil {
			return nil, 0, err
		}
	} else {
		steps = append(steps, a.namesStep)
	}
	if req.Groups == nil {
		steps = append(steps, func(answers []string) prompt.Model {
			return a.groupCountStep(a.answeredNames(names, answers))
		})
	}

	if len(steps) > 0 && !a.interactive {
		return nil, 0, errors.ErrNotInteractive
	}

	answers, err := a.prompter.AskAll(ctx, steps...)
	if err != nil {
		return nil, 0, err
	}

	if req.Names == nil {
		if names, err = a.service.ParseNames(answers[0]); err != nil {
			return nil, 0, err
		}
		answers = answers[1:]
	}

	var given string
	if req.Groups != nil {
		given = *req.Groups
	} else {
		given = answers[0]
	}
	count, err := a.service.ParseGroupCount(names, given)
	if err != nil {
		return nil, 0, err
	}
	return names, count, nil
}

func (a *App) answeredNames(given domain.NameList, answers []string) domain.NameList {
	if given != nil {
		return given
	}
	names, _ := a.service.ParseNames(answers[0])
	return names
}

func (a *App) namesStep([]string) prompt.Model {
	question, placeholder := namesPrompt(a.separator)
	return prompt.NewModel(question, placeholder, "", func(answer string) error {
		_, err := a.service.ParseNames(answer)
		return err
	})
}

func (a *App) groupCountStep(names domain.NameList) prompt.Model {
	suggestion := a.service.SuggestGroupCount(names)
	return prompt.NewModel(
		fmt.Sprintf("How many groups? (%d names)", len(names)),
		"",
		strconv.Itoa(suggestion),
		func(answer string) error {
			_, err := a.service.ParseGroupCount(names, answer)
			return err
		},
	)
}

// namesPrompt returns the question and the placeholder for the names prompt.
func namesPrompt(separator string) (string, string) {
	question := fmt.Sprintf("Enter the names, separated by %q:", separator)
	joiner := separator
	if !strings.HasSuffix(joiner, " ") {
		joiner += " "
	}
	placeholder := strings.Join([]string{"Alice", "Bob", "Carol"}, joiner)
	return question, placeholder
}

func (a *App) stop(err error) error {
	if goerrors.Is(err, errors.ErrUserCancelled) {
		a.log.Info("Cancelled by user")
		a.printer.Goodbye()
		return err
	}
	a.printer.Error(err.Error())
	return reportedError{err}
}
