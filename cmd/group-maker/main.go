package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"group-maker/errors"
	"group-maker/internal"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Exit codes for the command line.
const (
	exitOK      = 0
	exitRuntime = 1
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// run loads the configuration, executes the root command and maps the outcome to an exit code.
// A cancellation by the user is a normal exit.
func run(args []string) (int, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return exitRuntime, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(config, os.Stdin, os.Stdout)
	cmd.SetArgs(args)

	return exitCode(cmd.ExecuteContext(ctx))
}

// exitCode maps the outcome of the command to an exit code. Errors the App
// already printed are not returned again.
func exitCode(err error) (int, error) {
	var reported reportedError
	switch {
	case err == nil, goerrors.Is(err, errors.ErrUserCancelled):
		return exitOK, nil
	case goerrors.As(err, &reported):
		return exitRuntime, nil
	default:
		return exitRuntime, err
	}
}

type options struct {
	names     string
	groups    string
	seed      int64
	style     string
	separator string
	noColor   bool
}

// apply lets flags set on the command line win over the environment.
func (o options) apply(cmd *cobra.Command, config *internal.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed := o.seed
		config.Seed = &seed
	}
	if flags.Changed("style") {
		config.RenderStyle = o.style
	}
	if flags.Changed("separator") {
		config.NameSeparator = o.separator
	}
	if o.noColor {
		config.Colours = false
	}
}

func newRootCommand(config internal.Config, in io.Reader, out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "group-maker",
		Short:         "Shuffle a list of names into evenly sized groups",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.apply(cmd, &config)
			if err := config.Validate(); err != nil {
				return err
			}

			app, err := NewApp(config, in, out)
			if err != nil {
				return err
			}

			var request Request
			if cmd.Flags().Changed("names") {
				request.Names = &opts.names
			}
			if cmd.Flags().Changed("groups") {
				request.Groups = &opts.groups
			}
			return app.Run(cmd.Context(), request)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.names, "names", "n", "", "names to shuffle, skips the names prompt")
	flags.StringVarP(&opts.groups, "groups", "g", "", "number of groups, skips the group count prompt")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for a reproducible shuffle")
	flags.StringVar(&opts.style, "style", config.RenderStyle, "output style: box or table")
	flags.StringVar(&opts.separator, "separator", config.NameSeparator, "separator between names (default \",\")")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colours")

	return cmd
}
