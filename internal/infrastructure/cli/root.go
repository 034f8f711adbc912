package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/smartcmd-go/internal/app"
	"github.com/doeshing/smartcmd-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// In and Out default to the process stdio.
	In  io.Reader
	Out io.Writer
}

// NewRootCmd wires the cobra root command. The container is built lazily so that
// `smartcmd version` never touches configuration.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	var container *app.Container
	source := func(ctx context.Context) (*app.Container, error) {
		if container != nil {
			return container, nil
		}
		built, err := app.BuildContainer(ctx, opts.Verbose)
		if err != nil {
			return nil, err
		}
		container = built
		return container, nil
	}

	root := &cobra.Command{
		Use:   "smartcmd",
		Short: "SmartCMD - natural language to shell commands",
		Long:  "SmartCMD turns plain-language requests into shell commands and runs them after you confirm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, source, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewHistoryCommand(source))
	root.AddCommand(commands.NewDoctorCommand(source))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func runInteractive(cmd *cobra.Command, source commands.ContainerSource, opts Options) error {
	ctx := cmd.Context()
	container, err := source(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	in := opts.In
	if in == nil {
		in = cmd.InOrStdin()
	}
	out := opts.Out
	if out == nil {
		out = cmd.OutOrStdout()
	}

	loop, err := container.NewSession(ctx, NewConsole(in, out))
	if err != nil {
		return err
	}
	return loop.Run(ctx)
}
