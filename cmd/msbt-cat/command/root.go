// Package command implements the msbt-cat command tree.
package command

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arloliu/msbt/internal/config"
	"github.com/arloliu/msbt/internal/logging"
)

const (
	cliName        = "msbt-cat"
	cliDescription = "print the labelled texts of message bundles"
)

// GlobalFlags are the flags shared by every subcommand.
type GlobalFlags struct {
	ConfigFile string
	Output     string
	LogLevel   string
	NoColor    bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags  GlobalFlags
	cfg    config.Config
	logger zerolog.Logger
	closer io.Closer
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand builds the msbt-cat command tree. Results go to out;
// warnings and logs go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: zerolog.Nop(),
		out:    out,
		errOut: errOut,
	}

	root := &cobra.Command{
		Use:           cliName + " [file]",
		Short:         cliDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return a.runCat(args[0])
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigFile, "config", "", "configuration file (.yaml, .yml or .toml)")
	pf.StringVarP(&a.flags.Output, "output", "o", "", "output format: text, json or table")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newCatCommand(a),
		newInspectCommand(a),
		newDiffCommand(a),
	)

	return root
}

// setup resolves the configuration. Precedence is flag, then environment,
// then configuration file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.ConfigFile)
	if err != nil {
		return err
	}
	logging.ApplyEnvOverrides(&cfg.Log)

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(a.flags.Output))
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.LogLevel
	}
	if a.flags.NoColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !cfg.Color {
		color.NoColor = true
	}

	logger, closer, err := logging.New(a.errOut, cfg.Log, !cfg.Color)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With().Str("component", cliName).Logger()
	a.closer = closer

	return nil
}

func (a *app) teardown() error {
	if a.closer == nil {
		return nil
	}

	return a.closer.Close()
}
