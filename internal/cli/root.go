// Package cli implements the sleephdr command line interface.
package cli

import (
	"errors"
	"fmt"
	"github.com/aneshas/gosleep/internal/config"
	"github.com/aneshas/gosleep/internal/fs"
	"github.com/aneshas/gosleep/internal/logging"
	"github.com/spf13/cobra"
	"io"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

// ErrFailedFiles is returned when one or more files could not be processed
var ErrFailedFiles = errors.New("one or more files failed")

type app struct {
	fs         fs.FS
	cfg        config.Config
	configPath string
}

// NewRootCmd builds the sleephdr command tree on top of fsys
func NewRootCmd(fsys fs.FS, out io.Writer) *cobra.Command {
	a := &app{fs: fsys}

	root := &cobra.Command{
		Use:           "sleephdr",
		Short:         "Inspect and create SLEEP file headers",
		Long:          "sleephdr reads and writes the 32 byte header of SLEEP .bitfield, .signatures and .tree files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.Bool("strict", config.DefaultConfig.StrictPadding, "reject headers whose padding is not zero filled")
	flags.String("log-level", config.DefaultConfig.Logging.Level, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultConfig.Logging.Format, "log format (text or json)")

	root.AddCommand(
		newInspectCmd(a),
		newCreateCmd(a),
		newDecodeCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	err = logging.Init(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Human())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg

	return nil
}

// Execute runs the command tree with args against fsys
func Execute(fsys fs.FS, out io.Writer, args []string) error {
	root := NewRootCmd(fsys, out)
	root.SetArgs(args)

	return root.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sleephdr %s (commit %s)\n", Version, Commit)
		},
	}
}
