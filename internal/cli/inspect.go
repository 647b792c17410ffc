package cli

import (
	"fmt"
	"github.com/aneshas/gosleep"
	"github.com/aneshas/gosleep/core"
	"github.com/aneshas/gosleep/internal/logging"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		output string
		expect string
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print the header of one or more SLEEP files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateOutput(output)
			if err != nil {
				return err
			}

			var want *core.FileType

			if expect != "" {
				ft, err := core.ParseFileType(expect)
				if err != nil {
					return err
				}

				want = &ft
			}

			failed := 0

			for _, path := range args {
				h, err := a.inspect(path, want)
				if err != nil {
					logging.L().Error().Err(err).Str("path", path).Msg("inspect failed")

					failed++

					continue
				}

				err = printHeader(cmd.OutOrStdout(), output, newHeaderView(path, h))
				if err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrFailedFiles, failed, len(args))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text or json)")
	cmd.Flags().StringVar(&expect, "expect", "", "require the canonical header of this file type (bitfield, signatures or tree)")

	return cmd
}

func (a *app) inspect(path string, want *core.FileType) (core.Header, error) {
	f, err := a.fs.Open(path)
	if err != nil {
		return core.Header{}, err
	}

	defer f.Close()

	log := logging.L().With().Str("path", path).Logger()

	h, err := gosleep.ReadHeader(
		f,
		gosleep.WithDecodeConfig(a.cfg.Decode()),
		gosleep.WithLogger(log),
	)
	if err != nil {
		return core.Header{}, err
	}

	if want != nil {
		err = gosleep.Expect(h, *want)
		if err != nil {
			return core.Header{}, err
		}
	}

	return h, nil
}
