package cli

import (
	"fmt"
	"github.com/aneshas/gosleep"
	"github.com/aneshas/gosleep/core"
	"github.com/aneshas/gosleep/internal/logging"
	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		fileType  string
		algorithm string
		entrySize uint16
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "create FILE",
		Short: "Write a SLEEP header to a new file",
		Long: "Write a SLEEP header to a new file. Without --entry-size and --algorithm the " +
			"canonical header for --type is written.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := core.ParseFileType(fileType)
			if err != nil {
				return err
			}

			h := core.NewCanonical(ft)

			if cmd.Flags().Changed("entry-size") || cmd.Flags().Changed("algorithm") {
				ht := h.HashType()

				if cmd.Flags().Changed("algorithm") {
					ht, err = core.ParseHashType(algorithm)
					if err != nil {
						return err
					}
				}

				size := h.EntrySize()

				if cmd.Flags().Changed("entry-size") {
					size = entrySize
				}

				h = core.NewHeader(ft, size, ht)
			}

			return a.create(args[0], h, force)
		},
	}

	cmd.Flags().StringVarP(&fileType, "type", "t", "", "file type (bitfield, signatures or tree)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "override the algorithm name (BLAKE2b, Ed25519 or none)")
	cmd.Flags().Uint16Var(&entrySize, "entry-size", 0, "override the entry size")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "truncate the file if it already exists")

	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (a *app) create(path string, h core.Header, force bool) error {
	f, err := a.fs.Create(path, force)
	if err != nil {
		return err
	}

	log := logging.L().With().Str("path", path).Logger()

	err = gosleep.WriteHeader(f, h, gosleep.WithLogger(log))
	if err != nil {
		_ = f.Close()

		return err
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("could not close %s: %w", path, err)
	}

	log.Info().Stringer("header", h).Msg("header created")

	return nil
}
