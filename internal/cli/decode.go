package cli

import (
	"encoding/hex"
	"fmt"
	"github.com/aneshas/gosleep/core"
	"github.com/spf13/cobra"
	"strings"
)

func newDecodeCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode a hex encoded 32 byte header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateOutput(output)
			if err != nil {
				return err
			}

			b, err := hex.DecodeString(strings.Join(strings.Fields(args[0]), ""))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}

			h, err := core.Decode(b, core.WithConfig(a.cfg.Decode()))
			if err != nil {
				return err
			}

			return printHeader(cmd.OutOrStdout(), output, newHeaderView("-", h))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text or json)")

	return cmd
}
