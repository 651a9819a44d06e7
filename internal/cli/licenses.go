package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/sarag5/mlcookiecutter/internal/config"
	"github.com/spf13/cobra"
)

var licensesJSON bool

func init() {
	licensesCmd.Flags().BoolVar(&licensesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(licensesCmd)
}

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List license identifiers accepted by --license",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		logger := newLogger(cmd)

		infos, err := newResolver(logger).List(cmd.Context())
		if err != nil {
			return err
		}

		if licensesJSON {
			out, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling licenses: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tSPDX\tNAME")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Key, info.SPDXID, info.Name)
		}
		return w.Flush()
	},
}
