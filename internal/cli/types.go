package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/pipekit-labs/pipekit/internal/registry"
	"github.com/spf13/cobra"
)

var typesJSON bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List component types that can be scaffolded",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	typesCmd.Flags().BoolVar(&typesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(typesCmd)
}

// typeEntry represents a bound component type for display.
type typeEntry struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

func runTypes(cmd *cobra.Command, args []string) error {
	reg := registry.Default()

	var entries []typeEntry
	for _, t := range reg.Types() {
		entries = append(entries, typeEntry{Type: t.String(), Description: t.Description()})
	}

	if typesJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling types: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Type, e.Description)
	}
	return w.Flush()
}
