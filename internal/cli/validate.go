package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pipekit-labs/pipekit/internal/component"
	"github.com/pipekit-labs/pipekit/internal/manifest"
	"github.com/pipekit-labs/pipekit/internal/registry"
	"github.com/pipekit-labs/pipekit/internal/scaffold"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [component-dir]",
	Short: "Check a scaffolded component's manifest",
	Long: `Validate the component.yaml in a component directory (default: current directory).

Checks the manifest against the schema, that its type has a registered
scaffolder, and that the source file it points at exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	problems, err := checkComponentDir(registry.Default(), dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(problems) == 0 {
		fmt.Fprintf(out, "%s: OK\n", filepath.Join(dir, scaffold.ManifestFileName))
		return nil
	}

	fmt.Fprintf(out, "%s: %d problem(s)\n", filepath.Join(dir, scaffold.ManifestFileName), len(problems))
	for _, p := range problems {
		fmt.Fprintf(out, "  - %s\n", p)
	}
	return fmt.Errorf("component in %s is invalid", dir)
}

// checkComponentDir returns the problems found in dir's manifest. The error
// is reserved for unreadable or unparsable manifests.
func checkComponentDir(reg *registry.Registry, dir string) ([]string, error) {
	manifestPath := filepath.Join(dir, scaffold.ManifestFileName)

	result, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		return nil, err
	}

	var problems []string
	for _, issue := range result.Issues {
		problems = append(problems, issue.String())
	}

	m, err := manifest.Parse(manifestPath)
	if err != nil {
		return nil, err
	}

	if m.Type != "" {
		if _, ok := reg.Lookup(component.Type(m.Type)); !ok {
			problems = append(problems, fmt.Sprintf("type %q has no registered scaffolder", m.Type))
		}
	}

	if p := m.Path(); p != "" {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			problems = append(problems, fmt.Sprintf("source file %s not found", p))
		}
	}

	return problems, nil
}
