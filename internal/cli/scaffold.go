package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pipekit-labs/pipekit/internal/component"
	"github.com/pipekit-labs/pipekit/internal/config"
	"github.com/pipekit-labs/pipekit/internal/logging"
	"github.com/pipekit-labs/pipekit/internal/prompt"
	"github.com/pipekit-labs/pipekit/internal/registry"
	"github.com/pipekit-labs/pipekit/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var (
	scaffoldOutputDir string
	scaffoldForce     bool
	scaffoldStdout    bool
)

// promptDriver returns the driver used to fill in missing arguments, or false
// when the session is not interactive.
var promptDriver = func(cmd *cobra.Command) (prompt.Driver, bool) {
	if !prompt.IsTerminal(os.Stdin) {
		return nil, false
	}
	return prompt.NewSurveyDriver(), true
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldOutputDir, "output-dir", "", "Output directory (default: <output_dir>/<name>)")
	scaffoldCmd.Flags().BoolVar(&scaffoldForce, "force", false, "Write into a non-empty output directory")
	scaffoldCmd.Flags().BoolVar(&scaffoldStdout, "stdout", false, "Print the generated source instead of writing files")
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:     "scaffold [type] [name]",
	Aliases: []string{"create"},
	Short:   "Scaffold a new pipeline component",
	Long: `Scaffold a new component of the given type. The scaffolder bound to the type
produces commented-out starter code, which is written to <name>.py together with
a component.yaml manifest.

Run without arguments in a terminal to pick the type and name interactively.

Examples:
  pipekit scaffold raw-asset daily_revenue
  pipekit scaffold raw-schedule nightly_refresh --output-dir defs/nightly
  pipekit scaffold raw-sensor new_files --stdout`,
	Args: cobra.MaximumNArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var types []string
		for _, t := range registry.Default().Types() {
			types = append(types, t.String())
		}
		return types, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runScaffold,
}

func runScaffold(cmd *cobra.Command, args []string) error {
	reg := registry.Default()
	log := logging.New("scaffold")

	typeName, name, err := scaffoldArgs(cmd, reg, args)
	if err != nil {
		return err
	}

	t, s, err := reg.Resolve(typeName)
	if err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scaffoldStdout {
		fmt.Fprint(out, s.Text(name))
		return nil
	}

	data := scaffold.NewScaffoldData(t, name)
	outDir := resolveOutputDir(name)

	log.Debug().Str("type", t.String()).Str("name", name).Str("dir", outDir).Msg("Generating component.")
	result, err := scaffold.Generate(s, data, outDir, scaffold.GenerateOptions{Force: scaffoldForce})
	if err != nil {
		return err
	}
	log.Info().Str("type", t.String()).Int("files", len(result.Files)).Msg("Component scaffolded.")

	printResult(out, t, result)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Edit %s and uncomment the definition\n", filepath.Join(result.OutputDir, data.FileName))
	fmt.Fprintf(out, "  2. Adjust %s if the component needs attributes\n", scaffold.ManifestFileName)
	return nil
}

// scaffoldArgs returns the type and name from args, prompting for whatever is
// missing when the session is interactive.
func scaffoldArgs(cmd *cobra.Command, reg *registry.Registry, args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}

	driver, ok := promptDriver(cmd)
	if !ok {
		return "", "", fmt.Errorf("scaffold requires a component type and a name; run '%s types' to list types", cmd.Root().Name())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var typeName string
	if len(args) == 1 {
		typeName = args[0]
	} else {
		types := reg.Types()
		options := make([]string, len(types))
		for i, t := range types {
			options[i] = t.String()
		}
		idx, err := driver.Select(ctx, "Select component type:", options)
		if err != nil {
			return "", "", fmt.Errorf("selecting component type: %w", err)
		}
		typeName = options[idx]
	}

	name, err := driver.Input(ctx, "Component name:", validateName)
	if err != nil {
		return "", "", fmt.Errorf("reading component name: %w", err)
	}
	return typeName, name, nil
}

// ─── Helpers ───────────────────────────────────────────────────────

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must be a Python identifier matching [A-Za-z_][A-Za-z0-9_]*", name)
	}
	return nil
}

func resolveOutputDir(name string) string {
	if scaffoldOutputDir != "" {
		return scaffoldOutputDir
	}
	return filepath.Join(config.OutputDir(), name)
}

func printResult(w io.Writer, t component.Type, result *scaffold.Result) {
	fmt.Fprintf(w, "Created %s at %s/\n", t, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
}
