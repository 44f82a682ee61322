package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/rgrange/sift/internal/engine"
)

// ValidationOutput holds validate results for JSON output.
type ValidationOutput struct {
	Valid  bool     `json:"valid"`
	Root   string   `json:"root,omitempty"`
	Models []string `json:"models,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema.cue>",
		Short: "Validate a schema file and its filter configuration",
		Long: `Validate a CUE schema file: model and relation resolution, type
names, and whether the include/exclude spec bounds every cyclic
relation. Exits non-zero on any problem.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	loaded, err := LoadSchema(path)
	if err != nil {
		return reportValidation(formatter, nil, err)
	}
	formatter.VerboseLog("Loaded %d model(s), root %s", len(loaded.Models), loaded.Root.Name)

	// Building the engine exercises the tree builder, which is where
	// unbounded cyclic configurations are rejected.
	_, err = engine.New(loaded.Root, engine.Options{
		Include: loaded.Include,
		Exclude: loaded.Exclude,
	})
	return reportValidation(formatter, loaded, err)
}

func reportValidation(f *OutputFormatter, loaded *LoadedSchema, err error) error {
	out := ValidationOutput{Valid: err == nil}
	if loaded != nil {
		out.Root = loaded.Root.Name
		for name := range loaded.Models {
			out.Models = append(out.Models, name)
		}
		sort.Strings(out.Models)
	}
	if err != nil {
		out.Error = err.Error()
	}

	if f.Format == "json" {
		if jerr := f.JSON(out); jerr != nil {
			return jerr
		}
	} else if err != nil {
		f.Textf("invalid: %v", err)
	} else {
		f.Textf("valid: root=%s models=%d", out.Root, len(out.Models))
	}
	return err
}
