package cli

import (
	"github.com/spf13/cobra"

	"github.com/rgrange/sift/internal/engine"
	"github.com/rgrange/sift/internal/queryir"
	"github.com/rgrange/sift/internal/querysql"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Params string // query string or YAML params file
}

// CompileOutput holds the compiled query for JSON output.
type CompileOutput struct {
	RequestID string                `json:"request_id"`
	SQL       string                `json:"sql"`
	Params    []any                 `json:"params"`
	Parsed    []engine.ParsedFilter `json:"parsed"`
	Warnings  []string              `json:"warnings,omitempty"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <schema.cue>",
		Short: "Compile filter parameters to SQL",
		Long: `Compile a set of filter parameters against a schema into
parameterized SQL. Parameters come from --params, either a raw query
string or a YAML file; see the params file format in the docs.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompileCmd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Params, "params", "p", "", "filter parameters (query string or .yaml file)")

	return cmd
}

func runCompileCmd(opts *CompileOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	out, err := compileRequest(opts, schemaPath, formatter)
	if err != nil {
		return err
	}

	if formatter.Format == "json" {
		return formatter.JSON(out)
	}
	formatter.Textf("request %s", out.RequestID)
	formatter.Textf("sql:    %s", out.SQL)
	formatter.Textf("params: %v", out.Params)
	for _, p := range out.Parsed {
		formatter.Textf("filter: %s=%d %s=%q", p.SelectorParam, p.OperatorIndex, p.ValueParam, p.RawValue)
	}
	for _, w := range out.Warnings {
		formatter.Textf("warning: %s", w)
	}
	return nil
}

// compileRequest is the shared schema → engine → SQL pipeline used by
// both compile and run.
func compileRequest(opts *CompileOptions, schemaPath string, formatter *OutputFormatter) (*CompileOutput, error) {
	loaded, err := LoadSchema(schemaPath)
	if err != nil {
		return nil, err
	}
	formatter.VerboseLog("Loaded %d model(s), root %s", len(loaded.Models), loaded.Root.Name)

	eng, err := engine.New(loaded.Root, engine.Options{
		Include: loaded.Include,
		Exclude: loaded.Exclude,
	})
	if err != nil {
		return nil, err
	}

	params, err := LoadParams(opts.Params)
	if err != nil {
		return nil, err
	}
	formatter.VerboseLog("Parsed %d parameter name(s)", len(params))

	result, err := eng.ProcessRequest(nil, params)
	if err != nil {
		return nil, err
	}

	sql, sqlParams, err := querysql.Compile(result.Query)
	if err != nil {
		return nil, err
	}

	out := &CompileOutput{
		RequestID: result.RequestID,
		SQL:       sql,
		Params:    sqlParams,
		Parsed:    result.Parsed,
	}
	if v := queryir.Validate(result.Query); !v.OK {
		out.Warnings = v.Warnings
	}
	return out, nil
}
