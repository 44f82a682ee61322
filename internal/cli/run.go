package cli

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*CompileOptions
	Database string // SQLite database path
}

// RunOutput holds query results for JSON output.
type RunOutput struct {
	*CompileOutput
	Rows []map[string]any `json:"rows"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{CompileOptions: &CompileOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "run <schema.cue>",
		Short: "Compile filter parameters and run them against SQLite",
		Long: `Compile filter parameters to SQL like the compile command, then
execute the query against a SQLite database and print the rows.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Params, "params", "p", "", "filter parameters (query string or .yaml file)")
	cmd.Flags().StringVarP(&opts.Database, "db", "d", "", "SQLite database path (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRun(opts *RunOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	compiled, err := compileRequest(opts.CompileOptions, schemaPath, formatter)
	if err != nil {
		return err
	}
	formatter.VerboseLog("Executing: %s", compiled.SQL)

	db, err := sql.Open("sqlite3", opts.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := queryRows(cmd.Context(), db, compiled.SQL, compiled.Params)
	if err != nil {
		return err
	}

	if formatter.Format == "json" {
		return formatter.JSON(&RunOutput{CompileOutput: compiled, Rows: rows})
	}
	formatter.Textf("sql:  %s", compiled.SQL)
	formatter.Textf("rows: %d", len(rows))
	for _, row := range rows {
		formatter.Textf("  %v", row)
	}
	return nil
}
