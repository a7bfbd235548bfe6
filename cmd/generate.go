package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"record2ddl/internal/codegen"
	"record2ddl/internal/dialect"
	"record2ddl/internal/report"
)

var (
	inputFile string
	sqlOut    string
	hqlOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the SQL and HQL table scripts from a record file",
	Example: `  record2ddl generate -f game_log.hrl -s game_log.sql -H game_log.hql -d ods_game
  record2ddl generate -f game_log.hrl -s pg.sql -H game_log.hql -d ods_game --dialect postgres`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := dialectOptions()
		if err != nil {
			return err
		}
		if opts.Database == "" {
			usageNote()
			return fmt.Errorf("warehouse database name is required (-d or generate.database)")
		}
		d, err := relationalDialect()
		if err != nil {
			return err
		}

		res, err := compileRecords(inputFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		// 1. SQL
		report.Print(out, report.Note, fmt.Sprintf("Generating %s file: %s", d.Name(), sqlOut))
		if err := codegen.Emit(out, sqlOut, codegen.Render(d, res.Tables, opts)); err != nil {
			return err
		}

		// 2. HQL
		report.Print(out, report.Note, fmt.Sprintf("Generating hql file: %s", hqlOut))
		if err := codegen.Emit(out, hqlOut, codegen.Render(dialect.GetDialect("hive"), res.Tables, opts)); err != nil {
			return err
		}

		// 3. Summary
		report.PrintUnterminated(out, res.Unterminated)
		report.PrintErrors(out, res.Report)
		report.Print(out, report.Success, fmt.Sprintf("Done: %d table(s) written to %s and %s", len(res.Tables), sqlOut, hqlOut))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&inputFile, "file", "f", "", "record file to compile")
	generateCmd.Flags().StringVarP(&sqlOut, "sql", "s", "", "SQL output file")
	generateCmd.Flags().StringVarP(&hqlOut, "hql", "H", "", "HQL output file")
	generateCmd.Flags().StringP("database", "d", "", "warehouse database for HQL table names")
	generateCmd.MarkFlagRequired("file")
	generateCmd.MarkFlagRequired("sql")
	generateCmd.MarkFlagRequired("hql")

	viper.BindPFlag("generate.database", generateCmd.Flags().Lookup("database"))
}

// usageNote prints the short invocation hint shown when flags are missing.
func usageNote() {
	report.Print(os.Stderr, report.Note, "record2ddl generate -f <record file> -s <sql out> -H <hql out> -d <database> [-p <table prefix>]")
}
