package cmd

import (
	"fmt"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"record2ddl/internal/codegen"
	"record2ddl/internal/dialect"
	"record2ddl/internal/engine"
	"record2ddl/internal/report"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create the compiled tables in the active database",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := compileRecords(inputFile)
		if err != nil {
			return err
		}
		opts, err := dialectOptions()
		if err != nil {
			return err
		}

		db, config, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		d, err := applyDialect(cmd, config.Driver)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "🦅 Connected to %s (%s), dialect %s\n", config.Name, config.Driver, d.Name())

		statements := codegen.Statements(d, res.Tables, opts)
		if len(statements) == 0 {
			report.Print(out, report.Warning, "no records found, nothing to apply")
			return nil
		}

		start := time.Now()
		uiprogress.Start()
		bar := uiprogress.AddBar(len(statements)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Applying: "
		})

		err = engine.Apply(cmd.Context(), db, statements, func() {
			bar.Incr()
		})
		uiprogress.Stop()
		if err != nil {
			return err
		}

		logger.Info("ddl applied",
			zap.Int("tables", len(res.Tables)),
			zap.Int("statements", len(statements)),
			zap.Duration("elapsed", time.Since(start)))

		report.PrintUnterminated(out, res.Unterminated)
		report.PrintErrors(out, res.Report)
		report.Print(out, report.Success, fmt.Sprintf("Done: %d table(s) created", len(res.Tables)))
		return nil
	},
}

// applyDialect follows the connection driver unless --dialect was given.
func applyDialect(cmd *cobra.Command, driver string) (dialect.Dialect, error) {
	if cmd.Flags().Changed("dialect") {
		d, err := relationalDialect()
		if err != nil {
			return nil, err
		}
		if d.Driver() != driver {
			logger.Warn("dialect does not match connection driver",
				zap.String("dialect", d.Name()),
				zap.String("driver", driver))
		}
		return d, nil
	}
	if !dialect.Supported(driver) {
		return nil, fmt.Errorf("no dialect for driver %q", driver)
	}
	return dialect.GetDialect(driver), nil
}

func init() {
	RootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&inputFile, "file", "f", "", "record file to compile")
	applyCmd.MarkFlagRequired("file")
}
