package cmd

import (
	"fmt"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"record2ddl/internal/codegen"
	"record2ddl/internal/engine"
	"record2ddl/internal/report"
)

var (
	count     int
	sampleOut string
	insert    bool
	clean     bool
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate sample rows for the compiled tables",
	Long: `Generates fake rows for every compiled record.

Without --insert an INSERT script is written to -o (or printed).
With --insert the rows are pumped into the active database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := compileRecords(inputFile)
		if err != nil {
			return err
		}
		opts, err := dialectOptions()
		if err != nil {
			return err
		}

		// Fetch count from Viper (Flag > Config > Default)
		targetCount := viper.GetInt("settings.sample_count")
		if count > 0 {
			targetCount = count
		}

		out := cmd.OutOrStdout()
		if !insert {
			d, err := relationalDialect()
			if err != nil {
				return err
			}
			script := engine.SampleScript(d, res.Tables, opts, targetCount)
			if sampleOut == "" {
				fmt.Fprint(out, script)
				return nil
			}
			if err := codegen.Write(sampleOut, script); err != nil {
				return err
			}
			report.Print(out, report.Success, fmt.Sprintf("Sample script written to %s", sampleOut))
			return nil
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
		fmt.Fprintf(out, "🦅 Connected to %s (%s)\n", config.Name, config.Driver)

		if clean {
			if err := engine.Clean(cmd.Context(), db, d, res.Tables, opts, logger); err != nil {
				return err
			}
		}

		start := time.Now()
		uiprogress.Start()
		bar := uiprogress.AddBar(targetCount * len(res.Tables)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Processing: "
		})

		results, err := engine.Pump(cmd.Context(), db, d, res.Tables, opts, targetCount, logger, func() {
			bar.Incr()
		})
		uiprogress.Stop()
		if err != nil {
			return err
		}

		verified := engine.VerifyInjection(cmd.Context(), db, results)

		fmt.Fprintln(out, "\n📊 Summary Report:")
		total := 0
		for i, r := range verified {
			icon := "✓"
			status := "OK (Verified)"
			if r.Status != "VERIFIED_OK" {
				icon = "!"
				status = r.Status
			}
			fmt.Fprintf(out, "[%s] [%02d/%02d] %-24s : %d rows (Target: %d) - %s\n",
				icon, i+1, len(verified), r.TableName, r.Actual, r.Target, status)
			if r.ErrorMsg != "" {
				fmt.Fprintf(out, "    └ Error: %s\n", r.ErrorMsg)
			}
			total += r.Actual
		}
		fmt.Fprintln(out, "--------------------------------------------------")
		fmt.Fprintf(out, "Total Rows: %d\n", total)
		report.Print(out, report.Success, fmt.Sprintf("Pump done in %s", time.Since(start).Round(time.Millisecond)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVarP(&inputFile, "file", "f", "", "record file to compile")
	sampleCmd.Flags().IntVarP(&count, "count", "n", 0, "rows per table (overrides settings.sample_count)")
	sampleCmd.Flags().StringVarP(&sampleOut, "output", "o", "", "write the INSERT script here instead of stdout")
	sampleCmd.Flags().BoolVar(&insert, "insert", false, "insert rows into the active database")
	sampleCmd.Flags().BoolVar(&clean, "clean", false, "empty the tables before inserting (with --insert)")
	sampleCmd.MarkFlagRequired("file")
}
