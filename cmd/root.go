package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"record2ddl/internal/dialect"
	"record2ddl/internal/report"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

var RootCmd = &cobra.Command{
	Use:   "record2ddl",
	Short: "Compile Erlang record definitions into SQL and HQL table DDL",
	Long: `
                              _ ____     _     _ _ 
  _ __ ___  ___ ___  _ __ __| |___ \  __| | __| | |
 | '__/ _ \/ __/ _ \| '__/ _' | __) |/ _' |/ _' | |
 | | |  __/ (_| (_) | | | (_| |/ __/| (_| | (_| | |
 |_|  \___|\___\___/|_|  \__,_|_____|\__,_|\__,_|_|

RECORD2DDL - Erlang record to MySQL / Hive schema compiler
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		report.Print(os.Stderr, report.Failure, err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./record2ddl.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringP("prefix", "p", dialect.DefaultPrefix, "table name prefix")
	flags.String("dialect", "mysql", fmt.Sprintf("relational dialect %v", dialect.Names()))
	flags.String("dsn", "", "Database Source Name (DSN), overrides the active database")
	flags.String("driver", "", "database/sql driver for --dsn (detected when empty)")

	viper.BindPFlag("generate.prefix", flags.Lookup("prefix"))
	viper.BindPFlag("generate.dialect", flags.Lookup("dialect"))
	viper.BindPFlag("database.dsn", flags.Lookup("dsn"))
	viper.BindPFlag("database.driver", flags.Lookup("driver"))

	viper.SetDefault("generate.prefix", dialect.DefaultPrefix)
	viper.SetDefault("generate.dialect", "mysql")
	viper.SetDefault("settings.sample_count", 10)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("record2ddl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("RECORD2DDL")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
