// Command adminctl runs maintenance tasks against the admin console database.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"admin-srv/config"
	configPostgre "admin-srv/config/postgre"
	"admin-srv/pkg/log"

	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger log.Logger
	db     *sql.DB
)

var rootCmd = &cobra.Command{
	Use:           "adminctl <command>",
	Short:         "Maintenance CLI for the admin console backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger = log.Init(log.ZapConfig{
			Level:    cfg.Logger.Level,
			Mode:     cfg.Logger.Mode,
			Encoding: cfg.Logger.Encoding,
		})

		db, err = configPostgre.Connect(cmd.Context(), cfg.Postgres)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			_ = configPostgre.Disconnect(db)
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
