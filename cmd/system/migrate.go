package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/trimsy-app/trimsy_backend/config"
	"github.com/trimsy-app/trimsy_backend/internal/store"
	"github.com/trimsy-app/trimsy_backend/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = time.Minute
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			pool, err := database.NewPool(ctx, database.FromCentralConfig(cfg.Database))
			if err != nil {
				return fmt.Errorf("failed to open database pool: %w", err)
			}
			defer pool.Close()

			m, err := store.NewMigrator(pool)
			if err != nil {
				return fmt.Errorf("failed to create migrator: %w", err)
			}
			defer m.Close()

			if down {
				fmt.Println("Rolling back the most recent migration.")
				if err := m.Down(ctx); err != nil {
					return err
				}
			} else {
				fmt.Println("Applying pending migrations.")
				if err := m.Up(ctx); err != nil {
					return err
				}
			}

			v, err := m.Version(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Database is now at migration version %d.\n", v)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "roll back the most recent migration instead of applying")

	return cmd
}
