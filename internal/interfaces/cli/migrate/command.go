package migrate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tessera-live/tessera/internal/infrastructure/config"
	"github.com/tessera-live/tessera/internal/infrastructure/database"
	"github.com/tessera-live/tessera/internal/infrastructure/migration"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

const scriptsPath = "./internal/infrastructure/migration/scripts"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
	}

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(env); err != nil {
				return err
			}
			defer database.Close()

			manager := migration.NewManager(env)
			logger.Info("applying migrations", "strategy", manager.GetStrategy().GetName())

			if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			logger.Info("migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func newDownCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default: one step)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid step count: %s", args[0])
				}
				steps = parsed
			}

			if err := initEnv(env); err != nil {
				return err
			}
			defer database.Close()

			strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
			if !ok {
				return fmt.Errorf("rollback requires the SQL migration strategy")
			}

			logger.Info("rolling back migrations", "steps", steps)

			if err := strategy.MigrateDown(database.Get(), steps); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}

			logger.Info("rollback complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func initEnv(env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}
