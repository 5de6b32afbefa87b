package commands

import (
	"fmt"

	"planner/internal/config"
	"planner/internal/database"
	"planner/internal/logger"
	"planner/internal/repository"
	"planner/internal/server"
	"planner/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer log.Sync()

			s, err := server.Init(cfg, log)
			if err != nil {
				log.Error("server initialization failed", zap.Error(err))
				return err
			}
			return s.Run()
		},
	}
}

// NewMigrateCommand manages the schema. On postgres it drives the versioned
// SQL migrations; on sqlite "up" migrates from the models.
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(config.Load())
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	})

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revert migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			db, err := database.Open(config.Load())
			if err != nil {
				return err
			}
			if err := database.MigrateDown(db, steps); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration down completed")
			return nil
		},
	}
	downCmd.Flags().Int("steps", 0, "Number of migrations to revert (0 reverts all)")
	migrateCmd.AddCommand(downCmd)

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(config.Load())
			if err != nil {
				return err
			}
			version, dirty, err := database.MigrationVersion(db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	})

	return migrateCmd
}

func NewUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
	}

	createUserCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			cfg := config.Load()
			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			accounts := service.NewAccountService(repository.NewUserRepository(db), zap.NewNop())
			user, err := accounts.Register(cmd.Context(), service.RegisterInput{
				Username:  username,
				Password1: password,
				Password2: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
	createUserCmd.Flags().String("username", "", "Username (required)")
	createUserCmd.Flags().String("password", "", "Password, at least 8 characters (required)")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")

	userCmd.AddCommand(createUserCmd)
	return userCmd
}
