package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/app"
	"portfolio/internal/lib/validator"
	"portfolio/internal/transport/http/dto"

	"github.com/spf13/cobra"
)

var adminInput dto.CreateAdminInput

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account or promote an existing user",
	Long: `Promotes the user matching --username or --email to role admin.
If neither exists a new admin account is created with --password.
This is the only way to get an admin account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validator.New().Struct(adminInput); err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}

		log := setupLogger(cfg.Env)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		application, err := app.NewCLI(ctx, log, cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		user, created, err := application.UserService.CreateAdmin(ctx, adminInput)
		if err != nil {
			return err
		}

		if created {
			log.Info("admin created", slog.String("user_id", user.ID.String()))
		} else {
			log.Info("user promoted to admin", slog.String("user_id", user.ID.String()))
		}

		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminInput.Username, "username", "", "admin username")
	createAdminCmd.Flags().StringVar(&adminInput.Email, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminInput.Password, "password", "", "password for a new account (min 6 characters)")
	rootCmd.AddCommand(createAdminCmd)
}
