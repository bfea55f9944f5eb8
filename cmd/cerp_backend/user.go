package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/SscSPs/construct_erp/internal/repositories/database/pgsql"
	"github.com/SscSPs/construct_erp/internal/utils"
	"github.com/SscSPs/construct_erp/pkg/database"
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage staff accounts",
	}

	var (
		name     string
		email    string
		role     string
		password string
		avatar   string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create or update a staff account in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.MockMode() {
				return errors.New("PGSQL_URL is required; demo users come from the seed file")
			}

			user := domain.User{
				Name:   strings.TrimSpace(name),
				Email:  strings.TrimSpace(email),
				Role:   domain.Role(strings.ToUpper(role)),
				Avatar: avatar,
			}
			if user.Name == "" || user.Email == "" {
				return errors.New("--name and --email are required")
			}
			if !user.Role.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			if password != "" {
				if user.PasswordHash, err = utils.HashPassword(password); err != nil {
					return fmt.Errorf("hash password: %w", err)
				}
			}

			ctx := cmd.Context()
			dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
			if err != nil {
				return fmt.Errorf("initialize database pool: %w", err)
			}
			defer database.ClosePgxPool(dbPool, logger)

			if err := pgsql.NewRepositoryProvider(dbPool).UserRepo.SaveUser(ctx, user); err != nil {
				return fmt.Errorf("save user: %w", err)
			}
			logger.Info("User saved", slog.String("email", user.Email), slog.String("role", string(user.Role)))
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "Display name")
	create.Flags().StringVar(&email, "email", "", "Login email")
	create.Flags().StringVar(&role, "role", string(domain.RoleEngineer), "ADMIN, ENGINEER or FINANCE")
	create.Flags().StringVar(&password, "password", "", "Password; leave empty for Google-only accounts")
	create.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")

	cmd.AddCommand(create)
	return cmd
}
