package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcaa/rcaconnect/internal/app/models/dto"
)

func createAdminCommand() *cobra.Command {
	var (
		email    string
		password string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			env, err := openEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			user, err := env.deps.UserService.CreateUser(context.Background(), dto.AdminCreateUserRequest{
				Email:    email,
				Password: password,
				Role:     "admin",
				FullName: fullName,
			})
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Printf("created admin %s (id %d)\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address for the new admin")
	cmd.Flags().StringVar(&password, "password", "", "password for the new admin (min 8 characters)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name (defaults to the email local part)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
