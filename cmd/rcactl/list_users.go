package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listUsersCommand() *cobra.Command {
	var (
		page int
		size int
	)

	cmd := &cobra.Command{
		Use:   "list-users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			users, pagination, err := env.deps.UserService.ListUsers(context.Background(), page, size)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tROLE\tACTIVE\tCREATED")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n",
					u.ID, u.Email, u.Role, u.IsActive, u.CreatedAt.Format("2006-01-02"))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("page %d/%d, %d users total\n",
				pagination.CurrentPage, pagination.TotalPages, pagination.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&size, "size", 20, "users per page")

	return cmd
}
