package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func importAlumniCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-alumni <file>",
		Short: "Bulk-create alumni accounts from a CSV, XLSX or XLS file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer f.Close()

			env, err := openEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			report, err := env.deps.ImportService.ImportFile(context.Background(), path, f)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Printf("%d rows: %d created, %d skipped\n",
				report.Total, report.Success, report.Failed)

			for _, rowErr := range report.Errors {
				fmt.Printf("  row %d skipped: %s\n", rowErr.Row, rowErr.Reason)
			}

			if len(report.GeneratedCredentials) > 0 {
				fmt.Println("\nGenerated credentials (shown once, not retrievable later):")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ROW\tNAME\tEMAIL\tPASSWORD")
				for _, c := range report.GeneratedCredentials {
					password := c.Password
					if password == "" {
						password = "(supplied)"
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.Row, c.FullName, c.Email, password)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
