package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"defensa_juridica_web/db"
	"defensa_juridica_web/models"
	"defensa_juridica_web/services"
	"defensa_juridica_web/services/jobs"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func exportContactsCmd() *cobra.Command {
	var (
		output string
		since  string
		until  string
		status string
	)

	cmd := &cobra.Command{
		Use:   "export-contacts",
		Short: "Export archived contact messages to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseContactFilter(since, until, status)
			if err != nil {
				return err
			}

			if _, err := openDatabase(); err != nil {
				return err
			}
			defer db.Close()

			messages, err := services.NewContactArchive(db.DB).List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := services.ExportContactsXLSX(f, messages); err != nil {
				return err
			}
			fmt.Printf("Exported %d contact messages to %s\n", len(messages), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "contactos.xlsx", "workbook to write")
	cmd.Flags().StringVar(&since, "since", "", "only messages on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&until, "until", "", "only messages before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "only messages with this delivery status (sent, failed, logged)")
	return cmd
}

// parseContactFilter validates the export flags
func parseContactFilter(since, until, status string) (services.ContactFilter, error) {
	var filter services.ContactFilter
	var err error

	if since != "" {
		if filter.Since, err = services.ParseDate(since); err != nil {
			return filter, fmt.Errorf("--since: %w", err)
		}
	}
	if until != "" {
		if filter.Until, err = services.ParseDate(until); err != nil {
			return filter, fmt.Errorf("--until: %w", err)
		}
	}

	switch status {
	case "", models.ContactStatusSent, models.ContactStatusFailed, models.ContactStatusLogged:
		filter.Status = status
	default:
		return filter, fmt.Errorf("unknown status %q", status)
	}
	return filter, nil
}

func purgeContactsCmd() *cobra.Command {
	var (
		days int
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "purge-contacts",
		Short: "Delete contact messages older than the retention period",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			if !cmd.Flags().Changed("days") {
				days = cfg.ContactRetentionDays
			}
			if days <= 0 {
				fmt.Println("Retention is disabled, nothing to purge")
				return nil
			}

			if !yes && term.IsTerminal(int(os.Stdin.Fd())) {
				ok, err := confirm(os.Stdin, os.Stdout, fmt.Sprintf("Delete contact messages older than %d days?", days))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted")
					return nil
				}
			}

			purged, err := jobs.PurgeExpiredContacts(context.Background(), db.DB, days, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Purged %d contact messages\n", purged)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "retention in days (defaults to CONTACT_RETENTION_DAYS)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// confirm asks a yes/no question and reports whether the answer was yes
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	}
	return false, nil
}
