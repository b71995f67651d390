package main

import (
	"fmt"
	"os"

	"defensa_juridica_web/config"
	"defensa_juridica_web/db"
	"defensa_juridica_web/models"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitectl",
		Short: "Maintenance tasks for the Defensa Jurídica Sur site",
		Long: `sitectl works on the same database and media storage as the
web server, configured from the same environment and .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		exportContactsCmd(),
		purgeContactsCmd(),
		uploadMediaCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// openDatabase loads the configuration and opens the contact archive
func openDatabase() (*config.Config, error) {
	cfg := config.Load()

	if err := db.Initialize(db.Options{
		Path:        cfg.DBPath,
		TursoURL:    cfg.TursoDatabaseURL,
		TursoToken:  cfg.TursoAuthToken,
		Environment: "production", // keep SQL logging quiet
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
		db.Close()
		return nil, err
	}
	return cfg, nil
}
