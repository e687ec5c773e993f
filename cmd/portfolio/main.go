// Command portfolio serves the portfolio site and offers a few catalog
// utilities.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tperticaro.dev/internal/catalog"
	"tperticaro.dev/internal/config"
	"tperticaro.dev/internal/logging"
	"tperticaro.dev/internal/services"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Portfolio site server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = logging.New(cfg.Log.Level)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "portfolio.yaml", "path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, exportCmd, projectsCmd, mailtoCmd)
}

// loadProjects opens the configured catalog. A catalog that fails to load
// is logged and returned as nil so the rest of the site still works.
func loadProjects() *services.ProjectService {
	list, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("loading project catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		return nil
	}
	return services.NewProjectService(list)
}

func newContactService() *services.ContactService {
	return services.NewContactService(cfg.Contact.Recipient, cfg.Contact.Subject)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
