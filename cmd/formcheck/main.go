package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formcheck/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "formcheck",
	Short: "Signup form validation server and tools",
	Long: `formcheck validates a four-field signup form (username, email,
password, confirmation) in the browser, over HTTP and in the terminal.

Run "formcheck serve" to host the form, "formcheck prompt" to fill it in
interactively, or "formcheck check" to validate values from the command line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err = newLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(settings config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if settings.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}
	if settings.Level != "" {
		level, err := zapcore.ParseLevel(settings.Level)
		if err != nil {
			return nil, err
		}
		zapConfig.Level = zap.NewAtomicLevelAt(level)
	}
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	promptCmd.Flags().StringVar(&promptFormat, "format", "json", "Output format: json, form or pretty")
	checkCmd.Flags().StringVar(&checkValues.Username, "username", "", "Username to check")
	checkCmd.Flags().StringVar(&checkValues.Email, "email", "", "Email to check")
	checkCmd.Flags().StringVar(&checkValues.Password, "password", "", "Password to check")
	checkCmd.Flags().StringVar(&checkValues.ConfirmPassword, "confirm", "", "Password confirmation to check")
	renderCmd.Flags().StringVar(&renderRenderer, "renderer", "vanilla", "Renderer to use")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (stdout if empty)")
	renderCmd.Flags().StringVar(&renderSource, "source", "", "OpenAPI document path (built-in signup document if empty)")
	renderCmd.Flags().StringVar(&renderOperation, "operation", "", "Operation ID to render")
	renderCmd.Flags().BoolVar(&renderDocument, "document", false, "Wrap the form in a full HTML page")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
