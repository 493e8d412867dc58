package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/contact-bot/internal/addressbook"
	"github.com/username/contact-bot/internal/config"
	"github.com/username/contact-bot/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contact-bot",
		Short: "Local contact manager with birthday reminders",
		Long:  "Store contact names, phones and birthdays in a local address book and find out whom to congratulate in the upcoming week",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Daemon.LogFile != "" {
				logger, err = initFileLogger(cfg.Daemon.LogFile, cfg.Daemon.LogLevel)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(changeCmd())
	rootCmd.AddCommand(phoneCmd())
	rootCmd.AddCommand(allCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(removePhoneCmd())
	rootCmd.AddCommand(addBirthdayCmd())
	rootCmd.AddCommand(showBirthdayCmd())
	rootCmd.AddCommand(birthdaysCmd())
	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(remindCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore loads config and returns the store and config for commands
func openStore() (*storage.Store, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	return storage.NewStore(cfg.Storage.BookFile, logger), cfg, nil
}

// withBook loads the book, applies fn and saves the book back when fn
// succeeds. Failed operations leave the persisted state untouched.
func withBook(fn func(book *addressbook.AddressBook) error) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	book, err := store.Load()
	if err != nil {
		return err
	}

	if err := fn(book); err != nil {
		return err
	}

	return store.Save(book)
}

// userMessage maps domain error kinds to the messages shown to the user
func userMessage(err error) string {
	switch {
	case errors.Is(err, addressbook.ErrInvalidPhone):
		return "Phone number must be 10 digits."
	case errors.Is(err, addressbook.ErrInvalidBirthday):
		return "Invalid date format. Use DD.MM.YYYY"
	case errors.Is(err, addressbook.ErrPhoneNotFound):
		return "Phone not found."
	case errors.Is(err, addressbook.ErrContactNotFound):
		return "Contact not found."
	default:
		return err.Error()
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
