package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/bot"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/chatbot"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/config"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/database"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/httpapi"
	"github.com/Ora43ggrr/Cybersecurity-GUI-POE-Part-3/tui"
)

// localUser is the store key of the terminal and HTTP front-ends.
const localUser int64 = 0

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cyberbot",
	Short: "Cybersecurity awareness chatbot",
	Long: `cyberbot answers questions about passwords, phishing, privacy and safe
browsing, keeps a list of security tasks and runs a short quiz.

Run without arguments to start the terminal chat.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// The terminal chat owns stdout.
		if cmd.Name() == "chat" || cmd == cmd.Root() {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		if verbose || cfg.Debug {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
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
	RunE: runChat,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat in the terminal",
	RunE:  runChat,
}

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Run the Telegram bot (needs BOT_TOKEN)",
	RunE:  runTelegram,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "cyberbot.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(chatCmd, telegramCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openEngine() (*database.DB, *chatbot.Engine, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	e, err := chatbot.New(db.ForUser(localUser),
		chatbot.WithLogger(logger),
		chatbot.WithActivityLimit(cfg.ActivityLimit),
	)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, e, nil
}

func runChat(cmd *cobra.Command, args []string) error {
	db, e, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	return tui.Run(e, cfg.UserName)
}

func runTelegram(cmd *cobra.Command, args []string) error {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	b, err := bot.New(cfg, db, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return b.Start(ctx)
}

func runServe(cmd *cobra.Command, args []string) error {
	db, e, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httpapi.NewHandler(e, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
