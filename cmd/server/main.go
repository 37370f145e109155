package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stockfolio/email-service/internal/config"
	"github.com/stockfolio/email-service/internal/email"
	"github.com/stockfolio/email-service/internal/handler"
	"github.com/stockfolio/email-service/internal/logger"
	"github.com/stockfolio/email-service/internal/middleware"
	"github.com/stockfolio/email-service/internal/router"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "email-service",
	Short: "StockFolio email relay service",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE:  runServe,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a single email from the command line",
	Long:  "Send one email through the configured SMTP relay. Useful as a deploy-time smoke test.",
	RunE:  runSend,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

var (
	sendTo      string
	sendSubject string
	sendHTML    string
	sendText    string
)

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "recipient address (required)")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "email subject (required)")
	sendCmd.Flags().StringVar(&sendHTML, "html", "", "HTML body")
	sendCmd.Flags().StringVar(&sendText, "text", "", "plain-text body")
	sendCmd.MarkFlagRequired("to")
	sendCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", version).Msg("starting email service")

	if !cfg.SMTP.Configured() {
		log.Warn().Msg("SMTP credentials are not configured, sends will fail")
	}

	// Initialize sender, handlers, middleware and router
	sender := email.NewSMTPSender(cfg.SMTP, log)
	h := handler.New(cfg, log, sender)
	mw := middleware.New(log, cfg)
	r := router.New(h, mw)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, "console")
	sender := email.NewSMTPSender(cfg.SMTP, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	msg := email.Message{
		To:       sendTo,
		Subject:  sendSubject,
		HTMLBody: sendHTML,
		TextBody: sendText,
	}
	if err := sender.Send(ctx, msg); err != nil {
		return err
	}

	fmt.Printf("sent to %s\n", sendTo)
	return nil
}
