package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pankajredekar/productapi/internal/api"
	"github.com/pankajredekar/productapi/internal/config"
	"github.com/pankajredekar/productapi/internal/logging"
	"github.com/pankajredekar/productapi/internal/product"
	"github.com/pankajredekar/productapi/internal/store"
	"github.com/pankajredekar/productapi/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveConfigPath string
	serveAddr       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Connects to the products database and serves the products API until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			utils.PrintError(cmd.ErrOrStderr(), "Failed to load config: %v", err)
			return err
		}
		if serveAddr != "" {
			cfg.ListenAddr = serveAddr
		}
		if err := cfg.Validate(); err != nil {
			utils.PrintError(cmd.ErrOrStderr(), "Invalid config: %v", err)
			return err
		}

		logger, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

// serve runs the API until ctx is cancelled
func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db := connectDB(cfg.DatabaseURL, cfg.MaxOpenConns, logger)
	defer func() {
		if err := store.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	svc := product.NewService(store.NewProductStore(db))
	router := api.NewRouter(api.NewHandler(svc, logger), logger)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting web server", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return cfg.ShutdownTimeout
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", config.DefaultPath, "path to the config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides listen_addr")
	rootCmd.AddCommand(serveCmd)
}
