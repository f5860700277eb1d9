package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/axes/internal/config"
	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/server"
	"github.com/ziadkadry99/axes/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page with the live shell and JSON API",
	Long: `Starts the HTTP server: the page at /, prerendered category pages, the
JSON API under /api and the websocket shell at /ws.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		static, _ := cmd.Flags().GetBool("static")

		source, closeSource, err := openSource(cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		return runServer(cfg, withPageDefaults{Source: source, cfg: cfg}, static)
	},
}

// runServer starts the HTTP server and blocks until it is interrupted.
func runServer(cfg *config.Config, source content.Source, static bool) error {
	// Fail early on unreadable content rather than on the first request.
	page, err := source.Page(context.Background())
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	renderer, err := site.NewRenderer(rendererOptions(cfg))
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
		Static:   static,
	}, source, renderer)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "axes server %s starting on port %d\n", Version, cfg.Port)
	fmt.Fprintf(os.Stderr, "  Sections: %d\n", len(page.Sections))
	if cfg.Database != "" {
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.Database)
	}
	fmt.Fprintf(os.Stderr, "Open http://localhost:%d, press Ctrl+C to stop\n", cfg.Port)

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("static", false, "serve pages without the live websocket shell")
	rootCmd.AddCommand(serveCmd)
}
