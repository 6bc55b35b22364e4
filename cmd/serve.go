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

	"pressroom/internal/server"
	"pressroom/internal/site"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and a read-only JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		outDir, title, baseURL := resolvedSiteParams()
		b, err := site.New(store, title, baseURL)
		if err != nil {
			return err
		}
		if err := b.Build(outDir); err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = ":8080"
			if cfg != nil && cfg.ListenAddr != "" {
				addr = cfg.ListenAddr
			}
		}
		srv := &http.Server{Addr: addr, Handler: server.New(store, outDir)}

		errc := make(chan error, 1)
		go func() {
			fmt.Printf("✓ Serving %d article(s) on %s\n", store.Len(), addr)
			errc <- srv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errc:
			return err
		case <-stop:
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}
