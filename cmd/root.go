package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pressroom/internal/article"
	cfgpkg "pressroom/internal/config"
	"pressroom/internal/loader"
)

var (
	// Global flags
	cfgFile    string
	contentDir string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "pressroom",
	Short: "Pressroom: publish a folder of markdown articles",
	Long:  `Pressroom loads markdown articles with a YAML metadata header from a content directory and presents them as a static HTML site, in the terminal, or over a small read-only JSON API.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.pressroom/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&contentDir, "content", "C", "", "content directory (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to flag values and defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	if f := rootCmd.PersistentFlags(); f.Changed("content") && contentDir != "" {
		cfg.ContentDir = contentDir
	}
}

func resolvedContentDir() string {
	if cfg != nil && cfg.ContentDir != "" {
		return cfg.ContentDir
	}
	if contentDir != "" {
		return contentDir
	}
	return "content"
}

// loadStore reads the content directory and builds the article store.
func loadStore() (*article.Store, error) {
	dir := resolvedContentDir()
	sources, err := loader.NewOS(dir).Sources()
	if err != nil {
		return nil, err
	}
	store, err := article.Load(sources)
	if err != nil {
		return nil, err
	}
	return store, nil
}
