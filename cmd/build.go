package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pressroom/internal/site"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the static HTML site",
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
		fmt.Printf("✓ Site built: %d article(s) in %s\n", store.Len(), outDir)
		return nil
	},
}

func resolvedSiteParams() (outDir, title, baseURL string) {
	outDir, title = "public", "Pressroom"
	if cfg != nil {
		if cfg.OutputDir != "" {
			outDir = cfg.OutputDir
		}
		if cfg.SiteTitle != "" {
			title = cfg.SiteTitle
		}
		baseURL = cfg.BaseURL
	}
	if buildOut != "" {
		outDir = buildOut
	}
	return outDir, title, baseURL
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (overrides config)")
}
