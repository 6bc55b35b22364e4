package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "pressroom/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Pressroom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("content_dir: %s\n", cfg.ContentDir)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("site_title: %s\n", cfg.SiteTitle)
		if cfg.BaseURL != "" {
			fmt.Printf("base_url: %s\n", cfg.BaseURL)
		}
		fmt.Printf("listen_addr: %s\n", cfg.ListenAddr)
		fmt.Printf("term_style: %s\n", cfg.TermStyle)
		fmt.Printf("term_width: %d\n", cfg.TermWidth)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "content_dir":
			cfg.ContentDir = val
		case "output_dir":
			cfg.OutputDir = val
		case "site_title":
			cfg.SiteTitle = val
		case "base_url":
			cfg.BaseURL = val
		case "listen_addr":
			cfg.ListenAddr = val
		case "term_style":
			cfg.TermStyle = val
		case "term_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for term_width: %v", val)
			}
			cfg.TermWidth = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
