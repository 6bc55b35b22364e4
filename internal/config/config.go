package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	ContentDir string `mapstructure:"content_dir" yaml:"content_dir"`
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	SiteTitle  string `mapstructure:"site_title" yaml:"site_title"`
	BaseURL    string `mapstructure:"base_url" yaml:"base_url"`
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`
	TermStyle  string `mapstructure:"term_style" yaml:"term_style"`
	TermWidth  int    `mapstructure:"term_width" yaml:"term_width"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.pressroom/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".pressroom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("PRESSROOM")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("content_dir", "content")
	v.SetDefault("output_dir", "public")
	v.SetDefault("site_title", "Pressroom")
	v.SetDefault("base_url", "")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("term_style", "auto")
	v.SetDefault("term_width", 80)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".pressroom"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
