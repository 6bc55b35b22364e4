package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pressroom/internal/utils"
)

var (
	newAuthor string
	newTags   []string
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Scaffold a new article file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(args[0])
		if title == "" {
			return fmt.Errorf("title is required")
		}
		if newAuthor == "" {
			return fmt.Errorf("--author is required")
		}
		dir := resolvedContentDir()
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("ensure content dir: %w", err)
		}

		slug := utils.Slugify(title)
		if slug == "" {
			slug = uuid.NewString()
		}
		path := filepath.Join(dir, slug+".md")
		// Refuse to overwrite an existing article.
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("article already exists at %s", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat article: %w", err)
		}

		var sb strings.Builder
		sb.WriteString("---\n")
		fmt.Fprintf(&sb, "id: %s\n", uuid.NewString())
		fmt.Fprintf(&sb, "title: %q\n", title)
		fmt.Fprintf(&sb, "author: %q\n", newAuthor)
		fmt.Fprintf(&sb, "date: %s\n", time.Now().Format("2006-01-02"))
		if len(newTags) > 0 {
			fmt.Fprintf(&sb, "tags: [%s]\n", strings.Join(newTags, ", "))
		}
		sb.WriteString("---\n\nWrite here.\n")

		if err := utils.SafeWriteFile(path, []byte(sb.String())); err != nil {
			return err
		}
		fmt.Printf("✓ Article scaffolded: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newAuthor, "author", "a", "", "article author")
	newCmd.Flags().StringSliceVarP(&newTags, "tag", "t", nil, "article tags (repeatable)")
}
