package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listTag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		found := false
		for a := range store.Articles() {
			if listTag != "" && !hasTag(a.Tags, listTag) {
				continue
			}
			found = true
			line := fmt.Sprintf("- %s  %s: %s (%s)", a.Published.Format("2006-01-02"), a.ID, a.Title, a.Author)
			if len(a.Tags) > 0 {
				line += "  [" + strings.Join(a.Tags, ", ") + "]"
			}
			fmt.Println(line)
		}
		if !found {
			fmt.Println("(no articles)")
		}
		return nil
	},
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "only list articles carrying this tag")
}
