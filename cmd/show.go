package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pressroom/internal/render"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render one article to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		a, err := store.Get(args[0])
		if err != nil {
			return err
		}

		var r render.Renderer
		if showFormat == "term" {
			style, width := "auto", 80
			if cfg != nil {
				style, width = cfg.TermStyle, cfg.TermWidth
			}
			r, err = render.NewTerm(style, width)
		} else {
			r, err = render.For(showFormat)
		}
		if err != nil {
			return err
		}
		out, err := r.Render(a)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "term", "output format: term, html, or text")
}
