package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/boxtools/internal/box"
)

func newStylesCmd(stdout io.Writer) *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available border styles",
		Long: `Print every border style, each drawn around its own name.

With --names, print only the style names, one per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, style := range box.Styles() {
				if namesOnly {
					if _, err := fmt.Fprintln(stdout, style); err != nil {
						return err
					}
					continue
				}

				sample, err := box.Render(box.Document{style.String()}, box.Options{Style: style, Padding: 1})
				if err != nil {
					return err
				}
				if _, err := io.WriteString(stdout, sample); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print style names only")

	return cmd
}
