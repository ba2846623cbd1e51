package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gramophone/classical"
	"gramophone/util"
)

func init() {
	cmdRoot.AddCommand(cmdQueries())
}

// queries exposes the expansion step on its own, which makes relevance
// surprises debuggable without hitting any catalog.
func cmdQueries() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "queries [request]",
		Short:        "Show the candidate queries a request expands into",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				composer = util.ErrWrap("")(cmd.Flags().GetString("composer"))
				request  = strings.Join(args, " ")
			)

			expansion := classical.Expand("", composer, request)
			if expansion.Composer != "" {
				tui.Printf("composer: %s", color.CyanString(expansion.Composer))
			}
			if opus, number := classical.ExtractOpusNumber(request); opus != "" {
				if number != "" {
					tui.Printf("catalog: Op. %s No. %s", opus, number)
				} else {
					tui.Printf("catalog: Op. %s", opus)
				}
			}
			for index, candidate := range expansion.Candidates {
				tui.Printf("%2d. %s", index+1, candidate)
			}
			return nil
		},
	}
	cmd.Flags().StringP("composer", "c", "", "Composer hint")
	return cmd
}
