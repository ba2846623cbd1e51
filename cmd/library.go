package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gramophone/entity"
	"gramophone/store"
	"gramophone/util"
)

func init() {
	cmdRoot.AddCommand(cmdLibrary())
}

func cmdLibrary() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "library",
		Short:        "List and prune saved recordings",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				add      = util.ErrWrap("")(cmd.Flags().GetString("add"))
				title    = util.ErrWrap("")(cmd.Flags().GetString("title"))
				composer = util.ErrWrap("")(cmd.Flags().GetString("composer"))
				remove   = util.ErrWrap("")(cmd.Flags().GetString("remove"))
			)

			library, err := store.Open()
			if err != nil {
				return err
			}

			if add != "" {
				entry, err := library.Add(entity.Track{Title: title, Composer: composer, URL: add})
				if err != nil {
					return err
				}
				tui.Printf("saved %s", entry.String())
				return nil
			}

			if remove != "" {
				if err := library.Remove(remove); err != nil {
					return err
				}
				tui.Printf("removed %s", remove)
				return nil
			}

			entries, err := library.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				tui.Printf("library is empty")
				return nil
			}

			for index, entry := range entries {
				tui.Printf("%3d. %s", index+1, color.New(color.Bold).Sprint(entry.String()))
				tui.Printf("     %s", color.New(color.Faint).Sprint(entry.URL))
			}
			tui.Printf("%d tracks", len(entries))
			return nil
		},
	}
	cmd.Flags().String("add", "", "Save the recording at this URL")
	cmd.Flags().String("title", "", "Title for --add")
	cmd.Flags().StringP("composer", "c", "", "Composer for --add")
	cmd.Flags().String("remove", "", "Remove the entry with this URL")
	return cmd
}
