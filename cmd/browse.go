package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gramophone/classical"
	"gramophone/config"
	"gramophone/entity"
	"gramophone/provider"
	"gramophone/ratelimit"
	"gramophone/util"
)

func init() {
	cmdRoot.AddCommand(cmdBrowse())
}

func cmdBrowse() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "browse",
		Short:        "Browse curated collections instead of free-text search",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				category = util.ErrWrap("")(cmd.Flags().GetString("category"))
				item     = util.ErrWrap("")(cmd.Flags().GetString("item"))
			)

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			limiter := ratelimit.NewBucket(30, 5)

			var candidates []entity.Candidate
			switch {
			case category != "":
				commons := provider.NewCommons(cfg.Timeout(), limiter, cfg.CommonsLimit)
				candidates = commons.Category(cmd.Context(), category)
			case item != "":
				archive := provider.NewArchive(cfg.Timeout(), limiter, cfg.ArchiveLimit)
				candidates = archive.Files(cmd.Context(), item)
			default:
				for _, profile := range classical.Profiles {
					tui.Printf("%s", color.New(color.Bold).Sprint(profile.Composer))
					for _, seed := range profile.SeedQueries {
						tui.Printf("    %s", seed)
					}
				}
				return nil
			}

			shown := 0
			for _, candidate := range candidates {
				track, ok := classical.Sanitize(candidate, classical.Options{})
				if !ok {
					continue
				}
				shown++
				tui.Printf("%2d. %s", shown, color.New(color.Bold).Sprint(track.String()))
				tui.Printf("    %s", color.New(color.Faint).Sprint(track.URL))
			}
			if shown == 0 {
				tui.Printf("nothing playable found")
			}
			return nil
		},
	}
	cmd.Flags().String("category", "", "Wikimedia Commons category to list")
	cmd.Flags().String("item", "", "Internet Archive item whose files to list")
	return cmd
}
