package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gramophone/agent"
	"gramophone/aggregator"
	"gramophone/config"
	"gramophone/provider"
	"gramophone/ratelimit"
	"gramophone/store"
	"gramophone/util"
)

func init() {
	cmdRoot.AddCommand(cmdAsk())
}

func cmdAsk() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ask [request]",
		Short:        "Describe a piece and fetch matching free recordings",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				composer = util.ErrWrap("")(cmd.Flags().GetString("composer"))
				save     = util.ErrWrap(false)(cmd.Flags().GetBool("save"))
			)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			request := strings.Join(args, " ")
			if composer != "" {
				request += " " + composer
			}

			limiter := ratelimit.NewBucket(30, 5)
			rounds := aggregator.New(
				agent.New(cfg.GroqAPIKey),
				[]provider.Provider{
					provider.NewCommons(cfg.Timeout(), limiter, cfg.CommonsLimit),
					provider.NewArchive(cfg.Timeout(), limiter, cfg.ArchiveLimit),
				},
				aggregator.Options{
					PoolBudget:        cfg.PoolBudget,
					AcceptLimit:       cfg.AcceptLimit,
					ComposerThreshold: cfg.ScoreThreshold,
					OpenThreshold:     cfg.FallbackThreshold,
					Status: func(format string, arguments ...interface{}) {
						tui.Lot("search").Printf(format, arguments...)
					},
				},
			)

			result, err := rounds.Ask(cmd.Context(), []agent.Message{{Role: "user", Content: request}})
			tui.Lot("search").Wipe()
			if err != nil {
				return err
			}

			switch result.Outcome {
			case aggregator.OutcomeNonClassical, aggregator.OutcomeNotFound:
				tui.Printf("%s", result.Reply)
				if result.Suggestion != "" {
					tui.Printf("did you mean %s?", color.CyanString(result.Suggestion))
				}
				return nil
			}

			tui.Printf("%s", result.Reply)
			for index, track := range result.Tracks {
				tui.Printf("%2d. %s", index+1, color.New(color.Bold).Sprint(track.String()))
				tui.Printf("    %s", color.New(color.Faint).Sprint(track.URL))
				if track.License != "" {
					tui.Printf("    %s", color.New(color.Faint).Sprint(track.License))
				}
			}

			if !save {
				return nil
			}

			library, err := store.Open()
			if err != nil {
				return err
			}

			saved := 0
			for _, track := range result.Tracks {
				if _, err := library.Add(track); err == nil {
					saved++
				}
			}
			tui.Printf("saved %d of %d tracks", saved, len(result.Tracks))
			return nil
		},
	}
	cmd.Flags().StringP("composer", "c", "", "Composer hint appended to the request")
	cmd.Flags().BoolP("save", "s", false, "Save accepted tracks to the library")
	return cmd
}
