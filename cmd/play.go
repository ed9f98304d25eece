package cmd

import (
	"fmt"

	"github.com/anisan-cli/streamkit/history"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/player"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().IntP("episode", "e", 1, "Number of the episode to play")
	playCmd.Flags().StringP("player", "P", "", "Player to use instead of the configured one")
	lo.Must0(viper.BindPFlag(key.Player, playCmd.Flags().Lookup("player")))
}

var playCmd = &cobra.Command{
	Use:   "play [url]",
	Short: "Play an episode of a title with the best available link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		warnMissingPlayer()

		src, err := defaultSource()
		handleErr(err)

		detail, err := src.Load(cmd.Context(), args[0])
		handleErr(err)

		number := lo.Must(cmd.Flags().GetInt("episode"))
		episode, ok := lo.Find(detail.Episodes, func(e *source.Episode) bool {
			return int(e.Index) == number
		})
		if !ok {
			handleErr(fmt.Errorf("%s has no episode %d", detail.Name, number))
		}

		links, err := source.CollectLinks(cmd.Context(), src, episode.Data, false)
		handleErr(err)

		best := source.BestLink(links.Links)
		if best == nil {
			handleErr(fmt.Errorf("no links found for %s", episode))
		}

		title := fmt.Sprintf("%s - %s", detail.Name, episode)
		cmd.Printf("%s Playing %s %s\n", icon.Get(icon.Play), style.Bold(title), style.Faint(best.Quality.String()))
		handleErr(player.Play(cmd.Context(), player.FromLink(best, title, links.Subtitles)))

		if viper.GetBool(key.HistorySaveOnPlay) {
			if err := history.Save(detail, episode); err != nil {
				log.Warnf("failed to save history: %s", err)
			}
		}
	},
}
