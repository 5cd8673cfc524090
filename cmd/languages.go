package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamfmt/streamfmt/color"
	"github.com/streamfmt/streamfmt/language"
	"github.com/streamfmt/streamfmt/style"
	"github.com/streamfmt/streamfmt/util"
)

func init() {
	rootCmd.AddCommand(languagesCmd)
	languagesCmd.Flags().BoolP("raw", "r", false, "Print tab-separated name and emoji without styling")
	languagesCmd.SetOut(os.Stdout)
}

// languagesCmd lists the language names with an emoji used in minimalistic mode.
var languagesCmd = &cobra.Command{
	Use:   "languages [name...]",
	Short: "Display the emoji each language renders as in minimalistic mode",
	Run: func(cmd *cobra.Command, args []string) {
		names := args
		if len(names) == 0 {
			names = language.Known()
		}

		raw := lo.Must(cmd.Flags().GetBool("raw"))
		for _, name := range names {
			emoji, ok := language.Emoji(name).Get()

			switch {
			case raw:
				cmd.Printf("%s\t%s\n", name, emoji)
			case ok:
				cmd.Printf("%s %s\n", emoji, util.Capitalize(name))
			default:
				cmd.Printf("%s %s\n", style.Fg(color.Red)("?"), style.Faint(name))
			}
		}
	},
}
