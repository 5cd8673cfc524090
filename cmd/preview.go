package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamfmt/streamfmt/filesystem"
	"github.com/streamfmt/streamfmt/inline"
	"github.com/streamfmt/streamfmt/key"
	"github.com/streamfmt/streamfmt/tui"
	"github.com/streamfmt/streamfmt/util"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

// previewCmd opens the interactive preview for candidates read from a file.
var previewCmd = &cobra.Command{
	Use:   "preview [file|-]",
	Short: "Browse rendered stream candidates interactively",
	Long: `Browse rendered stream candidates in a list.
Press m to switch between full and minimalistic rendering.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := filesystem.Stdio
		if len(args) == 1 {
			input = args[0]
		}

		in, err := filesystem.OpenInput(input)
		handleErr(err)
		defer util.Ignore(in.Close)

		candidates, err := inline.Decode(in)
		handleErr(err)

		options := &tui.Options{
			Candidates:   candidates,
			Renderer:     newRenderer(),
			Minimalistic: viper.GetBool(key.RenderMinimalistic),
		}

		handleErr(tui.Run(options))
	},
}
