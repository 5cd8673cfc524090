// Package cmd implements the command-line interface for streamfmt.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamfmt/streamfmt/color"
	"github.com/streamfmt/streamfmt/constant"
	"github.com/streamfmt/streamfmt/icon"
	"github.com/streamfmt/streamfmt/key"
	"github.com/streamfmt/streamfmt/log"
	"github.com/streamfmt/streamfmt/provider"
	"github.com/streamfmt/streamfmt/render"
	"github.com/streamfmt/streamfmt/style"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the glyph variant (emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("minimalistic", "m", false, "Render compact descriptions")
	lo.Must0(viper.BindPFlag(key.RenderMinimalistic, rootCmd.PersistentFlags().Lookup("minimalistic")))
}

// rootCmd defines the entry point for the streamfmt application.
var rootCmd = &cobra.Command{
	Use:   constant.Streamfmt,
	Short: "Render stream candidates into compact list titles and descriptions",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Render stream candidates into compact list titles and descriptions"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		_ = cmd.Help()
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newRenderer builds a renderer from the configured provider directory and glyph variant.
func newRenderer() *render.Renderer {
	directory := provider.Default()
	log.Debugf("provider directory holds %d entries", directory.Len())

	return render.New(
		render.WithDirectory(directory),
		render.WithIcons(icon.SetOf(viper.GetString(key.IconsVariant))),
	)
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
