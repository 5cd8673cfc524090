package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/streamfmt/streamfmt/constant"
	"github.com/streamfmt/streamfmt/key"
	"github.com/streamfmt/streamfmt/provider"
	"github.com/streamfmt/streamfmt/stream"
	"github.com/streamfmt/streamfmt/units"
)

func init() {
	rootCmd.AddCommand(composeCmd)
	composeFlags(composeCmd.Flags())

	lo.Must0(composeCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.All(), func(p *provider.Provider, _ int) string { return p.ID }), cobra.ShellCompDirectiveNoFileComp
	}))
}

func composeFlags(f *pflag.FlagSet) {
	f.String("addon", constant.Streamfmt, "Name of the addon that found the stream")
	f.Bool("personal", false, "Mark the stream as coming from your own library")
	f.String("provider", "", "Provider id, e.g. realdebrid")
	f.Bool("cached", false, "Provider cache status; unknown when not set")
	f.String("info-hash", "", "Torrent info hash; marks the stream as peer-to-peer")
	f.Int("seeders", 0, "Torrent seeders; absent when not set")
	f.String("age", "", "Usenet post age, e.g. 12d")
	f.String("resolution", stream.Unknown, "Resolution, e.g. 2160p")
	f.String("filename", "", "File name scanned for edition markers")
	f.String("folder", "", "Folder name scanned for edition markers")
	f.String("quality", stream.Unknown, "Source quality, e.g. BluRay")
	f.String("encode", stream.Unknown, "Video encode, e.g. x265")
	f.StringSlice("visual", []string{}, "Visual tags, e.g. HDR,DV")
	f.StringSlice("audio", []string{}, "Audio tags, e.g. Atmos")
	f.String("size", "", "Size, e.g. 1.2GB or 700MiB")
	f.String("duration", "", "Duration, e.g. 1h32m or 5520")
	f.StringSlice("languages", []string{}, "Languages ordered by significance")
	f.String("message", "", "Free-text note shown last")
	f.BoolP("json", "j", false, "Format the command output as a JSON object")
	f.Bool("show-input", false, "Print the composed candidate instead of rendering it")
}

// composeCmd builds a single candidate from flags and renders it.
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a stream candidate from flags and render it",
	Example: `  streamfmt compose --provider realdebrid --cached --resolution 2160p --size 15GB --languages English,French
  streamfmt compose -m --info-hash abc --seeders 12 --duration 1h32m`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		candidate, err := composeCandidate(cmd.Flags())
		handleErr(err)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetEscapeHTML(false)

		if lo.Must(cmd.Flags().GetBool("show-input")) {
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(candidate))
			return
		}

		result := newRenderer().Render(candidate, viper.GetBool(key.RenderMinimalistic))

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encoder.Encode(result))
			return
		}

		fmt.Println(result)
	},
}

// composeCandidate builds a candidate from the compose flags. Optional fields are
// set only when their flag was given.
func composeCandidate(f *pflag.FlagSet) (*stream.Candidate, error) {
	str := func(name string) string { return lo.Must(f.GetString(name)) }
	strs := func(name string) []string { return lo.Must(f.GetStringSlice(name)) }

	c := &stream.Candidate{
		AddonName:  str("addon"),
		Personal:   lo.Must(f.GetBool("personal")),
		Resolution: str("resolution"),
		Quality:    str("quality"),
		Encode:     str("encode"),
		VisualTags: strs("visual"),
		AudioTags:  strs("audio"),
		Languages:  strs("languages"),
	}

	if id := str("provider"); id != "" {
		c.Provider = &stream.Provider{ID: id}
		if f.Changed("cached") {
			c.Provider.Cached = lo.ToPtr(lo.Must(f.GetBool("cached")))
		}
	} else if f.Changed("cached") {
		return nil, fmt.Errorf("--cached requires --provider")
	}

	if hash := str("info-hash"); hash != "" || f.Changed("seeders") {
		c.Torrent = &stream.Torrent{InfoHash: hash}
		if f.Changed("seeders") {
			c.Torrent.Seeders = lo.ToPtr(lo.Must(f.GetInt("seeders")))
		}
	}

	if age := str("age"); age != "" {
		c.Usenet = &stream.Usenet{Age: age}
	}

	if name := str("filename"); name != "" {
		c.Filename = lo.ToPtr(name)
	}
	if folder := str("folder"); folder != "" {
		c.FolderName = lo.ToPtr(folder)
	}

	if size := str("size"); size != "" {
		bytes, err := units.ParseSize(size)
		if err != nil {
			return nil, err
		}
		c.Size = lo.ToPtr(bytes)
	}

	if duration := str("duration"); duration != "" {
		seconds, err := units.ParseDuration(duration)
		if err != nil {
			return nil, err
		}
		c.Duration = lo.ToPtr(seconds)
	}

	if f.Changed("message") {
		c.Message = lo.ToPtr(str("message"))
	}

	return c, nil
}
