package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamfmt/streamfmt/filesystem"
	"github.com/streamfmt/streamfmt/inline"
	"github.com/streamfmt/streamfmt/key"
	"github.com/streamfmt/streamfmt/stream"
	"github.com/streamfmt/streamfmt/util"
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	renderCmd.Flags().StringP("pick", "p", "", "Render a single candidate: first, last or an index")
	renderCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	renderCmd.Flags().IntP("wrap", "w", 0, "Wrap text output at this width")
	lo.Must0(viper.BindPFlag(key.RenderWrap, renderCmd.Flags().Lookup("wrap")))

	lo.Must0(renderCmd.RegisterFlagCompletionFunc("pick", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"first", "last"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// renderCmd renders candidates read from a file or standard input.
var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render stream candidates from a file or standard input",
	Long: `Render stream candidates read as a JSON object, a JSON array or newline-delimited JSON.

Pickers:
  first - first candidate
  last - last candidate
  [number] - candidate by index (starting from 0)

Without a file argument, or with "-", candidates are read from standard input.`,
	Example: `  streamfmt render streams.json
  cat streams.ndjson | streamfmt render -m --json
  streamfmt render streams.json --pick 0 --wrap 60`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := filesystem.Stdio
		if len(args) == 1 {
			input = args[0]
		}

		in, err := filesystem.OpenInput(input)
		handleErr(err)
		defer util.Ignore(in.Close)

		out, err := filesystem.CreateOutput(lo.Must(cmd.Flags().GetString("output")))
		handleErr(err)
		defer util.Ignore(out.Close)

		picker := mo.None[inline.CandidatePicker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParsePicker(pick)
			handleErr(err)
			picker = mo.Some(fn)
		}

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		if !cmd.Flags().Changed("json") {
			asJson = viper.GetString(key.RenderFormat) == "json"
		}

		options := &inline.Options{
			In:           in,
			Out:          out,
			Renderer:     newRenderer(),
			Minimalistic: viper.GetBool(key.RenderMinimalistic),
			Json:         asJson,
			Wrap:         viper.GetInt(key.RenderWrap),
			Picker:       picker,
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	renderCmd.AddCommand(renderSchemaCmd)
	renderSchemaCmd.Flags().BoolP("result", "r", false, "Generate the schema of the JSON output instead of the input")
}

// renderSchemaCmd generates JSON schemas for the render input and output.
var renderSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for render input and output",
	Run: func(cmd *cobra.Command, args []string) {
		schema := candidateSchema(lo.Must(cmd.Flags().GetBool("result")))
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}

func candidateSchema(result bool) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "provider", "output", "result":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	if result {
		return reflector.Reflect(&inline.Output{})
	}
	return reflector.Reflect(&stream.Candidate{})
}
