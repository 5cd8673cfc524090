package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamfmt/streamfmt/color"
	"github.com/streamfmt/streamfmt/provider"
	"github.com/streamfmt/streamfmt/style"
	"github.com/streamfmt/streamfmt/where"
)

func init() {
	rootCmd.AddCommand(providersCmd)
}

// providersCmd provides a parent command for the provider directory.
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Inspect built-in and custom provider short names",
}

func init() {
	providersCmd.AddCommand(providersListCmd)

	providersListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	providersListCmd.Flags().BoolP("custom", "c", false, "Display only providers from the providers file")
	providersListCmd.Flags().BoolP("builtin", "b", false, "Display only built-in providers")

	providersListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	providersListCmd.SetOut(os.Stdout)
}

// providersListCmd displays every provider with its short name.
var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all known providers",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printProviders := func(providers []*provider.Provider) {
			for _, p := range providers {
				if printHeader {
					cmd.Printf("%s %s\n", style.Fg(color.Purple)(p.ID), style.Faint(p.ShortName))
				} else {
					cmd.Printf("%s\t%s\n", p.ID, p.ShortName)
				}
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			printProviders(provider.Builtins())
		}

		printCustom := func() {
			h("Custom:")
			customs, err := provider.CustomProviders()
			handleErr(err)
			printProviders(customs)
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	providersCmd.AddCommand(providersShowCmd)
	providersShowCmd.SetOut(os.Stdout)
}

// providersShowCmd displays a single provider.
var providersShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Display a provider and the short name it renders as",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return provider.Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		p, ok := provider.Get(id)
		if !ok {
			handleErr(errUnknownProvider(id))
		}

		origin := "built-in"
		if p.IsCustom {
			origin = "custom, " + where.Providers()
		}

		label := style.Fg(color.Blue)
		cmd.Printf("%s %s\n", label("ID:   "), style.Fg(color.Purple)(p.ID))
		cmd.Printf("%s %s\n", label("Name: "), p.Name)
		cmd.Printf("%s %s\n", label("Short:"), style.Fg(color.Yellow)(p.ShortName))
		cmd.Printf("%s %s\n", label("From: "), style.Faint(origin))
	},
}

func errUnknownProvider(id string) error {
	suggestions := provider.Suggest(id)
	if len(suggestions) == 0 {
		return fmt.Errorf("unknown provider %s", style.Fg(color.Red)(id))
	}

	return fmt.Errorf(
		"unknown provider %s, did you mean %s?",
		style.Fg(color.Red)(id),
		style.Fg(color.Yellow)(strings.Join(lo.Subset(suggestions, 0, 3), ", ")),
	)
}
