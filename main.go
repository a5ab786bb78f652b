package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/manuka/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "manuka",
	Short: "Mānuka - A CLI for initializing environment secrets.",
	Long: `Mānuka is a command-line tool for initializing locally-stored secrets
for an application's runtime environment.

Each secret lives in its own file inside a local .env/ store. Values are
either entered interactively (without echoing) or generated from a
cryptographically secure random source.

Usage:
  manuka <command> [flags]

Available Commands:
  init       Initialize a secret in the local store
  list       List the secret keys currently stored

Run 'manuka help <command>' for more details on a specific command.
`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		myFigure := figure.NewColorFigure("Manuka", "alligator2", "green", true)
		myFigure.Print()
		fmt.Println()
		fmt.Printf("%s Run %s to see available commands\n", color.CyanString("→"), color.YellowString("manuka --help"))
	},
}

func main() {
	rootCmd.AddCommand(cmd.InitCmd)
	rootCmd.AddCommand(cmd.ListCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
