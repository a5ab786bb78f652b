package cmd

import (
	"fmt"

	"github.com/PolarWolf314/manuka/internal/store"
	"github.com/PolarWolf314/manuka/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	ListCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	ListCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

// ListCmd enumerates the keys present in the local store. It never creates
// the store: an absent directory just means no secrets exist yet.
var ListCmd = &cobra.Command{
	Use:    "list",
	Short:  "Lists the secret keys stored in the local environment store",
	PreRun: setupLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")
		spinner, cleanup := startSpinner("Listing secrets...", verbose)
		defer cleanup()

		storePath, err := store.Path()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to locate secret store: %v", err)
		}

		keys, err := store.ListKeys(storePath)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to list secrets: %v", err)
		}
		Logger.Debugf("Found %d keys in %s", len(keys), storePath)

		if len(keys) == 0 {
			spinner.FinalMSG = ui.Info.Sprint("→") + " No secrets have been initialized yet " + ui.Muted.Sprint("store is empty") + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("manuka init <key> --generate") + " to create one"
			return nil
		}

		finalMessage := ui.Success.Sprint("✓") + fmt.Sprintf(" %d secret(s) stored in ", len(keys)) + ui.Path.Sprint(store.DirName) + ":\n"
		for _, key := range keys {
			finalMessage += "    " + ui.Highlight.Sprint(key) + "\n"
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
