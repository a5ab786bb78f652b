package cmd

import (
	"path/filepath"

	"github.com/PolarWolf314/manuka/internal/audit"
	kerrors "github.com/PolarWolf314/manuka/internal/errors"
	"github.com/PolarWolf314/manuka/internal/secrets"
	"github.com/PolarWolf314/manuka/internal/store"
	"github.com/PolarWolf314/manuka/internal/ui"

	"github.com/spf13/cobra"
)

var (
	fromValue    bool
	generate     bool
	secretLength int
)

func init() {
	InitCmd.Flags().BoolVar(&fromValue, "value", false, "read the secret value interactively")
	InitCmd.Flags().BoolVar(&generate, "generate", false, "generate a random value")
	InitCmd.Flags().IntVar(&secretLength, "length", secrets.DefaultLength, "length in bytes for generated secrets")
	InitCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	InitCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	fromValue = false
	generate = false
	secretLength = secrets.DefaultLength
}

// InitCmd initializes a single secret: exactly one value, from exactly one
// source, appended to exactly one key file.
var InitCmd = &cobra.Command{
	Use:    "init [key]",
	Short:  "Initializes a secret in the local environment store",
	Long:   `Appends a secret value to .env/<key>.txt, creating the store and the file as needed. The value is entered interactively with --value, or generated from a secure random source with --generate.`,
	Args:   cobra.MaximumNArgs(1),
	PreRun: setupLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initializing secret...", verbose)
		defer cleanup()

		key := ""
		if len(args) > 0 {
			key = args[0]
		}

		if key == "" {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Error: Key name is required. Use --help for usage information."
			return kerrors.ErrMissingKey
		}
		if fromValue && generate {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Error: Cannot specify both --value and --generate"
			return kerrors.ErrConflictingSource
		}
		if !fromValue && !generate {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Error: Must specify secret source using --value or --generate"
			return kerrors.ErrNoSource
		}
		if generate && secretLength <= 0 {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Error: " + ui.Flag.Sprint("--length") + " must be a positive number of bytes"
			return kerrors.ErrInvalidLength
		}

		Logger.Debugf("Ensuring store directory exists")
		storePath, err := store.EnsureStore()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to create secret store: %v", err)
		}
		Logger.Debugf("Store path: %s", storePath)

		var value string
		source := "generate"
		if fromValue {
			source = "value"

			// The prompt needs the terminal to itself.
			if !verbose && !debug {
				spinner.Stop()
			}
			value, err = secrets.ReadSecretValue("Secret Value: ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to read secret value: %v", err)
			}
			if !verbose && !debug {
				spinner.Restart()
			}
		} else {
			Logger.Debugf("Generating random secret of %d bytes", secretLength)
			value, err = secrets.GenerateRandomSecret(secretLength)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to generate random secret: %v", err)
			}
		}

		if err := store.AppendSecret(storePath, key, value); err != nil {
			return Logger.ErrorfAndReturn("Failed to write secret: %v", err)
		}
		Logger.Infof("Secret appended for key: %s", key)

		entry := audit.Entry{
			Operation: "init",
			Key:       key,
			Source:    source,
		}
		if generate {
			entry.Length = secretLength
		}
		audit.Log(storePath, entry)

		Logger.WarnfUser("Remember: Never commit the %s directory to version control", store.DirName)

		displayPath := filepath.Join(store.DirName, key+".txt")
		finalMessage := ""
		if generate {
			// The value cannot be re-derived later, so echo it once.
			finalMessage = "Generated random secret: " + value + "\n"
		}
		finalMessage += ui.Success.Sprint("✓") + " Secret " + ui.Highlight.Sprint(key) + " written to " + ui.Path.Sprint(displayPath)

		spinner.FinalMSG = finalMessage
		return nil
	},
}
