// Package logger provides structured logging for Mānuka CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors from the
// ui package.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()            // Shown with --verbose or --debug
//	Logger.Debugf()           // Shown only with --debug
//	Logger.Warnf()            // Always shown, debug-style prefix
//	Logger.WarnfUser()        // User-facing warnings (not debug info)
//	Logger.Errorf()           // Always shown
//	Logger.ErrorfAndReturn()  // Logs the error, then returns it
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Appending secret for key %s", key)
//
// Commands typically create a logger in their PreRun and use it throughout
// their RunE body.
package logger
