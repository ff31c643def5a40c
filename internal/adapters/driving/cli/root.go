// Package cli provides the cobra command tree for the Lexis CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexislabs/lexis-cli/internal/core/ports/driving"
	"github.com/lexislabs/lexis-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Driving services injected at startup. Commands check for nil and
// report a configuration error rather than panicking.
var (
	institutionService driving.InstitutionService
	corpusService      driving.CorpusService
	documentService    driving.DocumentQAService
	settingsService    driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "lexis",
	Short: "Institution lookup and document question answering",
	Long: `Lexis answers factual questions from three sources: scraped and
curated institution records, a built-in legal-code corpus, and documents
you upload yourself.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// Services aggregates the driving ports the command tree depends on.
type Services struct {
	Institution driving.InstitutionService
	Corpus      driving.CorpusService
	Document    driving.DocumentQAService
	Settings    driving.SettingsService
}

// SetServices injects the driving services. Must be called before Execute.
func SetServices(s Services) {
	institutionService = s.Institution
	corpusService = s.Corpus
	documentService = s.Document
	settingsService = s.Settings
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
