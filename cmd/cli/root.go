package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/contextpack/contextpack/internal/di"
	"github.com/contextpack/contextpack/pkg/logging"
	"github.com/contextpack/contextpack/pkg/version"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	eventLoggingOnce sync.Once
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "contextpack",
	Short:   "Assemble LLM contexts from document corpora under a token budget",
	Long:    `contextpack packs documents into an LLM context window using relevance-aware placement strategies, and evaluates how each strategy affects answer quality.`,
	Version: version.GetVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet {
			logging.SetGlobalLogger(logging.NewQuietLogger())
		} else if verbose {
			logging.SetGlobalLogger(logging.NewVerboseLogger())
		} else {
			logging.SetGlobalLogger(logging.NewDefaultLogger())
		}

		eventLoggingOnce.Do(func() {
			subscribeEventLogging(di.ProvideSubscriber(), logging.GetGlobalLogger())
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")

	rootCmd.AddCommand(newAssembleCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newVersionCommand())
}

// Execute runs the CLI with all commands
func Execute() {
	rootCmd.SetVersionTemplate("contextpack version {{.Version}}\n")
	err := rootCmd.Execute()

	// Drain the bus before exiting so events from the run are delivered.
	di.ShutdownEventBus()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
