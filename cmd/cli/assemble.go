package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contextpack/contextpack/internal/di"
	"github.com/contextpack/contextpack/pkg/assembly"
	"github.com/contextpack/contextpack/pkg/config"
	"github.com/contextpack/contextpack/pkg/docs"
	"github.com/contextpack/contextpack/pkg/logging"
)

// newAssembleCommand builds the assemble subcommand: load a corpus, pack it
// under the token budget, print the context to stdout.
func newAssembleCommand() *cobra.Command {
	var (
		docsPath  string
		query     string
		strategy  string
		maxTokens int
		overhead  int
		noTitles  bool
		separator string
	)

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble a context string from a document corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			opts := optionsFromSettings(settings)

			// Flags override file settings.
			if cmd.Flags().Changed("strategy") {
				opts.Strategy = strategy
			}
			if cmd.Flags().Changed("max-tokens") {
				opts.MaxTokens = maxTokens
			}
			if cmd.Flags().Changed("overhead") {
				opts.Overhead = overhead
			}
			if cmd.Flags().Changed("no-titles") {
				opts.IncludeTitles = !noTitles
			}
			if cmd.Flags().Changed("separator") {
				opts.Separator = separator
			}

			documents, err := docs.LoadDocuments(docsPath)
			if err != nil {
				return err
			}
			if report := docs.Validate(documents); !report.Valid() {
				return fmt.Errorf("invalid corpus: %s", report.Errors[0])
			}

			assembler, err := di.ProvideAssembler()
			if err != nil {
				return err
			}

			result, err := assembler.Assemble(cmd.Context(), documents, query, opts)
			if err != nil {
				return err
			}

			logger := logging.GetGlobalLogger()
			logger.Info("context assembled",
				"strategy", result.Strategy,
				"documents", len(result.Documents),
				"candidates", len(documents),
				"tokens_used", result.TokensUsed,
				"remaining", result.Remaining,
				"coverage", fmt.Sprintf("%.1f%%", 100*docs.Coverage(result.Documents, documents)),
			)

			fmt.Fprintln(cmd.OutOrStdout(), result.Context)
			return nil
		},
	}

	cmd.Flags().StringVar(&docsPath, "docs", "", "path to the document corpus (JSON)")
	cmd.Flags().StringVar(&query, "query", "", "query used to rank documents by relevance")
	cmd.Flags().StringVar(&strategy, "strategy", "naive", "placement strategy (naive, primacy, recency, sandwich)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 4000, "context window ceiling in tokens")
	cmd.Flags().IntVar(&overhead, "overhead", 50, "tokens reserved for the query and instructions")
	cmd.Flags().BoolVar(&noTitles, "no-titles", false, "render documents without title headers")
	cmd.Flags().StringVar(&separator, "separator", assembly.DefaultSeparator, "separator between documents")
	_ = cmd.MarkFlagRequired("docs")

	return cmd
}
