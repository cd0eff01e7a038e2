package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/contextpack/contextpack/internal/di"
	"github.com/contextpack/contextpack/pkg/config"
	"github.com/contextpack/contextpack/pkg/docs"
	"github.com/contextpack/contextpack/pkg/eval"
	"github.com/contextpack/contextpack/pkg/llm"
	"github.com/contextpack/contextpack/pkg/logging"
)

// newEvalCommand builds the eval subcommand: run one or more strategies
// over a question set and report scores.
func newEvalCommand() *cobra.Command {
	var (
		docsPath      string
		questionsPath string
		strategies    []string
		method        string
		maxTokens     int
		overhead      int
		outDir        string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate placement strategies against a question set",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			// Same precedence as assemble: settings file first, flags
			// override.
			base := optionsFromSettings(settings)
			if cmd.Flags().Changed("max-tokens") {
				base.MaxTokens = maxTokens
			}
			if cmd.Flags().Changed("overhead") {
				base.Overhead = overhead
			}

			documents, err := docs.LoadDocuments(docsPath)
			if err != nil {
				return err
			}
			questions, err := docs.LoadQuestions(questionsPath)
			if err != nil {
				return err
			}

			assembler, err := di.ProvideAssembler()
			if err != nil {
				return err
			}
			evaluator, err := di.ProvideEvaluator()
			if err != nil {
				return err
			}

			logger := logging.GetGlobalLogger()
			var runs []*eval.Run
			for _, strategy := range strategies {
				opts := base
				opts.Strategy = strategy

				run, err := evaluator.EvaluateStrategy(cmd.Context(), assembler, documents, questions, opts, llm.Options{}, eval.ScoreMethod(method))
				if err != nil {
					return fmt.Errorf("evaluating %s: %w", strategy, err)
				}
				runs = append(runs, run)

				logger.Info("strategy evaluated",
					"strategy", strategy,
					"questions", run.Metrics.NumEvaluated,
					"mean_score", fmt.Sprintf("%.3f", run.Metrics.MeanScore),
					"avg_tokens", fmt.Sprintf("%.0f", run.Metrics.AvgTokens),
				)

				if outDir != "" {
					path := filepath.Join(outDir, strategy+".json")
					if err := eval.SaveRun(run, path); err != nil {
						return err
					}
				}
			}

			for strategy, metrics := range eval.CompareRuns(runs) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s mean=%.3f median=%.3f tokens=%.0f\n",
					strategy, metrics.MeanScore, metrics.MedianScore, metrics.AvgTokens)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docsPath, "docs", "", "path to the document corpus (JSON)")
	cmd.Flags().StringVar(&questionsPath, "questions", "", "path to the question set (JSON)")
	cmd.Flags().StringSliceVar(&strategies, "strategies", []string{"naive", "primacy", "recency", "sandwich"}, "strategies to evaluate")
	cmd.Flags().StringVar(&method, "method", string(eval.ScoreSemantic), "scoring method (semantic, llm_judge, hybrid)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 4000, "context window ceiling in tokens")
	cmd.Flags().IntVar(&overhead, "overhead", 50, "tokens reserved for the query and instructions")
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write per-strategy run files")
	_ = cmd.MarkFlagRequired("docs")
	_ = cmd.MarkFlagRequired("questions")

	return cmd
}
