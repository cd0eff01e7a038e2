package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/contextpack/contextpack/pkg/config"
	"github.com/contextpack/contextpack/pkg/tokens"
)

// newTokensCommand builds the tokens subcommand: count tokens in text or a
// file with the configured encoding.
func newTokensCommand() *cobra.Command {
	var (
		filePath string
		encoding string
		estimate bool
	)

	cmd := &cobra.Command{
		Use:   "tokens [text...]",
		Short: "Count tokens in text or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			switch {
			case filePath != "":
				data, err := os.ReadFile(filePath)
				if err != nil {
					return err
				}
				text = string(data)
			case len(args) > 0:
				text = strings.Join(args, " ")
			default:
				return fmt.Errorf("provide text arguments or --file")
			}

			var counter tokens.Counter
			if estimate {
				counter = tokens.Estimator{}
			} else {
				if encoding == "" {
					encoding = config.NewManager().GetModelConfig().Encoding
				}
				tiktoken, err := tokens.NewCounter(encoding)
				if err != nil {
					return err
				}
				counter = tiktoken
			}

			fmt.Fprintln(cmd.OutOrStdout(), counter.Count(text))
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "count tokens in a file instead of arguments")
	cmd.Flags().StringVar(&encoding, "encoding", "", "tiktoken encoding name (default from configuration)")
	cmd.Flags().BoolVar(&estimate, "estimate", false, "use the chars/4 heuristic instead of a tokenizer")

	return cmd
}
