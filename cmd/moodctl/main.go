// moodctl runs the mood recommendation pipeline from the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose  bool
	provider string
	timeout  time.Duration

	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "Sentiment based mood recommendations from the command line",
	Long: `moodctl classifies free text with the configured sentiment model and
prints the recommendation the API would return.

Configuration is read the same way as the API server: config.yaml, .env and
MOODAPI_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")

	predictCmd.Flags().StringVar(&provider, "provider", "", "Override classifier.provider (huggingface, mlservice, openai, gemini)")
	predictCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Prediction timeout")

	recommendCmd.Flags().StringVarP(&recommendLabel, "label", "l", "NEUTRAL", "Sentiment label (POSITIVE, NEGATIVE, NEUTRAL)")
	recommendCmd.Flags().Float64VarP(&recommendScore, "score", "s", 0, "Confidence score in [0,1]")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(recommendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
