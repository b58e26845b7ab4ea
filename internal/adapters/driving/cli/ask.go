package cli

import (
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the inventory",
	Long: `Ask a natural-language question about the t-shirt inventory.

The question is translated to SQL, executed against the local database, and
the result is phrased as a conversational answer.

Examples:
  tquery ask "How many white Nike t-shirts do we have?"
  tquery ask "What colors are available for Adidas?"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := initPipeline(); err != nil {
		return err
	}
	cmd.Println(askService.Ask(cmd.Context(), args[0]))
	return nil
}
