package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bijilboby/TQuery/internal/adapters/driven/fewshot"
)

var examplesFull bool

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the few-shot examples used to prompt the model",
	RunE:  runExamples,
}

func init() {
	examplesCmd.Flags().BoolVar(&examplesFull, "full", false, "include the SQL query and result columns")
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, _ []string) error {
	examples := fewshot.NewStore().All()

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	if examplesFull {
		tw.AppendHeader(table.Row{"#", "Question", "SQL Query", "SQL Result", "Answer"})
		for i, ex := range examples {
			tw.AppendRow(table.Row{i + 1, ex.Question, ex.SQLQuery, ex.SQLResult, ex.Answer})
		}
	} else {
		tw.AppendHeader(table.Row{"#", "Question", "Answer"})
		for i, ex := range examples {
			tw.AppendRow(table.Row{i + 1, ex.Question, ex.Answer})
		}
	}
	tw.Render()
	return nil
}
