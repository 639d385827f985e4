package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasklist/internal/date"
	"github.com/twiced-technology-gmbh/tasklist/internal/output"
	"github.com/twiced-technology-gmbh/tasklist/internal/query"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Count tasks per priority and due tag",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l, err := loadList()
	if err != nil {
		return err
	}

	s := query.Summarize(l.Tasks(), date.Today())
	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, s)
	case output.FormatCompact:
		output.SummaryCompact(os.Stdout, s)
	default:
		output.SummaryTable(os.Stdout, s)
	}
	return nil
}
