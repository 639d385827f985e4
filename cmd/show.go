package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasklist/internal/output"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

var showCmd = &cobra.Command{
	Use:   "show N",
	Short: "Show task details",
	Long:  `Displays one task by its number, with the description rendered as a markdown list.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	l, err := loadList()
	if err != nil {
		return err
	}

	n, err := l.ParseNumber(args[0])
	if err != nil {
		return err
	}
	t, err := l.Get(n)
	if err != nil {
		return err
	}
	e := task.Entry{Number: n, Task: t}

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, output.Records([]task.Entry{e})[0])
	case output.FormatCompact:
		output.TaskDetailCompact(os.Stdout, e)
		return nil
	}
	return output.TaskDetail(os.Stdout, e)
}
