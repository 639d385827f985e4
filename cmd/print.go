package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/twiced-technology-gmbh/tasklist/internal/output"
	"github.com/twiced-technology-gmbh/tasklist/internal/query"
)

const (
	msgNoTasks   = "No tasks have been input"
	msgNoMatches = "No tasks match the filters"
)

var printCmd = &cobra.Command{
	Use:     "print",
	Aliases: []string{"ls"},
	Short:   "Print the task table",
	Long: `Prints the saved tasks as the same table the interactive menu shows,
with optional filtering and sorting. Task numbers always refer to positions
in the full list.`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringSlice("priority", nil, "filter by priority (critical, high, normal, low or C, H, N, L)")
	printCmd.Flags().StringSlice("due", nil, "filter by due tag (overdue, today, in-time)")
	printCmd.Flags().StringP("search", "s", "", "search description lines (case-insensitive)")
	printCmd.Flags().String("sort", "", "sort field (number, date, priority, due); default from config")
	printCmd.Flags().BoolP("reverse", "r", false, "reverse sort order")
	printCmd.Flags().IntP("limit", "n", 0, "limit number of results")
	printCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "prio":
			name = "priority"
		case "sort-by":
			name = "sort"
		}
		return pflag.NormalizedName(name)
	})
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, _ []string) error {
	priorityArgs, _ := cmd.Flags().GetStringSlice("priority")
	dueArgs, _ := cmd.Flags().GetStringSlice("due")
	search, _ := cmd.Flags().GetString("search")
	sortBy, _ := cmd.Flags().GetString("sort")
	reverse, _ := cmd.Flags().GetBool("reverse")
	limit, _ := cmd.Flags().GetInt("limit")

	priorities, err := query.ParsePriorities(priorityArgs)
	if err != nil {
		return err
	}
	due, err := query.ParseDueTags(dueArgs)
	if err != nil {
		return err
	}
	if sortBy == "" {
		sortBy = cfg.Print.Sort
	}

	l, err := loadList()
	if err != nil {
		return err
	}

	entries, err := query.List(l, query.ListOptions{
		Filter:  query.FilterOptions{Priorities: priorities, Due: due, Search: search},
		SortBy:  sortBy,
		Reverse: reverse,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(out, output.Records(entries))
	case output.FormatCompact:
		output.TaskCompact(out, entries)
		return nil
	}

	if len(entries) == 0 {
		if l.IsEmpty() {
			output.Messagef(out, "%s", msgNoTasks)
		} else {
			output.Messagef(out, "%s", msgNoMatches)
		}
		return nil
	}
	markers := output.MarkersColor
	if !colorEnabled() {
		markers = output.MarkersLetter
	}
	output.TaskTableWith(out, entries, markers)
	return nil
}
