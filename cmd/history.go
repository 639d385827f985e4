package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasklist/internal/activity"
	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the activity log",
	Long:  `Prints recorded adds, edits, deletes and saves, newest last. Requires activity_log in the config file.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of most recent entries (0 for all)") //nolint:mnd // default page
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	path := cfg.ActivityPath()
	if path == "" {
		return clierr.New(clierr.InvalidConfig, "activity log is disabled; set activity_log in the config file")
	}
	entries, err := activity.Read(path)
	if err != nil {
		return clierr.Wrap(clierr.StorageRead, "reading activity log", err)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	if outputFormat() == output.FormatJSON {
		if entries == nil {
			entries = []activity.Entry{}
		}
		return output.JSON(os.Stdout, entries)
	}
	for _, e := range entries {
		line := e.Timestamp.Local().Format(time.DateTime) + " " + e.Action
		if e.Task > 0 {
			line += " #" + strconv.Itoa(e.Task)
		}
		if e.Detail != "" {
			line += " " + e.Detail
		}
		output.Messagef(os.Stdout, "%s", line)
	}
	return nil
}
