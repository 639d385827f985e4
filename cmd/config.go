package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasklist/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration in effect after defaults, the --config file and
flag overrides are applied. The output is valid input for --config.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// effectiveConfig is the config as printed: paths resolved, with the file it
// came from.
type effectiveConfig struct {
	Source      string `json:"source"`
	DataFile    string `json:"data_file"`
	ActivityLog string `json:"activity_log"`
	LogLevel    string `json:"log_level"`
	Color       bool   `json:"color"`
	PrintSort   string `json:"print_sort"`
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, effectiveConfig{
			Source:      configSource(),
			DataFile:    cfg.DataPath(),
			ActivityLog: cfg.ActivityPath(),
			LogLevel:    cfg.LogLevel,
			Color:       cfg.ColorEnabled(),
			PrintSort:   cfg.Print.Sort,
		})
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
