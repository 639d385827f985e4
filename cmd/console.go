package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasklist/internal/console"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

func runConsole(cmd *cobra.Command, _ []string) error {
	store := openStore()
	tasks, err := store.Load()
	if err != nil {
		return err
	}

	c := console.New(task.NewList(tasks), console.Options{
		In:       os.Stdin,
		Out:      os.Stdout,
		Store:    store,
		Recorder: recorder(),
		Logger:   logger,
	})
	return c.Run(cmd.Context())
}
