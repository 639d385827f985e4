package cmd

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/tui"
	"github.com/twiced-technology-gmbh/tasklist/internal/watcher"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse tasks full-screen",
	Long: `Opens a full-screen list of tasks. Press d to delete the selected task,
/ to filter, and q to save and quit. The list reloads when the task file
changes on disk.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return clierr.New(clierr.NotATerminal, "browse needs an interactive terminal")
	}

	store := openStore()
	model := tui.NewBrowser(store, recorder())
	if err := model.Err(); err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go startBrowseWatcher(ctx, store.Path, p)

	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}

func startBrowseWatcher(ctx context.Context, path string, p *tea.Program) {
	w, err := watcher.New(path, func(c watcher.Change) {
		logger.Debug("task file changed", "path", path, "change", c)
		p.Send(tui.ReloadMsg{Removed: c == watcher.Removed})
	})
	if err != nil {
		logger.Debug("watcher disabled", "err", err) // browse works without live refresh
		return
	}
	defer w.Close()
	w.Run(ctx, func(err error) {
		logger.Warn("watcher", "err", err)
	})
}
