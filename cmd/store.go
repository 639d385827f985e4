package cmd

import (
	"github.com/twiced-technology-gmbh/tasklist/internal/clierr"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// fileStore adds logging and error codes to task.FileStore.
type fileStore struct {
	task.FileStore
}

func openStore() fileStore {
	return fileStore{task.FileStore{Path: cfg.DataPath()}}
}

// Load implements tui.Store.
func (s fileStore) Load() ([]*task.Task, error) {
	tasks, err := s.FileStore.Load()
	if err != nil {
		return nil, clierr.Wrap(clierr.StorageRead, "loading tasks", err).
			WithDetails(map[string]any{"path": s.Path})
	}
	logger.Debug("loaded tasks", "path", s.Path, "count", len(tasks))
	return tasks, nil
}

// Save implements console.Store and tui.Store.
func (s fileStore) Save(tasks []*task.Task) error {
	if err := s.FileStore.Save(tasks); err != nil {
		return clierr.Wrap(clierr.StorageWrite, "saving tasks", err).
			WithDetails(map[string]any{"path": s.Path})
	}
	logger.Debug("saved tasks", "path", s.Path, "count", len(tasks))
	return nil
}

// loadList reads the task file into a List.
func loadList() (*task.List, error) {
	tasks, err := openStore().Load()
	if err != nil {
		return nil, err
	}
	return task.NewList(tasks), nil
}
