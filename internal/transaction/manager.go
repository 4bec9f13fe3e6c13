package transaction

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// RollbackFunc undoes one staging step.
type RollbackFunc func() error

type step struct {
	name string
	fn   RollbackFunc
}

// Manager records undo steps for an install run so a failed run leaves no
// partial artifact set behind.
type Manager struct {
	steps  []step
	logger *zerolog.Logger
}

// NewManager creates a new transaction manager
func NewManager(logger *zerolog.Logger) *Manager {
	return &Manager{logger: logger}
}

// Add pushes an undo step.
func (m *Manager) Add(name string, fn RollbackFunc) {
	m.steps = append(m.steps, step{name: name, fn: fn})
}

// TrackFile registers removal of a file the run created. Files that
// existed before the run should not be tracked.
func (m *Manager) TrackFile(fs afero.Fs, path string) {
	m.Add("remove "+path, func() error {
		if err := fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	})
}

// TrackDir registers removal of a directory the run created. The
// directory is only removed if empty.
func (m *Manager) TrackDir(fs afero.Fs, dir string) {
	m.Add("remove dir "+dir, func() error {
		entries, err := afero.ReadDir(fs, dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if len(entries) > 0 {
			return nil
		}
		return fs.Remove(dir)
	})
}

// Len returns the number of pending undo steps.
func (m *Manager) Len() int {
	return len(m.steps)
}

// Rollback runs every undo step in reverse order and clears the stack.
func (m *Manager) Rollback() error {
	if len(m.steps) == 0 {
		return nil
	}

	if m.logger != nil {
		m.logger.Info().Int("steps", len(m.steps)).Msg("rolling back staged artifacts")
	}

	var errs []error
	for i := len(m.steps) - 1; i >= 0; i-- {
		s := m.steps[i]
		if m.logger != nil {
			m.logger.Debug().Str("operation", s.name).Msg("rolling back")
		}

		if err := s.fn(); err != nil {
			errs = append(errs, fmt.Errorf("rollback %q: %w", s.name, err))
			if m.logger != nil {
				m.logger.Error().Err(err).Str("operation", s.name).Msg("rollback failed")
			}
		}
	}

	m.steps = nil

	if len(errs) > 0 {
		return fmt.Errorf("rollback completed with errors: %w", errors.Join(errs...))
	}
	return nil
}

// Commit clears the undo stack, keeping everything the run created.
func (m *Manager) Commit() {
	m.steps = nil
}
