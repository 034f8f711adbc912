package history

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/pkg/filesystem"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

// FileLog appends "query --> command" lines to a plain text file.
// The file is opened and closed on every call; nothing is held for the process lifetime.
type FileLog struct {
	path   string
	opener ports.Opener
}

// NewFileLog creates a log at path, defaulting to ~/.smartcmd_history.
func NewFileLog(path string, opener ports.Opener) *FileLog {
	if path == "" {
		path = DefaultPath()
	}
	return &FileLog{path: filesystem.ExpandHome(path), opener: opener}
}

// DefaultPath is the history file location under the user's home directory.
func DefaultPath() string {
	return filepath.Join(filesystem.UserHomeDir(), domain.HistoryFileName)
}

// Append implements ports.HistoryLog.
func (l *FileLog) Append(entry domain.HistoryEntry) (err error) {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePermissions)
	if err != nil {
		return &domain.FileWriteError{Path: l.path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &domain.FileWriteError{Path: l.path, Err: cerr}
		}
	}()
	if _, err := file.WriteString(entry.Line()); err != nil {
		return &domain.FileWriteError{Path: l.path, Err: err}
	}
	return nil
}

// Show hands the history file to the OS default viewer.
// It returns domain.ErrNoHistory when nothing has been logged yet.
func (l *FileLog) Show(ctx context.Context) error {
	if !filesystem.Exists(l.path) {
		return domain.ErrNoHistory
	}
	if l.opener == nil {
		return errors.New("history viewer unavailable")
	}
	return l.opener.Open(ctx, l.path)
}

// Lines returns the raw log lines in append order.
func (l *FileLog) Lines() ([]string, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// Path returns the backing file path.
func (l *FileLog) Path() string {
	return l.path
}

var _ ports.HistoryLog = (*FileLog)(nil)
