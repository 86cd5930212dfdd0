package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogFileName is the name of the active log file inside the log directory.
const LogFileName = "fruitwm.log"

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600
)

// RotateOptions bounds how much log history is kept on disk.
type RotateOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultRotateOptions keeps a week of history in at most five 10MB files.
func DefaultRotateOptions() RotateOptions {
	return RotateOptions{MaxSizeMB: 10, MaxBackups: 5, MaxAgeDays: 7}
}

// FileWriter is an io.Writer appending to LogFileName with size based rotation.
// Rotated files are named fruitwm.log.<timestamp> and pruned by age and count.
type FileWriter struct {
	mu          sync.Mutex
	dir         string
	maxSize     int64
	maxAge      time.Duration
	maxBackups  int
	now         func() time.Time
	currentFile *os.File
	currentSize int64
}

// NewFileWriter opens (or creates) dir/fruitwm.log for appending.
func NewFileWriter(dir string, opts RotateOptions) (*FileWriter, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	w := &FileWriter{
		dir:        dir,
		maxSize:    int64(opts.MaxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
		maxBackups: opts.MaxBackups,
		now:        time.Now,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	w.prune()
	return w, nil
}

// Path returns the active log file path.
func (w *FileWriter) Path() string {
	return filepath.Join(w.dir, LogFileName)
}

func (w *FileWriter) open() error {
	if info, err := os.Stat(w.Path()); err == nil {
		w.currentSize = info.Size()
	} else {
		w.currentSize = 0
	}

	file, err := os.OpenFile(w.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	w.currentFile = file
	return nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentFile == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}

	if w.maxSize > 0 && w.currentSize > 0 && w.currentSize+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.currentFile.Write(p)
	w.currentSize += int64(n)
	return n, err
}

func (w *FileWriter) rotate() error {
	if err := w.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	w.currentFile = nil

	backup := w.Path() + "." + w.now().Format("2006-01-02-15-04-05.000")
	if err := os.Rename(w.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	w.prune()
	return w.open()
}

// prune removes backups older than maxAge, then the oldest beyond maxBackups.
func (w *FileWriter) prune() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return
	}

	type backup struct {
		name    string
		modTime time.Time
	}
	var backups []backup
	now := w.now()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), LogFileName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if w.maxAge > 0 && now.Sub(info.ModTime()) > w.maxAge {
			if err := os.Remove(filepath.Join(w.dir, entry.Name())); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
			}
			continue
		}
		backups = append(backups, backup{name: entry.Name(), modTime: info.ModTime()})
	}

	if w.maxBackups <= 0 || len(backups) <= w.maxBackups {
		return
	}
	slices.SortFunc(backups, func(a, b backup) int {
		return a.modTime.Compare(b.modTime)
	})
	for _, b := range backups[:len(backups)-w.maxBackups] {
		if err := os.Remove(filepath.Join(w.dir, b.name)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove excess log file: %v\n", err)
		}
	}
}

// Close closes the active log file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentFile == nil {
		return nil
	}
	err := w.currentFile.Close()
	w.currentFile = nil
	return err
}
