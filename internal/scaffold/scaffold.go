package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oopdocs/oopdocs/internal/outline"
	"github.com/oopdocs/oopdocs/internal/platform"
)

// Status is the outcome of one file.
type Status int

const (
	// Created means the file was absent and has been written.
	Created Status = iota
	// Exists means an entry with the file's name was already present.
	Exists
	// Planned means the file is absent and would be written (dry run).
	Planned
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Exists:
		return "exists"
	case Planned:
		return "planned"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome records what happened to one file.
type Outcome struct {
	Name   string
	Path   string
	Status Status
}

// Result holds the outcomes of a run in outline order.
type Result struct {
	Dir      string
	Outcomes []Outcome
}

// Count returns how many outcomes have status s.
func (r *Result) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Options tunes a run.
type Options struct {
	// DryRun reports what would be created without writing anything.
	DryRun bool
}

// FileError is an I/O failure on a single file. Run stops at the first one.
type FileError struct {
	Name string
	Op   string // "checking", "creating" or "writing"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Run ensures every file in specs exists in dir, writing the content of the
// absent ones. One status line per file is written to w, in specs order.
// On the first I/O failure Run stops and returns the outcomes so far along
// with a *FileError; files written before the failure are left in place.
func Run(w io.Writer, dir string, specs []outline.FileSpec, opts Options) (*Result, error) {
	if dir == "" {
		dir = "."
	}
	result := &Result{Dir: dir}

	for _, spec := range specs {
		path := filepath.Join(dir, spec.Name)

		status, err := ensureFile(spec.Name, path, spec.Content, opts.DryRun)
		if err != nil {
			return result, err
		}

		result.Outcomes = append(result.Outcomes, Outcome{Name: spec.Name, Path: path, Status: status})
		fmt.Fprintln(w, StatusLine(spec.Name, status))
	}

	return result, nil
}

// StatusLine formats the report line for one file.
func StatusLine(name string, s Status) string {
	switch s {
	case Created:
		return "Created " + name
	case Planned:
		return "Would create " + name
	default:
		return name + " already exists"
	}
}

// ensureFile creates path with content unless an entry already exists there.
// Failures are returned as *FileError for name.
func ensureFile(name, path, content string, dryRun bool) (Status, error) {
	if _, err := os.Lstat(path); err == nil {
		return Exists, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return 0, &FileError{Name: name, Op: "checking", Err: err}
	}

	if dryRun {
		return Planned, nil
	}

	return createFile(name, path, content)
}

// createFile writes content to a new file at path. If the file already
// exists, e.g. it appeared after the existence check, it is left alone and
// reported as Exists.
func createFile(name, path, content string) (Status, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, platform.FilePermNormal)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Exists, nil
		}
		return 0, &FileError{Name: name, Op: "creating", Err: err}
	}

	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return 0, &FileError{Name: name, Op: "writing", Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &FileError{Name: name, Op: "writing", Err: err}
	}
	return Created, nil
}
