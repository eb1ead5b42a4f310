package platform

import (
	"fmt"
	"os"
)

// FilePermNormal is the mode of scaffolded files before umask.
const FilePermNormal os.FileMode = 0644

// CheckDir returns an error unless path exists and is a directory.
func CheckDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// CheckWritable verifies that files can be created in dir by creating and
// removing a temporary probe file.
func CheckWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".write-probe-*")
	if err != nil {
		return fmt.Errorf("creating probe file in %s: %w", dir, err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("closing probe file: %w", err)
	}
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("removing probe file %s: %w", name, err)
	}
	return nil
}
