package outline

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// ManifestFile is the name of the manifest at the root of an outline FS.
const ManifestFile = "outline.yaml"

// SupportedFormat is the semver constraint a manifest's format_version must satisfy.
const SupportedFormat = "^1.0.0"

//go:embed data/outline.yaml data/*.md
var dataFS embed.FS

// FileSpec pairs a target file name with its fixed starter content.
type FileSpec struct {
	Name    string // e.g., "classes.md"
	Title   string // e.g., "Classes and Objects"
	Content string // verbatim markdown, ends with a newline
}

// Manifest is the parsed form of outline.yaml.
type Manifest struct {
	FormatVersion string          `yaml:"format_version"`
	Name          string          `yaml:"name"`
	Description   string          `yaml:"description,omitempty"`
	Files         []ManifestEntry `yaml:"files"`
}

// ManifestEntry is one file of the outline set, in scaffold order.
type ManifestEntry struct {
	File  string `yaml:"file"`
	Title string `yaml:"title"`
}

// Set is an ordered, read-only collection of FileSpecs.
type Set struct {
	Name          string
	Description   string
	FormatVersion string
	Files         []FileSpec

	index map[string]int
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
	defaultErr  error
)

// Default returns the outline set embedded in the binary. It is loaded once.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(dataFS, "data")
		if err != nil {
			defaultErr = fmt.Errorf("opening embedded outlines: %w", err)
			return
		}
		defaultSet, defaultErr = Load(sub)
	})
	return defaultSet, defaultErr
}

// MustDefault is like Default but panics if the embedded set is broken.
// A broken embedded set is a build defect, not a runtime condition.
func MustDefault() *Set {
	s, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded outline set: %v", err))
	}
	return s
}

// Load reads outline.yaml from the root of fsys, validates it, and pairs
// every listed file with the content stored next to the manifest.
func Load(fsys fs.FS) (*Set, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	result, err := ValidateManifest(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%s has %d validation issue(s): %s",
			ManifestFile, len(result.Issues), result.Summary())
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}

	if err := checkFormatVersion(m.FormatVersion); err != nil {
		return nil, err
	}

	s := &Set{
		Name:          m.Name,
		Description:   m.Description,
		FormatVersion: m.FormatVersion,
		Files:         make([]FileSpec, 0, len(m.Files)),
		index:         make(map[string]int, len(m.Files)),
	}

	for _, entry := range m.Files {
		if _, dup := s.index[entry.File]; dup {
			return nil, fmt.Errorf("duplicate file %q in %s", entry.File, ManifestFile)
		}

		content, err := fs.ReadFile(fsys, entry.File)
		if err != nil {
			return nil, fmt.Errorf("no content for %s: %w", entry.File, err)
		}

		want := "# " + entry.Title + "\n"
		if !strings.HasPrefix(string(content), want) {
			return nil, fmt.Errorf("%s must start with %q", entry.File, strings.TrimSuffix(want, "\n"))
		}

		s.index[entry.File] = len(s.Files)
		s.Files = append(s.Files, FileSpec{
			Name:    entry.File,
			Title:   entry.Title,
			Content: string(content),
		})
	}

	return s, nil
}

// Names returns the file names in scaffold order.
func (s *Set) Names() []string {
	names := make([]string, len(s.Files))
	for i, f := range s.Files {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the FileSpec for name.
func (s *Set) Lookup(name string) (FileSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FileSpec{}, false
	}
	return s.Files[i], true
}

// checkFormatVersion rejects manifests this binary does not understand.
func checkFormatVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing format_version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return fmt.Errorf("parsing supported format %q: %w", SupportedFormat, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("format_version %s is not supported (want %s)", version, SupportedFormat)
	}
	return nil
}
