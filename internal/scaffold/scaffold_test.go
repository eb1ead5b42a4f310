package scaffold

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/oopdocs/oopdocs/internal/outline"
)

func TestRunFreshDirectory(t *testing.T) {
	dir := t.TempDir()
	set := outline.MustDefault()

	var buf bytes.Buffer
	result, err := Run(&buf, dir, set.Files, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got := result.Count(Created); got != len(set.Files) {
		t.Errorf("created %d files, want %d", got, len(set.Files))
	}

	for _, f := range set.Files {
		assertFileContent(t, filepath.Join(dir, f.Name), f.Content)
	}

	// Nothing besides the outline set is written.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(set.Files) {
		t.Errorf("directory has %d entries, want %d", len(entries), len(set.Files))
	}

	var want []string
	for _, name := range set.Names() {
		want = append(want, "Created "+name)
	}
	assertLines(t, buf.String(), want)
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	set := outline.MustDefault()

	if _, err := Run(&bytes.Buffer{}, dir, set.Files, Options{}); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}

	before := snapshot(t, dir)

	var buf bytes.Buffer
	result, err := Run(&buf, dir, set.Files, Options{})
	if err != nil {
		t.Fatalf("second Run() error: %v", err)
	}
	if got := result.Count(Exists); got != len(set.Files) {
		t.Errorf("second run reported %d existing, want %d", got, len(set.Files))
	}

	var want []string
	for _, name := range set.Names() {
		want = append(want, name+" already exists")
	}
	assertLines(t, buf.String(), want)

	after := snapshot(t, dir)
	for name, content := range before {
		if after[name] != content {
			t.Errorf("%s changed on second run", name)
		}
	}
}

func TestRunPartialPrepopulation(t *testing.T) {
	dir := t.TempDir()
	set := outline.MustDefault()

	custom := "my own notes\n"
	if err := os.WriteFile(filepath.Join(dir, "classes.md"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "exceptions.md"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	result, err := Run(&buf, dir, set.Files, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	assertFileContent(t, filepath.Join(dir, "classes.md"), custom)
	assertFileContent(t, filepath.Join(dir, "exceptions.md"), "")

	var want []string
	for _, f := range set.Files {
		switch f.Name {
		case "classes.md", "exceptions.md":
			want = append(want, f.Name+" already exists")
		default:
			want = append(want, "Created "+f.Name)
			assertFileContent(t, filepath.Join(dir, f.Name), f.Content)
		}
	}
	assertLines(t, buf.String(), want)

	if got := result.Count(Created); got != len(set.Files)-2 {
		t.Errorf("created %d, want %d", got, len(set.Files)-2)
	}
}

func TestRunExistingDirectoryEntry(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "namespaces.md"), 0755); err != nil {
		t.Fatal(err)
	}

	spec, _ := outline.MustDefault().Lookup("namespaces.md")
	var buf bytes.Buffer
	result, err := Run(&buf, dir, []outline.FileSpec{spec}, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Outcomes[0].Status != Exists {
		t.Errorf("status = %v, want exists", result.Outcomes[0].Status)
	}
	assertLines(t, buf.String(), []string{"namespaces.md already exists"})
}

func TestRunNamespacesContent(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(&bytes.Buffer{}, dir, outline.MustDefault().Files, Options{}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "namespaces.md"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if first := strings.SplitN(content, "\n", 2)[0]; first != "# Namespaces" {
		t.Errorf("first line = %q, want %q", first, "# Namespaces")
	}
	if !strings.Contains(content, "### Organizing Classes with Namespaces") {
		t.Error("namespaces.md is missing its example subsection")
	}
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	set := outline.MustDefault()
	if err := os.WriteFile(filepath.Join(dir, "abstraction.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	result, err := Run(&buf, dir, set.Files, Options{DryRun: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got := result.Count(Planned); got != len(set.Files)-1 {
		t.Errorf("planned %d, want %d", got, len(set.Files)-1)
	}
	if result.Count(Created) != 0 {
		t.Error("dry run must not create files")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dry run wrote files: %v", entries)
	}

	out := buf.String()
	assertContains(t, out, "Would create classes.md\n")
	assertContains(t, out, "abstraction.md already exists\n")
}

func TestRunMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	set := outline.MustDefault()

	var buf bytes.Buffer
	result, err := Run(&buf, dir, set.Files, Options{})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}

	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *FileError", err)
	}
	if fe.Name != "classes.md" {
		t.Errorf("failed file = %q, want first file classes.md", fe.Name)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should unwrap to fs.ErrNotExist: %v", err)
	}
	assertContains(t, err.Error(), "creating classes.md")

	if len(result.Outcomes) != 0 {
		t.Errorf("outcomes = %v, want none", result.Outcomes)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected status output: %q", buf.String())
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("target directory must not be created")
	}
}

func TestRunReadOnlyDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.Mkdir(dir, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	_, err := Run(&bytes.Buffer{}, dir, outline.MustDefault().Files, Options{})
	if err == nil {
		t.Fatal("expected error for read-only directory")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("error should unwrap to fs.ErrPermission: %v", err)
	}
	var fe *FileError
	if errors.As(err, &fe) && fe.Name != "classes.md" {
		t.Errorf("failed file = %q, want classes.md", fe.Name)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("files created in read-only dir: %v", entries)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	specs := []outline.FileSpec{
		{Name: "first.md", Content: "# First\n"},
		{Name: "sub/second.md", Content: "# Second\n"},
		{Name: "third.md", Content: "# Third\n"},
	}

	var buf bytes.Buffer
	result, err := Run(&buf, dir, specs, Options{})
	if err == nil {
		t.Fatal("expected error")
	}

	var fe *FileError
	if !errors.As(err, &fe) || fe.Name != "sub/second.md" {
		t.Fatalf("error = %v, want failure on sub/second.md", err)
	}
	if len(result.Outcomes) != 1 || result.Outcomes[0].Name != "first.md" {
		t.Errorf("outcomes = %+v, want only first.md", result.Outcomes)
	}
	assertFileContent(t, filepath.Join(dir, "first.md"), "# First\n")
	if _, statErr := os.Stat(filepath.Join(dir, "third.md")); !os.IsNotExist(statErr) {
		t.Error("third.md must not be written after a failure")
	}
	assertLines(t, buf.String(), []string{"Created first.md"})
}

func TestCreateFileAlreadyPresent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.md")

	// The file shows up after the existence check, before the create.
	if err := os.WriteFile(path, []byte("written concurrently\n"), 0644); err != nil {
		t.Fatal(err)
	}

	status, err := createFile("classes.md", path, "# Classes and Objects\n")
	if err != nil {
		t.Fatalf("createFile() error: %v", err)
	}
	if status != Exists {
		t.Errorf("status = %v, want exists", status)
	}
	assertFileContent(t, path, "written concurrently\n")
}

func TestCreateFileWritesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.md")

	status, err := createFile("classes.md", path, "# Classes and Objects\n")
	if err != nil {
		t.Fatalf("createFile() error: %v", err)
	}
	if status != Created {
		t.Errorf("status = %v, want created", status)
	}
	assertFileContent(t, path, "# Classes and Objects\n")
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Created, "Created classes.md"},
		{Exists, "classes.md already exists"},
		{Planned, "Would create classes.md"},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := StatusLine("classes.md", tt.status); got != tt.want {
				t.Errorf("StatusLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s content mismatch\n--- got ---\n%s\n--- want ---\n%s", filepath.Base(path), data, want)
	}
}

func assertLines(t *testing.T, output string, want []string) {
	t.Helper()
	got := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		out[e.Name()] = string(data)
	}
	return out
}
