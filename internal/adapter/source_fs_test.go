package adapter

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	m "github.com/redress-dev/redress/internal/model"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

func TestLocalSourceFS_Discover_IncludesAndExcludes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/Lib.rs":          "mod lib {}\n",
		"src/main.rs":         "fn main() {}\n",
		"src/nested/Deep.rs":  "mod deep {}\n",
		"src/notes.md":        "# notes\n",
		"target/Generated.rs": "mod generated {}\n",
	})

	fs := NewLocalSourceFS()

	paths, err := fs.Discover(m.Path(root), []string{"**/*.rs"}, []string{"**/target/**"})
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	want := []m.Path{
		m.Path(filepath.Join(root, "src", "Lib.rs")),
		m.Path(filepath.Join(root, "src", "main.rs")),
		m.Path(filepath.Join(root, "src", "nested", "Deep.rs")),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("unexpected paths:\n got %v\nwant %v", paths, want)
	}
}

func TestLocalSourceFS_Discover_PrunesGitDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/Lib.rs":       "mod lib {}\n",
		".git/Objects.rs":  "not source\n",
		".git/refs/Tag.rs": "not source\n",
	})

	fs := NewLocalSourceFS()

	paths, err := fs.Discover(m.Path(root), []string{"**/*.rs"}, nil)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d: %v", len(paths), paths)
	}

	if !strings.HasSuffix(string(paths[0]), filepath.Join("src", "Lib.rs")) {
		t.Fatalf("unexpected path: %s", paths[0])
	}
}

func TestLocalSourceFS_Discover_SortsLexicographically(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/Zebra.rs": "mod zebra {}\n",
		"src/Alpha.rs": "mod alpha {}\n",
		"src/Mid.rs":   "mod mid {}\n",
	})

	fs := NewLocalSourceFS()

	paths, err := fs.Discover(m.Path(root), []string{"**/*.rs"}, nil)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	for i := 1; i < len(paths); i++ {
		if paths[i-1] >= paths[i] {
			t.Fatalf("paths not sorted: %v", paths)
		}
	}
}

func TestLocalSourceFS_Discover_TopLevelFileMatchesDoubleStar(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"Build.rs": "mod build {}\n"})

	fs := NewLocalSourceFS()

	// Walk inside the root so the relative path has no directory prefix.
	// (t.Chdir equivalent for toolchains before Go 1.24.)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir %s: %v", root, err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	paths, err := fs.Discover(m.Path("."), []string{"**/*.rs"}, nil)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("expected the top-level file to match, got %v", paths)
	}
}

func TestLocalSourceFS_Discover_BadGlob(t *testing.T) {
	t.Parallel()

	fs := NewLocalSourceFS()

	_, err := fs.Discover(m.Path(t.TempDir()), []string{"[unclosed"}, nil)
	if err == nil {
		t.Fatalf("expected error for malformed glob")
	}

	if !strings.Contains(err.Error(), "failed to compile glob") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalSourceFS_Discover_MissingRoot(t *testing.T) {
	t.Parallel()

	fs := NewLocalSourceFS()

	_, err := fs.Discover(m.Path(filepath.Join(t.TempDir(), "absent")), []string{"**/*.rs"}, nil)
	if err == nil {
		t.Fatalf("expected error for missing root")
	}

	if !strings.Contains(err.Error(), "root path error") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalSourceFS_ReadWriteFile(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "Lib.rs"))
	fs := NewLocalSourceFS()

	if err := fs.WriteFile(path, []byte("mod lib {}\n")); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	if string(content) != "mod lib {}\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestLocalSourceFS_ReadFile_Missing(t *testing.T) {
	t.Parallel()

	fs := NewLocalSourceFS()

	if _, err := fs.ReadFile(m.Path(filepath.Join(t.TempDir(), "absent.rs"))); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
