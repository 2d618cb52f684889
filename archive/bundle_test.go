package archive

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func makeZip(t *testing.T, files map[string]string) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "fragments.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for n, content := range files {
		fw, err := w.Create(n)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", n, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", n, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return name
}

func TestIsArchive(t *testing.T) {
	tests := map[string]bool{
		"assets":           false,
		"assets/":          false,
		"fragments.zip":    true,
		"out/ARTIFACT.ZIP": true,
		"fragments.zip.d":  false,
	}
	for in, want := range tests {
		if got := IsArchive(in); got != want {
			t.Errorf("IsArchive(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBundle_Directory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "parts"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "parts", "header.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer b.Close()

	data, err := b.ReadFile("parts/header.svg")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("ReadFile() = %q", data)
	}
	if got, want := b.Location("parts/header.svg"), filepath.Join(dir, "parts", "header.svg"); got != want {
		t.Errorf("Location() = %q, want %q", got, want)
	}
	if _, err := b.ReadFile("footer.svg"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want not exist", err)
	}
}

func TestBundle_Zip(t *testing.T) {
	name := makeZip(t, map[string]string{
		"header.svg":       "<svg>h</svg>",
		"parts/footer.svg": "<svg>f</svg>",
	})

	b, err := Open(name)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer b.Close()

	for file, want := range map[string]string{
		"header.svg":          "<svg>h</svg>",
		"./header.svg":        "<svg>h</svg>",
		"parts/footer.svg":    "<svg>f</svg>",
		"parts/../header.svg": "<svg>h</svg>",
	} {
		data, err := b.ReadFile(file)
		if err != nil {
			t.Errorf("ReadFile(%q) error = %v", file, err)
			continue
		}
		if string(data) != want {
			t.Errorf("ReadFile(%q) = %q, want %q", file, data, want)
		}
	}

	if got := b.Location("./parts/footer.svg"); got != name+"!parts/footer.svg" {
		t.Errorf("Location() = %q", got)
	}
	if _, err := b.ReadFile("about.svg"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want not exist", err)
	}
}

func TestOpen_UnsafeArchive(t *testing.T) {
	name := makeZip(t, map[string]string{
		"header.svg":       "<svg/>",
		"../../etc/passwd": "x",
	})
	if _, err := Open(name); err == nil {
		t.Error("expected error for archive with path traversal")
	}
}

func TestOpen_InvalidArchive(t *testing.T) {
	name := filepath.Join(t.TempDir(), "broken.zip")
	if err := os.WriteFile(name, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(name); err == nil {
		t.Error("expected error for invalid archive")
	}
	if _, err := Open(filepath.Join(t.TempDir(), "absent.zip")); err == nil {
		t.Error("expected error for absent archive")
	}
}

func TestWalk(t *testing.T) {
	name := makeZip(t, map[string]string{
		"svg/header.svg": "h",
		"svg/footer.svg": "f",
		"README.md":      "r",
	})

	t.Run("prefix", func(t *testing.T) {
		visited := make(map[string]bool)
		err := Walk(name, "svg/", func(archive string, f *zip.File) error {
			if archive != name {
				t.Errorf("archive = %s, want %s", archive, name)
			}
			visited[f.Name] = true
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}
		if len(visited) != 2 || !visited["svg/header.svg"] || !visited["svg/footer.svg"] {
			t.Errorf("visited = %v", visited)
		}
	})

	t.Run("stops on error", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := Walk(name, "", func(string, *zip.File) error {
			calls++
			return boom
		})
		if !errors.Is(err, boom) || calls != 1 {
			t.Errorf("Walk() error = %v after %d calls", err, calls)
		}
	})
}

func TestIsSafePath(t *testing.T) {
	tests := map[string]bool{
		"header.svg":      true,
		"svg/header.svg":  true,
		"a..b/header.svg": true,
		"/etc/passwd":     false,
		`\windows\file`:   false,
		"../header.svg":   false,
		"svg/../../x.svg": false,
	}
	for in, want := range tests {
		if got := isSafePath(in); got != want {
			t.Errorf("isSafePath(%q) = %v, want %v", in, got, want)
		}
	}
}
