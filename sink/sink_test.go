package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{name: "valid simple path", path: "pokemon.rb"},
		{name: "valid nested path", path: "models/pokemon.rb"},
		{name: "empty path", path: "", wantErr: true, errMsg: "empty"},
		{name: "absolute path", path: "/etc/pokemon.rb", wantErr: true, errMsg: "absolute"},
		{name: "windows drive path", path: `C:\pokemon.rb`, wantErr: true, errMsg: "absolute"},
		{name: "path traversal", path: "../pokemon.rb", wantErr: true, errMsg: "traversal"},
		{name: "embedded traversal", path: "models/../../pokemon.rb", wantErr: true, errMsg: "traversal"},
		{name: "unclean path", path: "models//pokemon.rb", wantErr: true, errMsg: "not clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidatePath(%q) = nil, want error containing %q", tt.path, tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidatePath(%q) error = %q, want to contain %q", tt.path, err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidatePath(%q) = %v, want nil", tt.path, err)
			}
		})
	}
}

func TestFilesystemSink_WriteFile(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	if err := s.WriteFile("pokemon.rb", []byte("class Pokemon\nend\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "pokemon.rb"))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(got) != "class Pokemon\nend\n" {
		t.Errorf("got %q, want %q", got, "class Pokemon\nend\n")
	}
}

func TestFilesystemSink_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	if err := s.WriteFile("models/evolution/pokemon.rb", []byte("x")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "models", "evolution", "pokemon.rb")); err != nil {
		t.Fatalf("expected nested file to exist: %v", err)
	}
}

func TestFilesystemSink_OverwriteTrueReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	if err := s.WriteFile("pokemon.rb", []byte("old")); err != nil {
		t.Fatalf("first WriteFile: %v", err)
	}
	if err := s.WriteFile("pokemon.rb", []byte("new")); err != nil {
		t.Fatalf("second WriteFile: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "pokemon.rb"))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("got %q, want %q", got, "new")
	}
}

func TestFilesystemSink_OverwriteFalseRejectsExisting(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	s.Overwrite = false

	if err := s.WriteFile("pokemon.rb", []byte("old")); err != nil {
		t.Fatalf("first WriteFile: %v", err)
	}
	err := s.WriteFile("pokemon.rb", []byte("new"))
	if err == nil {
		t.Fatal("expected an error writing over an existing file with Overwrite=false")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %q, want to contain %q", err, "already exists")
	}

	got, err := os.ReadFile(filepath.Join(dir, "pokemon.rb"))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(got) != "old" {
		t.Errorf("rejected write must not modify the existing file; got %q", got)
	}
}

func TestFilesystemSink_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	if err := s.WriteFile("pokemon.rb", []byte("x")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".schemagen-") {
			t.Errorf("temp file %q left behind after a successful write", e.Name())
		}
	}
}

func TestFilesystemSink_RejectsPathEscapingRoot(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	err := s.WriteFile("../escape.rb", []byte("x"))
	if err == nil {
		t.Fatal("expected an error for a path escaping the root")
	}
}

func TestFilesystemSink_CustomMode(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	s.Mode = 0600

	if err := s.WriteFile("pokemon.rb", []byte("x")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "pokemon.rb"))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}
