package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/altheman/website"
	"github.com/urfave/cli/v2"
)

func TestCopyStarter(t *testing.T) {
	tmpDir := t.TempDir()

	var written int
	var err error
	captureOutput(func() {
		written, err = copyStarter(website.Starter, tmpDir)
	})
	if err != nil {
		t.Fatalf("unexpected error copying starter: %v", err)
	}

	count := 0
	err = fs.WalkDir(website.Starter, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		count++
		want, _ := fs.ReadFile(website.Starter, path)
		got, err := os.ReadFile(filepath.Join(tmpDir, filepath.FromSlash(path)))
		if err != nil {
			t.Errorf("expected file %s to exist, but got error: %v", path, err)
			return nil
		}
		if string(got) != string(want) {
			t.Errorf("content mismatch for %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected walk error: %v", err)
	}

	if written != count {
		t.Errorf("expected %d files written, got %d", count, written)
	}
}

func TestInitCommand_WritesSite(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	app := &cli.App{Commands: []*cli.Command{InitCommand}}

	var err error
	output := captureOutput(func() {
		err = app.Run([]string{"altheman", "init"})
	})
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	for _, f := range []string{
		"site.config.yml",
		filepath.Join("public", "system.css"),
		filepath.Join("resources", "templates", "layout.mustache"),
		filepath.Join("resources", "templates", "home.mustache"),
	} {
		if _, err := os.Stat(filepath.Join(tmpDir, f)); err != nil {
			t.Errorf("expected file %s to exist, but got error: %v", f, err)
		}
	}

	if !strings.Contains(output, "✅ 6 files written.") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestInitCommand_KeepsExistingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	custom := "port: 1234\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "site.config.yml"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	app := &cli.App{Commands: []*cli.Command{InitCommand}}

	var err error
	output := captureOutput(func() {
		err = app.Run([]string{"altheman", "init"})
	})
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	got, _ := os.ReadFile(filepath.Join(tmpDir, "site.config.yml"))
	if string(got) != custom {
		t.Errorf("existing config was overwritten: %q", got)
	}
	if !strings.Contains(output, "⏭  Skipping existing site.config.yml") {
		t.Errorf("expected skip message, got:\n%s", output)
	}
	if !strings.Contains(output, "✅ 5 files written.") {
		t.Errorf("unexpected output:\n%s", output)
	}
}
