package cli

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/altheman/website"
	"github.com/natefinch/atomic"
	"github.com/urfave/cli/v2"
)

var starterFS fs.FS = website.Starter

var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Write the bundled templates, stylesheet and config into the current directory",
	Action: func(c *cli.Context) error {
		targetDir, err := os.Getwd()
		if err != nil {
			return err
		}
		fmt.Println("🚀 Creating site in:", targetDir)

		written, err := copyStarter(starterFS, targetDir)
		if err != nil {
			return fmt.Errorf("failed to create site: %w", err)
		}

		fmt.Printf("✅ %d files written.\n", written)
		fmt.Println("▶  Run: altheman dev")
		return nil
	},
}

// copyStarter copies every file in source into targetDir. Files that already
// exist are left alone.
func copyStarter(source fs.FS, targetDir string) (int, error) {
	written := 0
	err := fs.WalkDir(source, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		targetPath := filepath.Join(targetDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(targetPath, os.ModePerm)
		}

		if _, err := os.Stat(targetPath); err == nil {
			fmt.Println("⏭  Skipping existing", path)
			return nil
		}

		data, err := fs.ReadFile(source, path)
		if err != nil {
			return err
		}
		if err := atomic.WriteFile(targetPath, bytes.NewReader(data)); err != nil {
			return err
		}
		written++
		return nil
	})
	return written, err
}
