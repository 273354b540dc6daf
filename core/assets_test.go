package core

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSS = `body {
  color: #ff0000;
  margin: 0px;
}
`

func TestMinifyCSS_Shrinks(t *testing.T) {
	out, err := MinifyCSS([]byte(sampleCSS))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) >= len(sampleCSS) {
		t.Errorf("expected smaller output, got %q", out)
	}
	if !strings.Contains(string(out), "body{") {
		t.Errorf("unexpected minified css: %q", out)
	}
}

func TestMinifyHTML_KeepsText(t *testing.T) {
	src := "<html>\n  <body>\n    <p>Altheman's OS System 25.0</p>\n  </body>\n</html>\n"
	out, err := MinifyHTML([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) >= len(src) {
		t.Errorf("expected smaller output, got %q", out)
	}
	if !strings.Contains(string(out), "Altheman's OS System 25.0") {
		t.Errorf("expected text to survive minification, got %q", out)
	}
}

func TestReadAsset_Raw(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "system.css", sampleCSS)

	out, err := ReadAsset(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != sampleCSS {
		t.Errorf("expected file contents unchanged, got %q", out)
	}
}

func TestReadAsset_Minified(t *testing.T) {
	path := writeTempFile(t, t.TempDir(), "system.css", sampleCSS)

	out, err := ReadAsset(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(out, []byte(sampleCSS)) {
		t.Error("expected minified output")
	}
}

func TestReadAsset_Missing(t *testing.T) {
	if _, err := ReadAsset(filepath.Join(t.TempDir(), "missing.css"), false); err == nil {
		t.Error("expected error for missing asset")
	}
}

func TestReadAsset_RereadsEachCall(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "system.css", "a{}")

	first, _ := ReadAsset(path, false)
	writeTempFile(t, dir, "system.css", "b{}")
	second, _ := ReadAsset(path, false)

	if string(first) != "a{}" || string(second) != "b{}" {
		t.Errorf("expected fresh read each call, got %q then %q", first, second)
	}
}
