package core

import (
	"os"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
)

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("text/html", minhtml.Minify)
	return m
}

func MinifyCSS(src []byte) ([]byte, error) {
	return minifier.Bytes("text/css", src)
}

func MinifyHTML(src []byte) ([]byte, error) {
	return minifier.Bytes("text/html", src)
}

// ReadAsset reads the file from disk on every call. When minified is set and
// minification fails, the original bytes are returned.
func ReadAsset(path string, minified bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !minified {
		return data, nil
	}
	if out, err := MinifyCSS(data); err == nil {
		return out, nil
	}
	return data, nil
}
