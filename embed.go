package website

import "embed"

// Starter is the bundled site: templates, stylesheet and default config.
// The init command copies it into a new working directory.
//
//go:embed resources public site.config.yml
var Starter embed.FS
