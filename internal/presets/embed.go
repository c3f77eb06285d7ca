// Package presets provides embedded, named generation presets.
package presets

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
