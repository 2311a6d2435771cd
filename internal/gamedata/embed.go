// Package gamedata provides embedded generation defaults, the monster table and
// the shading palette.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
