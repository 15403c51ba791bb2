// Package assets embeds the data files shipped with the sandbox.
package assets

import "embed"

//go:embed levels
var FS embed.FS
