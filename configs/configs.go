// Package configs embeds the default arena configuration shared by every
// command.
package configs

import "embed"

//go:embed arena.json
var FS embed.FS
