package assets

import "embed"

//go:embed migrations public
var EmbeddedFiles embed.FS
