package dict

import "embed"

// dictFS embeds the packaged per-locale wordlists, one file per canonical
// dictionary locale.
//
//go:embed data/dictionaries/*.txt
var dictFS embed.FS

const dictDir = "data/dictionaries"
