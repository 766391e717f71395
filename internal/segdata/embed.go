package segdata

import "embed"

// dataFS embeds the packaged segmentation data directory: one XML file per
// segmentation locale, named with underscores in place of hyphens per the
// file-naming convention spec.md's design notes call out (§9, "exact
// canonical form... is an artifact of the file naming convention").
//
//go:embed data/segments/*.xml
var dataFS embed.FS

const dataDir = "data/segments"
