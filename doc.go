// Package segment provides locale-aware Unicode text segmentation
// (grapheme clusters, words, sentences, and line-break opportunities)
// and Unicode case folding/mapping, driven by CLDR-style locale data.
//
// See the graphemes, words, sentences, and linebreak packages for
// per-kind segmenters; this package exposes the combined operations that
// take an explicit break kind, plus case folding and case mapping.
package segment
