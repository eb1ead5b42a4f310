// Package outline holds the static set of tutorial outlines that oopdocs
// scaffolds. The ordered file list and titles come from an embedded
// outline.yaml manifest, which is validated against an embedded JSON Schema
// and a supported format version before the content blobs are paired with
// their file names.
package outline
