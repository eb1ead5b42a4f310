// Package cli defines the Cobra command tree for the oopdocs CLI. The root
// command scaffolds the outline set; every other file registers one
// subcommand. Command implementations delegate to internal packages and only
// handle flag parsing and output formatting.
package cli
