// Package scaffold writes the outline set into a target directory. Each file
// is created only when nothing with its name exists yet; existing entries are
// never opened for writing. It powers the root oopdocs command and the check
// command (dry run).
package scaffold
