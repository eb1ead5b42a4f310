// Package platform provides filesystem helpers: the mode of scaffolded files
// plus the directory and writability checks used by the doctor command.
package platform
