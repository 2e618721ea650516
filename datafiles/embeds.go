// Package datafiles carries sample motions built into the binaries, so the
// tools have something to show without any datafiles installed.
package datafiles

import (
	"embed"
	"io/fs"
)

//go:embed *.mot
var samples embed.FS

// Sample returns the contents of the built-in motion with the passed file
// name, such as "walk.mot".
func Sample(fileName string) ([]byte, error) {
	return samples.ReadFile(fileName)
}

// Samples lists the file names of the built-in motions.
func Samples() []string {
	names, _ := fs.Glob(samples, "*.mot")
	return names
}
