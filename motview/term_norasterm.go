//go:build windows

package motview

import (
	"fmt"
	"image"
	"io"
)

func PrintRasTerm(w io.Writer, i image.Image) bool {
	fmt.Fprintf(w, "rasterm not supported on windows\n")
	return false
}
