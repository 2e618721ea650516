//go:build !windows

package motview

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/golang/glog"
)

// PrintRasTerm draws an image on the terminal using the RasTerm library,
// picking kitty, iTerm or sixel output depending on what the terminal
// supports. It reports whether anything was drawn.
func PrintRasTerm(w io.Writer, i image.Image) bool {
	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(w, i)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(w, i)
	default:
		capable, cerr := rasterm.IsSixelCapable()
		if !capable || cerr != nil {
			return false
		}
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.ZP)
		err = rasterm.Settings{}.SixelWriteImage(w, palettedImage)
	}
	if err != nil {
		glog.Warningf("could not print image on terminal: %v", err)
		return false
	}
	fmt.Fprintf(w, "\n")
	return true
}
