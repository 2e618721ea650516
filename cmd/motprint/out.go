package main

import (
	"image"
	"io"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-afteralive/mot"
	"badc0de.net/pkg/go-afteralive/motview"
)

func out(w io.Writer, m *mot.Motion) {
	var img image.Image = motview.RenderTrack(m, *trackSize)

	if *downsize {
		termSize, err := GetTermSize()
		if err == nil && termSize.WSXPixel != 0 && termSize.WSYPixel != 0 {
			img = motview.Thumbnail(img, int(termSize.WSXPixel/2), int(termSize.WSYPixel/2))
		}
	}

	if !motview.PrintRasTerm(w, img) {
		glog.Warning("terminal does not support images; not printing the root track")
	}
}
