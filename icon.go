package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
)

const trayIconSize = 32

// Background disk color, #FF9800.
const (
	trayIconR = 0xFF
	trayIconG = 0x98
	trayIconB = 0x00
)

// renderTrayIcon draws the 32x32 tray icon: a white "K" on an orange disk
// with a transparent surround. Pure and deterministic — the same byte
// buffer on every call. Pixels are RGBA, row-major, top to bottom.
func renderTrayIcon() []byte {
	data := make([]byte, trayIconSize*trayIconSize*4)

	for y := 0; y < trayIconSize; y++ {
		for x := 0; x < trayIconSize; x++ {
			idx := (y*trayIconSize + x) * 4

			cx := float64(x) - 15.5
			cy := float64(y) - 15.5
			if math.Sqrt(cx*cx+cy*cy) >= 14.0 {
				continue
			}

			data[idx] = trayIconR
			data[idx+1] = trayIconG
			data[idx+2] = trayIconB
			data[idx+3] = 0xFF

			if letterformContains(x, y) {
				data[idx] = 0xFF
				data[idx+1] = 0xFF
				data[idx+2] = 0xFF
			}
		}
	}

	return data
}

// letterformContains reports whether (x, y) lies on the "K": a vertical bar
// plus two diagonal bands, clipped to a vertical window.
func letterformContains(x, y int) bool {
	if y < 7 || y > 25 {
		return false
	}
	if x >= 9 && x <= 12 {
		return true
	}
	if x < 13 || x > 22 {
		return false
	}
	kx := x - 13
	ky := y - 16
	return absInt(ky-kx) <= 2 || absInt(ky+kx) <= 2
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// trayIconPNG encodes the rendered icon for systray, which expects encoded
// image bytes rather than a raw pixel buffer.
func trayIconPNG() ([]byte, error) {
	img := &image.NRGBA{
		Pix:    renderTrayIcon(),
		Stride: trayIconSize * 4,
		Rect:   image.Rect(0, 0, trayIconSize, trayIconSize),
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode tray icon: %w", err)
	}
	return buf.Bytes(), nil
}
