package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// maxLineLength is the longest line a PPM file may contain
const maxLineLength = 70

// Canvas is a width x height grid of unclamped colors, initially black
type Canvas struct {
	Width  int
	Height int
	pixels []core.Tuple
}

// New creates a black canvas
func New(width, height int) *Canvas {
	pixels := make([]core.Tuple, width*height)
	for i := range pixels {
		pixels[i] = core.Black
	}
	return &Canvas{Width: width, Height: height, pixels: pixels}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel stores a color. Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Tuple) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the stored color, or black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Tuple {
	if !c.inBounds(x, y) {
		return core.Black
	}
	return c.pixels[y*c.Width+x]
}

// toByte clamps a channel to [0, 0.999] and scales it to 0..255
func toByte(v float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 0.999 {
		v = 0.999
	}
	return uint8(v * 256)
}

// WritePPM exports the canvas as a plain (P3) PPM image
func (c *Canvas) WritePPM(w io.Writer) error {
	out := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(out, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	line := make([]byte, 0, maxLineLength+1)
	for y := 0; y < c.Height; y++ {
		line = line[:0]
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			for _, channel := range [3]float64{p.Red(), p.Green(), p.Blue()} {
				value := strconv.Itoa(int(toByte(channel)))
				// the separating space counts toward the limit
				if len(line) > 0 && len(line)+1+len(value) > maxLineLength {
					line = append(line, '\n')
					if _, err := out.Write(line); err != nil {
						return err
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, value...)
			}
		}
		line = append(line, '\n')
		if _, err := out.Write(line); err != nil {
			return err
		}
	}

	return out.Flush()
}

// Image converts the canvas to an 8-bit RGBA image with the same clamping as WritePPM
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: toByte(p.Red()),
				G: toByte(p.Green()),
				B: toByte(p.Blue()),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG exports the canvas as a PNG image
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}
