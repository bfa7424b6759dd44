// Package mjpeg streams board states over HTTP as motion JPEG, for
// watching a replay in a browser while it advances.
package mjpeg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math"
	"net/http"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/mattn/go-mjpeg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/kifulab/kifu/game"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Black captures 999, White captures 999`
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Encoder pushes each encoded state to every connected HTTP client.
// It implements http.Handler; mount it wherever the stream should be
// watchable.
type Encoder struct {
	H, W int
	font.Drawer

	stream *mjpeg.Stream
	face   font.Face

	maxH, maxW  int
	padH, padW  int
	fontsize    float64
	initialized bool
}

func (e *Encoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.stream.ServeHTTP(w, r)
}

// NewEncoder with maximum frame height and width in pixels.
func NewEncoder(h, w int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		stream: mjpeg.NewStream(),
		Drawer: font.Drawer{
			Src: image.Black,
		},
	}
}

// Encode draws the state as the stream's next frame. The layout is the
// same as the GIF renderer: board, capture tally, turn, caption.
func (enc *Encoder) Encode(s *game.State, caption string) error {
	repr := fmt.Sprintf("%s", s.Position())

	if !enc.initialized {
		// lazy init of specifications
		enc.face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		enc.Drawer.Src = image.Black
		enc.Drawer.Face = enc.face

		splits := strings.Split(repr, "\n")
		oneline := splits[0]
		maxW := maxInt(font.MeasureString(enc.Face, oneline).Ceil(), font.MeasureString(enc.Face, dummyLongString).Ceil())
		dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
		w := maxW + 2*enc.padW
		h := (len(splits)+3)*dy + 2*enc.padH

		w = minInt(w, enc.maxW)
		h = minInt(h, enc.maxH)

		if w == enc.maxW {
			enc.padW = 0
		}
		if h == enc.maxH {
			enc.padH = 0
		}

		enc.H = h
		enc.W = w
		enc.initialized = true
	}

	y := 0
	bg := image.White
	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), bg, image.Point{}, draw.Src)
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
	enc.Dst = im

	y += dy
	for _, line := range strings.Split(repr, "\n") {
		enc.Dot = fixed.P(0+enc.padW, y)
		enc.DrawString(line)
		y += dy
	}

	caps := s.Captures()
	enc.Dot = fixed.P(0+enc.padW, y)
	enc.DrawString(fmt.Sprintf("Black captures %d, White captures %d", caps.Black, caps.White))
	y += dy

	enc.Dot = fixed.P(0+enc.padW, y)
	enc.DrawString(fmt.Sprintf("%v to play", s.ToMove()))
	y += dy

	if caption != "" {
		enc.Dot = fixed.P(0+enc.padW, y)
		enc.DrawString(caption)
	}

	var b bytes.Buffer
	if err := jpeg.Encode(&b, im, nil); err != nil {
		return err
	}
	return enc.stream.Update(b.Bytes())
}

// Flush closes the stream, disconnecting any watchers.
func (enc *Encoder) Flush() error { return enc.stream.Close() }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
