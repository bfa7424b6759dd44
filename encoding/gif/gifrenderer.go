// Package gif renders a replayed game as an animated GIF, one frame per
// board state, drawn as monospace text.
package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
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

// Encoder accumulates one GIF frame per encoded state. Frames are sized
// lazily from the first board seen, capped at maxH×maxW. Flush writes
// the animation to the embedded writer.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	maxH, maxW  int
	padH, padW  int
	fontsize    float64
	initialized bool
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

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: -1},
	}
}

// Encode appends one frame showing the state's board, the running
// capture tally and whose turn it is, plus an optional caption line
// (typically the move that produced the state).
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

		// first calculate how long the max length will be
		splits := strings.Split(repr, "\n")
		oneline := splits[0]
		maxW := maxInt(font.MeasureString(enc.Face, oneline).Ceil(), font.MeasureString(enc.Face, dummyLongString).Ceil())
		dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
		w := maxW + 2*enc.padW
		h := (len(splits)+3)*dy + 2*enc.padH // + 3 for the tally, turn and caption lines

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

	var delay int
	if caption != "" {
		enc.Dot = fixed.P(0+enc.padW, y)
		enc.DrawString(caption)
	} else {
		// uncaptioned frames are start or end cards; hold them longer
		delay = 200
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error { return gif.EncodeAll(enc.Writer, enc.out) }

// EncodeStates renders every state of a replay into w as one animation.
// Captions come from the plays between consecutive states when moves is
// non-nil.
func EncodeStates(w io.Writer, states []*game.State, moves []game.Play, maxH, maxW int) error {
	enc := NewEncoder(maxH, maxW)
	enc.Writer = w
	for i, s := range states {
		var caption string
		if i > 0 && moves != nil && i-1 < len(moves) {
			caption = fmt.Sprintf("move %d: %v", i, moves[i-1])
		}
		if err := enc.Encode(s, caption); err != nil {
			return err
		}
	}
	return enc.Flush()
}

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
