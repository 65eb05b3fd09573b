package trainer

import (
	"image"

	"github.com/pianoear/pianoear"
)

const (
	WhiteKeyRatio       = 6.0  // white key height / width
	BlackKeyWidthRatio  = 0.6  // black key width / white key width
	BlackKeyHeightRatio = 0.65 // black key height / white key height
	LabelBandHeight     = 70   // unscaled height of the octave label band
)

type (
	// KeyboardLayout is the geometry of the 88 keys for one keyboard width.
	// It is recomputed whenever the width changes.
	KeyboardLayout struct {
		width      int
		keysHeight int
		labelBand  int
		rects      map[int]image.Rectangle // MIDI -> key
		whites     []pianoear.Note
		blacks     []pianoear.Note
	}

	// OctaveLabel is an anchor for one octave caption below the keyboard.
	OctaveLabel struct {
		Note      pianoear.Note // the C the caption points at
		Marker    int           // x of the marker line
		Alignment LabelAlignment
	}

	LabelAlignment int

	// Glissando tracks a press-and-drag gesture over the keys. A press
	// selects the key under the pointer; while the button stays down, every
	// newly entered key is selected once.
	Glissando struct {
		dragging bool
		last     pianoear.Note
		hasLast  bool
		hover    pianoear.Note
		hovering bool
	}
)

const (
	AlignCenter LabelAlignment = iota
	AlignLeft
	AlignRight
)

// NewKeyboardLayout lays the keys out over width pixels. White keys share the
// width evenly and fill it to the last pixel; each black key straddles the
// boundary between the white key before it and the next one. labelBand is
// added to the height when octave captions are shown, zero otherwise.
func NewKeyboardLayout(width, labelBand int) *KeyboardLayout {
	l := &KeyboardLayout{
		width:     max(width, 0),
		labelBand: max(labelBand, 0),
		rects:     make(map[int]image.Rectangle, pianoear.NumNotes),
	}
	whiteWidth := float64(l.width) / pianoear.NumWhiteKeys
	whiteHeight := whiteWidth * WhiteKeyRatio
	blackWidth := int(whiteWidth * BlackKeyWidthRatio)
	blackHeight := int(whiteHeight * BlackKeyHeightRatio)
	l.keysHeight = int(whiteHeight)
	notes := pianoear.Notes
	i := 0
	for j, n := range notes {
		if n.IsBlack {
			l.blacks = append(l.blacks, n)
			continue
		}
		l.whites = append(l.whites, n)
		x0 := int(float64(i) * whiteWidth)
		x1 := int(float64(i+1) * whiteWidth)
		if i == pianoear.NumWhiteKeys-1 {
			x1 = l.width
		}
		l.rects[n.MIDI] = image.Rect(x0, 0, x1, l.keysHeight)
		if j+1 < len(notes) && notes[j+1].IsBlack {
			bx := int(float64(i)*whiteWidth + whiteWidth - float64(blackWidth)/2)
			l.rects[notes[j+1].MIDI] = image.Rect(bx, 0, bx+blackWidth, blackHeight)
		}
		i++
	}
	return l
}

func (l *KeyboardLayout) Width() int      { return l.width }
func (l *KeyboardLayout) KeysHeight() int { return l.keysHeight }

// Height is the total height the keyboard needs: the keys, derived from the
// width, plus the label band.
func (l *KeyboardLayout) Height() int { return l.keysHeight + l.labelBand }

func (l *KeyboardLayout) Rect(n pianoear.Note) image.Rectangle { return l.rects[n.MIDI] }

// WhiteKeys and BlackKeys return the keys in paint order.
func (l *KeyboardLayout) WhiteKeys() []pianoear.Note { return l.whites }
func (l *KeyboardLayout) BlackKeys() []pianoear.Note { return l.blacks }

// HitTest returns the key under p. Black keys are tested first since they
// are painted over the white keys.
func (l *KeyboardLayout) HitTest(p image.Point) (pianoear.Note, bool) {
	for _, n := range l.blacks {
		if p.In(l.rects[n.MIDI]) {
			return n, true
		}
	}
	for _, n := range l.whites {
		if p.In(l.rects[n.MIDI]) {
			return n, true
		}
	}
	return pianoear.Note{}, false
}

// OctaveLabels returns a caption anchor for each C from C1 to C8. The first
// caption is left aligned and the last right aligned so they stay inside the
// keyboard.
func (l *KeyboardLayout) OctaveLabels() []OctaveLabel {
	var ret []OctaveLabel
	for _, n := range l.whites {
		if n.Pitch != pianoear.C {
			continue
		}
		r := l.rects[n.MIDI]
		ret = append(ret, OctaveLabel{Note: n, Marker: r.Min.X + r.Dx()/2})
	}
	if len(ret) > 0 {
		ret[0].Alignment = AlignLeft
		ret[len(ret)-1].Alignment = AlignRight
	}
	return ret
}

// Glissando methods

// Press starts a gesture. The key under the pointer, if any, is selected.
func (g *Glissando) Press(n pianoear.Note, ok bool) (pianoear.Note, bool) {
	g.dragging = true
	g.hover, g.hovering = n, ok
	if !ok {
		return pianoear.Note{}, false
	}
	g.last, g.hasLast = n, true
	return n, true
}

// Move reports the key now under the pointer. During a gesture, it selects
// the key if it differs from the last selected one.
func (g *Glissando) Move(n pianoear.Note, ok bool) (pianoear.Note, bool) {
	g.hover, g.hovering = n, ok
	if !g.dragging || !ok {
		return pianoear.Note{}, false
	}
	if g.hasLast && g.last.MIDI == n.MIDI {
		return pianoear.Note{}, false
	}
	g.last, g.hasLast = n, true
	return n, true
}

func (g *Glissando) Release() {
	g.dragging = false
	g.hasLast = false
}

// Leave ends the gesture and clears the hover.
func (g *Glissando) Leave() {
	g.Release()
	g.hovering = false
}

func (g *Glissando) Dragging() bool { return g.dragging }

func (g *Glissando) Hovered() (pianoear.Note, bool) { return g.hover, g.hovering }
