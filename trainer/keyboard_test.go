package trainer_test

import (
	"image"
	"testing"

	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var layoutWidths = []int{520, 800, 1000, 1040, 1366, 1920, 2533}

func note(t *testing.T, name string) pianoear.Note {
	t.Helper()
	n, ok := pianoear.NoteByName(name)
	require.True(t, ok, name)
	return n
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Max).Div(2)
}

func TestWhiteKeysFillTheWidth(t *testing.T) {
	for _, w := range layoutWidths {
		l := trainer.NewKeyboardLayout(w, 0)
		whites := l.WhiteKeys()
		require.Len(t, whites, pianoear.NumWhiteKeys)
		sum := 0
		x := 0
		nominal := w / pianoear.NumWhiteKeys
		for _, n := range whites {
			r := l.Rect(n)
			assert.Equal(t, x, r.Min.X, "width %d, %s should start where the previous ended", w, n)
			assert.InDelta(t, nominal, r.Dx(), 1, "width %d, %s", w, n)
			assert.Equal(t, l.KeysHeight(), r.Dy())
			sum += r.Dx()
			x = r.Max.X
		}
		assert.Equal(t, w, sum, "width %d", w)
	}
}

func TestBlackKeysSitBetweenTheirNeighbours(t *testing.T) {
	for _, w := range layoutWidths {
		l := trainer.NewKeyboardLayout(w, 0)
		require.Len(t, l.BlackKeys(), pianoear.NumBlackKeys)
		for _, n := range l.BlackKeys() {
			below, ok := pianoear.NoteByMIDI(n.MIDI - 1)
			require.True(t, ok)
			above, ok := pianoear.NoteByMIDI(n.MIDI + 1)
			require.True(t, ok)
			r, lo, hi := l.Rect(n), l.Rect(below), l.Rect(above)
			assert.Greater(t, r.Min.X, lo.Min.X, "width %d, %s", w, n)
			assert.Less(t, r.Max.X, hi.Max.X, "width %d, %s", w, n)
			assert.Less(t, r.Dy(), l.KeysHeight())
			assert.Equal(t, int(float64(w)/52*0.6), r.Dx())
		}
	}
}

func TestHeightFollowsWidth(t *testing.T) {
	l := trainer.NewKeyboardLayout(1040, 0)
	assert.Equal(t, 120, l.Height())
	labeled := trainer.NewKeyboardLayout(1040, trainer.LabelBandHeight)
	assert.Equal(t, 120+trainer.LabelBandHeight, labeled.Height())
	assert.Equal(t, 240, trainer.NewKeyboardLayout(2080, 0).Height())
}

func TestHitTestKeyCenters(t *testing.T) {
	for _, w := range layoutWidths {
		l := trainer.NewKeyboardLayout(w, 0)
		for _, n := range pianoear.Notes {
			got, ok := l.HitTest(center(l.Rect(n)))
			require.True(t, ok, "width %d, %s", w, n)
			assert.Equal(t, n, got, "width %d", w)
		}
	}
}

func TestHitTestPrefersBlackKeys(t *testing.T) {
	l := trainer.NewKeyboardLayout(1040, 0)
	cs := l.Rect(note(t, "C#4"))
	// the left edge of C#4 overlaps C4
	p := image.Pt(cs.Min.X+1, 1)
	require.True(t, p.In(l.Rect(note(t, "C4"))))
	got, ok := l.HitTest(p)
	require.True(t, ok)
	assert.Equal(t, "C#4", got.ShortName())
	// below the black key, the white key wins
	got, ok = l.HitTest(image.Pt(cs.Min.X+1, l.KeysHeight()-1))
	require.True(t, ok)
	assert.Equal(t, "C4", got.ShortName())
}

func TestHitTestOutside(t *testing.T) {
	l := trainer.NewKeyboardLayout(1040, trainer.LabelBandHeight)
	for _, p := range []image.Point{{-1, 5}, {1040, 5}, {500, l.KeysHeight()}, {500, l.Height() - 1}} {
		_, ok := l.HitTest(p)
		assert.False(t, ok, "%v", p)
	}
}

func TestOctaveLabels(t *testing.T) {
	l := trainer.NewKeyboardLayout(1040, trainer.LabelBandHeight)
	labels := l.OctaveLabels()
	require.Len(t, labels, 8)
	assert.Equal(t, "C1", labels[0].Note.ShortName())
	assert.Equal(t, trainer.AlignLeft, labels[0].Alignment)
	assert.Equal(t, trainer.AlignCenter, labels[3].Alignment)
	assert.Equal(t, "C8", labels[7].Note.ShortName())
	assert.Equal(t, trainer.AlignRight, labels[7].Alignment)
	r := l.Rect(labels[3].Note)
	assert.Equal(t, r.Min.X+r.Dx()/2, labels[3].Marker)
}

// gesture replays pointer positions through a Glissando and collects the
// selected notes.
func gesture(l *trainer.KeyboardLayout, g *trainer.Glissando, press image.Point, moves ...image.Point) []string {
	var got []string
	if n, ok := g.Press(l.HitTest(press)); ok {
		got = append(got, n.ShortName())
	}
	for _, p := range moves {
		if n, ok := g.Move(l.HitTest(p)); ok {
			got = append(got, n.ShortName())
		}
	}
	g.Release()
	return got
}

func TestGlissandoEmitsOncePerEnteredKey(t *testing.T) {
	l := trainer.NewKeyboardLayout(1040, 0)
	low := l.KeysHeight() - 2 // below the black keys
	c4, d4, e4 := l.Rect(note(t, "C4")), l.Rect(note(t, "D4")), l.Rect(note(t, "E4"))
	var g trainer.Glissando
	got := gesture(l, &g,
		image.Pt(c4.Min.X+2, low),
		image.Pt(c4.Min.X+4, low), // still C4
		image.Pt(c4.Max.X-2, low), // still C4
		image.Pt(d4.Min.X+3, low),
		image.Pt(d4.Min.X+6, low),
		image.Pt(e4.Min.X+3, low),
		image.Pt(e4.Max.X-3, low),
	)
	assert.Equal(t, []string{"C4", "D4", "E4"}, got)
	assert.False(t, g.Dragging())
}

func TestGlissandoIgnoresGapsWithoutLeavingKey(t *testing.T) {
	l := trainer.NewKeyboardLayout(1040, trainer.LabelBandHeight)
	c4 := l.Rect(note(t, "C4"))
	var g trainer.Glissando
	got := gesture(l, &g,
		image.Pt(c4.Min.X+2, c4.Max.Y-2),
		image.Pt(c4.Min.X+2, c4.Max.Y+10), // into the label band, no key
		image.Pt(c4.Min.X+2, c4.Max.Y-2),  // back on C4
	)
	assert.Equal(t, []string{"C4"}, got)
}

func TestMoveWithoutPressOnlyHovers(t *testing.T) {
	l := trainer.NewKeyboardLayout(1040, 0)
	var g trainer.Glissando
	_, ok := g.Move(l.HitTest(center(l.Rect(note(t, "G2")))))
	assert.False(t, ok)
	h, ok := g.Hovered()
	require.True(t, ok)
	assert.Equal(t, "G2", h.ShortName())
	g.Leave()
	_, ok = g.Hovered()
	assert.False(t, ok)
}

func TestPressAfterReleaseSelectsSameKeyAgain(t *testing.T) {
	l := trainer.NewKeyboardLayout(1040, 0)
	p := center(l.Rect(note(t, "A4")))
	var g trainer.Glissando
	assert.Equal(t, []string{"A4"}, gesture(l, &g, p))
	assert.Equal(t, []string{"A4"}, gesture(l, &g, p, p))
}
