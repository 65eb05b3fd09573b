package gioui

import (
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyboardWidth = 1040

// keyboardHarness lays a keyboard out frame by frame through an input
// router, collecting the selected notes.
type keyboardHarness struct {
	router   input.Router
	ops      op.Ops
	widget   KeyboardWidget
	layout   *trainer.KeyboardLayout
	selected []string
}

func newKeyboardHarness(t *testing.T) *keyboardHarness {
	t.Helper()
	h := &keyboardHarness{layout: trainer.NewKeyboardLayout(testKeyboardWidth, 0)}
	h.widget = Keyboard(NewTheme(), NewKeyboardState(false), trainer.NewPrinter("en"), func(n pianoear.Note) {
		h.selected = append(h.selected, n.ShortName())
	})
	h.frame()
	return h
}

func (h *keyboardHarness) frame(events ...event.Event) {
	h.router.Queue(events...)
	h.ops.Reset()
	gtx := layout.Context{
		Ops:         &h.ops,
		Source:      h.router.Source(),
		Constraints: layout.Exact(image.Pt(testKeyboardWidth, 400)),
	}
	h.widget.Layout(gtx)
	h.router.Frame(&h.ops)
}

// at is a point low on the key of the named note, below the black keys.
func (h *keyboardHarness) at(t *testing.T, name string) f32.Point {
	t.Helper()
	n, ok := pianoear.NoteByName(name)
	require.True(t, ok, name)
	r := h.layout.Rect(n)
	return f32.Pt(float32(r.Min.X+r.Dx()/2), float32(h.layout.KeysHeight()-2))
}

func mouse(kind pointer.Kind, pos f32.Point, buttons pointer.Buttons) pointer.Event {
	return pointer.Event{Kind: kind, Source: pointer.Mouse, Position: pos, Buttons: buttons}
}

func TestKeyboardGlissandoThroughPointerEvents(t *testing.T) {
	h := newKeyboardHarness(t)
	h.frame(
		mouse(pointer.Move, h.at(t, "C4"), 0),
		mouse(pointer.Press, h.at(t, "C4"), pointer.ButtonPrimary),
	)
	assert.Equal(t, []string{"C4"}, h.selected)

	h.frame(
		mouse(pointer.Drag, h.at(t, "C4"), pointer.ButtonPrimary),
		mouse(pointer.Drag, h.at(t, "D4"), pointer.ButtonPrimary),
		mouse(pointer.Drag, h.at(t, "E4"), pointer.ButtonPrimary),
		mouse(pointer.Release, h.at(t, "E4"), 0),
	)
	h.frame()
	assert.Equal(t, []string{"C4", "D4", "E4"}, h.selected)

	h.frame(mouse(pointer.Move, h.at(t, "G4"), 0))
	h.frame()
	assert.Equal(t, []string{"C4", "D4", "E4"}, h.selected, "hovering selects nothing")
}

func TestKeyboardIgnoresSecondaryButton(t *testing.T) {
	h := newKeyboardHarness(t)
	h.frame(
		mouse(pointer.Move, h.at(t, "A4"), 0),
		mouse(pointer.Press, h.at(t, "A4"), pointer.ButtonSecondary),
		mouse(pointer.Release, h.at(t, "A4"), 0),
	)
	h.frame()
	assert.Empty(t, h.selected)
}
