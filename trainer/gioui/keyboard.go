package gioui

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/trainer"
	"golang.org/x/text/message"
)

type (
	// KeyboardState is the persistent state of one on-screen piano. The
	// layout is kept until the width changes.
	KeyboardState struct {
		layout    *trainer.KeyboardLayout
		glissando trainer.Glissando
		labels    bool
	}

	KeyboardWidget struct {
		Theme   *Theme
		State   *KeyboardState
		Printer *message.Printer
		// OnSelect is called for every key picked by a click or a glissando.
		OnSelect func(pianoear.Note)
		// Marks colors keys, e.g. the answer of the last round.
		Marks map[int]color.NRGBA
	}
)

func NewKeyboardState(labels bool) *KeyboardState {
	return &KeyboardState{labels: labels}
}

func Keyboard(th *Theme, st *KeyboardState, p *message.Printer, onSelect func(pianoear.Note)) KeyboardWidget {
	return KeyboardWidget{Theme: th, State: st, Printer: p, OnSelect: onSelect}
}

func (k KeyboardWidget) Layout(gtx C) D {
	s := k.State
	width := gtx.Constraints.Max.X
	labelBand := 0
	if s.labels {
		labelBand = gtx.Dp(unit.Dp(trainer.LabelBandHeight))
	}
	if s.layout == nil || s.layout.Width() != width || s.layout.Height()-s.layout.KeysHeight() != labelBand {
		s.layout = trainer.NewKeyboardLayout(width, labelBand)
	}
	l := s.layout
	k.update(gtx, l)

	size := image.Pt(width, l.Height())
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, s)
	pointer.CursorPointer.Add(gtx.Ops)

	hover, hovering := s.glissando.Hovered()
	style := &k.Theme.Keyboard
	border := float32(gtx.Dp(style.BorderWidth))
	paintKey := func(n pianoear.Note, base, hoverColor, pressColor color.NRGBA) {
		r := l.Rect(n)
		c := base
		if hovering && hover.MIDI == n.MIDI {
			c = hoverColor
			if s.glissando.Dragging() {
				c = pressColor
			}
		}
		paint.FillShape(gtx.Ops, c, clip.Rect(r).Op())
		if mark, ok := k.Marks[n.MIDI]; ok {
			m := r
			m.Min.Y = r.Max.Y - r.Dx()
			m = m.Inset(max(r.Dx()/6, 1))
			paint.FillShape(gtx.Ops, mark, clip.Ellipse(m).Op(gtx.Ops))
		}
		paint.FillShape(gtx.Ops, style.Border, clip.Stroke{Path: clip.Rect(r).Path(), Width: border}.Op())
	}
	for _, n := range l.WhiteKeys() {
		paintKey(n, style.White, style.WhiteHover, style.WhitePress)
	}
	for _, n := range l.BlackKeys() {
		paintKey(n, style.Black, style.BlackHover, style.BlackPress)
	}
	if s.labels {
		k.layoutLabels(gtx, l)
	}
	return D{Size: size}
}

func (k KeyboardWidget) update(gtx C, l *trainer.KeyboardLayout) {
	s := k.State
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Enter | pointer.Leave | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		n, hit := l.HitTest(e.Position.Round())
		switch e.Kind {
		case pointer.Press:
			if e.Source == pointer.Mouse && !e.Buttons.Contain(pointer.ButtonPrimary) {
				continue
			}
			if n, ok := s.glissando.Press(n, hit); ok {
				k.selected(n)
			}
		case pointer.Drag, pointer.Move, pointer.Enter:
			if n, ok := s.glissando.Move(n, hit); ok {
				k.selected(n)
			}
		case pointer.Release, pointer.Cancel:
			s.glissando.Release()
		case pointer.Leave:
			s.glissando.Leave()
		}
	}
}

func (k KeyboardWidget) selected(n pianoear.Note) {
	if k.OnSelect != nil {
		k.OnSelect(n)
	}
}

func (k KeyboardWidget) layoutLabels(gtx C, l *trainer.KeyboardLayout) {
	style := &k.Theme.Keyboard
	top := l.KeysHeight()
	markerHeight := gtx.Dp(8)
	markerWidth := max(gtx.Dp(1), 1)
	for _, label := range l.OctaveLabels() {
		marker := image.Rect(label.Marker, top, label.Marker+markerWidth, top+markerHeight)
		paint.FillShape(gtx.Ops, style.Label, clip.Rect(marker).Op())

		lbl := k.Theme.Label(LabelStyle{Color: style.Label, TextSize: style.LabelSize}, trainer.OctaveCaption(k.Printer, label.Note.Octave))
		lgtx := gtx
		lgtx.Constraints = layout.Constraints{Max: image.Pt(l.Width(), l.Height()-top-markerHeight)}
		macro := op.Record(gtx.Ops)
		var x int
		switch label.Alignment {
		case trainer.AlignLeft:
			lbl.Alignment = text.Start
		case trainer.AlignRight:
			lbl.Alignment = text.End
		default:
			lbl.Alignment = text.Middle
		}
		dims := lbl.Layout(lgtx)
		call := macro.Stop()
		switch label.Alignment {
		case trainer.AlignLeft:
			x = label.Marker
		case trainer.AlignRight:
			x = label.Marker - dims.Size.X
		default:
			x = label.Marker - dims.Size.X/2
		}
		stack := op.Offset(image.Pt(x, top+markerHeight)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
	}
}
