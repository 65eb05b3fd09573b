package gioui

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/trainer"
)

var (
	screenInset = layout.UniformInset(unit.Dp(24))
	rowInset    = layout.Inset{Bottom: unit.Dp(16)}
	buttonGap   = layout.Spacer{Width: unit.Dp(8)}
)

// column lays the rows out one under the other in a scrollable list.
func (t *Trainer) column(gtx C, list int, rows ...layout.Widget) D {
	return screenInset.Layout(gtx, func(gtx C) D {
		l := material.List(&t.Theme.Material, &t.lists[list])
		return l.Layout(gtx, len(rows), func(gtx C, i int) D {
			return rowInset.Layout(gtx, rows[i])
		})
	})
}

// buttons lays out a row of buttons with a gap between each.
func buttons(gtx C, ws ...layout.Widget) D {
	children := make([]layout.FlexChild, 0, 2*len(ws))
	for i, w := range ws {
		if i > 0 {
			children = append(children, layout.Rigid(buttonGap.Layout))
		}
		children = append(children, layout.Rigid(w))
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}

func (t *Trainer) label(style LabelStyle, txt string) layout.Widget {
	return t.Theme.Label(style, txt).Layout
}

func (t *Trainer) layoutStart(gtx C) D {
	p := t.Model.Printer()
	th := t.Theme
	octaveColumn := func(from, to pianoear.Octave) layout.Widget {
		return func(gtx C) D {
			children := make([]layout.FlexChild, 0, to-from+1)
			for o := from; o <= to; o++ {
				box := CheckBox(th, t.OctaveBoxes[o], trainer.OctaveName(p, o))
				children = append(children, layout.Rigid(box.Layout))
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
		}
	}
	return t.column(gtx, 0,
		t.label(th.Title, p.Sprintf("Piano Ear Trainer")),
		t.label(th.Text, p.Sprintf("Test your musical ear!\n\nA note will be played, and you have to\nfind it on the virtual piano keyboard.")),
		t.label(th.Text, p.Sprintf("Octaves:")),
		func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(octaveColumn(pianoear.Subcontra, pianoear.First)),
				layout.Rigid(layout.Spacer{Width: unit.Dp(32)}.Layout),
				layout.Rigid(octaveColumn(pianoear.Second, pianoear.Fifth)),
			)
		},
		CheckBox(th, t.SharpsBox, p.Sprintf("Use sharps (black keys)")).Layout,
		func(gtx C) D {
			return buttons(gtx,
				ActionButton(th, t.StartBtn, p.Sprintf("Start"), p.Sprintf("Start training (Enter)"), t.icons.start).Primary().Layout,
				ActionButton(th, t.OctavesBtn, p.Sprintf("Octaves"), p.Sprintf("Show the octave reference (O)"), t.icons.octaves).Layout,
			)
		},
		func(gtx C) D {
			return buttons(gtx,
				ActionButton(th, t.MIDIBtn, t.Model.MIDI().Current(), p.Sprintf("Switch MIDI input"), t.icons.midi).Layout,
			)
		},
		t.label(th.Hint, p.Sprintf("Best: %d", t.Model.Score().Best)),
	)
}

func (t *Trainer) layoutTraining(gtx C) D {
	p := t.Model.Printer()
	th := t.Theme
	score := t.Model.Score()
	status := t.Model.Status()

	marks := map[int]color.NRGBA{}
	var result layout.Widget
	switch status.Kind {
	case trainer.StatusCorrect:
		marks[status.Target.MIDI] = th.Correct
		result = func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(t.label(LabelStyle{Color: th.Correct, TextSize: th.Title.TextSize}, p.Sprintf("Correct!"))),
				layout.Rigid(t.label(th.Text, trainer.NoteName(p, status.Target))),
			)
		}
	case trainer.StatusWrong:
		marks[status.Target.MIDI] = th.Correct
		marks[status.Chosen.MIDI] = th.Wrong
		result = func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(t.label(LabelStyle{Color: th.Wrong, TextSize: th.Title.TextSize}, p.Sprintf("Wrong!"))),
				layout.Rigid(t.label(th.Text, p.Sprintf("Correct: %s", trainer.NoteName(p, status.Target)))),
				layout.Rigid(t.label(th.Hint, p.Sprintf("You picked: %s", trainer.NoteName(p, status.Chosen)))),
			)
		}
	case trainer.StatusNoOctaves:
		result = t.label(LabelStyle{Color: th.Wrong, TextSize: th.Text.TextSize}, p.Sprintf("Select at least one octave!"))
	default:
		result = t.label(th.Hint, p.Sprintf("Pick the note on the keyboard"))
	}

	kb := Keyboard(th, t.TrainingKeyboard, p, t.Model.SelectNote)
	kb.Marks = marks
	return t.column(gtx, 1,
		func(gtx C) D {
			return layout.Flex{Alignment: layout.Baseline}.Layout(gtx,
				layout.Rigid(t.label(LabelStyle{Color: th.Correct, TextSize: th.Text.TextSize}, p.Sprintf("✓ %d", score.Correct))),
				layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
				layout.Rigid(t.label(LabelStyle{Color: th.Wrong, TextSize: th.Text.TextSize}, p.Sprintf("✗ %d", score.Wrong))),
				layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
				layout.Rigid(t.label(th.Text, p.Sprintf("%d%%", score.Percent()))),
				layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
				layout.Rigid(t.label(th.Text, p.Sprintf("Streak: %d", score.Streak))),
				layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
				layout.Rigid(t.label(th.Hint, p.Sprintf("Best: %d", score.Best))),
			)
		},
		kb.Layout,
		result,
		func(gtx C) D {
			return buttons(gtx,
				ActionButton(th, t.RepeatBtn, p.Sprintf("Repeat"), p.Sprintf("Repeat the note (Space)"), t.icons.repeat).Layout,
				ActionButton(th, t.NextBtn, p.Sprintf("Next note"), p.Sprintf("Next note (Enter)"), t.icons.next).Primary().Layout,
				ActionButton(th, t.OctavesBtn, p.Sprintf("Octaves"), p.Sprintf("Show the octave reference (O)"), t.icons.octaves).Layout,
				ActionButton(th, t.StopBtn, p.Sprintf("Stop"), p.Sprintf("Finish the training (Esc)"), t.icons.stop).Layout,
			)
		},
	)
}

func (t *Trainer) layoutOctaves(gtx C) D {
	p := t.Model.Printer()
	th := t.Theme
	rows := []layout.Widget{
		t.label(th.Title, p.Sprintf("Piano octaves")),
		Keyboard(th, t.OctavesKeyboard, p, t.Model.SelectNote).Layout,
	}
	for o := pianoear.Octave(0); o < pianoear.NumOctaves; o++ {
		first, last, ok := pianoear.OctaveRange(o)
		if !ok {
			continue
		}
		rng := p.Sprintf("%s (%s) - %s (%s)", first.ShortName(), p.Sprintf(first.Pitch.Solfege()), last.ShortName(), p.Sprintf(last.Pitch.Solfege()))
		if first.MIDI == last.MIDI {
			rng = p.Sprintf("%s (%s)", first.ShortName(), p.Sprintf(first.Pitch.Solfege()))
		}
		rows = append(rows, func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					gtx.Constraints.Min.X = gtx.Dp(200)
					return t.label(th.Text, trainer.OctaveName(p, o))(gtx)
				}),
				layout.Rigid(t.label(th.Hint, rng)),
			)
		})
	}
	rows = append(rows, func(gtx C) D {
		return buttons(gtx,
			ActionButton(th, t.BackBtn, p.Sprintf("Back"), p.Sprintf("Go back (Esc)"), t.icons.back).Primary().Layout,
		)
	})
	return t.column(gtx, 2, rows...)
}
