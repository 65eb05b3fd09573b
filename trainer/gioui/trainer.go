package gioui

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/pianoear/pianoear"
	"github.com/pianoear/pianoear/trainer"
	"github.com/pianoear/pianoear/version"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	Trainer struct {
		Theme *Theme
		Model *trainer.Model

		TrainingKeyboard *KeyboardState
		OctavesKeyboard  *KeyboardState
		PopupAlert       *AlertsState

		StartBtn   *ActionClickable
		StopBtn    *ActionClickable
		NextBtn    *ActionClickable
		RepeatBtn  *ActionClickable
		OctavesBtn *ActionClickable
		BackBtn    *ActionClickable
		MIDIBtn    *ActionClickable

		OctaveBoxes [pianoear.NumOctaves]*BoolClickable
		SharpsBox   *BoolClickable

		lists [3]widget.List
		icons struct {
			start, stop, next, repeat, octaves, back, midi *widget.Icon
		}
		maximized bool
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewTrainer(model *trainer.Model) *Trainer {
	t := &Trainer{
		Theme: NewTheme(),
		Model: model,

		TrainingKeyboard: NewKeyboardState(false),
		OctavesKeyboard:  NewKeyboardState(true),
		PopupAlert:       NewAlertsState(),

		StartBtn:   NewActionClickable(model.Start()),
		StopBtn:    NewActionClickable(model.Stop()),
		NextBtn:    NewActionClickable(model.Next()),
		RepeatBtn:  NewActionClickable(model.Repeat()),
		OctavesBtn: NewActionClickable(model.ShowOctaves()),
		BackBtn:    NewActionClickable(model.Back()),
		MIDIBtn:    NewActionClickable(model.MIDI().NextInput()),

		SharpsBox: NewBoolClickable(model.Sharps().Bool()),
	}
	for o := range t.OctaveBoxes {
		t.OctaveBoxes[o] = NewBoolClickable(model.OctaveSelected(pianoear.Octave(o)).Bool())
	}
	for i := range t.lists {
		t.lists[i].Axis = layout.Vertical
	}
	t.icons.start = mustIcon(icons.AVPlayArrow)
	t.icons.stop = mustIcon(icons.AVStop)
	t.icons.next = mustIcon(icons.AVSkipNext)
	t.icons.repeat = mustIcon(icons.AVReplay)
	t.icons.octaves = mustIcon(icons.ActionInfo)
	t.icons.back = mustIcon(icons.NavigationArrowBack)
	t.icons.midi = mustIcon(icons.ImageMusicNote)
	t.maximized = model.Preferences().Window.Maximized
	return t
}

func mustIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return ic
}

// Main runs the window until it is closed. Messages from the Broker are
// handled between frames, so the Model is only touched on this goroutine.
func (t *Trainer) Main() {
	var ops op.Ops
	w := t.newWindow()
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	broker := t.Model.Broker()
F:
	for {
		select {
		case msg := <-broker.ToModel:
			t.Model.ProcessMsg(msg)
			w.Invalidate()
		case <-broker.CloseGUI:
			w.Perform(system.ActionClose)
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				if e.Err != nil {
					logrus.WithError(e.Err).Error("window closed with an error")
				}
				acks <- struct{}{}
				break F
			case app.ConfigEvent:
				t.maximized = e.Config.Mode == app.Maximized
				t.Model.SetWindowMaximized(t.maximized)
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				if !t.maximized {
					t.Model.SetWindowSize(int(gtx.Metric.PxToDp(e.Size.X)), int(gtx.Metric.PxToDp(e.Size.Y)))
				}
				t.Layout(gtx)
				e.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
	t.Model.Close()
}

func (t *Trainer) newWindow() *app.Window {
	prefs := t.Model.Preferences()
	w := new(app.Window)
	w.Option(
		app.Title(version.Title(t.Model.Printer().Sprintf("Piano Ear Trainer"))),
		app.Size(unit.Dp(prefs.Window.Width), unit.Dp(prefs.Window.Height)),
		app.MinSize(unit.Dp(640), unit.Dp(480)),
	)
	if prefs.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func (t *Trainer) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, t.Theme.Material.Bg)
	event.Op(gtx.Ops, t)

	switch t.Model.Screen() {
	case trainer.TrainingScreen:
		t.layoutTraining(gtx)
	case trainer.OctavesScreen:
		t.layoutOctaves(gtx)
	default:
		t.layoutStart(gtx)
	}
	alerts := Alerts(t.Model.Alerts(), t.Theme, t.PopupAlert)
	alerts.Layout(gtx)

	// keys that no focused widget took
	for {
		ev, ok := gtx.Event(key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok {
			t.KeyEvent(e)
		}
	}
}
