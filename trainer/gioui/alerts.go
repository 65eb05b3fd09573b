package gioui

import (
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/pianoear/pianoear/trainer"
)

type (
	AlertsState struct {
		prevUpdate time.Time
	}

	AlertsWidget struct {
		Theme *Theme
		Model *trainer.Alerts
		State *AlertsState
	}
)

func NewAlertsState() *AlertsState {
	return &AlertsState{prevUpdate: time.Now()}
}

func Alerts(m *trainer.Alerts, th *Theme, st *AlertsState) AlertsWidget {
	return AlertsWidget{Theme: th, Model: m, State: st}
}

// Layout stacks the alerts at the bottom of the window, sliding each one in
// and out as it fades.
func (a *AlertsWidget) Layout(gtx C) D {
	now := time.Now()
	if a.Model.Update(now.Sub(a.State.prevUpdate)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(50 * time.Millisecond)})
	}
	a.State.prevUpdate = now

	var totalY float64
	for _, alert := range a.Model.Iterate {
		var style *AlertStyle
		switch alert.Priority {
		case trainer.Warning:
			style = &a.Theme.Alert.Warning
		case trainer.Error:
			style = &a.Theme.Alert.Error
		default:
			style = &a.Theme.Alert.Info
		}
		bg := func(gtx C) D {
			paint.FillShape(gtx.Ops, style.Bg, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(4)).Op(gtx.Ops))
			return D{Size: gtx.Constraints.Min}
		}
		label := a.Theme.Label(LabelStyle{Color: style.Text, TextSize: a.Theme.Text.TextSize}, alert.Message)
		a.Theme.Alert.Margin.Layout(gtx, func(gtx C) D {
			return layout.S.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				recording := op.Record(gtx.Ops)
				dims := layout.Stack{Alignment: layout.Center}.Layout(gtx,
					layout.Expanded(bg),
					layout.Stacked(func(gtx C) D {
						return a.Theme.Alert.Inset.Layout(gtx, label.Layout)
					}),
				)
				macro := recording.Stop()
				delta := float64(dims.Size.Y + gtx.Dp(a.Theme.Alert.Margin.Bottom))
				stack := op.Offset(image.Point{0, int(-totalY*alert.FadeLevel + delta*(1-alert.FadeLevel))}).Push(gtx.Ops)
				totalY += delta
				macro.Add(gtx.Ops)
				stack.Pop()
				return dims
			})
		})
	}
	return D{}
}
