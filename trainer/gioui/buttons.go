package gioui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/pianoear/pianoear/trainer"
)

type (
	// ActionClickable is the state of a button that performs a model Action.
	ActionClickable struct {
		Action  trainer.Action
		click   widget.Clickable
		tipArea component.TipArea
	}

	ActionButtonStyle struct {
		Theme     *Theme
		Clickable *ActionClickable
		Text      string
		Tip       string
		Icon      *widget.Icon
		Style     ButtonStyle
	}

	// BoolClickable keeps a checkbox in sync with a model Bool.
	BoolClickable struct {
		Bool   trainer.Bool
		widget widget.Bool
	}

	CheckBoxStyle struct {
		Theme     *Theme
		Clickable *BoolClickable
		Label     string
	}
)

var buttonInset = layout.Inset{Top: 10, Bottom: 10, Left: 16, Right: 16}

func NewActionClickable(a trainer.Action) *ActionClickable {
	return &ActionClickable{Action: a}
}

func ActionButton(th *Theme, c *ActionClickable, txt, tip string, icon *widget.Icon) ActionButtonStyle {
	return ActionButtonStyle{Theme: th, Clickable: c, Text: txt, Tip: tip, Icon: icon, Style: th.Button.Secondary}
}

func (b ActionButtonStyle) Primary() ActionButtonStyle {
	b.Style = b.Theme.Button.Primary
	return b
}

func (b ActionButtonStyle) Layout(gtx C) D {
	for b.Clickable.click.Clicked(gtx) {
		b.Clickable.Action.Do()
	}
	enabled := b.Clickable.Action.Enabled()
	bg, fg := b.Style.Bg, b.Style.Color
	if !enabled {
		gtx = gtx.Disabled()
		bg = b.Theme.Surface
		fg = b.Theme.Disabled
	}
	button := func(gtx C) D {
		bl := material.ButtonLayout(&b.Theme.Material, &b.Clickable.click)
		bl.Background = bg
		bl.CornerRadius = unit.Dp(6)
		return bl.Layout(gtx, func(gtx C) D {
			return buttonInset.Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						if b.Icon == nil {
							return D{}
						}
						return layout.Inset{Right: 8}.Layout(gtx, func(gtx C) D {
							size := gtx.Dp(20)
							gtx.Constraints.Min = image.Pt(size, size)
							return b.Icon.Layout(gtx, fg)
						})
					}),
					layout.Rigid(b.Theme.Label(LabelStyle{Color: fg, TextSize: b.Theme.Text.TextSize}, b.Text).Layout),
				)
			})
		})
	}
	if b.Tip == "" {
		return button(gtx)
	}
	return b.Clickable.tipArea.Layout(gtx, Tooltip(b.Theme, b.Tip), button)
}

func Tooltip(th *Theme, tip string) component.Tooltip {
	tooltip := component.PlatformTooltip(&th.Material, tip)
	tooltip.Bg = th.Tooltip.Bg
	tooltip.Text.Color = th.Tooltip.Color
	return tooltip
}

func NewBoolClickable(b trainer.Bool) *BoolClickable {
	return &BoolClickable{Bool: b}
}

func CheckBox(th *Theme, c *BoolClickable, label string) CheckBoxStyle {
	return CheckBoxStyle{Theme: th, Clickable: c, Label: label}
}

func (c CheckBoxStyle) Layout(gtx C) D {
	w := &c.Clickable.widget
	if w.Update(gtx) {
		c.Clickable.Bool.Set(w.Value)
	}
	w.Value = c.Clickable.Bool.Value()
	if !c.Clickable.Bool.Enabled() {
		gtx = gtx.Disabled()
	}
	cb := material.CheckBox(&c.Theme.Material, w, c.Label)
	cb.Color = c.Theme.Text.Color
	cb.IconColor = c.Theme.Material.Palette.ContrastBg
	cb.TextSize = c.Theme.Text.TextSize
	return cb.Layout(gtx)
}
