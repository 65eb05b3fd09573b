package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type (
	Theme struct {
		Material material.Theme
		Keyboard KeyboardStyle
		Alert    AlertStyles
		Tooltip  struct {
			Color color.NRGBA
			Bg    color.NRGBA
		}
		Button struct {
			Primary   ButtonStyle
			Secondary ButtonStyle
		}
		Title    LabelStyle
		Text     LabelStyle
		Hint     LabelStyle
		Correct  color.NRGBA
		Wrong    color.NRGBA
		Disabled color.NRGBA
		Surface  color.NRGBA
	}

	ButtonStyle struct {
		Bg    color.NRGBA
		Color color.NRGBA
	}

	LabelStyle struct {
		Color    color.NRGBA
		TextSize unit.Sp
	}

	KeyboardStyle struct {
		White       color.NRGBA
		WhiteHover  color.NRGBA
		WhitePress  color.NRGBA
		Black       color.NRGBA
		BlackHover  color.NRGBA
		BlackPress  color.NRGBA
		Border      color.NRGBA
		Label       color.NRGBA
		LabelSize   unit.Sp
		BorderWidth unit.Dp
	}

	AlertStyle struct {
		Bg   color.NRGBA
		Text color.NRGBA
	}

	AlertStyles struct {
		Info    AlertStyle
		Warning AlertStyle
		Error   AlertStyle
		Margin  layout.Inset
		Inset   layout.Inset
	}
)

var (
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black       = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

	backgroundColor   = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	surfaceColor      = color.NRGBA{R: 45, G: 45, B: 45, A: 255}
	textColor         = color.NRGBA{R: 224, G: 224, B: 224, A: 255}
	hintColor         = color.NRGBA{R: 136, G: 136, B: 136, A: 255}
	accentColor       = color.NRGBA{R: 52, G: 152, B: 219, A: 255}
	correctColor      = color.NRGBA{R: 46, G: 204, B: 113, A: 255}
	wrongColor        = color.NRGBA{R: 231, G: 76, B: 60, A: 255}
	warningColor      = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
	disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}
)

func NewTheme() *Theme {
	th := &Theme{}
	th.Material = *material.NewTheme()
	th.Material.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Material.Palette = material.Palette{
		Bg:         backgroundColor,
		Fg:         textColor,
		ContrastBg: accentColor,
		ContrastFg: white,
	}
	th.Material.TextSize = unit.Sp(16)

	th.Keyboard = KeyboardStyle{
		White:       white,
		WhiteHover:  color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		WhitePress:  color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		Black:       color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		BlackHover:  color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		BlackPress:  color.NRGBA{R: 90, G: 90, B: 90, A: 255},
		Border:      color.NRGBA{R: 100, G: 100, B: 100, A: 255},
		Label:       hintColor,
		LabelSize:   unit.Sp(11),
		BorderWidth: unit.Dp(1),
	}

	th.Alert = AlertStyles{
		Info:    AlertStyle{Bg: color.NRGBA{R: 50, G: 50, B: 51, A: 255}, Text: textColor},
		Warning: AlertStyle{Bg: warningColor, Text: black},
		Error:   AlertStyle{Bg: wrongColor, Text: white},
		Margin:  layout.UniformInset(unit.Dp(6)),
		Inset:   layout.UniformInset(unit.Dp(8)),
	}

	th.Tooltip.Color = textColor
	th.Tooltip.Bg = color.NRGBA{R: 50, G: 50, B: 51, A: 255}

	th.Button.Primary = ButtonStyle{Bg: accentColor, Color: white}
	th.Button.Secondary = ButtonStyle{Bg: surfaceColor, Color: textColor}

	th.Title = LabelStyle{Color: textColor, TextSize: unit.Sp(28)}
	th.Text = LabelStyle{Color: textColor, TextSize: unit.Sp(16)}
	th.Hint = LabelStyle{Color: hintColor, TextSize: unit.Sp(16)}
	th.Correct = correctColor
	th.Wrong = wrongColor
	th.Disabled = disabledTextColor
	th.Surface = surfaceColor
	return th
}

// Label is a material label painted with one of the theme's label styles.
func (th *Theme) Label(style LabelStyle, txt string) material.LabelStyle {
	l := material.Label(&th.Material, style.TextSize, txt)
	l.Color = style.Color
	return l
}
