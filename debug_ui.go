package main

import (
	"image/color"

	"github.com/milk9111/platformer/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	panelColor   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	pressedColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	labelColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type uiButton struct {
	label   string
	onClick func()
}

// NewPauseUI builds a centered pause menu with Resume and Quit buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	panel := newPanel("Paused", []uiButton{
		{"Resume", func() { g.paused = false }},
		{"Quit", func() { g.quit = true }},
	}, widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}, common.BaseWidth/2, common.BaseHeight/2)
	return newUI(panel)
}

// NewDebugUI builds the debug panel in the top-right corner. Its buttons act
// on the player directly, bypassing collisions.
func NewDebugUI(g *Game) *ebitenui.UI {
	panel := newPanel("Debug", []uiButton{
		{"Enemy 1", g.strikePlayer},
		{"Health item", g.healPlayer},
		{"Reset pickups", g.resetPickups},
		{"Reload prefabs", g.reloadPrefabs},
	}, widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}, 0, 0)
	return newUI(panel)
}

func newUI(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func newPanel(title string, buttons []uiButton, anchor widget.AnchorLayoutData, minW, minH int) *widget.Container {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Hover:   imageui.NewNineSliceColor(pressedColor),
		Pressed: imageui.NewNineSliceColor(pressedColor),
	}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: labelColor}
	rowCenter := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(anchor),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, labelColor),
		widget.TextOpts.WidgetOpts(rowCenter),
	))

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(rowCenter, widget.WidgetOpts.MinSize(160, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}
	return panel
}
