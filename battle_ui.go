package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/bossrush/common"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// battleUI is the FIGHT/ACT/ITEM/MERCY strip plus the dialogue line above
// it. It only forwards clicks; whether a click means anything is decided by
// the battle state, not here.
type battleUI struct {
	ui *ebitenui.UI

	dialogue *widget.Text
	buttons  []*widget.Button
}

// newBattleUI builds the menu from colored nine-slices and the built-in
// basic font, so no theme assets need to be shipped.
func newBattleUI(choose func(component.MenuAction)) *battleUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x10, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
		Disabled: color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
	}

	b := &battleUI{}

	b.dialogue = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(18),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	labels := []struct {
		text   string
		action component.MenuAction
	}{
		{"FIGHT", component.ActionFight},
		{"ACT", component.ActionAct},
		{"ITEM", component.ActionItem},
		{"MERCY", component.ActionMercy},
	}
	for _, l := range labels {
		action := l.action
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg, Disabled: btnImg}),
			widget.ButtonOpts.Text(l.text, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				choose(action)
			}),
		)
		b.buttons = append(b.buttons, btn)
		row.AddChild(btn)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth-160, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(b.dialogue)
	panel.AddChild(row)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	b.ui = &ebitenui.UI{Container: root}
	return b
}

// sync mirrors the battle state onto the widgets each frame.
func (b *battleUI) sync(w *ecs.World) {
	_, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok {
		return
	}

	b.dialogue.Label = battle.Dialogue

	// buttons accept input only while the menu waits on a choice
	enabled := battle.MenuOpen && battle.Pending == component.ActionNone && !battle.Phase.Terminal()
	for _, btn := range b.buttons {
		btn.GetWidget().Disabled = !enabled
	}
}
