package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ModeSelectUI holds the ebitenui panel shown while picking a game mode.
type ModeSelectUI struct {
	UI *ebitenui.UI

	// Callbacks, one per mode
	OnVersusAI  func()
	OnTwoPlayer func()
	OnSpectator func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewModeSelectUI creates the mode selection panel. The callbacks fire when a
// mode button is clicked; the number keys are handled by the input system and
// bypass this panel entirely.
func NewModeSelectUI(onVersusAI, onTwoPlayer, onSpectator func()) *ModeSelectUI {
	mui := &ModeSelectUI{
		OnVersusAI:  onVersusAI,
		OnTwoPlayer: onTwoPlayer,
		OnSpectator: onSpectator,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *ModeSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Small sizes to fit the 432x243 virtual screen
	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *ModeSelectUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content panel with vertical layout, centered over the court
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PONG", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("Choose a mode", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	contentContainer.AddChild(mui.modeButton("1 - PLAYER VS CPU", func() {
		if mui.OnVersusAI != nil {
			mui.OnVersusAI()
		}
	}))
	contentContainer.AddChild(mui.modeButton("2 - TWO PLAYERS", func() {
		if mui.OnTwoPlayer != nil {
			mui.OnTwoPlayer()
		}
	}))
	contentContainer.AddChild(mui.modeButton("3 - CPU SHOWDOWN", func() {
		if mui.OnSpectator != nil {
			mui.OnSpectator()
		}
	}))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Number keys work too", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 140, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *ModeSelectUI) modeButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(170, 24),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *ModeSelectUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// Update calls the UI's Update method
func (mui *ModeSelectUI) Update() {
	mui.UI.Update()
}
