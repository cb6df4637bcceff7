package fonts

import (
	"fmt"

	"github.com/cbodonnell/pingpong/pkg/game/constants"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

// ScoreFont is the small bold face used by the scoreboard.
var ScoreFont font.Face

// ButtonFont is the bold face used by button labels.
var ButtonFont font.Face

// TitleFont is the large face used by full screen overlays.
var TitleFont font.Face

const dpi = 72

func loadFonts() error {
	ttfBold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse bold font: %v", err)
	}
	ScoreFont = truetype.NewFace(ttfBold, &truetype.Options{
		Size:    constants.ScoreFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	otBold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse bold font: %v", err)
	}
	ButtonFont, err = opentype.NewFace(otBold, &opentype.FaceOptions{
		Size:    constants.ButtonFontSize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("failed to create button font face: %v", err)
	}

	mplus, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return fmt.Errorf("failed to parse title font: %v", err)
	}
	TitleFont, err = opentype.NewFace(mplus, &opentype.FaceOptions{
		Size:    constants.TitleFontSize,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create title font face: %v", err)
	}

	return nil
}
