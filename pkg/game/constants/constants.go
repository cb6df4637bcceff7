package constants

const (
	// ScreenWidth is the logical width of the game screen
	ScreenWidth int = 800
	// ScreenHeight is the logical height of the game screen
	ScreenHeight int = 600

	// StartingLives is the number of lives a new life tracker holds
	StartingLives int = 3
	// LifeUnitSize is the side of one life square
	LifeUnitSize int = 15
	// LifeUnitStep is the horizontal distance between two life squares
	LifeUnitStep int = 30
	// LifeUnitPadding is the gap kept from the right and bottom screen edges
	LifeUnitPadding int = 2
	// LifeRowHeight is the height reserved for the life row above the bottom edge
	LifeRowHeight int = 30

	// ButtonInflate is how much a button grows past its label on each axis
	ButtonInflate int = 15
	// ButtonBorderRadius is the corner radius of a button background
	ButtonBorderRadius int = 10

	// ScoreFontSize is the point size of the scoreboard text
	ScoreFontSize float64 = 12
	// ButtonFontSize is the point size of button labels
	ButtonFontSize float64 = 16
	// TitleFontSize is the point size of full screen overlays
	TitleFontSize float64 = 32

	// RainBlockCount is the number of blocks in the menu rain
	RainBlockCount int = 10
	// RainBlockSize is the side of one rain block
	RainBlockSize int = 30
	// RainMinFall and RainMaxFall bound the per tick fall, max exclusive
	RainMinFall int = 1
	RainMaxFall int = 7
	// RainMinDrift and RainMaxDrift bound the per tick sideways drift, max exclusive
	RainMinDrift int = -2
	RainMaxDrift int = 2
	// RainMaxChannel is the exclusive upper bound of a random colour channel
	RainMaxChannel int = 255
)
