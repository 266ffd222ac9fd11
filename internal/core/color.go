package core

// Color is the colour/tag carried by drawn primitives, snake segments and
// apples. The platform layer maps it to a terminal style.
type Color uint8

// Palette of the LCD build.
const (
	ColorBlack Color = iota
	ColorWhite
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
)

// AppleColors are the tags an apple may carry. A snake that eats the apple
// grows a tail segment with the same tag.
var AppleColors = []Color{ColorRed, ColorGreen, ColorYellow, ColorMagenta, ColorCyan, ColorOrange}

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
