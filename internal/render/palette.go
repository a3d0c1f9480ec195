package render

import "github.com/fatih/color"

// palette holds the foreground colour of every kind of output line.
type palette struct {
	title      *color.Color
	english    *color.Color
	pinyin     *color.Color
	bopomofo   *color.Color
	wordType   *color.Color
	definition *color.Color
	auxiliary  *color.Color
	banner     *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		title:      color.RGB(178, 143, 206),
		english:    color.RGB(125, 187, 222),
		pinyin:     color.RGB(236, 184, 138),
		bopomofo:   color.RGB(208, 90, 110),
		wordType:   color.RGB(168, 216, 165),
		definition: color.RGB(129, 199, 212),
		auxiliary:  color.RGB(220, 159, 180),
		banner:     color.RGB(177, 180, 121),
	}
	for _, c := range []*color.Color{
		p.title, p.english, p.pinyin, p.bopomofo,
		p.wordType, p.definition, p.auxiliary, p.banner,
	} {
		// Overrides the global color.NoColor.
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}
