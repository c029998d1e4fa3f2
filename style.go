package grid

// Style defines the visual appearance of the grid.
type Style struct {
	// Surface
	BackgroundColor uint32
	TextColor       uint32

	// Header band
	HeaderBgColor   uint32
	HeaderTextColor uint32 // 0 = use TextColor

	// Rows
	SelectedBgColor uint32
	HoveredBgColor  uint32
	GridLineColor   uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Tooltip
	TooltipBgColor   uint32
	TooltipTextColor uint32

	// Context menu
	MenuBgColor        uint32
	MenuHoveredColor   uint32
	MenuTextColor      uint32
	MenuDisabledColor  uint32
	MenuSeparatorColor uint32

	// Sizing
	CellPaddingX   float32 // Horizontal text inset inside a cell
	CellPaddingY   float32 // Vertical inset used for wrapped text
	LineHeight     float32 // Height of one wrapped line
	TextHeight     float32 // Glyph box height used to center single lines
	ScrollbarSize  float32
	TooltipOffset  float32
	TooltipPadding float32
	MenuItemHeight float32
	MenuWidth      float32
}

// DefaultStyle returns the default light grid style.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: ColorWhite,
		TextColor:       RGBA(30, 30, 30, 255),

		HeaderBgColor:   RGBA(240, 242, 245, 255),
		HeaderTextColor: RGBA(20, 20, 20, 255),

		SelectedBgColor: RGBA(205, 225, 250, 255),
		HoveredBgColor:  RGBA(240, 245, 250, 255),
		GridLineColor:   RGBA(220, 220, 220, 255),

		ScrollbarBgColor:     RGBA(240, 240, 240, 255),
		ScrollbarGrabColor:   RGBA(180, 180, 180, 255),
		ScrollbarGrabHovered: RGBA(150, 150, 150, 255),

		TooltipBgColor:   RGBA(50, 50, 50, 235),
		TooltipTextColor: ColorWhite,

		MenuBgColor:        ColorWhite,
		MenuHoveredColor:   RGBA(230, 238, 250, 255),
		MenuTextColor:      RGBA(30, 30, 30, 255),
		MenuDisabledColor:  RGBA(160, 160, 160, 255),
		MenuSeparatorColor: RGBA(220, 220, 220, 255),

		CellPaddingX:   10,
		CellPaddingY:   5,
		LineHeight:     20,
		TextHeight:     13,
		ScrollbarSize:  10,
		TooltipOffset:  12,
		TooltipPadding: 6,
		MenuItemHeight: 24,
		MenuWidth:      180,
	}
}

// DarkStyle returns a dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.BackgroundColor = RGBA(25, 25, 25, 255)
	s.TextColor = RGBA(220, 220, 220, 255)
	s.HeaderBgColor = RGBA(40, 40, 40, 255)
	s.HeaderTextColor = ColorWhite
	s.SelectedBgColor = RGBA(50, 100, 150, 255)
	s.HoveredBgColor = RGBA(45, 45, 50, 255)
	s.GridLineColor = RGBA(60, 60, 60, 255)
	s.ScrollbarBgColor = RGBA(30, 30, 30, 255)
	s.ScrollbarGrabColor = RGBA(80, 80, 80, 255)
	s.ScrollbarGrabHovered = RGBA(100, 100, 100, 255)
	s.MenuBgColor = RGBA(35, 35, 35, 250)
	s.MenuHoveredColor = RGBA(60, 60, 70, 255)
	s.MenuTextColor = ColorWhite
	s.MenuSeparatorColor = RGBA(70, 70, 70, 255)
	return s
}

func (s Style) headerText() uint32 {
	if s.HeaderTextColor == 0 {
		return s.TextColor
	}
	return s.HeaderTextColor
}
