package reportsheet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout controls the cosmetic side of a rendered sheet. Zero values fall
// back to the defaults, so a partial YAML file is fine.
type Layout struct {
	SheetName       string  `yaml:"sheet_name"`
	Title           string  `yaml:"title"`
	TitleFontSize   float64 `yaml:"title_font_size"`
	HeaderFill      string  `yaml:"header_fill"`
	HeaderFontColor string  `yaml:"header_font_color"`
	FirstColWidth   float64 `yaml:"first_col_width"`
	ColWidth        float64 `yaml:"col_width"`
	FreezeHeader    bool    `yaml:"freeze_header"`
}

// DefaultLayout returns the layout used when no configuration file is given.
func DefaultLayout() Layout {
	return Layout{
		SheetName:       "Weekly Report",
		Title:           "Weekly Hours Report",
		TitleFontSize:   16,
		HeaderFill:      "4472C4",
		HeaderFontColor: "FFFFFF",
		FirstColWidth:   28,
		ColWidth:        14,
		FreezeHeader:    true,
	}
}

// LayoutFromYAML parses a layout and fills the blanks from DefaultLayout.
func LayoutFromYAML(data []byte) (Layout, error) {
	layout := DefaultLayout()
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("parse sheet layout: %w", err)
	}
	if layout.SheetName == "" {
		layout.SheetName = DefaultLayout().SheetName
	}
	if layout.TitleFontSize <= 0 {
		layout.TitleFontSize = DefaultLayout().TitleFontSize
	}
	if layout.FirstColWidth <= 0 {
		layout.FirstColWidth = DefaultLayout().FirstColWidth
	}
	if layout.ColWidth <= 0 {
		layout.ColWidth = DefaultLayout().ColWidth
	}
	return layout, nil
}

// LayoutFromFile reads a YAML layout from disk. A missing file is not an
// error; the defaults are returned instead.
func LayoutFromFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultLayout(), nil
		}
		return Layout{}, fmt.Errorf("read sheet layout %s: %w", path, err)
	}
	return LayoutFromYAML(data)
}
