// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package report assembles captured chart assets into generic document
// blocks for the external PDF assembler, styled through a swappable theme.
package report

// BlockType discriminates the document-block variants the PDF assembler
// understands.
type BlockType string

const (
	BlockText      BlockType = "text"
	BlockImage     BlockType = "image"
	BlockPageBreak BlockType = "pageBreak"
)

// Margins is the left/top/right/bottom spacing around a block, in points.
type Margins [4]int

// Block is one generic document-block descriptor. The assembler
// concatenates blocks from all report sections into the final document.
type Block struct {
	Type      BlockType `json:"type"`
	Text      string    `json:"text,omitempty"`
	Image     []byte    `json:"image,omitempty"`
	Style     string    `json:"style,omitempty"`
	Alignment string    `json:"alignment,omitempty"`
	Width     int       `json:"width,omitempty"`
	Margin    *Margins  `json:"margin,omitempty"`

	// PageBreakBefore forces the block onto a new page.
	PageBreakBefore bool `json:"pageBreakBefore,omitempty"`
}

// TextStyle is one named style entry handed to the assembler alongside the
// blocks.
type TextStyle struct {
	FontSize  int    `json:"fontSize"`
	Bold      bool   `json:"bold,omitempty"`
	Italics   bool   `json:"italics,omitempty"`
	Color     string `json:"color"`
	Alignment string `json:"alignment,omitempty"`
}

// Theme carries the colors and font sizes used by the charts section.
// Missing values fall back to the defaults at build time.
type Theme struct {
	SectionHeaderColor string
	SectionHeaderSize  int
	SectionIntroColor  string
	SectionIntroSize   int
	ChartTitleColor    string
	ChartTitleSize     int
	DescriptionColor   string
	DescriptionSize    int
	MetaColor          string
	MetaSize           int
	NoticeColor        string
	NoticeSize         int
}

// DefaultTheme returns the built-in styling used when no theme is supplied.
func DefaultTheme() *Theme {
	return &Theme{
		SectionHeaderColor: "#1f2937",
		SectionHeaderSize:  18,
		SectionIntroColor:  "#4b5563",
		SectionIntroSize:   11,
		ChartTitleColor:    "#2563eb",
		ChartTitleSize:     16,
		DescriptionColor:   "#6b7280",
		DescriptionSize:    12,
		MetaColor:          "#9ca3af",
		MetaSize:           10,
		NoticeColor:        "#b45309",
		NoticeSize:         11,
	}
}

// merged fills zero-valued theme fields from the defaults so a partially
// specified theme still renders.
func (t *Theme) merged() *Theme {
	def := DefaultTheme()
	if t == nil {
		return def
	}
	out := *t
	if out.SectionHeaderColor == "" {
		out.SectionHeaderColor = def.SectionHeaderColor
	}
	if out.SectionHeaderSize == 0 {
		out.SectionHeaderSize = def.SectionHeaderSize
	}
	if out.SectionIntroColor == "" {
		out.SectionIntroColor = def.SectionIntroColor
	}
	if out.SectionIntroSize == 0 {
		out.SectionIntroSize = def.SectionIntroSize
	}
	if out.ChartTitleColor == "" {
		out.ChartTitleColor = def.ChartTitleColor
	}
	if out.ChartTitleSize == 0 {
		out.ChartTitleSize = def.ChartTitleSize
	}
	if out.DescriptionColor == "" {
		out.DescriptionColor = def.DescriptionColor
	}
	if out.DescriptionSize == 0 {
		out.DescriptionSize = def.DescriptionSize
	}
	if out.MetaColor == "" {
		out.MetaColor = def.MetaColor
	}
	if out.MetaSize == 0 {
		out.MetaSize = def.MetaSize
	}
	if out.NoticeColor == "" {
		out.NoticeColor = def.NoticeColor
	}
	if out.NoticeSize == 0 {
		out.NoticeSize = def.NoticeSize
	}
	return &out
}

// Styles returns the named style table for the charts section under the
// given theme, for the assembler's document definition.
func Styles(theme *Theme) map[string]TextStyle {
	t := theme.merged()
	return map[string]TextStyle{
		"sectionHeader": {
			FontSize: t.SectionHeaderSize,
			Bold:     true,
			Color:    t.SectionHeaderColor,
		},
		"sectionIntro": {
			FontSize: t.SectionIntroSize,
			Color:    t.SectionIntroColor,
		},
		"chartTitle": {
			FontSize:  t.ChartTitleSize,
			Bold:      true,
			Color:     t.ChartTitleColor,
			Alignment: "center",
		},
		"chartDescription": {
			FontSize:  t.DescriptionSize,
			Italics:   true,
			Color:     t.DescriptionColor,
			Alignment: "center",
		},
		"chartMeta": {
			FontSize: t.MetaSize,
			Color:    t.MetaColor,
		},
		"chartsNotice": {
			FontSize: t.NoticeSize,
			Italics:  true,
			Color:    t.NoticeColor,
		},
	}
}
