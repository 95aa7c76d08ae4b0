// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package report

import (
	"fmt"
	"strings"

	"github.com/teradata-labs/sheetviz/pkg/capture"
)

// ChartImageWidth is the fixed display width of embedded chart images, in
// points. Height follows the captured aspect ratio in the assembler.
const ChartImageWidth = 500

const sectionIntroText = "The following charts were automatically generated " +
	"based on AI analysis of your data. These visualizations highlight key " +
	"patterns, trends, and insights found in the dataset."

// BuildChartSection assembles the charts section of the report: a section
// header, an introductory paragraph, then one page per captured chart with
// its title, optional description, image, and a chart-type caption. An empty
// image list yields no blocks at all, so the final document never carries an
// empty "Data Visualizations" heading.
func BuildChartSection(images []capture.ImageAsset, theme *Theme) []Block {
	if len(images) == 0 {
		return nil
	}

	blocks := []Block{
		{
			Type:            BlockText,
			Text:            "Data Visualizations",
			Style:           "sectionHeader",
			PageBreakBefore: true,
		},
		{
			Type:   BlockText,
			Text:   sectionIntroText,
			Style:  "sectionIntro",
			Margin: &Margins{0, 0, 0, 20},
		},
	}

	for i, img := range images {
		if i > 0 {
			blocks = append(blocks, Block{Type: BlockPageBreak, PageBreakBefore: true})
		}

		blocks = append(blocks, Block{
			Type:   BlockText,
			Text:   img.Title,
			Style:  "chartTitle",
			Margin: &Margins{0, 20, 0, 10},
		})

		if img.Description != "" {
			blocks = append(blocks, Block{
				Type:   BlockText,
				Text:   img.Description,
				Style:  "chartDescription",
				Margin: &Margins{0, 0, 0, 15},
			})
		}

		blocks = append(blocks, Block{
			Type:      BlockImage,
			Image:     img.ImageData,
			Width:     ChartImageWidth,
			Alignment: "center",
			Margin:    &Margins{0, 0, 0, 20},
		})

		blocks = append(blocks, Block{
			Type:      BlockText,
			Text:      fmt.Sprintf("Chart Type: %s", strings.ToUpper(img.ChartType)),
			Style:     "chartMeta",
			Alignment: "center",
			Margin:    &Margins{0, 0, 0, 10},
		})
	}

	return blocks
}

// ChartsUnavailableNotice is the fallback emitted when capture failed for
// every chart: the export still completes, with an explanatory note in place
// of the visualizations.
func ChartsUnavailableNotice(theme *Theme) []Block {
	return []Block{
		{
			Type:            BlockText,
			Text:            "Data Visualizations",
			Style:           "sectionHeader",
			PageBreakBefore: true,
		},
		{
			Type: BlockText,
			Text: "Charts could not be captured for this report. The " +
				"analysis below is complete; re-run the export to include " +
				"visualizations.",
			Style:  "chartsNotice",
			Margin: &Margins{0, 10, 0, 0},
		},
	}
}
