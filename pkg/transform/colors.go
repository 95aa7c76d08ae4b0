// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package transform

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// basePalette holds the first 15 series colors, curated for print legibility
// and mutual contrast in PDF output.
var basePalette = []string{
	"#e76f51", "#2a9d8f", "#f4a261", "#e9c46a", "#264653",
	"#8b5cf6", "#10b981", "#f59e0b", "#ef4444", "#f97316",
	"#06b6d4", "#8b5a2b", "#84cc16", "#ec4899", "#6366f1",
}

// Colors returns n series color tokens. The first 15 come from the curated
// palette; beyond that, hues step by the golden angle with small cyclic
// variation in saturation and lightness, keeping generated colors visually
// distinct without repetition. Output is deterministic for a given n.
func Colors(n int) []string {
	if n <= 0 {
		return nil
	}
	if n <= len(basePalette) {
		out := make([]string, n)
		copy(out, basePalette[:n])
		return out
	}

	out := make([]string, 0, n)
	out = append(out, basePalette...)
	for i := len(basePalette); i < n; i++ {
		hue := math.Mod(float64(i)*137.5, 360)
		saturation := float64(60+(i%3)*15) / 100
		lightness := float64(45+(i%4)*10) / 100
		out = append(out, colorful.Hsl(hue, saturation, lightness).Hex())
	}
	return out
}
