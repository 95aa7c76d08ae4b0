// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package transform

import "math"

// pearson computes the Pearson correlation coefficient of two value series.
// Mismatched lengths, empty input, or zero variance on either side yield 0.
func pearson(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) == 0 {
		return 0
	}

	meanX := sum(xs) / float64(len(xs))
	meanY := sum(ys) / float64(len(ys))

	var numerator, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		numerator += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denominator := math.Sqrt(varX * varY)
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
