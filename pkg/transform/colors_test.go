// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package transform

import (
	"reflect"
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestColorsFromPalette(t *testing.T) {
	if got := Colors(0); got != nil {
		t.Errorf("Colors(0) = %v, want nil", got)
	}
	if got := Colors(3); !reflect.DeepEqual(got, basePalette[:3]) {
		t.Errorf("Colors(3) = %v", got)
	}
	if got := Colors(15); !reflect.DeepEqual(got, basePalette) {
		t.Errorf("Colors(15) should be the full palette")
	}
}

func TestColorsGenerated(t *testing.T) {
	colors := Colors(40)
	if len(colors) != 40 {
		t.Fatalf("Colors(40) len = %d", len(colors))
	}

	seen := map[string]int{}
	for i, c := range colors {
		if !hexColor.MatchString(c) {
			t.Errorf("color %d = %q, not a hex token", i, c)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("color %d duplicates color %d (%s)", i, prev, c)
		}
		seen[c] = i
	}

	// Generation is deterministic.
	if !reflect.DeepEqual(colors, Colors(40)) {
		t.Error("Colors is not deterministic")
	}
}

func TestColorsDoesNotAliasPalette(t *testing.T) {
	colors := Colors(2)
	colors[0] = "mutated"
	if basePalette[0] == "mutated" {
		t.Error("Colors leaked the palette backing array")
	}
}
