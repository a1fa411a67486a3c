package core

import "testing"

func TestColorBright(t *testing.T) {
	if ColorRed.Bright() != ColorBrightRed {
		t.Errorf("ColorRed.Bright() = %v, expected ColorBrightRed", ColorRed.Bright())
	}
	if ColorOrange.Bright() != ColorOrange {
		t.Errorf("ColorOrange.Bright() = %v, expected unchanged", ColorOrange.Bright())
	}
}
