package stackup

import (
	"fmt"
	"strings"
)

// FormatThickness renders a thickness for display. Values under 1 mm
// switch to micrometers so thin copper foils stay readable.
func FormatThickness(mm float64) string {
	if mm < 1.0 {
		return trimZeros(fmt.Sprintf("%.1f", mm*1000)) + " µm"
	}
	return trimZeros(fmt.Sprintf("%.2f", mm)) + " mm"
}

// CalloutText renders the standard callout label for a layer:
// "Material - thickness ±tolerance".
func CalloutText(l Layer) string {
	name := l.Material
	if name == "" {
		name = l.Name
	}
	return fmt.Sprintf("%s - %s ±%s",
		name,
		FormatThickness(l.ThicknessMM),
		FormatThickness(Tolerance(l.ThicknessMM)))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
