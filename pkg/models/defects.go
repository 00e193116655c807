// Package models pkg/models/defects.go
package models

import "strings"

// DefectNames maps defect type tags to the human-readable names used in
// notification texts. Unknown tags fall through as-is.
var DefectNames = map[string]string{
	"segment_off":     "Segment off",
	"no_display":      "No display",
	"color_shift":     "Color shift",
	"flicker":         "Flicker",
	"physical_damage": "Physical damage",
}

// DefectLabel renders a defect tag list for a notification subject or body.
func DefectLabel(types []string) string {
	names := make([]string, 0, len(types))

	for _, t := range types {
		if name, ok := DefectNames[t]; ok {
			names = append(names, name)
		} else {
			names = append(names, t)
		}
	}

	return strings.Join(names, ", ")
}
