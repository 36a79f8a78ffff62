package main

// QualityPreset bundles the Manim flag for a resolution/framerate combination
// with the text printed for it and the output subdirectory Manim names after
// it.
type QualityPreset struct {
	Flag        string
	Description string
	Dir         string
}

var (
	presetLow    = QualityPreset{"-ql", "LOW quality (480p, 15fps)", "480p15"}
	presetMedium = QualityPreset{"-qm", "MEDIUM quality (720p, 30fps)", "720p30"}
	presetHigh   = QualityPreset{"-qh", "HIGH quality (1080p, 60fps)", "1080p60"}
	preset4K     = QualityPreset{"-qk", "4K quality (2160p, 60fps)", "2160p60"}

	// Fallback for keywords outside the table.
	presetDefault = QualityPreset{"-ql", "LOW quality (default)", "480p15"}
)

// presets maps every accepted keyword onto its preset. Matching is exact and
// case-sensitive.
var presets = map[string]QualityPreset{
	"low": presetLow, "l": presetLow, "ql": presetLow,
	"medium": presetMedium, "m": presetMedium, "qm": presetMedium,
	"high": presetHigh, "h": presetHigh, "qh": presetHigh,
	"4k": preset4K, "k": preset4K, "qk": preset4K,
}

// resolvePreset never fails; unknown keywords fall back to low quality so
// there is always something renderable.
func resolvePreset(keyword string) QualityPreset {
	if preset, ok := presets[keyword]; ok {
		return preset
	}
	return presetDefault
}
