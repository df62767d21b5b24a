package config

// DifficultyPreset represents a named difficulty level.
// Harder presets widen the range of numbers to guess from.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// Presets lists the named presets in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// FacesForPreset returns the face count for a preset. Custom and unknown
// presets report false and leave the configured faces in effect.
func FacesForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 3, true
	case DifficultyNormal:
		return 6, true
	case DifficultyHard:
		return 10, true
	default:
		return 0, false
	}
}

// ApplyPreset sets the difficulty and, for named presets, the face count.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
	if faces, ok := FacesForPreset(preset); ok {
		cfg.Faces = faces
	}
}
