// Package core contains the small shared vocabulary of a match: seats,
// actions and the runtime configuration.
package core

// RuntimeConfig contains configuration passed to a match at construction.
// The face count defines the action space 1..Faces for the whole match.
type RuntimeConfig struct {
	Faces int   // Number of faces, i.e. the highest legal guess
	Seed  int64 // RNG seed for deterministic secret and CPU guesses
}

// DefaultFaces is the face count used when nothing else is configured.
const DefaultFaces = 6

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Faces: DefaultFaces,
		Seed:  0, // 0 means use current time
	}
}
