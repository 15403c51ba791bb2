package config

// WindowConfig contains the window and frame settings for the sandbox.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PhysicsConfig contains the process-scoped physics settings.
type PhysicsConfig struct {
	CellSize   float64 // broad-phase grid cell size in pixels
	GravityX   float64
	GravityY   float64
	Iterations int // resolver passes per step
}

// PlayerConfig contains player movement and interaction values.
type PlayerConfig struct {
	Speed        float64 // movement speed in pixels per second
	Width        float64
	Height       float64
	NudgeRange   float64 // max raycast distance for the nudge action
	NudgeImpulse float64 // velocity imparted to a nudged body
	QueryRadius  float64 // highlight radius around the player
}

// CrateConfig contains crate sizing and drag values.
type CrateConfig struct {
	Size float64
	Drag float64 // per-second velocity decay factor
}

var C WindowConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Crate CrateConfig

func init() {
	C = WindowConfig{
		Width:  960,
		Height: 640,
		Title:  "shove sandbox",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		CellSize:   64,
		Iterations: 1,
	}

	Player = PlayerConfig{
		Speed:        220,
		Width:        24,
		Height:       24,
		NudgeRange:   240,
		NudgeImpulse: 320,
		QueryRadius:  120,
	}

	Crate = CrateConfig{
		Size: 32,
		Drag: 4,
	}
}
