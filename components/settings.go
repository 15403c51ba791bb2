package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles persisted across runs.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
