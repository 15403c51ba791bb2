package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata"
	"github.com/sundog-games/shove/components"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings is the settings blob stored on disk.
type SavedSettings struct {
	Debug bool `json:"debug"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for settings. A failure disables
// persistence but never the game.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shove",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads saved settings, returning nil when none exist.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes the settings blob, best effort.
func SaveSettings(settings SavedSettings) {
	if gdataManager == nil {
		return
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// UpdateSettings toggles the debug overlay on F1 and persists the change.
func UpdateSettings(e *ecs.ECS) {
	settingsEntry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(settingsEntry)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.Debug = !settings.Debug
		SaveSettings(SavedSettings{Debug: settings.Debug})
	}
}
