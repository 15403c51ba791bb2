package components

import "github.com/yohamta/donburi"

// HighlightData marks an entity as inside the player's query radius this
// frame.
type HighlightData struct {
	Active bool
}

var Highlight = donburi.NewComponentType[HighlightData]()
