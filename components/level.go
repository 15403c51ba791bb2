package components

import (
	"github.com/sundog-games/shove/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
