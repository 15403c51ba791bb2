package components

import "github.com/yohamta/donburi"

// PlatformData anchors a moving platform's tween to its rest position.
type PlatformData struct {
	BaseY float64
}

var Platform = donburi.NewComponentType[PlatformData]()
