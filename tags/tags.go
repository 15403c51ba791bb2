package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Crate    = donburi.NewTag().SetName("Crate")
	Wall     = donburi.NewTag().SetName("Wall")
	Platform = donburi.NewTag().SetName("Platform")
	Sensor   = donburi.NewTag().SetName("Sensor")
)
