package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render/update layer the sandbox uses.
const Default = ecs.LayerID(0)
