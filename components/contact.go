package components

import "github.com/yohamta/donburi"

// ContactData counts down frames since this entity's body last reported a
// collision. Fed by the body's collision handler, decayed by
// UpdateContacts, read by the renderer.
type ContactData struct {
	Timer int
}

var Contact = donburi.NewComponentType[ContactData]()
