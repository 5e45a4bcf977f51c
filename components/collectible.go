package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	// Collectible is cleared on the first player contact.
	Collectible bool
}

var Collectible = donburi.NewComponentType[CollectibleData]()
