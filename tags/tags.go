package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Foot        = donburi.NewTag().SetName("Foot")
	Ground      = donburi.NewTag().SetName("Ground")
	Platform    = donburi.NewTag().SetName("Platform")
	Collectible = donburi.NewTag().SetName("Collectible")
)
