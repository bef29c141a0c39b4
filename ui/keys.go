package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/crossroads/game"
)

type keyBinding struct {
	key ebiten.Key
	cmd game.Command
}

// bindings maps keys to commands. The arrow names the way the vehicle is
// drawn travelling on screen.
var bindings = []keyBinding{
	{ebiten.KeyArrowDown, game.SpawnNorth},
	{ebiten.KeyArrowUp, game.SpawnSouth},
	{ebiten.KeyArrowRight, game.SpawnEast},
	{ebiten.KeyArrowLeft, game.SpawnWest},
	{ebiten.KeyR, game.SpawnRandom},
	{ebiten.KeyEscape, game.Quit},
}

// commandsFor returns the commands whose key was just pressed, in binding
// order.
func commandsFor(justPressed func(ebiten.Key) bool) []game.Command {
	var cmds []game.Command
	for _, b := range bindings {
		if justPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
