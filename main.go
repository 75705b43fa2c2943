package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/bossrush/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug traces and overlays")
	mute := flag.Bool("mute", false, "start with the background track muted")
	watch := flag.Bool("watch", false, "live-reload pattern scripts and specs from disk")
	pattern := flag.Int("pattern", -1, "skip the intro and start at this pattern index")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	ebiten.SetWindowTitle("bossrush")

	game, err := NewGame(*debug, *mute, *watch, *pattern)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
