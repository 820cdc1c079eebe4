package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()
	if *recordDefaultPGO {
		stop, err := recordCPUProfile("default.pgo", pgoRecordDuration)
		if err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
		defer stop()
	}

	g := newGame()
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle("EM Wave Lab")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
