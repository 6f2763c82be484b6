package main

import (
	"flag"
	"log"

	"github.com/pkg/profile"

	"github.com/avoronkov/famicore/internal/nes"
	"github.com/avoronkov/famicore/internal/ui"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES cartridge file")
	profiling := flag.Bool("profile", false, "write a CPU profile to the current directory")
	trace := flag.Bool("trace", false, "log every executed instruction")
	flag.Parse()

	if *romPath == "" && flag.NArg() > 0 {
		*romPath = flag.Arg(0)
	}
	if *romPath == "" {
		log.Fatalln("usage: famicore [-profile] [-trace] <rom.nes>")
	}

	if *profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cart, err := nes.NewCartFromFile(*romPath)
	if err != nil {
		log.Fatalf("couldn't load the cartridge: %s\n", err)
	}

	bus := nes.NewBus()
	bus.LoadCart(cart)

	if *trace {
		bus.SetTracer(func(ti nes.TraceInfo) {
			log.Println(ti.String())
		})
	}

	if err := ui.RunUI(ui.New(bus)); err != nil {
		log.Fatalf("ui: %s\n", err)
	}
}
