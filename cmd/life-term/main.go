// Command life-term runs the simulation in a terminal.
package main

import (
	"flag"
	"log"
	"strconv"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fit := flag.Bool("fit", true, "size the grid to the terminal unless rows/cols are set")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	simCfg, err := cfg.SimConfig()
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	if *fit {
		w, h := screen.Size()
		rows, cols := gridForTerminal(w, h)
		if _, ok := simCfg["rows"]; !ok {
			simCfg["rows"] = strconv.Itoa(rows)
		}
		if _, ok := simCfg["cols"]; !ok {
			simCfg["cols"] = strconv.Itoa(cols)
		}
	}
	sim, err := core.NewSim(cfg.Sim, simCfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	session := app.NewSession(cfg.Interval)
	err = run(screen, sim, session, cfg.TPS)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("session %s: %d iterations", session.ID, session.Iterations)
}

func run(screen tcell.Screen, sim core.Sim, session *app.Session, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	frame := time.NewTicker(time.Second / time.Duration(tps))
	defer frame.Stop()

	painter := newPainter(sim)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if handleKey(ev, session) {
					close(quit)
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-frame.C:
			session.Tick(sim, now)
			painter.draw(screen, app.StatusLines(sim, session))
		}
	}
}

// handleKey applies a key press to the session and reports whether to quit.
func handleKey(ev *tcell.EventKey, session *app.Session) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		session.Faster()
	case tcell.KeyDown:
		session.Slower()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			session.TogglePause()
		case 'n':
			session.RequestStep()
		case 'r':
			session.RequestReset(0)
		case 's':
			session.RequestReset(time.Now().UnixNano())
		case '+':
			session.Faster()
		case '-':
			session.Slower()
		}
	}
	return false
}
