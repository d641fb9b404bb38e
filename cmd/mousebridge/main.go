// SPDX-License-Identifier: Unlicense OR MIT

// Command mousebridge shows the per-tick pointer events produced from
// terminal mouse input. Press Esc or Ctrl-C to quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"gioui.org/mousebridge/app"
	"gioui.org/mousebridge/app/terminal"
	"gioui.org/mousebridge/io/event"
	"gioui.org/mousebridge/io/pointer"
)

var (
	fps     = flag.Int("fps", 30, "ticks per second")
	scroll  = flag.Bool("scroll", true, "emit wheel input as scroll events")
	logFile = flag.String("log", "", "write log messages to `file`")
)

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "mousebridge: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *fps <= 0 {
		return fmt.Errorf("invalid -fps %d", *fps)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}
	logger := log.New(io.Discard, "", 0)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.EnableMouse()

	host := terminal.NewHost(s)
	a := app.NewApp()
	a.AddPlugin(app.NewMousePlugin(host, app.EmitScroll(*scroll), app.Logger(logger)))
	a.AddSystem(newStatus(s, a, logger).update)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return host.Run(ctx)
	})
	g.Go(func() error {
		return a.Run(ctx, time.Second/time.Duration(*fps))
	})
	err = g.Wait()
	if errors.Is(err, terminal.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// status draws the most recent events of every kind.
type status struct {
	s      tcell.Screen
	log    *log.Logger
	motion eventLine[pointer.MotionEvent]
	cursor eventLine[pointer.CursorEvent]
	button eventLine[pointer.ButtonEvent]
	scroll eventLine[pointer.ScrollEvent]
	drawn  bool
}

type eventLine[T event.Event] struct {
	label string
	q     *event.Queue[T]
	last  T
	count int
}

func newStatus(s tcell.Screen, r app.Registry, logger *log.Logger) *status {
	return &status{
		s:      s,
		log:    logger,
		motion: eventLine[pointer.MotionEvent]{label: "motion", q: app.EventsOf[pointer.MotionEvent](r)},
		cursor: eventLine[pointer.CursorEvent]{label: "cursor", q: app.EventsOf[pointer.CursorEvent](r)},
		button: eventLine[pointer.ButtonEvent]{label: "button", q: app.EventsOf[pointer.ButtonEvent](r)},
		scroll: eventLine[pointer.ScrollEvent]{label: "scroll", q: app.EventsOf[pointer.ScrollEvent](r)},
	}
}

// drain consumes the queued events and reports whether there
// were any.
func (l *eventLine[T]) drain() bool {
	evs := l.q.Drain()
	if len(evs) == 0 {
		return false
	}
	l.last = evs[len(evs)-1]
	l.count += len(evs)
	return true
}

func (l *eventLine[T]) String() string {
	if l.count == 0 {
		return fmt.Sprintf("%-7s -", l.label)
	}
	return fmt.Sprintf("%-7s %6d  %+v", l.label, l.count, l.last)
}

func (st *status) update() {
	dirty := st.motion.drain()
	dirty = st.cursor.drain() || dirty
	if st.button.drain() {
		st.log.Printf("button %v", st.button.last)
		dirty = true
	}
	dirty = st.scroll.drain() || dirty
	if !dirty && st.drawn {
		return
	}
	st.drawn = true
	st.s.Clear()
	lines := []string{
		"mousebridge (Esc to quit)",
		"",
		st.motion.String(),
		st.cursor.String(),
		st.button.String(),
		st.scroll.String(),
	}
	for y, l := range lines {
		for x, r := range []rune(l) {
			st.s.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	st.s.Show()
}
