// SPDX-License-Identifier: Unlicense OR MIT

//go:build js && wasm

// Command mousebridge-web logs the per-tick pointer events of the page
// to the browser console.
package main

import (
	"context"
	"log"
	"time"

	"gioui.org/mousebridge/app"
	"gioui.org/mousebridge/io/pointer"
)

func main() {
	a := app.NewApp()
	a.AddPlugin(app.NewMousePlugin(app.NewBrowserHost()))
	motion := app.EventsOf[pointer.MotionEvent](a)
	cursor := app.EventsOf[pointer.CursorEvent](a)
	buttons := app.EventsOf[pointer.ButtonEvent](a)
	scroll := app.EventsOf[pointer.ScrollEvent](a)
	a.AddSystem(func() {
		for _, e := range motion.Drain() {
			log.Printf("motion %v", e.Delta)
		}
		for _, e := range cursor.Drain() {
			log.Printf("cursor %v", e.Position)
		}
		for _, e := range buttons.Drain() {
			log.Printf("button %v", e)
		}
		for _, e := range scroll.Drain() {
			log.Printf("scroll %d", e.Delta)
		}
	})
	log.Fatal(a.Run(context.Background(), time.Second/60))
}
