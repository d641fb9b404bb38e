// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app connects a host event source to a tick-driven
application.

A [Host] delivers mouse callbacks whenever the environment fires
them; an [App] runs its systems once per tick. [MousePlugin] joins
the two: it attaches listeners that feed an input.Accumulator and
registers a system that drains it into event queues every tick.

	a := app.NewApp()
	a.AddPlugin(app.NewMousePlugin(host))
	motion := app.EventsOf[pointer.MotionEvent](a)
	for {
		a.Update()
		for _, e := range motion.Drain() {
			...
		}
	}

Listeners are attached once and never removed; the plugin is meant
to live as long as the process.

On js/wasm, [NewBrowserHost] returns a Host backed by the document
body.
*/
package app
