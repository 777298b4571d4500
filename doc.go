// Package rowan is the script-facing contract layer of a 2D game engine,
// built on [Ebitengine].
//
// Rowan provides the frame lifecycle (Load once, Update per frame),
// asynchronous resource loading with an explicit readiness contract, a
// synchronous named event bus, a four-system screen coordinate algebra,
// queued drawing primitives, keyboard and mouse queries, a rolling message
// console, and a value store that survives script reloads.
//
// # Quick start
//
// Implement [Game] and hand it to [Run], which creates the window and game
// loop:
//
//	type myGame struct{ logo *rowan.Handle }
//
//	func (g *myGame) Load(rt *rowan.Runtime) {
//		g.logo = rt.Resources().LoadImage("assets/logo.png")
//	}
//
//	func (g *myGame) Update(rt *rowan.Runtime, dt float64) {
//		c := rt.Canvas()
//		c.Clear(rowan.ColorBlack)
//		vp := c.Viewport()
//		c.DrawImage(g.logo, vp.VW(10, 10), vp.VWVec(30, 30))
//	}
//
//	func main() {
//		rowan.Run(&myGame{}, rowan.Config{Title: "Demo"})
//	}
//
// # Coordinates
//
// Positions and displacements carry the coordinate system they were created
// in: pixels ([Viewport.Px]), normalized device coordinates ([Viewport.GL]),
// percent of viewport width ([Viewport.VW]), or percent of viewport height
// ([Viewport.VH]). All four share one normalized basis internally, so values
// from different systems convert and combine exactly. Positions subtract to
// a [ScreenVector]; vectors add to positions and to each other.
//
// # Resources
//
// [Resources.LoadImage] and friends return a [Handle] immediately and never
// block. Handles move NotLoaded, Loading, Loaded (or a terminal Error), and
// every transition happens at a frame boundary inside the runtime's tick, so
// a handle's status is stable for the whole frame. Readiness is announced on
// the resourceReady system event.
//
// # Events
//
// [Bus.NewEvent] registers named events; [Event.Emit] calls subscribers
// synchronously in subscription order. Built-in events cover key and mouse
// edges, typed text, resource readiness, and console commands; see
// [SystemEvents].
//
// Tweens are provided via [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package rowan
