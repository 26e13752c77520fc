// Package gofoot is a high-level library for writing simple 2D games,
// inspired by the Java teaching library Greenfoot. It wraps Ebitengine
// with an actor/world model: a World holds Actors, every Actor's Act
// method runs once per frame, and rendering and input are handled for
// you. Most types expose their underlying ebiten objects, so anything
// the library doesn't cover can be done with Ebitengine directly.
//
// A minimal game:
//
//	type Player struct {
//		gofoot.Actor
//	}
//
//	func (p *Player) Act() {
//		if gofoot.IsKeyDown("d") {
//			p.X++
//		}
//	}
//
//	func main() {
//		world := gofoot.NewWorld(600, 400)
//		world.AddAt(&Player{}, 300, 200)
//		if err := gofoot.Start(); err != nil {
//			log.Fatal(err)
//		}
//	}
package gofoot
