package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/drift/components"
)

// Renderable is a read-only view of one drawable entity.
type Renderable struct {
	Kind      components.Kind
	Transform components.Transform
	Radius    float64
}

// Renderables appends every drawable entity to dst and returns it.
func (g *Game) Renderables(dst []Renderable) []Renderable {
	pq := g.playerFilter.Query()
	for pq.Next() {
		tr, fp, _ := pq.Get()
		dst = append(dst, Renderable{
			Kind:      components.KindPlayer,
			Transform: *tr,
			Radius:    components.ProxyRadius(*fp, tr.Scale, g.cfg.Player.FallbackRadius),
		})
	}

	oq := g.obstacleFilter.Query()
	for oq.Next() {
		tr, proxy, _ := oq.Get()
		dst = append(dst, Renderable{Kind: components.KindObstacle, Transform: *tr, Radius: proxy.Radius})
	}

	bq := g.projectileFilter.Query()
	for bq.Next() {
		tr, proxy, _ := bq.Get()
		dst = append(dst, Renderable{Kind: components.KindProjectile, Transform: *tr, Radius: proxy.Radius})
	}

	return dst
}

// Draw renders the game.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 10, B: 18, A: 255})

	for _, r := range g.Renderables(nil) {
		g.drawRenderable(r)
	}

	pop := g.Population()
	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Shots: %d  Obstacles: %d", pop.Projectiles, pop.Obstacles), 10, 35, 20, rl.White)
	rl.DrawFPS(10, 60)

	rl.EndDrawing()
}

// drawRenderable draws one entity, plus wrapped copies for the player.
func (g *Game) drawRenderable(r Renderable) {
	p := r2Of(r.Transform.Position)
	if !g.camera.IsVisible(p, r.Radius) {
		return
	}

	switch r.Kind {
	case components.KindPlayer:
		g.drawShip(p, r.Transform.Rotation, r.Radius, rl.SkyBlue)
		for _, ghost := range g.camera.GhostPositions(p, r.Radius) {
			g.drawShip(ghost, r.Transform.Rotation, r.Radius, rl.SkyBlue)
		}
	case components.KindObstacle:
		s := g.camera.WorldToScreen(p)
		rl.DrawCircleLines(int32(s.X), int32(s.Y), float32(r.Radius), rl.Orange)
	case components.KindProjectile:
		s := g.camera.WorldToScreen(p)
		rl.DrawCircle(int32(s.X), int32(s.Y), float32(r.Radius), rl.Yellow)
	}
}

// drawShip renders the player as a triangle pointing along its heading.
// Heading zero faces world +Y.
func (g *Game) drawShip(p r2.Vec, heading, radius float64, color rl.Color) {
	point := func(angle, dist float64) rl.Vector2 {
		w := r2.Vec{X: p.X - math.Sin(angle)*dist, Y: p.Y + math.Cos(angle)*dist}
		s := g.camera.WorldToScreen(w)
		return rl.Vector2{X: float32(s.X), Y: float32(s.Y)}
	}

	v1 := point(heading, radius*1.5)
	v2 := point(heading+math.Pi*0.8, radius)
	v3 := point(heading-math.Pi*0.8, radius)

	// DrawTriangle requires counter-clockwise winding on screen
	rl.DrawTriangle(v1, v2, v3, color)
	rl.DrawTriangleLines(v1, v2, v3, rl.White)
}

func r2Of(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}
