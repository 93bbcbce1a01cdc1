package convex

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/geomlib/hull2d/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Helper to draw and print a point set in the terminal (iTerm only) for
// debugging. Samples are drawn as small dots; once the hull is computed
// the outline is stroked on top with its vertices emphasized.
func (s *PointSet) dbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range s.points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	dotRadius := 2 / scale
	c.SetRGB(0, 1, 1)
	for _, p := range s.points {
		c.DrawCircle(float64(p.X), float64(p.Y), dotRadius)
		c.Fill()
	}

	if !s.dirty {
		first := s.boundaryPoint(0)
		c.MoveTo(float64(first.X), float64(first.Y))
		for i := 1; i < len(s.boundary); i++ {
			p := s.boundaryPoint(i)
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
		c.SetLineWidth(2 / scale)
		c.SetRGB(0, 1, 0)
		c.Stroke()

		c.SetRGB(1, 0, 0)
		for i := range s.boundary {
			p := s.boundaryPoint(i)
			c.DrawCircle(float64(p.X), float64(p.Y), dotRadius*2)
			c.Fill()
		}
	}

	c.SavePNG("/tmp/pointset.png")
	imgcat.CatFile("/tmp/pointset.png", os.Stdout)
}

func (s *PointSet) String() string {
	return fmt.Sprintf("PointSet %s {points: %d, boundary: %d, dirty: %v}",
		s.DbgName(), len(s.points), len(s.boundary), s.dirty)
}

func (s *PointSet) DbgName() string {
	// If the set can't form a hull yet, color it cyan
	name := dbg.Name(s)
	if len(s.points) < 3 { // Too small for any hull
		name = aurora.Cyan(name).String()
	} else if s.dirty { // Boundary out of date
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
