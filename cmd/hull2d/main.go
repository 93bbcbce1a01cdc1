package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/profile"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/geomlib/hull2d/convex"
)

// Demo of the hull engine. Two gaussian point clusters are generated on
// opposite sides of the origin, each is reduced to its convex hull, and
// the hulls are tested for overlap. The scene is rendered to a PNG
// tinted by the verdict: red when the hulls overlap, green when they
// are clear of each other.
var (
	points = kingpin.Flag("points", "Number of points per cluster.").Default("200").Int()
	seed   = kingpin.Flag("seed", "Random seed for the cluster generator. 0 derives one from the clock.").Default("0").Int64()
	dist   = kingpin.Flag("dist", "Distance of each cluster center from the origin, per axis.").Default("0.5").Float64()
	spread = kingpin.Flag("spread", "Standard deviation of each cluster.").Default("0.15").Float64()
	size   = kingpin.Flag("size", "Output image size in pixels.").Default("500").Int()
	out    = kingpin.Flag("out", "Output PNG path.").Default("/tmp/hull2d_demo.png").String()
	show   = kingpin.Flag("show", "Print the image to the terminal (iTerm only).").Bool()
	prof   = kingpin.Flag("profile", "Write a CPU profile for the run.").Bool()
)

// The world box rendered into the image. Clusters at ±dist with a
// gaussian tail fit comfortably inside ±1.5.
const worldBox = 1.5

func main() {
	kingpin.Parse()
	if *prof {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	chosenSeed := *seed
	if chosenSeed == 0 {
		chosenSeed = time.Now().UnixNano()
	}
	// Echo the seed so any run can be reproduced with --seed
	fmt.Println("Seed:", chosenSeed)

	rng := rand.New(rand.NewSource(chosenSeed))
	a := convex.NewPointSet(convex.DefaultCapacity)
	b := convex.NewPointSet(convex.DefaultCapacity)
	scratch := convex.NewScanStack(convex.DefaultCapacity)

	if err := a.AddPoints(cluster(rng, -*dist, -*dist, *spread, *points)...); err != nil {
		log.Fatalf("cluster A: %v", err)
	}
	if err := b.AddPoints(cluster(rng, *dist, *dist, *spread, *points)...); err != nil {
		log.Fatalf("cluster B: %v", err)
	}
	if err := a.ComputeHull(scratch); err != nil {
		log.Fatalf("cluster A hull: %v", err)
	}
	if err := b.ComputeHull(scratch); err != nil {
		log.Fatalf("cluster B hull: %v", err)
	}

	hit := a.Intersects(b)

	fmt.Println("A:", a)
	fmt.Println("B:", b)
	if hit {
		fmt.Println("Verdict:", aurora.Red("overlap"))
	} else {
		fmt.Println("Verdict:", aurora.Green("clear"))
	}

	render(a, b, hit)
	if *show {
		imgcat.CatFile(*out, os.Stdout)
	}
}

func cluster(rng *rand.Rand, cx, cy, spread float64, n int) []convex.Point {
	pts := make([]convex.Point, n)
	for i := range pts {
		pts[i] = convex.Point{
			X: float32(cx + rng.NormFloat64()*spread),
			Y: float32(cy + rng.NormFloat64()*spread),
		}
	}
	return pts
}

func render(a, b *convex.PointSet, hit bool) {
	c := gg.NewContext(*size, *size)
	if hit {
		c.SetRGB(1, 0.6, 0.6)
	} else {
		c.SetRGB(0.6, 1, 0.6)
	}
	c.Clear()

	// Flip the context so the origin is at the bottom left, then map
	// the world box onto the image
	c.Translate(0, float64(*size))
	scale := float64(*size) / (2 * worldBox)
	c.Scale(scale, -scale)
	c.Translate(worldBox, worldBox)

	drawSet(c, a, scale, 0.2, 0.2, 1)
	drawSet(c, b, scale, 1, 0.6, 0.2)

	if err := c.SavePNG(*out); err != nil {
		log.Fatalf("saving %s: %v", *out, err)
	}
	fmt.Println("Wrote", *out)
}

func drawSet(c *gg.Context, set *convex.PointSet, scale, r, g, b float64) {
	c.SetRGB(r, g, b)
	for _, p := range set.Points() {
		c.DrawCircle(float64(p.X), float64(p.Y), 1.5/scale)
		c.Fill()
	}

	outline := set.Boundary()
	c.MoveTo(float64(outline[0].X), float64(outline[0].Y))
	for _, p := range outline[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	c.ClosePath()
	c.SetLineWidth(2 / scale)
	c.SetRGB(0, 0, 0)
	c.Stroke()

	c.SetRGB(1, 0, 0)
	for _, p := range outline {
		c.DrawCircle(float64(p.X), float64(p.Y), 3/scale)
		c.Fill()
	}
}
