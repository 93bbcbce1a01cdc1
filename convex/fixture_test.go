package convex

import (
	"embed"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Point cloud fixtures live in this fixtures/ directory as SVG files,
// each holding a single polygon element whose vertices are the
// samples. This is not a full (or even correct) svg parser; it finds
// the one polygon and reads its points attribute. If anything goes
// wrong, it bails out.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	points := []Point{}
	for _, pointString := range strings.Split(polygons[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}
		coordStrings := strings.Split(pointString, ",")
		if len(coordStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordStrings[0], 32)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordStrings[0], err)
		}
		y, err := strconv.ParseFloat(coordStrings[1], 32)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordStrings[1], err)
		}
		points = append(points, Point{float32(x), float32(y)})
	}
	return points
}

func TestComputeHull_DiamondFixture(t *testing.T) {
	set := NewPointSet(DefaultCapacity)
	require.NoError(t, set.AddPoints(loadFixture("diamond")...))
	require.NoError(t, set.ComputeHull(NewScanStack(set.Cap())))

	// The three interior points collapse away, leaving the corners
	assert.Equal(t, []Point{{2, 0}, {4, 2}, {2, 4}, {0, 2}}, set.Boundary())
	AssertValidHull(t, set)
}

func TestComputeHull_RidgeFixture(t *testing.T) {
	set := NewPointSet(DefaultCapacity)
	require.NoError(t, set.AddPoints(loadFixture("ridge")...))

	err := set.ComputeHull(NewScanStack(set.Cap()))
	assert.ErrorIs(t, err, ErrTooFewPoints)
	assert.True(t, set.Dirty())
}

func TestComputeHull_ScatterFixture(t *testing.T) {
	set := NewPointSet(DefaultCapacity)
	require.NoError(t, set.AddPoints(loadFixture("scatter")...))
	require.NoError(t, set.ComputeHull(NewScanStack(set.Cap())))
	AssertValidHull(t, set)
}
