// Package visualize renders a geometry and a set of atom positions to
// a PNG, in the naive font.Drawer/basicfont style the teacher's own
// qrender package uses rather than a vector-graphics library.
package visualize

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/internal/drawutil"
)

const (
	margin    = 20
	scaleDown = 8 // physical coordinate units per rendered pixel
	siteR     = 3
	atomR     = 5
)

var (
	storageColor     = color.RGBA{200, 200, 200, 255}
	interactionColor = color.RGBA{220, 180, 255, 255}
	atomColor        = color.RGBA{30, 90, 200, 255}
	textColor        = color.Black
)

// Frame renders geo's sites (coloured by zone kind) and, when non-nil,
// overlays atoms at the given positions labelled by circuit qubit
// index.
func Frame(geo *geometry.Geometry, atoms []geometry.Point) *image.RGBA {
	maxX, maxY := extent(geo)
	w := int(maxX)/scaleDown + 2*margin
	h := int(maxY)/scaleDown + 2*margin

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	for z := 0; z < geo.NZones(); z++ {
		drawZoneBox(img, geo, geometry.Zone(z))
	}

	for i := 0; i < geo.NSites(); i++ {
		s := geo.Site(geometry.CoordIndex(i))
		col := storageColor
		if geo.ZoneDef(s.Zone).Kind == geometry.InteractionZone {
			col = interactionColor
		}
		px, py := project(s.Pos)
		drawDisc(img, px, py, siteR, col)
	}

	for i, p := range atoms {
		px, py := project(p)
		drawDisc(img, px, py, atomR, atomColor)
		drawText(img, px+atomR+2, py+4, strconv.Itoa(i))
	}

	return img
}

// Encode writes img to w as a PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// drawZoneBox outlines the bounding box of z's sites using the same
// Bresenham line primitive the teacher's drawutil package offers,
// labelled with the zone's name via GateBox's border-plus-rect shape.
func drawZoneBox(img *image.RGBA, geo *geometry.Geometry, z geometry.Zone) {
	sites := geo.SitesInZone(z)
	if len(sites) == 0 {
		return
	}
	var minX, minY, maxX, maxY int64 = sites0(geo, sites)
	for _, idx := range sites[1:] {
		p := geo.Site(idx).Pos
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	x1, y1 := project(geometry.Point{X: minX, Y: minY})
	x2, y2 := project(geometry.Point{X: maxX, Y: maxY})
	x1, y1, x2, y2 = x1-siteR-2, y1-siteR-2, x2+siteR+2, y2+siteR+2

	stroke := color.RGBA{120, 120, 120, 255}
	if geo.ZoneDef(z).Kind == geometry.InteractionZone {
		stroke = color.RGBA{150, 80, 200, 255}
	}
	drawutil.GateBox(img, x1, y1, x2-x1, y2-y1, geo.ZoneDef(z).Name, color.White, stroke)
	drawutil.Line(img, x1, y1-6, x1, y1, stroke) // leader from the label down to the box corner
	drawText(img, x1, y1-8, geo.ZoneDef(z).Name)
}

func sites0(geo *geometry.Geometry, sites []geometry.CoordIndex) (int64, int64, int64, int64) {
	p := geo.Site(sites[0]).Pos
	return p.X, p.Y, p.X, p.Y
}

func extent(geo *geometry.Geometry) (maxX, maxY int64) {
	for i := 0; i < geo.NSites(); i++ {
		p := geo.Site(geometry.CoordIndex(i)).Pos
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxX, maxY
}

func project(p geometry.Point) (int, int) {
	return margin + int(p.X)/scaleDown, margin + int(p.Y)/scaleDown
}

func drawDisc(img *image.RGBA, cx, cy, r int, col color.Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				img.Set(cx+x, cy+y, col)
			}
		}
	}
}

func drawText(img *image.RGBA, x, y int, txt string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(txt)
}
