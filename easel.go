package easel

import (
	"fmt"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// A zero alpha means fully transparent; resolved background colors with zero
// alpha are treated as "no background".
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// ParseColor parses a hex color string of the form "#RGB", "#RRGGBB" or
// "#RRGGBBAA". The leading '#' is required. Alpha defaults to opaque.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("parse color %q: missing '#' prefix", s)
	}
	hex := s[1:]
	var r, g, b uint8
	a := uint8(0xff)
	var err error
	switch len(hex) {
	case 3:
		var r4, g4, b4 uint8
		if r4, err = hexNibble(hex[0]); err == nil {
			if g4, err = hexNibble(hex[1]); err == nil {
				b4, err = hexNibble(hex[2])
			}
		}
		r, g, b = r4*17, g4*17, b4*17
	case 8:
		if a, err = hexByte(hex[6], hex[7]); err != nil {
			break
		}
		fallthrough
	case 6:
		if r, err = hexByte(hex[0], hex[1]); err == nil {
			if g, err = hexByte(hex[2], hex[3]); err == nil {
				b, err = hexByte(hex[4], hex[5])
			}
		}
	default:
		err = fmt.Errorf("length %d", len(hex))
	}
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func hexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", c)
}

func hexByte(hi, lo byte) (uint8, error) {
	h, err := hexNibble(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexNibble(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

// Point is a 2D point or vector. Whether its coordinates are world units or
// device pixels depends on context: Segment geometry is world by default,
// device when the owning Object is device-relative.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. In device space the origin is at the
// top-left with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromCorners returns the canonical rectangle spanning the two corner
// points, regardless of their order.
func RectFromCorners(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X:      math.Min(x0, x1),
		Y:      math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Overlaps reports whether r and other share interior area. Unlike
// Intersects, rectangles that only touch along an edge do not overlap.
// The annotation layout pass uses this test, so labels may abut.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.X+r.Width, other.X+other.Width)
	y1 := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Button identifies a pointer button in the interaction vocabulary.
type Button uint8

const (
	ButtonNone Button = iota // no button (motion events)
	Button1                  // primary button
	Button2                  // secondary button
)

// EventKind identifies one of the interaction events delivered to the active
// Interaction. The vocabulary is closed: handlers can exhaustively switch on
// it and the dispatcher never emits anything else.
type EventKind uint8

const (
	EventButton1Down EventKind = iota // primary button pressed
	EventButton1Drag                  // pointer moved with primary button held
	EventButton1Up                    // primary button released
	EventButton2Down                  // secondary button pressed
	EventButton2Drag                  // pointer moved with secondary button held
	EventButton2Up                    // secondary button released
	EventMotion                       // pointer moved with no button held
)

// KeyModifiers is a bitmask of keyboard modifier keys held during an event.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Visibility is a two-bit mask controlling which halves of an Object's
// content participate in painting and hit-testing. Data geometry and
// annotation labels toggle independently.
type Visibility uint8

const (
	VisibleData       Visibility = 1 << iota // segment geometry is painted and hit-testable
	VisibleAnnotation                        // annotation labels are laid out and painted

	// VisibleAll shows both halves. It is the default for new Objects.
	VisibleAll = VisibleData | VisibleAnnotation
)

// Anchor is a bitmask of placement hints for an Annotation, combined with
// bitwise OR. Side flags (AnchorTop, AnchorBottom, AnchorLeft, AnchorRight)
// select which side of the reference point the label sits on. Compass flags
// (AnchorNorth, AnchorSouth, AnchorEast, AnchorWest) slide the label along
// the remaining free axis, so AnchorTop|AnchorNorth puts the label above and
// to the left. AnchorCenter and AnchorMiddle center the horizontal and
// vertical axes respectively; an axis with no flag at all is centered too.
type Anchor uint16

const (
	AnchorTop    Anchor = 1 << iota // above the reference point
	AnchorBottom                    // below the reference point
	AnchorLeft                      // left of the reference point
	AnchorRight                     // right of the reference point
	AnchorNorth                     // slide toward -Y/-X on the free axis
	AnchorSouth                     // slide toward +Y/+X on the free axis
	AnchorEast                      // slide toward +X on the free axis
	AnchorWest                      // slide toward -X on the free axis
	AnchorCenter                    // center horizontally
	AnchorMiddle                    // center vertically
	AnchorFirst                     // anchor at the first geometry vertex
	AnchorLast                      // anchor at the last geometry vertex

	// AnchorDynamic allows the layout pass to probe fallback placements
	// around the anchor when the preferred spot is occupied. Without it the
	// label is placed at its preferred spot or suppressed.
	AnchorDynamic

	// AnchorStatic is the default: no fallback probing.
	AnchorStatic Anchor = 0
)

// FillPattern selects how a closed Segment outline is filled.
type FillPattern uint8

const (
	FillNone       FillPattern = iota // outline only (default)
	FillSolid                         // solid interior fill
	FillStripe                        // diagonal stripes
	FillCrosshatch                    // crossed diagonal stripes
)

// CapStyle selects the stroke end-cap for open polylines.
type CapStyle uint8

const (
	CapButt   CapStyle = iota // flat end at the last vertex (default)
	CapRound                  // semicircular end
	CapSquare                 // flat end extended by half the line width
)

// MarkerPlacement controls where a Segment's marker image is stamped.
type MarkerPlacement uint8

const (
	MarkerAtVertices MarkerPlacement = iota // one stamp centered on every vertex
	MarkerAtAnchor                          // a single stamp at the marker's anchor point
)
