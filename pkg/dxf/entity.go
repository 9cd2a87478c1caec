package dxf

import "strconv"

// DefaultLayer is the layer entities are placed on when none is set.
// Layer "0" always exists in a DXF drawing.
const DefaultLayer = "0"

// Tag is a single DXF tagged pair: a numeric group code and its value in
// the file's text representation.
type Tag struct {
	Code  int
	Value string
}

// Point is a 3D coordinate. DXF is a 3D format; 2D callers write z=0 and
// ignore z when reading.
type Point struct {
	X, Y, Z float64
}

// Entity is a single drawable primitive inside a document.
//
// The interface is closed: the concrete kinds are [Line], [Circle], and
// [Raw]. New primitive types that this package does not model are
// expressed as Raw entities with explicit group codes.
type Entity interface {
	// Type returns the DXF entity type name, e.g. "LINE".
	Type() string

	// tags returns the entity's group codes in write order, excluding
	// the leading (0, type) pair.
	tags() []Tag
}

// Line is a straight segment between two points.
type Line struct {
	Layer string // empty means DefaultLayer
	Start Point  // group codes 10/20/30
	End   Point  // group codes 11/21/31
}

// Type returns "LINE".
func (l *Line) Type() string { return "LINE" }

func (l *Line) tags() []Tag {
	return append(layerTag(l.Layer),
		coordTag(10, l.Start.X), coordTag(20, l.Start.Y), coordTag(30, l.Start.Z),
		coordTag(11, l.End.X), coordTag(21, l.End.Y), coordTag(31, l.End.Z),
	)
}

// Circle is a full circle defined by center and radius.
type Circle struct {
	Layer  string // empty means DefaultLayer
	Center Point  // group codes 10/20/30
	Radius float64
}

// Type returns "CIRCLE".
func (c *Circle) Type() string { return "CIRCLE" }

func (c *Circle) tags() []Tag {
	return append(layerTag(c.Layer),
		coordTag(10, c.Center.X), coordTag(20, c.Center.Y), coordTag(30, c.Center.Z),
		coordTag(40, c.Radius),
	)
}

// Raw is an entity kind this package does not model. It preserves the
// entity's group codes exactly as read so the document can be rewritten
// or inspected without loss.
type Raw struct {
	Name string
	Tags []Tag
}

// Type returns the entity's DXF type name.
func (r *Raw) Type() string { return r.Name }

func (r *Raw) tags() []Tag { return r.Tags }

// Document is an in-memory DXF drawing: an ordered list of entities.
// Order is preserved through read and write.
type Document struct {
	Entities []Entity
}

// Append adds entities to the end of the document.
func (d *Document) Append(entities ...Entity) {
	d.Entities = append(d.Entities, entities...)
}

func layerTag(layer string) []Tag {
	if layer == "" {
		layer = DefaultLayer
	}
	return []Tag{{Code: 8, Value: layer}}
}

// coordTag formats a float with the shortest representation that parses
// back to the identical value, so documents round-trip exactly.
func coordTag(code int, v float64) Tag {
	return Tag{Code: code, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}
