// Package shape defines the native drawing representation: a flat,
// string-tagged variant over 2D geometric primitives, and the JSON codec
// used for the native file format.
//
// # Schema
//
// A drawing is an ordered collection of shapes. Each shape carries a
// shape_type discriminator and only the fields its type requires:
//
//	[
//	  {"shape_type": "line",
//	   "start": {"x": 0, "y": 0}, "end": {"x": 10, "y": 5},
//	   "center": null, "radius": null, "points": null},
//	  {"shape_type": "circle",
//	   "start": null, "end": null,
//	   "center": {"x": 3, "y": 4}, "radius": 2.5, "points": null}
//	]
//
// Absent fields are serialized as explicit nulls so files stay
// byte-compatible with drawings written by earlier versions of the
// application. Unknown shape_type values decode without error; they are
// preserved in the collection and ignored by converters that don't
// recognize them. This keeps saved files forward-compatible.
package shape

// Shape type tags recognized by the built-in converters.
const (
	TypeLine   = "line"
	TypeCircle = "circle"
)

// Point is a 2D coordinate pair. The drawing plane is strictly 2D; formats
// with a third axis (DXF) write z=0 and drop it on the way back in.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is a tagged variant over drawable primitives. Type selects the
// variant; the remaining fields are populated per type:
//
//   - "line": Start and End
//   - "circle": Center and Radius
//   - future polyline-style types: Points
//
// A shape whose declared type is recognized but whose required fields are
// nil is structurally incomplete. It is still a valid Shape value (it
// round-trips through JSON) but contributes nothing when converted to
// other formats.
type Shape struct {
	Type   string   `json:"shape_type"`
	Start  *Point   `json:"start"`
	End    *Point   `json:"end"`
	Center *Point   `json:"center"`
	Radius *float64 `json:"radius"`
	Points []Point  `json:"points"`
}

// Collection is an ordered sequence of shapes. Order is draw order and is
// preserved end-to-end through every codec and converter.
type Collection []Shape

// NewLine returns a complete line shape from start to end.
func NewLine(start, end Point) Shape {
	return Shape{Type: TypeLine, Start: &start, End: &end}
}

// NewCircle returns a complete circle shape.
func NewCircle(center Point, radius float64) Shape {
	return Shape{Type: TypeCircle, Center: &center, Radius: &radius}
}

// Complete reports whether the shape carries every field its declared type
// requires. Shapes with unrecognized types are never complete: no
// converter can do anything with them.
func (s Shape) Complete() bool {
	switch s.Type {
	case TypeLine:
		return s.Start != nil && s.End != nil
	case TypeCircle:
		return s.Center != nil && s.Radius != nil
	default:
		return false
	}
}
