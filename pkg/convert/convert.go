// Package convert maps between the native shape representation and DXF
// documents.
//
// Conversion in both directions is driven by a [Registry]: shape type
// tags map to entity encoders, DXF entity type names map to shape
// decoders. Line and circle are registered on the default registry; new
// primitives are added by registering another pair, without touching
// existing conversion logic.
//
// Both directions are deliberately lossy and silent about it: shapes the
// registry does not recognize (or that are missing required fields)
// produce no entity, and entity kinds without a decoder produce no shape.
// Everything that does convert keeps its input order.
package convert

import (
	"github.com/drafterhq/drafter/pkg/dxf"
	"github.com/drafterhq/drafter/pkg/shape"
)

// Encoder converts one shape into a DXF entity. It returns false when the
// shape cannot be represented, which skips the shape without error.
type Encoder func(s shape.Shape) (dxf.Entity, bool)

// Decoder converts one DXF entity into a shape. It returns false when the
// entity carries no usable geometry, which skips the entity without
// error.
type Decoder func(e dxf.Entity) (shape.Shape, bool)

// Registry holds the encode/decode dispatch tables. The zero value is
// unusable; construct with [NewRegistry] or use the package-level
// functions backed by the default registry.
type Registry struct {
	encoders map[string]Encoder // keyed by shape type tag
	decoders map[string]Decoder // keyed by DXF entity type name
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[string]Encoder),
		decoders: make(map[string]Decoder),
	}
}

// RegisterShape installs the encoder used for shapes tagged shapeType,
// replacing any previous registration.
func (r *Registry) RegisterShape(shapeType string, enc Encoder) {
	r.encoders[shapeType] = enc
}

// RegisterEntity installs the decoder used for DXF entities of the given
// type name, replacing any previous registration.
func (r *Registry) RegisterEntity(entityType string, dec Decoder) {
	r.decoders[entityType] = dec
}

// ToDocument encodes a collection into a DXF document. Shapes are visited
// in order; each one either contributes exactly one entity or is skipped.
// The resulting entity count equals the number of convertible shapes.
func (r *Registry) ToDocument(c shape.Collection) *dxf.Document {
	doc := &dxf.Document{}
	for _, s := range c {
		enc, ok := r.encoders[s.Type]
		if !ok {
			continue
		}
		if e, ok := enc(s); ok {
			doc.Append(e)
		}
	}
	return doc
}

// FromDocument decodes a DXF document into a collection. Entities are
// visited in document order; kinds without a registered decoder are
// skipped. Every returned shape is complete.
func (r *Registry) FromDocument(doc *dxf.Document) shape.Collection {
	c := shape.Collection{}
	for _, e := range doc.Entities {
		dec, ok := r.decoders[e.Type()]
		if !ok {
			continue
		}
		if s, ok := dec(e); ok {
			c = append(c, s)
		}
	}
	return c
}

// defaultRegistry carries the built-in line and circle conversions.
var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.RegisterShape(shape.TypeLine, encodeLine)
	defaultRegistry.RegisterShape(shape.TypeCircle, encodeCircle)
	defaultRegistry.RegisterEntity("LINE", decodeLine)
	defaultRegistry.RegisterEntity("CIRCLE", decodeCircle)
}

// ToDocument encodes a collection using the default registry.
func ToDocument(c shape.Collection) *dxf.Document {
	return defaultRegistry.ToDocument(c)
}

// FromDocument decodes a document using the default registry.
func FromDocument(doc *dxf.Document) shape.Collection {
	return defaultRegistry.FromDocument(doc)
}

func encodeLine(s shape.Shape) (dxf.Entity, bool) {
	if s.Start == nil || s.End == nil {
		return nil, false
	}
	return &dxf.Line{
		Start: dxf.Point{X: s.Start.X, Y: s.Start.Y},
		End:   dxf.Point{X: s.End.X, Y: s.End.Y},
	}, true
}

func encodeCircle(s shape.Shape) (dxf.Entity, bool) {
	if s.Center == nil || s.Radius == nil {
		return nil, false
	}
	return &dxf.Circle{
		Center: dxf.Point{X: s.Center.X, Y: s.Center.Y},
		Radius: *s.Radius,
	}, true
}

func decodeLine(e dxf.Entity) (shape.Shape, bool) {
	l, ok := e.(*dxf.Line)
	if !ok {
		return shape.Shape{}, false
	}
	return shape.NewLine(
		shape.Point{X: l.Start.X, Y: l.Start.Y},
		shape.Point{X: l.End.X, Y: l.End.Y},
	), true
}

func decodeCircle(e dxf.Entity) (shape.Shape, bool) {
	c, ok := e.(*dxf.Circle)
	if !ok {
		return shape.Shape{}, false
	}
	return shape.NewCircle(shape.Point{X: c.Center.X, Y: c.Center.Y}, c.Radius), true
}
