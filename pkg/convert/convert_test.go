package convert

import (
	"math"
	"testing"

	"github.com/drafterhq/drafter/pkg/dxf"
	"github.com/drafterhq/drafter/pkg/shape"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestRoundTripSupportedShapes(t *testing.T) {
	c := shape.Collection{
		shape.NewLine(shape.Point{X: 0, Y: 0}, shape.Point{X: 10, Y: 5}),
		shape.NewCircle(shape.Point{X: 3, Y: 4}, 2.5),
		shape.NewLine(shape.Point{X: -1.5, Y: 2.25}, shape.Point{X: 7, Y: -8}),
	}

	got := FromDocument(ToDocument(c))

	if len(got) != len(c) {
		t.Fatalf("length = %d, want %d", len(got), len(c))
	}
	for i := range c {
		if got[i].Type != c[i].Type {
			t.Errorf("shape %d: type = %q, want %q", i, got[i].Type, c[i].Type)
		}
	}

	l := got[0]
	if !almostEqual(l.Start.X, 0) || !almostEqual(l.End.X, 10) || !almostEqual(l.End.Y, 5) {
		t.Errorf("line 0 mismatch: %+v", l)
	}
	circ := got[1]
	if !almostEqual(circ.Center.X, 3) || !almostEqual(circ.Center.Y, 4) || !almostEqual(*circ.Radius, 2.5) {
		t.Errorf("circle mismatch: %+v", circ)
	}
}

func TestUnsupportedShapeSkipped(t *testing.T) {
	c := shape.Collection{
		shape.NewLine(shape.Point{X: 0, Y: 0}, shape.Point{X: 1, Y: 1}),
		{Type: "polygon", Points: []shape.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		shape.NewLine(shape.Point{X: 2, Y: 2}, shape.Point{X: 3, Y: 3}),
	}

	got := FromDocument(ToDocument(c))

	if len(got) != 2 {
		t.Fatalf("length = %d, want 2 (polygon dropped)", len(got))
	}
	// Remaining shapes keep their relative order.
	if !almostEqual(got[0].Start.X, 0) || !almostEqual(got[1].Start.X, 2) {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestIncompleteShapeSkipped(t *testing.T) {
	start := shape.Point{X: 1, Y: 1}
	center := shape.Point{X: 2, Y: 2}
	tests := []struct {
		name string
		s    shape.Shape
	}{
		{"line missing end", shape.Shape{Type: shape.TypeLine, Start: &start}},
		{"circle missing radius", shape.Shape{Type: shape.TypeCircle, Center: &center}},
		{"empty type", shape.Shape{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ToDocument(shape.Collection{tt.s})
			if len(doc.Entities) != 0 {
				t.Errorf("entity count = %d, want 0", len(doc.Entities))
			}
		})
	}
}

func TestZDropped(t *testing.T) {
	doc := &dxf.Document{}
	doc.Append(&dxf.Line{Start: dxf.Point{X: 1, Y: 2, Z: 99}, End: dxf.Point{X: 3, Y: 4, Z: -7}})

	got := FromDocument(doc)
	if len(got) != 1 {
		t.Fatalf("length = %d, want 1", len(got))
	}
	if got[0].Start.X != 1 || got[0].Start.Y != 2 || got[0].End.X != 3 || got[0].End.Y != 4 {
		t.Errorf("unexpected line: %+v", got[0])
	}
}

func TestZWrittenAsZero(t *testing.T) {
	doc := ToDocument(shape.Collection{shape.NewLine(shape.Point{X: 1, Y: 2}, shape.Point{X: 3, Y: 4})})
	l := doc.Entities[0].(*dxf.Line)
	if l.Start.Z != 0 || l.End.Z != 0 {
		t.Errorf("z should be 0: %+v", l)
	}
}

func TestUnmodeledEntitySkipped(t *testing.T) {
	doc := &dxf.Document{}
	doc.Append(
		&dxf.Raw{Name: "ARC", Tags: []dxf.Tag{{Code: 40, Value: "1"}}},
		&dxf.Circle{Center: dxf.Point{X: 1, Y: 1}, Radius: 1},
	)

	got := FromDocument(doc)
	if len(got) != 1 || got[0].Type != shape.TypeCircle {
		t.Errorf("unexpected collection: %+v", got)
	}
}

func TestRegistryExtension(t *testing.T) {
	// Registering a new primitive pair makes it convert both ways
	// without touching the built-in conversions.
	r := NewRegistry()
	r.RegisterShape(shape.TypeLine, func(s shape.Shape) (dxf.Entity, bool) {
		if s.Start == nil || s.End == nil {
			return nil, false
		}
		return &dxf.Line{
			Start: dxf.Point{X: s.Start.X, Y: s.Start.Y},
			End:   dxf.Point{X: s.End.X, Y: s.End.Y},
		}, true
	})
	r.RegisterShape("point", func(s shape.Shape) (dxf.Entity, bool) {
		if len(s.Points) != 1 {
			return nil, false
		}
		return &dxf.Raw{Name: "POINT", Tags: []dxf.Tag{
			{Code: 10, Value: "1"}, {Code: 20, Value: "2"},
		}}, true
	})
	r.RegisterEntity("POINT", func(e dxf.Entity) (shape.Shape, bool) {
		if _, ok := e.(*dxf.Raw); !ok {
			return shape.Shape{}, false
		}
		return shape.Shape{Type: "point", Points: []shape.Point{{X: 1, Y: 2}}}, true
	})

	c := shape.Collection{
		{Type: "point", Points: []shape.Point{{X: 1, Y: 2}}},
		shape.NewLine(shape.Point{}, shape.Point{X: 1, Y: 1}),
	}

	doc := r.ToDocument(c)
	if len(doc.Entities) != 2 {
		t.Fatalf("entity count = %d, want 2", len(doc.Entities))
	}
	if doc.Entities[0].Type() != "POINT" {
		t.Errorf("entity 0 type = %q, want POINT", doc.Entities[0].Type())
	}

	got := r.FromDocument(doc)
	// The line has no decoder in this registry, so only the point comes back.
	if len(got) != 1 || got[0].Type != "point" {
		t.Errorf("unexpected collection: %+v", got)
	}
}

func TestDefaultRegistryDecodersAreComplete(t *testing.T) {
	doc := &dxf.Document{}
	doc.Append(
		&dxf.Line{Start: dxf.Point{X: 0, Y: 1}, End: dxf.Point{X: 2, Y: 3}},
		&dxf.Circle{Center: dxf.Point{X: 4, Y: 5}, Radius: 6},
	)
	for i, s := range FromDocument(doc) {
		if !s.Complete() {
			t.Errorf("decoded shape %d is incomplete: %+v", i, s)
		}
	}
}
