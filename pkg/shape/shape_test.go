package shape

import "testing"

func TestComplete(t *testing.T) {
	pt := func(x, y float64) *Point { return &Point{X: x, Y: y} }
	r := 5.0

	tests := []struct {
		name string
		s    Shape
		want bool
	}{
		{"complete line", NewLine(Point{}, Point{X: 1}), true},
		{"complete circle", NewCircle(Point{X: 1, Y: 2}, 3), true},
		{"line missing end", Shape{Type: TypeLine, Start: pt(0, 0)}, false},
		{"line missing start", Shape{Type: TypeLine, End: pt(1, 1)}, false},
		{"circle missing radius", Shape{Type: TypeCircle, Center: pt(0, 0)}, false},
		{"circle missing center", Shape{Type: TypeCircle, Radius: &r}, false},
		{"unknown type", Shape{Type: "polygon", Points: []Point{{X: 1}}}, false},
		{"empty type", Shape{}, false},
		// Fields of the wrong variant don't make a shape complete.
		{"line with circle fields", Shape{Type: TypeLine, Center: pt(0, 0), Radius: &r}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	l := NewLine(Point{X: 1, Y: 2}, Point{X: 3, Y: 4})
	if l.Type != TypeLine || l.Start.X != 1 || l.End.Y != 4 {
		t.Errorf("NewLine built %+v", l)
	}

	c := NewCircle(Point{X: 5, Y: 6}, 7)
	if c.Type != TypeCircle || c.Center.X != 5 || *c.Radius != 7 {
		t.Errorf("NewCircle built %+v", c)
	}
}
