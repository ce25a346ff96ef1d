package pathlen

import (
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(1.5, -2).String(); s != "(1.5, -2)" {
		t.Errorf("got %q", s)
	}
	x, y := Pt(3, 4).Splat()
	if x != 3 || y != 4 {
		t.Errorf("Splat returned (%v, %v)", x, y)
	}
}
