package hermite

import (
	"math/cmplx"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Is0(1e-6) {
		t.Errorf("Expected 1e-6 not to be zero")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if r != P(0, 0) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	if p.String() != "(3,2)" {
		t.Errorf("Expected p to print as (3,2), is %s", p)
	}
	if d := P(0, 0).Dist(P(3, 4)); d != 5 {
		t.Errorf("Expected distance 5, is %g", d)
	}
}

func TestScaledKeepsSmallValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(1e-9, 2).Scaled(2)
	if p.X() != 2e-9 || p.Y() != 4 {
		t.Errorf("Expected (2e-9,4), is %v", p)
	}
}

func TestC2PRejectsNaN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if C2P(cmplx.NaN()) != P(0, 0) {
		t.Errorf("Expected NaN to map to origin")
	}
	if C2P(cmplx.Inf()) != P(0, 0) {
		t.Errorf("Expected infinity to map to origin")
	}
	if C2P(complex(3, -4)) != P(3, -4) {
		t.Errorf("Expected C2P to keep finite values")
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if p := Translation(P(-1, -1)).Transform(P(1, 1)); p != P(0, 0) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is %v", p)
	}
}

func TestCombineScalingTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// first scale by 2, then shift by (10,20)
	T := Scaling(2, 2).Combine(Translation(P(10, 20)))
	p := T.Transform(P(1, 3))
	if p.Dist(P(12, 26)) > Epsilon {
		t.Errorf("Expected (12,26), is %v (T=%s)", p, T)
	}
	if Identity().Transform(P(7, -7)) != P(7, -7) {
		t.Errorf("Expected identity to keep point")
	}
}
