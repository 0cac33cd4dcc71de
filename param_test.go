package pgqb

import (
	"database/sql/driver"
	"testing"
)

func TestParamsPositionsAreStableAndOrderIndependent(t *testing.T) {
	p := NewParams()
	a := ParamField[int64](p, "a", BigInt)
	b := ParamField[string](p, "b", Text)
	again := ParamField[int64](p, "a", BigInt)

	if got := renderExpr(a); got != "$1" {
		t.Errorf("a = %q, want $1", got)
	}
	if got := renderExpr(b); got != "$2" {
		t.Errorf("b = %q, want $2", got)
	}
	if got := renderExpr(again); got != "$1" {
		t.Errorf("repeated reference to a = %q, want $1", got)
	}

	p.Bind("b", "hello").Bind("a", int64(7))
	packed := p.Pack()
	if len(packed) != 2 || packed[0] != int64(7) || packed[1] != "hello" {
		t.Errorf("Pack() = %#v, want [7 hello]", packed)
	}
}

func TestParamsBindArrayWrapsSliceForDriverEncoding(t *testing.T) {
	p := NewParams()
	ids := ParamField[[]int64](p, "ids", BigInt.Array())
	if got := renderExpr(ids); got != "$1" {
		t.Errorf("ids = %q, want $1", got)
	}
	p.BindArray("ids", []int64{1, 2, 3})
	packed := p.Pack()
	if len(packed) != 1 {
		t.Fatalf("Pack() length = %d, want 1", len(packed))
	}
	if _, ok := packed[0].(driver.Valuer); !ok {
		t.Error("BindArray did not wrap the slice in a driver.Valuer (pq.Array)")
	}
}

func TestParamsBindOrderDoesNotAffectPosition(t *testing.T) {
	p := NewParams()
	p.Bind("first", "never referenced")
	x := ParamField[int64](p, "x", BigInt)
	if got := renderExpr(x); got != "$1" {
		t.Errorf("x = %q, want $1", got)
	}
	if packed := p.Pack(); len(packed) != 1 {
		t.Errorf("Pack() length = %d, want 1 (unreferenced bind name must not appear)", len(packed))
	}
}
