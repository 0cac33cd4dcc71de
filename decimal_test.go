package pgqb

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestConstDecimalRendersExactString(t *testing.T) {
	v := decimal.RequireFromString("19.990")
	e := ConstDecimal(v, Numeric)
	got := renderExpr(e)
	want := "19.990"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}
