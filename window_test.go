package pgqb

import (
	"errors"
	"testing"
)

func TestFrameInvariants(t *testing.T) {
	if _, err := NewFrame(FrameRows, UnboundedFollowing()); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("NewFrame with UNBOUNDED FOLLOWING start did not error")
	}
	if _, err := NewFrameBetween(FrameRows, CurrentRow(), UnboundedPreceding()); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("NewFrameBetween with UNBOUNDED PRECEDING end did not error")
	}
	if _, err := NewFrameBetween(FrameRows, CurrentRow(), UnboundedFollowing()); err != nil {
		t.Errorf("NewFrameBetween(CURRENT ROW, UNBOUNDED FOLLOWING) returned error: %v", err)
	}
	n := Field[int64]("o", "n", BigInt)
	if _, err := NewFrameBetween(FrameRows, Following(n), Preceding(n)); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("NewFrameBetween with start sorting after end did not error")
	}
}

func TestWindowCallRequiresExactlyOneOverForm(t *testing.T) {
	amount := Field[float64]("o", "amount", Numeric)
	spec := NewWindow().PartitionBy(amount)

	if _, err := Window[float64]("sum", Numeric, amount).Build(); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("Build with neither Over nor OverName did not error")
	}
	if _, err := Window[float64]("sum", Numeric, amount).Over(spec).OverName("w").Build(); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("Build with both Over and OverName did not error")
	}
	if _, err := Window[float64]("sum", Numeric, amount).Over(spec).Build(); err != nil {
		t.Errorf("Build with Over only returned error: %v", err)
	}
	if _, err := Window[float64]("sum", Numeric, amount).OverName("w").Build(); err != nil {
		t.Errorf("Build with OverName only returned error: %v", err)
	}
}

func TestWindowCallRendering(t *testing.T) {
	amount := Field[float64]("o", "amount", Numeric)
	category := Field[string]("o", "category", Text)

	spec := NewWindow().PartitionBy(category).OrderBy(amount.Desc())
	e, err := Window[float64]("sum", Numeric, amount).Over(spec).Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	want := `sum(o.amount) OVER (PARTITION BY o.category ORDER BY o.amount DESC NULLS FIRST)`
	if got := renderExpr(e); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}

	named, err := Window[float64]("sum", Numeric, amount).OverName("w").Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := renderExpr(named); got != `sum(o.amount) OVER w` {
		t.Errorf("render = %q, want %q", got, `sum(o.amount) OVER w`)
	}
}

func TestFrameRendering(t *testing.T) {
	f, err := NewFrameBetween(FrameRows, UnboundedPreceding(), CurrentRow())
	if err != nil {
		t.Fatalf("NewFrameBetween returned error: %v", err)
	}
	f = f.WithExclusion(ExcludeTies)

	amount := Field[float64]("o", "amount", Numeric)
	spec := NewWindow().OrderBy(amount.Asc()).WithFrame(f)
	e, err := Window[float64]("sum", Numeric, amount).Over(spec).Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	want := `sum(o.amount) OVER (ORDER BY o.amount ASC NULLS LAST ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW EXCLUDE TIES)`
	if got := renderExpr(e); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}
