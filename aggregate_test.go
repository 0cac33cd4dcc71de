package pgqb

import (
	"errors"
	"testing"
)

func TestAggCallRendering(t *testing.T) {
	amount := Field[float64]("o", "amount", Numeric)

	tests := []struct {
		name string
		e    *AggCall[float64]
		want string
	}{
		{name: "count star", e: Agg[float64]("count", BigInt), want: `count(*)`},
		{name: "sum", e: Agg[float64]("sum", Numeric, amount), want: `sum(o.amount)`},
		{name: "distinct sum", e: Agg[float64]("sum", Numeric, amount).Distinct(), want: `sum(DISTINCT o.amount)`},
		{
			name: "sum with filter",
			e:    Agg[float64]("sum", Numeric, amount).FilterWhere(Gt(amount, ConstLit(0.0, Numeric))),
			want: `sum(o.amount) FILTER (WHERE (o.amount > 0))`,
		},
		{
			name: "array_agg with order by",
			e:    Agg[float64]("array_agg", Numeric, amount).OrderBy(amount.Asc()),
			want: `array_agg(o.amount ORDER BY o.amount ASC NULLS LAST)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built, err := tt.e.Build()
			if err != nil {
				t.Fatalf("Build returned error: %v", err)
			}
			got := renderExpr(built)
			if got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAggCallArgumentlessRejectsDistinctAndOrderBy(t *testing.T) {
	if _, err := Agg[float64]("count", BigInt).Distinct().Build(); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("count(*) with Distinct() did not return ErrInvalidAggregateConfiguration")
	}
	amount := Field[float64]("o", "amount", Numeric)
	if _, err := Agg[float64]("count", BigInt).OrderBy(amount.Asc()).Build(); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("count(*) with OrderBy did not return ErrInvalidAggregateConfiguration")
	}
	if _, err := Agg[float64]("count", BigInt).Build(); err != nil {
		t.Errorf("plain count(*) returned unexpected error: %v", err)
	}
}

func TestOrderedSetAggRequiresExactlyOneOrderBy(t *testing.T) {
	amount := Field[float64]("o", "amount", Numeric)

	if _, err := WithinGroup[float64]("percentile_cont", Numeric, amount).Build(); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("Build with zero ORDER BY items did not return ErrInvalidAggregateConfiguration")
	}

	e, err := WithinGroup[float64]("percentile_cont", Numeric, amount).OrderBy(amount.Asc()).Build()
	if err != nil {
		t.Fatalf("Build with one ORDER BY item returned error: %v", err)
	}
	want := `percentile_cont(o.amount) WITHIN GROUP (ORDER BY o.amount ASC NULLS LAST)`
	if got := renderExpr(e); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}

	twoOrders := WithinGroup[float64]("percentile_cont", Numeric, amount).OrderBy(amount.Asc(), amount.Desc())
	if _, err := twoOrders.Build(); !errors.Is(err, ErrInvalidAggregateConfiguration) {
		t.Error("Build with two ORDER BY items did not return ErrInvalidAggregateConfiguration")
	}
}

func TestJSONObjectAggRendering(t *testing.T) {
	key := Field[string]("o", "key", Text)
	value := Field[string]("o", "value", Text)

	e := JSONObjectAgg[string](key, value, JSON).AbsentOnNull().WithUniqueKeys().Build()
	got := renderExpr(e)
	want := `json_objectagg(o.key : o.value ABSENT ON NULL WITH UNIQUE KEYS)`
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestJSONArrayAggRendering(t *testing.T) {
	value := Field[string]("o", "value", Text)
	e := JSONArrayAgg[string](value, JSON).OrderBy(value.Asc()).NullOnNull().Build()
	got := renderExpr(e)
	want := `json_arrayagg(o.value ORDER BY o.value ASC NULLS LAST NULL ON NULL)`
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}
