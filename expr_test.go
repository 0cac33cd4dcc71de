package pgqb

import "testing"

func renderExpr(e Expr) string {
	var t Tokens
	e.exprTokens(&t)
	return unlex(&t)
}

func TestExpressionRendering(t *testing.T) {
	id := Field[int64]("u", "id", BigInt)
	name := Field[string]("u", "name", Text)

	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{name: "column ref", e: id, want: `u.id`},
		{name: "reserved-word column quoted", e: Field[string]("u", "select", Text), want: `u."select"`},
		{name: "string literal", e: ConstLit("hi", Text), want: `'hi'`},
		{name: "string literal with quote", e: ConstLit("it's", Text), want: `'it''s'`},
		{name: "int literal", e: ConstLit(42, Integer), want: `42`},
		{name: "bool literal true", e: ConstLit(true, Boolean), want: `true`},
		{name: "float literal", e: ConstLit(3.5, Double), want: `3.5`},
		{name: "NaN renders as quoted string", e: ConstLit(nan(), Double), want: `'NaN'`},
		{name: "null", e: Null[int64](BigInt), want: `null`},
		{name: "is null", e: id.IsNull(), want: `(u.id IS NULL)`},
		{name: "is not null", e: id.IsNotNull(), want: `(u.id IS NOT NULL)`},
		{name: "eq", e: id.Eq(ConstLit[int64](1, BigInt)), want: `(u.id = 1)`},
		{name: "ne", e: id.Ne(ConstLit[int64](1, BigInt)), want: `(u.id <> 1)`},
		{name: "and", e: id.Eq(ConstLit[int64](1, BigInt)).And(name.Eq(ConstLit("a", Text))), want: `((u.id = 1) AND (u.name = 'a'))`},
		{name: "or", e: id.Eq(ConstLit[int64](1, BigInt)).Or(name.Eq(ConstLit("a", Text))), want: `((u.id = 1) OR (u.name = 'a'))`},
		{name: "not", e: Not(id.IsNull()), want: `(not (u.id IS NULL))`},
		{name: "is distinct from", e: id.IsDistinctFrom(ConstLit[int64](1, BigInt)), want: `(u.id IS DISTINCT FROM 1)`},
		{name: "variadic and empty", e: And(), want: `TRUE`},
		{name: "variadic and single", e: And(id.IsNull()), want: `(u.id IS NULL)`},
		{name: "variadic and multi", e: And(id.IsNull(), name.IsNull()), want: `((u.id IS NULL) AND (u.name IS NULL))`},
		{name: "variadic or empty", e: Or(), want: `FALSE`},
		{name: "lt", e: Lt(id, ConstLit[int64](5, BigInt)), want: `(u.id < 5)`},
		{name: "between", e: Between(id, ConstLit[int64](1, BigInt), ConstLit[int64](10, BigInt)), want: `(u.id BETWEEN 1 AND 10)`},
		{name: "not between", e: NotBetween(id, ConstLit[int64](1, BigInt), ConstLit[int64](10, BigInt)), want: `(u.id NOT BETWEEN 1 AND 10)`},
		{name: "like", e: Like(name, ConstLit("a%", Text)), want: `(u.name LIKE 'a%')`},
		{name: "cast", e: CastAs[int64, string](id, Text), want: `CAST(u.id AS text)`},
		{name: "in list", e: id.In(ConstLit[int64](1, BigInt), ConstLit[int64](2, BigInt)), want: `(u.id IN (1, 2))`},
		{name: "not in list", e: id.NotIn(ConstLit[int64](1, BigInt)), want: `(u.id NOT IN (1))`},
		{name: "array literal", e: ArrayLit(BigInt, ConstLit[int64](1, BigInt), ConstLit[int64](2, BigInt)), want: `ARRAY[1, 2]`},
		{name: "row", e: NewRow(id, name), want: `ROW (u.id, u.name)`},
		{name: "raw escape hatch", e: Raw[int64]("2 + 2", Integer), want: `2 + 2`},
		{name: "func call", e: Func[int64]("coalesce", BigInt, id, ConstLit[int64](0, BigInt)), want: `coalesce(u.id, 0)`},
		{name: "func call no args", e: Func[int64]("now", Timestamp), want: `now()`},
		{name: "extract", e: Extract[int64]("YEAR", id, Numeric), want: `EXTRACT (YEAR FROM u.id)`},
		{name: "date_trunc", e: DateTrunc[int64]("month", id, Timestamp), want: `date_trunc('month', u.id)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderExpr(tt.e)
			if got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestCaseExpression(t *testing.T) {
	id := Field[int64]("u", "id", BigInt)
	e := Case[string](Text).
		When(id.Eq(ConstLit[int64](1, BigInt)), ConstLit("one", Text)).
		When(id.Eq(ConstLit[int64](2, BigInt)), ConstLit("two", Text)).
		Else(ConstLit("other", Text))
	got := renderExpr(e)
	want := `CASE WHEN (u.id = 1) THEN 'one' WHEN (u.id = 2) THEN 'two' ELSE 'other' END`
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestCaseExpressionNoElse(t *testing.T) {
	id := Field[int64]("u", "id", BigInt)
	e := Case[string](Text).When(id.IsNull(), ConstLit("missing", Text)).End()
	got := renderExpr(e)
	want := `CASE WHEN (u.id IS NULL) THEN 'missing' END`
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestAnyAllOperatorValidation(t *testing.T) {
	id := Field[int64]("u", "id", BigInt)
	arr := ArrayLit(BigInt, ConstLit[int64](1, BigInt))

	if _, err := Any(id, "=", arr); err != nil {
		t.Errorf("Any with valid operator returned error: %v", err)
	}
	if _, err := Any(id, "; DROP TABLE users; --", arr); err == nil {
		t.Error("Any with invalid operator returned nil error")
	}
}

func TestConstUUID(t *testing.T) {
	if _, err := ConstUUID("not-a-uuid"); err == nil {
		t.Error("ConstUUID accepted an invalid UUID")
	}
	valid := "123e4567-e89b-12d3-a456-426614174000"
	e, err := ConstUUID(valid)
	if err != nil {
		t.Fatalf("ConstUUID rejected a valid UUID: %v", err)
	}
	if got := renderExpr(e); got != "'"+valid+"'" {
		t.Errorf("render = %q, want %q", got, "'"+valid+"'")
	}
}

func TestMustConstUUIDPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustConstUUID did not panic on an invalid UUID")
		}
	}()
	MustConstUUID("not-a-uuid")
}
