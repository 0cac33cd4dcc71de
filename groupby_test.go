package pgqb

import "testing"

func renderGroup(g GroupingElement) string {
	var t Tokens
	g.render(&t)
	return unlex(&t)
}

func TestGroupByRendering(t *testing.T) {
	a := Field[int64]("o", "a", BigInt)
	b := Field[int64]("o", "b", BigInt)
	c := Field[int64]("o", "c", BigInt)

	tests := []struct {
		name string
		g    GroupingElement
		want string
	}{
		{name: "plain expr", g: GroupByExpr(a), want: `o.a`},
		{name: "composite", g: GroupByComposite(a, b), want: `(o.a, o.b)`},
		{name: "rollup", g: Rollup(GroupByExpr(a), GroupByExpr(b)), want: `ROLLUP (o.a, o.b)`},
		{name: "cube", g: Cube(GroupByExpr(a), GroupByExpr(b)), want: `CUBE (o.a, o.b)`},
		{
			name: "grouping sets",
			g: GroupingSets(
				[]GroupingElement{GroupByExpr(a), GroupByExpr(b)},
				[]GroupingElement{GroupByExpr(c)},
				[]GroupingElement{},
			),
			want: `GROUPING SETS ((o.a, o.b), (o.c), ())`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderGroup(tt.g)
			if got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}
