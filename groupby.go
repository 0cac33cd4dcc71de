package pgqb

// GroupingElement is one item of a GROUP BY clause: a bare expression,
// a parenthesized composite grouping, ROLLUP(...), CUBE(...), or
// GROUPING SETS(...).
type GroupingElement struct {
	n node
}

func (g GroupingElement) render(t *Tokens) { g.n.render(t) }

// GroupByExpr wraps a single column/expression as a plain grouping
// element.
func GroupByExpr[T any](e Expression[T]) GroupingElement {
	return GroupingElement{n: e.n}
}

// GroupByComposite groups several expressions as one parenthesized
// grouping element, e.g. GROUP BY (a, b), (c) — distinct from two
// separate top-level elements GROUP BY (a, b) vs a, b in how NULL
// substitution for omitted columns is computed under ROLLUP/CUBE.
func GroupByComposite(exprs ...Expr) GroupingElement {
	nodes := make([]node, len(exprs))
	for i, e := range exprs {
		nodes[i] = exprAdapter{e}
	}
	return GroupingElement{n: compositeGroupNode{items: nodes}}
}

type compositeGroupNode struct {
	items []node
}

func (n compositeGroupNode) render(t *Tokens) {
	t.OpenParen()
	commaSeparate(t, n.items, func(t *Tokens, item node) { item.render(t) })
	t.CloseParen()
}

type groupingFuncNode struct {
	kw    string
	items []GroupingElement
}

func (n groupingFuncNode) render(t *Tokens) {
	t.Keyword(n.kw).OpenParen()
	commaSeparate(t, n.items, func(t *Tokens, g GroupingElement) { g.render(t) })
	t.CloseParen()
}

// Rollup builds ROLLUP(e1, ..., en).
func Rollup(items ...GroupingElement) GroupingElement {
	return GroupingElement{n: groupingFuncNode{kw: "ROLLUP", items: items}}
}

// Cube builds CUBE(e1, ..., en).
func Cube(items ...GroupingElement) GroupingElement {
	return GroupingElement{n: groupingFuncNode{kw: "CUBE", items: items}}
}

type groupingSetsNode struct {
	sets [][]GroupingElement
}

func (n groupingSetsNode) render(t *Tokens) {
	t.Keyword("GROUPING SETS").OpenParen()
	for i, set := range n.sets {
		if i > 0 {
			t.Special(",")
		}
		t.OpenParen()
		commaSeparate(t, set, func(t *Tokens, g GroupingElement) { g.render(t) })
		t.CloseParen()
	}
	t.CloseParen()
}

// GroupingSets builds GROUPING SETS ((...), (...), ..., ()), where
// each argument is itself a list of grouping elements forming one set
// (an empty slice renders the grand-total set "()").
func GroupingSets(sets ...[]GroupingElement) GroupingElement {
	return GroupingElement{n: groupingSetsNode{sets: sets}}
}
