package pgqb

// FromItem is anything that can appear in a FROM clause or be the
// right-hand side of a JOIN: a base table, a table function, a
// subquery, or a join result. Generalizes a plain TableSQL/TableAlias
// table-expression interface to a typed row shape.
type FromItem interface {
	fromTokens(t *Tokens)
	fromAlias() string
}

// TableDef declares a base table's name and row shape. Row is a
// host-authored struct of Expression[T] fields, constructed directly
// by build rather than derived reflectively on first property access.
type TableDef[Row any] struct {
	name    string
	build   func(alias string, nullable bool) Row
}

// NewTable declares a base table. build constructs the row value for
// a given table alias. Every call this package makes to build passes
// nullable as false; outer-join widening goes through the row type's
// own Nullable() method instead (see nullableRow).
func NewTable[Row any](name string, build func(alias string, nullable bool) Row) TableDef[Row] {
	return TableDef[Row]{name: name, build: build}
}

// Table is a concrete, aliased handle to a table or subquery usable in
// FROM/JOIN — an explicit handle rather than a lazy proxy, since Go's
// method sets cannot synthesize fields at runtime the way a JS Proxy
// can.
type Table[Row any] struct {
	alias  string
	row    Row
	source fromSource
}

type fromSource interface {
	render(t *Tokens, alias string)
}

type baseTableSource struct {
	name string
}

func (s baseTableSource) render(t *Tokens, alias string) {
	t.Identifier(s.name, false)
	if alias != "" && alias != s.name {
		t.Keyword("AS").Identifier(alias, false)
	}
}

// As binds an alias and materializes the row struct, the entry point
// a host program calls once per query per table reference.
func (d TableDef[Row]) As(alias string) Table[Row] {
	return Table[Row]{
		alias:  alias,
		row:    d.build(alias, false),
		source: baseTableSource{name: d.name},
	}
}

func (t Table[Row]) Row() Row { return t.row }

func (t Table[Row]) fromTokens(toks *Tokens) { t.source.render(toks, t.alias) }
func (t Table[Row]) fromAlias() string       { return t.alias }

// TableFunc declares a table-returning function usable in FROM. At
// most one WithOrdinality call is meaningful per table function; the
// flag is idempotent rather than erroring on repeated calls.
type TableFuncCall[Row any] struct {
	name         string
	args         []node
	withOrdinal  bool
	build        func(alias string, nullable bool) Row
}

func TableFunc[Row any](name string, build func(alias string, nullable bool) Row, args ...Expr) *TableFuncCall[Row] {
	nodes := make([]node, len(args))
	for i, a := range args {
		nodes[i] = exprAdapter{a}
	}
	return &TableFuncCall[Row]{name: name, args: nodes, build: build}
}

func (f *TableFuncCall[Row]) WithOrdinality() *TableFuncCall[Row] {
	f.withOrdinal = true
	return f
}

func (f *TableFuncCall[Row]) As(alias string) Table[Row] {
	return Table[Row]{
		alias:  alias,
		row:    f.build(alias, false),
		source: tableFuncSource{name: f.name, args: f.args, withOrdinal: f.withOrdinal},
	}
}

type tableFuncSource struct {
	name        string
	args        []node
	withOrdinal bool
}

func (s tableFuncSource) render(t *Tokens, alias string) {
	t.Identifier(s.name, false).OpenParen()
	commaSeparate(t, s.args, func(t *Tokens, a node) { a.render(t) })
	t.CloseParen()
	if s.withOrdinal {
		t.Keyword("WITH ORDINALITY")
	}
	if alias != "" {
		t.Keyword("AS").Identifier(alias, false)
	}
}

// SubqueryAs wraps a query as a derived table, the other sanctioned
// FROM-item source alongside base tables and table functions.
func SubqueryAs[Row any](q Serializable, alias string, build func(alias string, nullable bool) Row) Table[Row] {
	return Table[Row]{
		alias:  alias,
		row:    build(alias, false),
		source: subquerySource{query: q},
	}
}

type subquerySource struct {
	query Serializable
}

func (s subquerySource) render(t *Tokens, alias string) {
	t.OpenParen()
	t.Append(s.query.tokens())
	t.CloseParen()
	if alias != "" {
		t.Keyword("AS").Identifier(alias, false)
	}
}

// ============================================================
// Joins
// ============================================================

// JoinKind enumerates the supported join types.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

func (k JoinKind) keyword() string {
	switch k {
	case LeftJoin:
		return "LEFT JOIN"
	case RightJoin:
		return "RIGHT JOIN"
	case FullJoin:
		return "FULL JOIN"
	case CrossJoin:
		return "CROSS JOIN"
	default:
		return "INNER JOIN"
	}
}

// Joined2 combines two joined row shapes under named fields rather
// than struct embedding, avoiding silent field-name collisions that
// embedding a shared column name on both sides would produce.
type Joined2[L, R any] struct {
	Left  L
	Right R
}

// Joined3 is the three-way extension of Joined2, used when chaining a
// second join onto an existing Joined2 result.
type Joined3[L, M, R any] struct {
	Left   L
	Middle M
	Right  R
}

type joinNode struct {
	kind    JoinKind
	left    FromItem
	right   FromItem
	on      node // nil for CROSS JOIN
	lateral bool
}

func (j joinNode) fromTokens(t *Tokens) {
	t.OpenParen()
	j.left.fromTokens(t)
	t.Keyword(j.kind.keyword())
	if j.lateral {
		t.Keyword("LATERAL")
	}
	j.right.fromTokens(t)
	if j.on != nil {
		t.Keyword("ON")
		j.on.render(t)
	}
	t.CloseParen()
}

func (j joinNode) fromAlias() string { return "" }

// InnerJoinOn joins l and r with an explicit ON predicate, producing a
// named Joined2 row. The predicate closure receives the two rows by
// value so it can only reference already-aliased column expressions,
// never raw table names.
func InnerJoinOn[L, R any](l Table[L], r Table[R], on func(L, R) Expression[bool]) (Table[Joined2[L, R]], Joined2[L, R]) {
	return buildJoin(InnerJoin, l, r, on, false)
}

func LeftJoinOn[L, R any](l Table[L], r Table[R], on func(L, R) Expression[bool]) (Table[Joined2[L, R]], Joined2[L, R]) {
	return buildJoin(LeftJoin, l, r, on, false)
}

func RightJoinOn[L, R any](l Table[L], r Table[R], on func(L, R) Expression[bool]) (Table[Joined2[L, R]], Joined2[L, R]) {
	return buildJoin(RightJoin, l, r, on, false)
}

func FullJoinOn[L, R any](l Table[L], r Table[R], on func(L, R) Expression[bool]) (Table[Joined2[L, R]], Joined2[L, R]) {
	return buildJoin(FullJoin, l, r, on, false)
}

// LateralJoinOn is LeftJoinOn/InnerJoinOn's LATERAL-qualified form,
// used when r's own construction references l's row (e.g. r is a
// correlated subquery-as-table). Go's evaluation order already builds
// r before calling this function, so the LATERAL keyword here only
// affects the rendered SQL, not construction order.
func LateralJoinOn[L, R any](kind JoinKind, l Table[L], r Table[R], on func(L, R) Expression[bool]) (Table[Joined2[L, R]], Joined2[L, R]) {
	return buildJoin(kind, l, r, on, true)
}

func buildJoin[L, R any](kind JoinKind, l Table[L], r Table[R], on func(L, R) Expression[bool], lateral bool) (Table[Joined2[L, R]], Joined2[L, R]) {
	leftRow, rightRow := l.row, r.row
	if kind == LeftJoin || kind == FullJoin {
		rightRow = nullableRowOf(r)
	}
	if kind == RightJoin || kind == FullJoin {
		leftRow = nullableRowOf(l)
	}
	row := Joined2[L, R]{Left: leftRow, Right: rightRow}
	jn := joinNode{kind: kind, left: l, right: r, lateral: lateral}
	if kind != CrossJoin {
		jn.on = on(leftRow, rightRow).n
	}
	joined := Table[Joined2[L, R]]{row: row, source: joinFromSource{jn}}
	return joined, row
}

// nullableRowOf returns t's row widened through the host-provided
// Nullable() method when the row type implements nullableRow, and the
// row unchanged otherwise. Table does not retain its originating
// TableDef, so the build closure is not consulted here.
func nullableRowOf[Row any](t Table[Row]) Row {
	if nr, ok := any(t.row).(nullableRow[Row]); ok {
		return nr.Nullable()
	}
	return t.row
}

// nullableRow is the interface a row struct implements when it can
// project itself into an all-columns-nullable variant without
// re-deriving from a TableDef — the concrete mechanism
// LeftJoinOn/RightJoinOn/FullJoinOn rely on, since a Table[Row] value
// alone no longer carries its build closure once constructed.
type nullableRow[Row any] interface {
	Nullable() Row
}

type joinFromSource struct {
	j joinNode
}

func (s joinFromSource) render(t *Tokens, alias string) {
	s.j.fromTokens(t)
}

// CrossJoinOn joins l and r with no predicate.
func CrossJoinOn[L, R any](l Table[L], r Table[R]) (Table[Joined2[L, R]], Joined2[L, R]) {
	return buildJoin(CrossJoin, l, r, nil, false)
}

// CombineJoin3 folds a third table into an existing Joined2 result,
// producing Joined3 — the chaining step a query with more than two
// joins repeats.
func CombineJoin3[L, M, R any](prev Table[Joined2[L, M]], r Table[R], on func(Joined2[L, M], R) Expression[bool]) (Table[Joined3[L, M, R]], Joined3[L, M, R]) {
	joined, jrow := buildJoin(InnerJoin, prev, r, on, false)
	row := Joined3[L, M, R]{Left: jrow.Left.Left, Middle: jrow.Left.Right, Right: jrow.Right}
	return Table[Joined3[L, M, R]]{row: row, source: joined.source}, row
}
