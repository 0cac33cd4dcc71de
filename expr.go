package pgqb

import (
	"math"
	"strconv"
)

// Expr is anything that can append its SQL token sequence to a
// rendering. Expression[T] satisfies it for every T, as does Row. The
// aggregate/window call types and Query do not implement it directly:
// their Build methods and Scalar turn them into an Expression[T].
type Expr interface {
	exprTokens(t *Tokens)
}

// node is the private AST interface: every expression variant
// (constant, field reference, parameter, operator application,
// function call, ...) implements render. Expression[T] is a thin
// generic wrapper around one node plus the SQLType it produces — an
// immutable tree node tagged with its SQL result type.
type node interface {
	render(t *Tokens)
}

// Expression is a final expression node ready to be serialized,
// tagged with the host-language type T that stands in for its SQL
// result type. T never exists at runtime — it exists only to gate
// which builder methods a given Go compilation accepts, since Go's
// method sets cannot carry extra type parameters (Lt/Like/etc. below
// are package functions for that reason, not methods).
type Expression[T any] struct {
	n   node
	typ SQLType
}

func expr[T any](n node, typ SQLType) Expression[T] {
	return Expression[T]{n: n, typ: typ}
}

func (e Expression[T]) exprTokens(t *Tokens) { e.n.render(t) }

// Type returns the SQL type descriptor this expression produces.
func (e Expression[T]) Type() SQLType { return e.typ }

// ============================================================
// Leaf nodes
// ============================================================

type columnNode struct {
	table, column string
}

func (c columnNode) render(t *Tokens) { t.ColumnRef(c.table, c.column) }

// Field constructs a column-reference expression — materialized
// eagerly by the row-struct constructor a host program writes once
// per table, rather than lazily on first property access.
func Field[T any](table, column string, typ SQLType) Expression[T] {
	return expr[T](columnNode{table: table, column: column}, typ)
}

type literalNode struct {
	kind    LiteralKind
	text    string
	boolVal bool
}

func (l literalNode) render(t *Tokens) {
	switch l.kind {
	case LiteralString:
		t.StringLiteral(l.text)
	case LiteralNumber:
		t.NumberLiteral(l.text)
	case LiteralBool:
		t.BoolLiteral(l.boolVal)
	case LiteralNull:
		t.NullLiteral()
	}
}

// scalarLiteral is the set of host scalar kinds ConstLit accepts:
// literal (non-widened) host strings/numbers/booleans. Go has no
// literal-type subtyping, so this restriction is enforced only by
// convention (ConstLit's doc comment) rather than the compiler; see
// DESIGN.md.
type scalarLiteral interface {
	~string | ~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ConstLit builds a constant expression from a compile-time host
// value. Dynamic/computed values must be bound through [Params]
// instead — ConstLit performs no quoting of caller-controlled runtime
// strings beyond the literal-escaping rule in quote.go, so routing
// untrusted input through it (rather than a parameter) is a misuse of
// the API, not a supported interpolation path.
func ConstLit[T scalarLiteral](v T, typ SQLType) Expression[T] {
	switch val := any(v).(type) {
	case string:
		return expr[T](literalNode{kind: LiteralString, text: val}, typ)
	case bool:
		return expr[T](literalNode{kind: LiteralBool, boolVal: val}, typ)
	case float64:
		return expr[T](numberLiteralNode(val), typ)
	case float32:
		return expr[T](numberLiteralNode(float64(val)), typ)
	default:
		return expr[T](literalNode{kind: LiteralNumber, text: formatIntLiteral(v)}, typ)
	}
}

// numberLiteralNode renders a float64, emitting non-finite values
// (±Infinity, NaN) as string literals — PostgreSQL accepts these as
// floating-point specials.
func numberLiteralNode(f float64) node {
	if math.IsInf(f, 1) {
		return literalNode{kind: LiteralString, text: "Infinity"}
	}
	if math.IsInf(f, -1) {
		return literalNode{kind: LiteralString, text: "-Infinity"}
	}
	if math.IsNaN(f) {
		return literalNode{kind: LiteralString, text: "NaN"}
	}
	return literalNode{kind: LiteralNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

func formatIntLiteral[T any](v T) string {
	switch x := any(v).(type) {
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return "0"
	}
}

// Null builds a typed SQL NULL.
func Null[T any](typ SQLType) Expression[T] {
	return expr[T](literalNode{kind: LiteralNull}, typ.AsNullable())
}

// ConstUUID validates s as RFC 4122 hex (ErrInvalidUUID on failure)
// and builds a uuid-typed string constant.
func ConstUUID(s string) (Expression[string], error) {
	if err := ValidateUUID(s); err != nil {
		return Expression[string]{}, err
	}
	return expr[string](literalNode{kind: LiteralString, text: s}, UUID), nil
}

// MustConstUUID panics instead of returning an error; for call sites
// passing a compile-time-constant literal.
func MustConstUUID(s string) Expression[string] {
	return must(ConstUUID(s))
}

// Raw injects verbatim SQL text as an expression — the escape hatch
// for constructs this package has no typed builder for. Callers are
// responsible for never interpolating untrusted input through it.
func Raw[T any](sql string, typ SQLType) Expression[T] {
	return expr[T](rawNode(sql), typ)
}

type rawNode string

func (r rawNode) render(t *Tokens) { t.Raw(string(r)) }

// ============================================================
// Plain function calls
// ============================================================

type funcCallNode struct {
	name string
	args []node
}

func (n funcCallNode) render(t *Tokens) {
	t.Identifier(n.name, false).OpenParen()
	commaSeparate(t, n.args, func(t *Tokens, a node) { a.render(t) })
	t.CloseParen()
}

// Func builds a generic function-call expression: name(args...). This
// is the general escape hatch for scalar functions with no dedicated
// builder (Extract/DateTrunc below cover the two idioms common enough
// to warrant their own constructor); unlike AggCall, it never renders
// a bare "*" for a zero-arg call, since most scalar functions (now(),
// random()) take no "*" shorthand at all.
func Func[T any](name string, typ SQLType, args ...Expr) Expression[T] {
	nodes := make([]node, len(args))
	for i, a := range args {
		nodes[i] = exprAdapter{a}
	}
	return expr[T](funcCallNode{name: name, args: nodes}, typ)
}

type extractNode struct {
	field  string
	source node
}

func (n extractNode) render(t *Tokens) {
	t.Keyword("EXTRACT").OpenParen().Keyword(n.field).Keyword("FROM")
	n.source.render(t)
	t.CloseParen()
}

// Extract builds EXTRACT(field FROM source), e.g.
// Extract[float64]("YEAR", createdAt, Numeric). field is rendered verbatim as a
// keyword (YEAR, MONTH, DAY, EPOCH, ...), not quoted or validated
// against Postgres's field list.
func Extract[T any](field string, source Expr, typ SQLType) Expression[T] {
	return expr[T](extractNode{field: field, source: exprAdapter{source}}, typ)
}

// DateTrunc builds date_trunc('unit', source), e.g.
// DateTrunc[time.Time]("month", createdAt, Timestamp).
func DateTrunc[T any](unit string, source Expr, typ SQLType) Expression[T] {
	return Func[T]("date_trunc", typ, ConstLit(unit, Text), source)
}

// ============================================================
// Null tests, logical connectives, equality/distinct
// ============================================================

type postfixNode struct {
	operand node
	kw      string
}

func (p postfixNode) render(t *Tokens) {
	t.OpenParen()
	p.operand.render(t)
	for _, w := range splitKeywords(p.kw) {
		t.Keyword(w)
	}
	t.CloseParen()
}

func splitKeywords(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// IsNull renders (L IS NULL).
func (e Expression[T]) IsNull() Expression[bool] {
	return expr[bool](postfixNode{operand: e.n, kw: "IS NULL"}, Boolean)
}

// IsNotNull renders (L IS NOT NULL).
func (e Expression[T]) IsNotNull() Expression[bool] {
	return expr[bool](postfixNode{operand: e.n, kw: "IS NOT NULL"}, Boolean)
}

type infixNode struct {
	left  node
	op    string
	right node
}

func (n infixNode) render(t *Tokens) {
	t.OpenParen()
	n.left.render(t)
	for _, w := range splitKeywords(n.op) {
		t.Keyword(w)
	}
	n.right.render(t)
	t.CloseParen()
}

// And renders (L AND R).
func (e Expression[T]) And(other Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: e.n, op: "AND", right: other.n}, Boolean)
}

// Or renders (L OR R).
func (e Expression[T]) Or(other Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: e.n, op: "OR", right: other.n}, Boolean)
}

// IsDistinctFrom renders (L IS DISTINCT FROM R).
func (e Expression[T]) IsDistinctFrom(other Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: e.n, op: "IS DISTINCT FROM", right: other.n}, Boolean)
}

// IsNotDistinctFrom renders (L IS NOT DISTINCT FROM R).
func (e Expression[T]) IsNotDistinctFrom(other Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: e.n, op: "IS NOT DISTINCT FROM", right: other.n}, Boolean)
}

// Eq renders (L = R).
func (e Expression[T]) Eq(other Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: e.n, op: "=", right: other.n}, Boolean)
}

// Ne renders (L <> R).
func (e Expression[T]) Ne(other Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: e.n, op: "<>", right: other.n}, Boolean)
}

// Not renders (not expr) as a standalone function rather than a
// method, matching how negation reads at call sites: not(expr).
func Not(e Expression[bool]) Expression[bool] {
	return expr[bool](prefixNode{kw: "not", operand: e.n}, Boolean)
}

type prefixNode struct {
	kw      string
	operand node
}

func (p prefixNode) render(t *Tokens) {
	t.OpenParen()
	t.Keyword(p.kw)
	p.operand.render(t)
	t.CloseParen()
}

// And and Or (package functions) combine a variadic slice of boolean
// expressions, rendering "TRUE"/"FALSE" for the empty case — a
// multi-operand form alongside the binary Expression[T].And/.Or
// methods above, following the AndExpr/OrExpr shape in
// internal/sqlgen/sqldsl/operators.go.
func And(exprs ...Expression[bool]) Expression[bool] {
	return expr[bool](multiLogicalNode{op: "AND", empty: "TRUE", operands: toNodes(exprs)}, Boolean)
}

func Or(exprs ...Expression[bool]) Expression[bool] {
	return expr[bool](multiLogicalNode{op: "OR", empty: "FALSE", operands: toNodes(exprs)}, Boolean)
}

func toNodes[T any](exprs []Expression[T]) []node {
	out := make([]node, len(exprs))
	for i, e := range exprs {
		out[i] = e.n
	}
	return out
}

type multiLogicalNode struct {
	op       string
	empty    string
	operands []node
}

func (m multiLogicalNode) render(t *Tokens) {
	switch len(m.operands) {
	case 0:
		t.Keyword(m.empty)
	case 1:
		m.operands[0].render(t)
	default:
		t.OpenParen()
		for i, o := range m.operands {
			if i > 0 {
				t.Keyword(m.op)
			}
			o.render(t)
		}
		t.CloseParen()
	}
}

// ============================================================
// Ordering comparisons and pattern matching (constrained generics)
// ============================================================

// Ordered unifies the host scalar kinds for which PostgreSQL's
// ordering comparisons (<, <=, >, >=) are meaningful: numbers and
// text. Lt/Le/Gt/Ge below are reachable only when both operands'
// phantom type satisfies this constraint.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~string
}

func Lt[T Ordered](l, r Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: l.n, op: "<", right: r.n}, Boolean)
}

func Le[T Ordered](l, r Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: l.n, op: "<=", right: r.n}, Boolean)
}

func Gt[T Ordered](l, r Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: l.n, op: ">", right: r.n}, Boolean)
}

func Ge[T Ordered](l, r Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: l.n, op: ">=", right: r.n}, Boolean)
}

// Textual unifies the host string kinds pattern-match/collate
// operators apply to.
type Textual interface{ ~string }

func Like[T Textual](l, r Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: l.n, op: "LIKE", right: r.n}, Boolean)
}

func NotLike[T Textual](l, r Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: l.n, op: "NOT LIKE", right: r.n}, Boolean)
}

func ILike[T Textual](l, r Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: l.n, op: "ILIKE", right: r.n}, Boolean)
}

func NotILike[T Textual](l, r Expression[T]) Expression[bool] {
	return expr[bool](infixNode{left: l.n, op: "NOT ILIKE", right: r.n}, Boolean)
}

// Collate renders (L COLLATE "c"), always force-quoting the collation
// name.
func Collate[T Textual](l Expression[T], collation string) Expression[string] {
	return expr[string](collateNode{operand: l.n, collation: collation}, Text)
}

type collateNode struct {
	operand    node
	collation  string
}

func (c collateNode) render(t *Tokens) {
	t.OpenParen()
	c.operand.render(t)
	t.Keyword("COLLATE")
	t.Identifier(c.collation, true)
	t.CloseParen()
}

// Between renders (expr BETWEEN low AND high) — a supplemented builder
// (SPEC_FULL.md §4) grounded on leapstack-labs-leapsql's BetweenExpr.
func Between[T Ordered](e, low, high Expression[T]) Expression[bool] {
	return expr[bool](betweenNode{operand: e.n, low: low.n, high: high.n}, Boolean)
}

func NotBetween[T Ordered](e, low, high Expression[T]) Expression[bool] {
	return expr[bool](betweenNode{operand: e.n, low: low.n, high: high.n, not: true}, Boolean)
}

type betweenNode struct {
	operand, low, high node
	not                 bool
}

func (b betweenNode) render(t *Tokens) {
	t.OpenParen()
	b.operand.render(t)
	if b.not {
		t.Keyword("NOT")
	}
	t.Keyword("BETWEEN")
	b.low.render(t)
	t.Keyword("AND")
	b.high.render(t)
	t.CloseParen()
}

// ============================================================
// Cast
// ============================================================

type castNode struct {
	operand  node
	typeName string
}

func (c castNode) render(t *Tokens) {
	t.Keyword("CAST").OpenParen()
	c.operand.render(t)
	t.Keyword("AS").Keyword(c.typeName)
	t.CloseParen()
}

// CastAs renders CAST(L AS typeName). A new type parameter U cannot be
// introduced on a method of Expression[T] (Go forbids new type
// parameters on methods of generic types), so this is a package
// function.
func CastAs[T, U any](e Expression[T], typ SQLType) Expression[U] {
	return expr[U](castNode{operand: e.n, typeName: typ.Name}, typ)
}

// ============================================================
// IN / NOT IN, ANY / ALL
// ============================================================

type inListNode struct {
	operand node
	values  []node
	not     bool
}

func (n inListNode) render(t *Tokens) {
	t.OpenParen()
	n.operand.render(t)
	if n.not {
		t.Keyword("NOT")
	}
	t.Keyword("IN").OpenParen()
	commaSeparate(t, n.values, func(t *Tokens, v node) { v.render(t) })
	t.CloseParen().CloseParen()
}

// In renders (L IN (v1, ..., vn)).
func (e Expression[T]) In(values ...Expression[T]) Expression[bool] {
	return expr[bool](inListNode{operand: e.n, values: toNodes(values)}, Boolean)
}

// NotIn renders (L NOT IN (v1, ..., vn)).
func (e Expression[T]) NotIn(values ...Expression[T]) Expression[bool] {
	return expr[bool](inListNode{operand: e.n, values: toNodes(values), not: true}, Boolean)
}

type inSubqueryNode struct {
	operand node
	query   Serializable
	not     bool
}

func (n inSubqueryNode) render(t *Tokens) {
	t.OpenParen()
	n.operand.render(t)
	if n.not {
		t.Keyword("NOT")
	}
	t.Keyword("IN").OpenParen()
	t.Append(n.query.tokens())
	t.CloseParen().CloseParen()
}

// InQuery renders (L IN (subquery)).
func (e Expression[T]) InQuery(q Serializable) Expression[bool] {
	return expr[bool](inSubqueryNode{operand: e.n, query: q}, Boolean)
}

// NotInQuery renders (L NOT IN (subquery)).
func (e Expression[T]) NotInQuery(q Serializable) Expression[bool] {
	return expr[bool](inSubqueryNode{operand: e.n, query: q, not: true}, Boolean)
}

type anyAllNode struct {
	operand node
	op      string
	kw      string // ANY or ALL
	array   node
	query   Serializable
}

func (n anyAllNode) render(t *Tokens) {
	t.OpenParen()
	n.operand.render(t)
	t.Operator(n.op)
	t.Keyword(n.kw).OpenParen()
	if n.query != nil {
		t.Append(n.query.tokens())
	} else {
		n.array.render(t)
	}
	t.CloseParen().CloseParen()
}

// Any renders (L op ANY(arr)). op must be a valid operator per
// quote.go's validateOperator (e.g. "=", "<", "<>").
//
// Package function rather than a method on Expression[T] (like
// Lt/Like above) because Go disallows a generic type's method from
// instantiating that same type with a derived type argument
// ([]T) — it reports an instantiation cycle even though the
// recursion is not actually infinite.
func Any[T any](e Expression[T], op string, arr Expression[[]T]) (Expression[bool], error) {
	validated, err := validateOperator(op)
	if err != nil {
		return Expression[bool]{}, err
	}
	return expr[bool](anyAllNode{operand: e.n, op: validated, kw: "ANY", array: arr.n}, Boolean), nil
}

// All renders (L op ALL(arr)).
func All[T any](e Expression[T], op string, arr Expression[[]T]) (Expression[bool], error) {
	validated, err := validateOperator(op)
	if err != nil {
		return Expression[bool]{}, err
	}
	return expr[bool](anyAllNode{operand: e.n, op: validated, kw: "ALL", array: arr.n}, Boolean), nil
}

// AnyQuery/AllQuery are the subquery-operand forms of Any/All.
func (e Expression[T]) AnyQuery(op string, q Serializable) (Expression[bool], error) {
	validated, err := validateOperator(op)
	if err != nil {
		return Expression[bool]{}, err
	}
	return expr[bool](anyAllNode{operand: e.n, op: validated, kw: "ANY", query: q}, Boolean), nil
}

func (e Expression[T]) AllQuery(op string, q Serializable) (Expression[bool], error) {
	validated, err := validateOperator(op)
	if err != nil {
		return Expression[bool]{}, err
	}
	return expr[bool](anyAllNode{operand: e.n, op: validated, kw: "ALL", query: q}, Boolean), nil
}

// ============================================================
// EXISTS, scalar subquery, array literal, row
// ============================================================

type existsNode struct {
	query Serializable
	not   bool
}

func (n existsNode) render(t *Tokens) {
	if n.not {
		t.Keyword("NOT")
	}
	t.Keyword("EXISTS").OpenParen()
	t.Append(n.query.tokens())
	t.CloseParen()
}

// Exists renders EXISTS (subquery).
func Exists(q Serializable) Expression[bool] {
	return expr[bool](existsNode{query: q}, Boolean)
}

// NotExists renders NOT EXISTS (subquery).
func NotExists(q Serializable) Expression[bool] {
	return expr[bool](existsNode{query: q, not: true}, Boolean)
}

type subqueryExprNode struct {
	query Serializable
}

func (n subqueryExprNode) render(t *Tokens) {
	t.OpenParen()
	t.Append(n.query.tokens())
	t.CloseParen()
}

type arrayLiteralNode struct {
	values []node
}

func (n arrayLiteralNode) render(t *Tokens) {
	t.Keyword("ARRAY").OpenBracket()
	commaSeparate(t, n.values, func(t *Tokens, v node) { v.render(t) })
	t.CloseBracket()
}

// ArrayLit renders ARRAY[v1, ..., vn].
func ArrayLit[T any](typ SQLType, values ...Expression[T]) Expression[[]T] {
	return expr[[]T](arrayLiteralNode{values: toNodes(values)}, typ.Array())
}

type rowNode struct {
	values []node
}

func (n rowNode) render(t *Tokens) {
	t.Keyword("ROW").OpenParen()
	commaSeparate(t, n.values, func(t *Tokens, v node) { v.render(t) })
	t.CloseParen()
}

// Row renders ROW(v1, ..., vn). The element expressions need not share
// a single host type, so Row is untyped at the Expression[T] level —
// hosts needing a typed row expression should wrap the result.
type Row struct {
	n node
}

func (r Row) exprTokens(t *Tokens) { r.n.render(t) }

func NewRow(values ...Expr) Row {
	nodes := make([]node, len(values))
	for i, v := range values {
		nodes[i] = exprAdapter{v}
	}
	return Row{n: rowNode{values: nodes}}
}

// exprAdapter lets any Expr (including heterogeneous Expression[T]
// instantiations) participate as a node, used where a slice of mixed
// Expression[T] types must be rendered together (Row, function,
// aggregate and window-call arguments).
type exprAdapter struct{ e Expr }

func (a exprAdapter) render(t *Tokens) { a.e.exprTokens(t) }

// ============================================================
// CASE WHEN
// ============================================================

// CaseBuilder accumulates WHEN clauses for a CASE expression,
// following the CaseExpr/CaseWhen shape in
// internal/sqlgen/sqldsl/operators.go.
type CaseBuilder[T any] struct {
	whens []whenClause
	typ   SQLType
}

type whenClause struct {
	cond, result node
}

// Case starts a CASE expression of the given result type.
func Case[T any](typ SQLType) *CaseBuilder[T] {
	return &CaseBuilder[T]{typ: typ}
}

// When appends a WHEN cond THEN result clause.
func (c *CaseBuilder[T]) When(cond Expression[bool], result Expression[T]) *CaseBuilder[T] {
	c.whens = append(c.whens, whenClause{cond: cond.n, result: result.n})
	return c
}

// Else finalizes the CASE expression with a default branch.
func (c *CaseBuilder[T]) Else(result Expression[T]) Expression[T] {
	return expr[T](caseNode{whens: c.whens, els: result.n, hasElse: true}, c.typ)
}

// End finalizes the CASE expression with no ELSE branch (NULL default).
func (c *CaseBuilder[T]) End() Expression[T] {
	return expr[T](caseNode{whens: c.whens}, c.typ.AsNullable())
}

type caseNode struct {
	whens   []whenClause
	els     node
	hasElse bool
}

func (n caseNode) render(t *Tokens) {
	t.Keyword("CASE")
	for _, w := range n.whens {
		t.Keyword("WHEN")
		w.cond.render(t)
		t.Keyword("THEN")
		w.result.render(t)
	}
	if n.hasElse {
		t.Keyword("ELSE")
		n.els.render(t)
	}
	t.Keyword("END")
}

// ============================================================
// Ordering specs (ORDER BY items)
// ============================================================

// NullsOrder controls NULLS FIRST/LAST placement.
type NullsOrder int

const (
	NullsDefault NullsOrder = iota
	NullsFirst
	NullsLast
)

// OrderSpec is one ORDER BY item, produced by Asc/Desc/Using.
type OrderSpec struct {
	n     node
	desc  bool
	using string
	nulls NullsOrder
}

func (o OrderSpec) render(t *Tokens) {
	o.n.render(t)
	switch {
	case o.using != "":
		t.Keyword("USING").Operator(o.using)
	case o.desc:
		t.Keyword("DESC")
	default:
		t.Keyword("ASC")
	}
	switch o.nulls {
	case NullsFirst:
		t.Keyword("NULLS FIRST")
	case NullsLast:
		t.Keyword("NULLS LAST")
	}
}

// Asc produces an ASC ordering item.
func (e Expression[T]) Asc() OrderSpec { return OrderSpec{n: e.n, nulls: NullsLast} }

// Desc produces a DESC ordering item. Nulls default to NULLS FIRST,
// matching PostgreSQL's own default for descending order (the inverse
// of ASC's NULLS LAST default) rather than silently inheriting ASC's
// placement.
func (e Expression[T]) Desc() OrderSpec { return OrderSpec{n: e.n, desc: true, nulls: NullsFirst} }

// Using produces a USING-operator ordering item.
func (e Expression[T]) Using(op string) (OrderSpec, error) {
	validated, err := validateOperator(op)
	if err != nil {
		return OrderSpec{}, err
	}
	return OrderSpec{n: e.n, using: validated, nulls: NullsLast}, nil
}

// NullsFirst/NullsLast modify an existing OrderSpec's null placement.
func (o OrderSpec) NullsFirst() OrderSpec { o.nulls = NullsFirst; return o }
func (o OrderSpec) NullsLast() OrderSpec  { o.nulls = NullsLast; return o }
