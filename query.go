package pgqb

// Projected is one SELECT-list item: an expression plus an optional
// output alias.
type Projected struct {
	n     node
	alias string
}

// Proj projects e, optionally aliased as AS alias (pass "" for none).
func Proj[T any](e Expression[T], alias string) Projected {
	return Projected{n: e.n, alias: alias}
}

func (p Projected) render(t *Tokens) {
	p.n.render(t)
	if p.alias != "" {
		t.Keyword("AS").Identifier(p.alias, false)
	}
}

// LockMode selects a FOR UPDATE/SHARE row-locking clause.
type LockMode int

const (
	LockNone LockMode = iota
	LockForUpdate
	LockForNoKeyUpdate
	LockForShare
	LockForKeyShare
)

func (m LockMode) keyword() string {
	switch m {
	case LockForUpdate:
		return "FOR UPDATE"
	case LockForNoKeyUpdate:
		return "FOR NO KEY UPDATE"
	case LockForShare:
		return "FOR SHARE"
	case LockForKeyShare:
		return "FOR KEY SHARE"
	}
	return ""
}

// LockWait controls NOWAIT/SKIP LOCKED behavior for a lock clause.
type LockWait int

const (
	LockWaitBlock LockWait = iota
	LockNoWait
	LockSkipLocked
)

type lockClause struct {
	mode LockMode
	of   []string
	wait LockWait
}

// SetOpKind enumerates UNION/INTERSECT/EXCEPT.
type SetOpKind int

const (
	SetUnion SetOpKind = iota
	SetUnionAll
	SetIntersect
	SetIntersectAll
	SetExcept
	SetExceptAll
)

func (k SetOpKind) render(t *Tokens) {
	switch k {
	case SetUnion:
		t.Keyword("UNION")
	case SetUnionAll:
		t.Keyword("UNION ALL")
	case SetIntersect:
		t.Keyword("INTERSECT")
	case SetIntersectAll:
		t.Keyword("INTERSECT ALL")
	case SetExcept:
		t.Keyword("EXCEPT")
	case SetExceptAll:
		t.Keyword("EXCEPT ALL")
	}
}

type setOpArm struct {
	kind SetOpKind
	q    *Query
}

// Query is the immutable, serializable result of a SELECT builder.
// Each QueryBuilder method in this file returns a new value rather
// than mutating its receiver in place — an immutable builder
// approximated here as copy-on-write over a single type rather than a
// distinct Go type per clause stage, since a literal type-state
// machine would need the full method surface duplicated per stage
// under Go's generics (see DESIGN.md).
type Query struct {
	distinctAll     bool
	distinctOn      []node
	projections     []Projected
	from            FromItem
	hasFrom         bool
	where           node
	groupBy         []GroupingElement
	groupByDistinct bool
	having          node
	windows         []NamedWindowDef
	setOps          []setOpArm
	orderBy         []OrderSpec
	allowOrderBy    bool
	limit           node
	hasLimit        bool
	offset          node
	hasOffset       bool
	fetch           node
	hasFetch        bool
	fetchTies       bool
	lock            *lockClause
	allowLock       bool
}

// From starts a query rooted at t, the row type parameter threading
// through to Select's projection closure.
func From[Row any](t Table[Row]) *QueryBuilder[Row] {
	return &QueryBuilder[Row]{q: &Query{from: t, hasFrom: true, allowOrderBy: true, allowLock: true}, row: t.Row()}
}

// QueryBuilder carries the Row type available to Select's projection
// closure alongside the Query state under construction.
type QueryBuilder[Row any] struct {
	q   *Query
	row Row
}

func (b *QueryBuilder[Row]) clone() *QueryBuilder[Row] {
	q := *b.q
	return &QueryBuilder[Row]{q: &q, row: b.row}
}

// Where ANDs cond onto the builder's WHERE clause.
func (b *QueryBuilder[Row]) Where(fn func(Row) Expression[bool]) *QueryBuilder[Row] {
	nb := b.clone()
	cond := fn(b.row)
	if nb.q.where == nil {
		nb.q.where = cond.n
	} else {
		nb.q.where = infixNode{left: nb.q.where, op: "AND", right: cond.n}
	}
	return nb
}

// Distinct sets plain SELECT DISTINCT.
func (b *QueryBuilder[Row]) Distinct() *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.distinctAll = true
	return nb
}

// DistinctOn sets SELECT DISTINCT ON (exprs).
func (b *QueryBuilder[Row]) DistinctOn(fn func(Row) []Expr) *QueryBuilder[Row] {
	nb := b.clone()
	exprs := fn(b.row)
	nodes := make([]node, len(exprs))
	for i, e := range exprs {
		nodes[i] = exprAdapter{e}
	}
	nb.q.distinctOn = nodes
	return nb
}

// GroupBy sets the GROUP BY clause.
func (b *QueryBuilder[Row]) GroupBy(fn func(Row) []GroupingElement) *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.groupBy = fn(b.row)
	nb.q.groupByDistinct = false
	return nb
}

// GroupByDistinct sets the GROUP BY clause with DISTINCT, collapsing
// duplicate grouping sets produced by a ROLLUP/CUBE/GROUPING SETS tree
// (GROUP BY DISTINCT ROLLUP(...), etc.) — a no-op for a flat
// expression list, where there is only ever one grouping set to begin
// with.
func (b *QueryBuilder[Row]) GroupByDistinct(fn func(Row) []GroupingElement) *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.groupBy = fn(b.row)
	nb.q.groupByDistinct = true
	return nb
}

// Having ANDs cond onto the builder's HAVING clause.
func (b *QueryBuilder[Row]) Having(fn func(Row) Expression[bool]) *QueryBuilder[Row] {
	nb := b.clone()
	cond := fn(b.row)
	if nb.q.having == nil {
		nb.q.having = cond.n
	} else {
		nb.q.having = infixNode{left: nb.q.having, op: "AND", right: cond.n}
	}
	return nb
}

// Window adds entries to the query's WINDOW clause. Duplicate names
// across the whole set (this call plus all previous Window calls) are
// a construction-time error, caught at Build, not here, since Window
// may be called more than once while composing a query.
func (b *QueryBuilder[Row]) Window(defs ...NamedWindowDef) *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.windows = append(append([]NamedWindowDef{}, nb.q.windows...), defs...)
	return nb
}

// OrderBy sets the ORDER BY clause.
func (b *QueryBuilder[Row]) OrderBy(fn func(Row) []OrderSpec) *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.orderBy = fn(b.row)
	return nb
}

// Limit sets LIMIT n.
func (b *QueryBuilder[Row]) Limit(n Expression[int64]) *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.limit, nb.q.hasLimit = n.n, true
	return nb
}

// Offset sets OFFSET n.
func (b *QueryBuilder[Row]) Offset(n Expression[int64]) *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.offset, nb.q.hasOffset = n.n, true
	return nb
}

// Fetch sets FETCH FIRST n ROWS [WITH TIES]. This package always
// requires an Offset to already be set before Fetch, checked at Build
// (ErrMissingOffsetForFetch), stricter than PostgreSQL's own
// requirement that OFFSET precede FETCH only when WITH TIES is used.
func (b *QueryBuilder[Row]) Fetch(n Expression[int64], withTies bool) *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.fetch, nb.q.hasFetch, nb.q.fetchTies = n.n, true, withTies
	return nb
}

// Lock attaches a FOR UPDATE/SHARE clause. Disallowed (returns an
// error from Build) once the query has been combined with a set
// operation, mirroring PostgreSQL's own restriction that locking
// clauses cannot apply to a UNION/INTERSECT/EXCEPT result.
func (b *QueryBuilder[Row]) Lock(mode LockMode, wait LockWait, of ...string) *QueryBuilder[Row] {
	nb := b.clone()
	nb.q.lock = &lockClause{mode: mode, wait: wait, of: of}
	return nb
}

// Select finalizes the projection list and hands back the
// query-shaped *Query, ready for Build, Scalar, or combination via
// Union/Intersect/Except.
func (b *QueryBuilder[Row]) Select(fn func(Row) []Projected) *Query {
	nb := b.clone()
	nb.q.projections = fn(b.row)
	return nb.q
}

// Union, Intersect, and Except combine q with other under a set
// operator. Doing so drops q's ORDER BY, LIMIT/OFFSET/FETCH and lock
// clause and clears allowOrderBy/allowLock on the combined result:
// ordering or limiting the combined rows requires wrapping the
// combination in a subquery and ordering that instead, rather than
// this package silently attaching ORDER BY/LIMIT to one arm.
func (q *Query) combine(kind SetOpKind, other *Query) *Query {
	nq := *q
	nq.setOps = append(append([]setOpArm{}, q.setOps...), setOpArm{kind: kind, q: other})
	nq.allowOrderBy = false
	nq.allowLock = false
	nq.orderBy = nil
	nq.limit, nq.hasLimit = nil, false
	nq.offset, nq.hasOffset = nil, false
	nq.fetch, nq.hasFetch, nq.fetchTies = nil, false, false
	nq.lock = nil
	return &nq
}

func (q *Query) Union(other *Query) *Query        { return q.combine(SetUnion, other) }
func (q *Query) UnionAll(other *Query) *Query     { return q.combine(SetUnionAll, other) }
func (q *Query) Intersect(other *Query) *Query    { return q.combine(SetIntersect, other) }
func (q *Query) IntersectAll(other *Query) *Query { return q.combine(SetIntersectAll, other) }
func (q *Query) Except(other *Query) *Query       { return q.combine(SetExcept, other) }
func (q *Query) ExceptAll(other *Query) *Query    { return q.combine(SetExceptAll, other) }

// Build validates the query's construction-time invariants and
// returns it ready for Serialize.
func (q *Query) Build() (*Query, error) {
	seen := map[string]struct{}{}
	for _, w := range q.windows {
		if _, dup := seen[w.Name]; dup {
			return nil, duplicateWindowName(w.Name)
		}
		seen[w.Name] = struct{}{}
	}
	if q.hasFetch && !q.hasOffset {
		return nil, missingOffsetForFetch()
	}
	if q.distinctAll && len(q.distinctOn) > 0 {
		return nil, invalidAggregateConfiguration("distinct", "DISTINCT and DISTINCT ON cannot both be set")
	}
	if q.lock != nil && !q.allowLock {
		return nil, invalidAggregateConfiguration("lock", "locking clauses cannot follow a set operation")
	}
	if len(q.orderBy) > 0 && !q.allowOrderBy {
		return nil, invalidAggregateConfiguration("order by", "ORDER BY on a combined result requires wrapping in a subquery")
	}
	return q, nil
}

// Scalar projects q down to a single-column Expression[T] usable as a
// scalar subquery, returning ErrScalarArity uniformly whether the
// projection has zero or more than one column. T cannot be inferred
// from *Query (it carries no Row type parameter), so Scalar is a
// package function, not a method.
func Scalar[T any](q *Query) (Expression[T], error) {
	if len(q.projections) != 1 {
		return Expression[T]{}, scalarArityError(len(q.projections))
	}
	return expr[T](subqueryExprNode{query: q}, SQLType{}), nil
}

func (q *Query) tokens() *Tokens {
	t := NewTokens()
	t.Keyword("SELECT")
	if q.distinctAll {
		t.Keyword("DISTINCT")
	} else if len(q.distinctOn) > 0 {
		t.Keyword("DISTINCT ON").OpenParen()
		commaSeparate(t, q.distinctOn, func(t *Tokens, n node) { n.render(t) })
		t.CloseParen()
	}
	commaSeparate(t, q.projections, func(t *Tokens, p Projected) { p.render(t) })
	if q.hasFrom {
		t.Keyword("FROM")
		q.from.fromTokens(t)
	}
	if q.where != nil {
		t.Keyword("WHERE")
		q.where.render(t)
	}
	if len(q.groupBy) > 0 {
		t.Keyword("GROUP BY")
		if q.groupByDistinct {
			t.Keyword("DISTINCT")
		}
		commaSeparate(t, q.groupBy, func(t *Tokens, g GroupingElement) { g.render(t) })
	}
	if q.having != nil {
		t.Keyword("HAVING")
		q.having.render(t)
	}
	if len(q.windows) > 0 {
		t.Keyword("WINDOW")
		commaSeparate(t, q.windows, func(t *Tokens, w NamedWindowDef) {
			t.Identifier(w.Name, false).Keyword("AS")
			w.Spec.render(t)
		})
	}
	for _, arm := range q.setOps {
		arm.kind.render(t)
		// An arm carrying its own ORDER BY/pagination/lock is
		// parenthesized so those clauses apply to that arm only.
		wrap := len(arm.q.orderBy) > 0 || arm.q.hasLimit || arm.q.hasOffset || arm.q.hasFetch || arm.q.lock != nil
		if wrap {
			t.OpenParen()
		}
		t.Append(arm.q.tokens())
		if wrap {
			t.CloseParen()
		}
	}
	if len(q.orderBy) > 0 {
		t.Keyword("ORDER BY")
		commaSeparate(t, q.orderBy, func(t *Tokens, o OrderSpec) { o.render(t) })
	}
	if q.hasLimit {
		t.Keyword("LIMIT")
		q.limit.render(t)
	}
	if q.hasOffset {
		t.Keyword("OFFSET")
		q.offset.render(t)
	}
	if q.hasFetch {
		t.Keyword("FETCH FIRST")
		q.fetch.render(t)
		t.Keyword("ROWS")
		if q.fetchTies {
			t.Keyword("WITH TIES")
		} else {
			t.Keyword("ONLY")
		}
	}
	if q.lock != nil {
		t.Keyword(q.lock.mode.keyword())
		if len(q.lock.of) > 0 {
			t.Keyword("OF")
			for i, name := range q.lock.of {
				if i > 0 {
					t.Special(",")
				}
				t.Identifier(name, false)
			}
		}
		switch q.lock.wait {
		case LockNoWait:
			t.Keyword("NOWAIT")
		case LockSkipLocked:
			t.Keyword("SKIP LOCKED")
		}
	}
	return t
}
