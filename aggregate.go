package pgqb

// AggCall is a plain aggregate function invocation, staged so that
// DISTINCT / ORDER BY / FILTER WHERE can be attached before the call
// is frozen into an Expression[T], following the FuncCall staged
// builder in internal/sqlgen/sqldsl/func_call.go.
type AggCall[T any] struct {
	name     string
	args     []node
	distinct bool
	orderBy  []OrderSpec
	filter   node
	typ      SQLType
}

// Agg starts a plain aggregate call (count, sum, avg, array_agg, ...).
func Agg[T any](name string, typ SQLType, args ...Expr) *AggCall[T] {
	nodes := make([]node, len(args))
	for i, a := range args {
		nodes[i] = exprAdapter{a}
	}
	return &AggCall[T]{name: name, args: nodes, typ: typ}
}

// Distinct adds DISTINCT before the argument list.
func (a *AggCall[T]) Distinct() *AggCall[T] {
	a.distinct = true
	return a
}

// OrderBy adds an ORDER BY clause inside the aggregate's argument
// list, meaningful for order-sensitive aggregates like array_agg and
// string_agg.
func (a *AggCall[T]) OrderBy(specs ...OrderSpec) *AggCall[T] {
	a.orderBy = append(a.orderBy, specs...)
	return a
}

// FilterWhere attaches a FILTER (WHERE cond) clause.
func (a *AggCall[T]) FilterWhere(cond Expression[bool]) *AggCall[T] {
	a.filter = cond.n
	return a
}

// Build freezes the aggregate call into an Expression[T]. An
// argumentless call (count(*) and friends) rejects DISTINCT and ORDER
// BY, since neither has a Postgres reading when there is no argument
// list to modify — returns ErrInvalidAggregateConfiguration.
func (a *AggCall[T]) Build() (Expression[T], error) {
	if len(a.args) == 0 && (a.distinct || len(a.orderBy) > 0) {
		return Expression[T]{}, invalidAggregateConfiguration(a.name, "argumentless aggregate call cannot use DISTINCT or ORDER BY")
	}
	return expr[T](aggCallNode{
		name:     a.name,
		args:     a.args,
		distinct: a.distinct,
		orderBy:  a.orderBy,
		filter:   a.filter,
	}, a.typ), nil
}

type aggCallNode struct {
	name     string
	args     []node
	distinct bool
	orderBy  []OrderSpec
	filter   node
}

func (n aggCallNode) render(t *Tokens) {
	t.Identifier(n.name, false).OpenParen()
	if len(n.args) == 0 {
		t.Operator("*")
	} else {
		if n.distinct {
			t.Keyword("DISTINCT")
		}
		commaSeparate(t, n.args, func(t *Tokens, a node) { a.render(t) })
		if len(n.orderBy) > 0 {
			t.Keyword("ORDER BY")
			commaSeparate(t, n.orderBy, func(t *Tokens, o OrderSpec) { o.render(t) })
		}
	}
	t.CloseParen()
	if n.filter != nil {
		t.Keyword("FILTER").OpenParen().Keyword("WHERE")
		n.filter.render(t)
		t.CloseParen()
	}
}

// OrderedSetAgg is the WITHIN GROUP family (percentile_cont,
// percentile_disc, mode, rank as ordered-set aggregate, ...). These
// require exactly one ORDER BY item in WITHIN GROUP — zero or multiple
// is a construction-time error.
type OrderedSetAgg[T any] struct {
	name    string
	args    []node
	orderBy []OrderSpec
	filter  node
	typ     SQLType
}

// WithinGroup starts an ordered-set aggregate call.
func WithinGroup[T any](name string, typ SQLType, args ...Expr) *OrderedSetAgg[T] {
	nodes := make([]node, len(args))
	for i, a := range args {
		nodes[i] = exprAdapter{a}
	}
	return &OrderedSetAgg[T]{name: name, args: nodes, typ: typ}
}

// OrderBy sets the WITHIN GROUP ordering. Exactly one item is valid;
// Build enforces this.
func (a *OrderedSetAgg[T]) OrderBy(specs ...OrderSpec) *OrderedSetAgg[T] {
	a.orderBy = specs
	return a
}

// FilterWhere attaches a FILTER (WHERE cond) clause.
func (a *OrderedSetAgg[T]) FilterWhere(cond Expression[bool]) *OrderedSetAgg[T] {
	a.filter = cond.n
	return a
}

// Build validates that exactly one WITHIN GROUP ordering item was
// given, returning ErrInvalidAggregateConfiguration otherwise.
func (a *OrderedSetAgg[T]) Build() (Expression[T], error) {
	if len(a.orderBy) != 1 {
		return Expression[T]{}, invalidAggregateConfiguration(a.name, "WITHIN GROUP requires exactly one ORDER BY item")
	}
	return expr[T](orderedSetAggNode{
		name:    a.name,
		args:    a.args,
		orderBy: a.orderBy[0],
		filter:  a.filter,
	}, a.typ), nil
}

type orderedSetAggNode struct {
	name    string
	args    []node
	orderBy OrderSpec
	filter  node
}

func (n orderedSetAggNode) render(t *Tokens) {
	t.Identifier(n.name, false).OpenParen()
	commaSeparate(t, n.args, func(t *Tokens, a node) { a.render(t) })
	t.CloseParen()
	t.Keyword("WITHIN GROUP").OpenParen().Keyword("ORDER BY")
	n.orderBy.render(t)
	t.CloseParen()
	if n.filter != nil {
		t.Keyword("FILTER").OpenParen().Keyword("WHERE")
		n.filter.render(t)
		t.CloseParen()
	}
}

// JSONNullPolicy controls json_objectagg/json_arrayagg's ON NULL clause.
type JSONNullPolicy int

const (
	JSONNullDefault JSONNullPolicy = iota
	JSONNullAbsent
	JSONNullNull
)

// JSONObjectAggCall builds json_objectagg(key: value [ABSENT|NULL ON
// NULL] [WITH|WITHOUT UNIQUE KEYS]).
type JSONObjectAggCall[T any] struct {
	key, value  node
	nullPolicy  JSONNullPolicy
	uniqueKeys  bool
	uniqueKeysSet bool
	filter      node
	typ         SQLType
}

// JSONObjectAgg starts a json_objectagg call.
func JSONObjectAgg[T any](key, value Expr, typ SQLType) *JSONObjectAggCall[T] {
	return &JSONObjectAggCall[T]{key: exprAdapter{key}, value: exprAdapter{value}, typ: typ}
}

func (a *JSONObjectAggCall[T]) AbsentOnNull() *JSONObjectAggCall[T] {
	a.nullPolicy = JSONNullAbsent
	return a
}

func (a *JSONObjectAggCall[T]) NullOnNull() *JSONObjectAggCall[T] {
	a.nullPolicy = JSONNullNull
	return a
}

func (a *JSONObjectAggCall[T]) WithUniqueKeys() *JSONObjectAggCall[T] {
	a.uniqueKeys, a.uniqueKeysSet = true, true
	return a
}

func (a *JSONObjectAggCall[T]) WithoutUniqueKeys() *JSONObjectAggCall[T] {
	a.uniqueKeys, a.uniqueKeysSet = false, true
	return a
}

func (a *JSONObjectAggCall[T]) FilterWhere(cond Expression[bool]) *JSONObjectAggCall[T] {
	a.filter = cond.n
	return a
}

func (a *JSONObjectAggCall[T]) Build() Expression[T] {
	return expr[T](jsonObjectAggNode{
		key: a.key, value: a.value,
		nullPolicy: a.nullPolicy,
		uniqueKeysSet: a.uniqueKeysSet, uniqueKeys: a.uniqueKeys,
		filter: a.filter,
	}, a.typ)
}

type jsonObjectAggNode struct {
	key, value    node
	nullPolicy    JSONNullPolicy
	uniqueKeysSet bool
	uniqueKeys    bool
	filter        node
}

func (n jsonObjectAggNode) render(t *Tokens) {
	t.Identifier("json_objectagg", false).OpenParen()
	n.key.render(t)
	t.Operator(":")
	n.value.render(t)
	switch n.nullPolicy {
	case JSONNullAbsent:
		t.Keyword("ABSENT ON NULL")
	case JSONNullNull:
		t.Keyword("NULL ON NULL")
	}
	if n.uniqueKeysSet {
		if n.uniqueKeys {
			t.Keyword("WITH UNIQUE KEYS")
		} else {
			t.Keyword("WITHOUT UNIQUE KEYS")
		}
	}
	t.CloseParen()
	if n.filter != nil {
		t.Keyword("FILTER").OpenParen().Keyword("WHERE")
		n.filter.render(t)
		t.CloseParen()
	}
}

// JSONArrayAggCall builds json_arrayagg(value [ORDER BY ...] [ABSENT|NULL ON NULL]).
type JSONArrayAggCall[T any] struct {
	value      node
	orderBy    []OrderSpec
	nullPolicy JSONNullPolicy
	filter     node
	typ        SQLType
}

func JSONArrayAgg[T any](value Expr, typ SQLType) *JSONArrayAggCall[T] {
	return &JSONArrayAggCall[T]{value: exprAdapter{value}, typ: typ}
}

func (a *JSONArrayAggCall[T]) OrderBy(specs ...OrderSpec) *JSONArrayAggCall[T] {
	a.orderBy = append(a.orderBy, specs...)
	return a
}

func (a *JSONArrayAggCall[T]) AbsentOnNull() *JSONArrayAggCall[T] {
	a.nullPolicy = JSONNullAbsent
	return a
}

func (a *JSONArrayAggCall[T]) NullOnNull() *JSONArrayAggCall[T] {
	a.nullPolicy = JSONNullNull
	return a
}

func (a *JSONArrayAggCall[T]) FilterWhere(cond Expression[bool]) *JSONArrayAggCall[T] {
	a.filter = cond.n
	return a
}

func (a *JSONArrayAggCall[T]) Build() Expression[T] {
	return expr[T](jsonArrayAggNode{
		value: a.value, orderBy: a.orderBy, nullPolicy: a.nullPolicy, filter: a.filter,
	}, a.typ)
}

type jsonArrayAggNode struct {
	value      node
	orderBy    []OrderSpec
	nullPolicy JSONNullPolicy
	filter     node
}

func (n jsonArrayAggNode) render(t *Tokens) {
	t.Identifier("json_arrayagg", false).OpenParen()
	n.value.render(t)
	if len(n.orderBy) > 0 {
		t.Keyword("ORDER BY")
		commaSeparate(t, n.orderBy, func(t *Tokens, o OrderSpec) { o.render(t) })
	}
	switch n.nullPolicy {
	case JSONNullAbsent:
		t.Keyword("ABSENT ON NULL")
	case JSONNullNull:
		t.Keyword("NULL ON NULL")
	}
	t.CloseParen()
	if n.filter != nil {
		t.Keyword("FILTER").OpenParen().Keyword("WHERE")
		n.filter.render(t)
		t.CloseParen()
	}
}
