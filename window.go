package pgqb

// FrameUnit selects RANGE, ROWS or GROUPS framing for a window frame.
type FrameUnit int

const (
	FrameRange FrameUnit = iota
	FrameRows
	FrameGroups
)

func (u FrameUnit) keyword() string {
	switch u {
	case FrameRows:
		return "ROWS"
	case FrameGroups:
		return "GROUPS"
	default:
		return "RANGE"
	}
}

// FrameBoundKind tags a FrameBound's shape.
type FrameBoundKind int

const (
	BoundUnboundedPreceding FrameBoundKind = iota
	BoundPreceding
	BoundCurrentRow
	BoundFollowing
	BoundUnboundedFollowing
)

// FrameBound is one edge (start or end) of a window frame.
type FrameBound struct {
	kind   FrameBoundKind
	offset node
}

func UnboundedPreceding() FrameBound { return FrameBound{kind: BoundUnboundedPreceding} }
func UnboundedFollowing() FrameBound { return FrameBound{kind: BoundUnboundedFollowing} }
func CurrentRow() FrameBound         { return FrameBound{kind: BoundCurrentRow} }

// Preceding builds an "offset PRECEDING" bound. offset must be
// non-negative at query time; this package has no way to check that
// for a parameterized or computed offset, so it is left to PostgreSQL
// to reject at execution.
func Preceding[T any](offset Expression[T]) FrameBound {
	return FrameBound{kind: BoundPreceding, offset: offset.n}
}

func Following[T any](offset Expression[T]) FrameBound {
	return FrameBound{kind: BoundFollowing, offset: offset.n}
}

func (b FrameBound) render(t *Tokens) {
	switch b.kind {
	case BoundUnboundedPreceding:
		t.Keyword("UNBOUNDED PRECEDING")
	case BoundUnboundedFollowing:
		t.Keyword("UNBOUNDED FOLLOWING")
	case BoundCurrentRow:
		t.Keyword("CURRENT ROW")
	case BoundPreceding:
		b.offset.render(t)
		t.Keyword("PRECEDING")
	case BoundFollowing:
		b.offset.render(t)
		t.Keyword("FOLLOWING")
	}
}

// FrameExclusion is the window frame's EXCLUDE clause.
type FrameExclusion int

const (
	ExcludeNone FrameExclusion = iota
	ExcludeCurrentRow
	ExcludeGroup
	ExcludeTies
	ExcludeNoOthers
)

// Frame is a complete window-frame clause: unit, start/end bounds, and
// exclusion. Construct with NewFrame/NewFrameBetween, which enforce
// the bound invariants: start cannot be UNBOUNDED FOLLOWING, end (when
// present) cannot be UNBOUNDED PRECEDING, and start cannot sort after
// end.
type Frame struct {
	unit      FrameUnit
	start     FrameBound
	end       FrameBound
	hasEnd    bool
	exclusion FrameExclusion
}

func boundRank(k FrameBoundKind) int {
	switch k {
	case BoundUnboundedPreceding:
		return 0
	case BoundPreceding:
		return 1
	case BoundCurrentRow:
		return 2
	case BoundFollowing:
		return 3
	case BoundUnboundedFollowing:
		return 4
	}
	return -1
}

// NewFrame builds a frame with only a start bound (end defaults to
// CURRENT ROW per the SQL standard, rendered implicitly by omitting
// BETWEEN).
func NewFrame(unit FrameUnit, start FrameBound) (*Frame, error) {
	if start.kind == BoundUnboundedFollowing {
		return nil, invalidAggregateConfiguration("frame", "frame start cannot be UNBOUNDED FOLLOWING")
	}
	return &Frame{unit: unit, start: start}, nil
}

// NewFrameBetween builds a frame with explicit start and end bounds.
func NewFrameBetween(unit FrameUnit, start, end FrameBound) (*Frame, error) {
	if start.kind == BoundUnboundedFollowing {
		return nil, invalidAggregateConfiguration("frame", "frame start cannot be UNBOUNDED FOLLOWING")
	}
	if end.kind == BoundUnboundedPreceding {
		return nil, invalidAggregateConfiguration("frame", "frame end cannot be UNBOUNDED PRECEDING")
	}
	if boundRank(start.kind) > boundRank(end.kind) {
		return nil, invalidAggregateConfiguration("frame", "frame start must not sort after frame end")
	}
	return &Frame{unit: unit, start: start, end: end, hasEnd: true}, nil
}

// WithExclusion returns a copy of f with the given EXCLUDE clause.
func (f Frame) WithExclusion(e FrameExclusion) *Frame {
	f.exclusion = e
	return &f
}

func (f *Frame) render(t *Tokens) {
	t.Keyword(f.unit.keyword())
	if f.hasEnd {
		t.Keyword("BETWEEN")
		f.start.render(t)
		t.Keyword("AND")
		f.end.render(t)
	} else {
		f.start.render(t)
	}
	switch f.exclusion {
	case ExcludeCurrentRow:
		t.Keyword("EXCLUDE CURRENT ROW")
	case ExcludeGroup:
		t.Keyword("EXCLUDE GROUP")
	case ExcludeTies:
		t.Keyword("EXCLUDE TIES")
	case ExcludeNoOthers:
		t.Keyword("EXCLUDE NO OTHERS")
	}
}

// WindowSpec is the content of an OVER (...) clause or a WINDOW
// clause entry: a PARTITION BY list, an ORDER BY list, and an optional
// frame clause.
type WindowSpec struct {
	partitionBy []node
	orderBy     []OrderSpec
	frame       *Frame
	baseName    string
	hasBase     bool
}

// NewWindow starts an empty window specification.
func NewWindow() *WindowSpec { return &WindowSpec{} }

// Extending starts a window specification that refines a named window
// from the query's WINDOW clause, PostgreSQL's "OVER (w ORDER BY ...)"
// form.
func Extending(baseName string) *WindowSpec {
	return &WindowSpec{baseName: baseName, hasBase: true}
}

func (w *WindowSpec) PartitionBy(exprs ...Expr) *WindowSpec {
	for _, e := range exprs {
		w.partitionBy = append(w.partitionBy, exprAdapter{e})
	}
	return w
}

func (w *WindowSpec) OrderBy(specs ...OrderSpec) *WindowSpec {
	w.orderBy = append(w.orderBy, specs...)
	return w
}

func (w *WindowSpec) WithFrame(f *Frame) *WindowSpec {
	w.frame = f
	return w
}

func (w *WindowSpec) render(t *Tokens) {
	t.OpenParen()
	if w.hasBase {
		t.Identifier(w.baseName, false)
	}
	if len(w.partitionBy) > 0 {
		t.Keyword("PARTITION BY")
		commaSeparate(t, w.partitionBy, func(t *Tokens, n node) { n.render(t) })
	}
	if len(w.orderBy) > 0 {
		t.Keyword("ORDER BY")
		commaSeparate(t, w.orderBy, func(t *Tokens, o OrderSpec) { o.render(t) })
	}
	if w.frame != nil {
		w.frame.render(t)
	}
	t.CloseParen()
}

// NamedWindowDef is one entry of a query's WINDOW clause: a name bound
// to a WindowSpec, referenced by OVER (name) or extended by Extending.
type NamedWindowDef struct {
	Name string
	Spec *WindowSpec
}

// WindowCall is a staged window-function invocation — the same
// function-call shape as AggCall, but always paired with an OVER
// clause. A "partial" call references a named window (OverName); a
// "complete" call carries its own spec or extends one (Over).
type WindowCall[T any] struct {
	name     string
	args     []node
	distinct bool
	filter   node
	spec     *WindowSpec
	overName string
	typ      SQLType
}

// Window starts a window-function call.
func Window[T any](name string, typ SQLType, args ...Expr) *WindowCall[T] {
	nodes := make([]node, len(args))
	for i, a := range args {
		nodes[i] = exprAdapter{a}
	}
	return &WindowCall[T]{name: name, args: nodes, typ: typ}
}

func (w *WindowCall[T]) Distinct() *WindowCall[T] {
	w.distinct = true
	return w
}

func (w *WindowCall[T]) FilterWhere(cond Expression[bool]) *WindowCall[T] {
	w.filter = cond.n
	return w
}

// Over attaches an inline window specification.
func (w *WindowCall[T]) Over(spec *WindowSpec) *WindowCall[T] {
	w.spec = spec
	return w
}

// OverName attaches a bare reference to a named window (OVER name),
// the "partial" window call form.
func (w *WindowCall[T]) OverName(name string) *WindowCall[T] {
	w.overName = name
	return w
}

// Build freezes the call. Exactly one of Over/OverName must have been
// used; neither or both is a construction-time error.
func (w *WindowCall[T]) Build() (Expression[T], error) {
	hasSpec := w.spec != nil
	hasName := w.overName != ""
	if hasSpec == hasName {
		return Expression[T]{}, invalidAggregateConfiguration(w.name, "window call requires exactly one of Over or OverName")
	}
	return expr[T](windowCallNode{
		name: w.name, args: w.args, distinct: w.distinct, filter: w.filter,
		spec: w.spec, overName: w.overName,
	}, w.typ), nil
}

type windowCallNode struct {
	name     string
	args     []node
	distinct bool
	filter   node
	spec     *WindowSpec
	overName string
}

func (n windowCallNode) render(t *Tokens) {
	t.Identifier(n.name, false).OpenParen()
	if n.distinct {
		t.Keyword("DISTINCT")
	}
	commaSeparate(t, n.args, func(t *Tokens, a node) { a.render(t) })
	t.CloseParen()
	if n.filter != nil {
		t.Keyword("FILTER").OpenParen().Keyword("WHERE")
		n.filter.render(t)
		t.CloseParen()
	}
	t.Keyword("OVER")
	if n.overName != "" {
		t.Identifier(n.overName, false)
	} else {
		n.spec.render(t)
	}
}
