package pgqb

import (
	"fmt"

	"github.com/lib/pq"
)

// Params is a construction-time bind-parameter registry. Each name is
// assigned a stable $1, $2, ... position the first time it is
// referenced through ParamField, independent of the order values are
// later bound, following the positional-placeholder convention in
// internal/sqlgen/sqldsl/sql.go's SQL()/Args() split.
type Params struct {
	order  []string
	index  map[string]int
	values map[string]any
}

// NewParams creates an empty parameter registry.
func NewParams() *Params {
	return &Params{index: map[string]int{}, values: map[string]any{}}
}

func (p *Params) positionOf(name string) int {
	if i, ok := p.index[name]; ok {
		return i
	}
	p.order = append(p.order, name)
	i := len(p.order)
	p.index[name] = i
	return i
}

// ParamField declares a reference to a named bind parameter, typed as
// T for the purposes of the expression it is embedded in. A new type
// parameter cannot be introduced on a method of *Params (Go forbids
// extra type parameters on methods), so this is a package function
// rather than a *Params method, mirroring CastAs in expr.go.
func ParamField[T any](p *Params, name string, typ SQLType) Expression[T] {
	pos := p.positionOf(name)
	return expr[T](paramNode{position: pos}, typ)
}

type paramNode struct {
	position int
}

func (n paramNode) render(t *Tokens) {
	t.Keyword(fmt.Sprintf("$%d", n.position))
}

// Bind assigns the runtime value for a named parameter. Binding a name
// never referenced by ParamField is accepted but has no effect on
// Pack's output, since Pack only walks names registered through
// ParamField.
func (p *Params) Bind(name string, value any) *Params {
	p.values[name] = value
	return p
}

// BindArray is Bind specialized for a Go slice value, wrapping it with
// pq.Array so a scalar-only driver encodes it as a PostgreSQL array
// literal instead of rejecting the slice outright.
func (p *Params) BindArray(name string, slice any) *Params {
	p.values[name] = pq.Array(slice)
	return p
}

// Pack returns the positional argument slice in $1.. order, ready to
// pass as a driver's query-argument list (e.g. pgx's Query/Exec
// variadic args).
func (p *Params) Pack() []any {
	out := make([]any, len(p.order))
	for i, name := range p.order {
		out[i] = p.values[name]
	}
	return out
}
