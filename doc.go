// Package pgqb is a typed query builder for PostgreSQL.
//
// # Overview
//
// Rather than constructing SQL strings through concatenation or
// templating, pgqb provides typed building blocks — expressions, table
// handles, and a staged SELECT builder — that compose into complete
// queries. Every node renders itself to a small token stream; a single
// renderer walks that stream to produce the final SQL text, and
// [Params.Pack] produces the matching positional parameter vector. The
// package never interpolates host
// values into SQL text: dynamic values are always bound through
// [Params] and rendered as `$1, $2, ...` placeholders.
//
// # Core interfaces
//
//   - [Expr]: anything that can render itself as a SQL expression token
//     sequence. Implemented by [Expression] and [Row]; a [Query] becomes
//     one through [Scalar], and the aggregate/window call types through
//     their Build methods.
//   - [Serializable]: anything that can be rendered to a full token
//     stream via [Serialize]. [Query] is the primary implementation.
//
// # Building a query
//
//	users := NewTable("users", func(alias string, nullable bool) UsersRow {
//		return UsersRow{
//			ID:   Field[int64](alias, "id", BigInt),
//			Name: Field[string](alias, "name", Text),
//		}
//	}).As("u")
//
//	posts := NewTable("posts", func(alias string, nullable bool) PostsRow {
//		return PostsRow{
//			ID:       Field[int64](alias, "id", BigInt),
//			AuthorID: Field[int64](alias, "author_id", BigInt),
//			Title:    Field[string](alias, "title", Text),
//			Deleted:  Field[bool](alias, "deleted", Boolean),
//		}
//	}).As("p")
//
//	joined, _ := InnerJoinOn(users, posts, func(u UsersRow, p PostsRow) Expression[bool] {
//		return u.ID.Eq(p.AuthorID)
//	})
//
//	q, err := From(joined).
//		Where(func(r Joined2[UsersRow, PostsRow]) Expression[bool] {
//			return Not(r.Right.Deleted)
//		}).
//		Select(func(r Joined2[UsersRow, PostsRow]) []Projected {
//			return []Projected{
//				Proj(r.Left.Name, "author"),
//				Proj(r.Right.Title, "title"),
//			}
//		}).
//		Build()
//
//	sql := Serialize(q)
//
// # Design rationale
//
// Type safety: row types are plain Go structs of [Expression] fields,
// built once per table reference by a host-written closure; the
// compiler catches references to columns that don't exist on a given
// row type. This is the "explicit table handle" alternative to a lazy
// tuple proxy, since Go generics cannot express TypeScript's mapped
// record types (see DESIGN.md).
//
// Purity: [Expression] methods and [QueryBuilder] methods return new
// values and leave their receiver unchanged. The staged call builders
// ([AggCall], [OrderedSetAgg], the JSON aggregate calls, [WindowCall],
// [WindowSpec], [CaseBuilder], [TableFuncCall]) and [Params] modify and
// return their receiver until they are built or packed. A [Query]
// may be serialized any number of times with identical output. Dynamic
// values never appear in the rendered SQL text directly — they are
// bound by name through [Params] and [ParamField], and packed into a
// positional argument slice with [Params.Pack] for the driver call.
//
// SQL visibility: the DSL stays close to SQL syntax — there is no
// dialect abstraction, no query planner, no result decoding. What you
// build is what PostgreSQL receives.
package pgqb
