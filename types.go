package pgqb

import (
	"fmt"

	"github.com/google/uuid"
)

// SQLType is a printed SQL type name plus its nullability discipline.
// A table definition is a mapping from column name to one of these
// descriptors. Values are immutable; NotNull/AsNullable return
// modified copies.
type SQLType struct {
	Name     string
	Nullable bool
}

// NotNull returns a copy of t with Nullable cleared.
func (t SQLType) NotNull() SQLType {
	t.Nullable = false
	return t
}

// AsNullable returns a copy of t with Nullable set.
func (t SQLType) AsNullable() SQLType {
	t.Nullable = true
	return t
}

// Array returns the array-of-t type descriptor.
func (t SQLType) Array() SQLType {
	return SQLType{Name: t.Name + "[]", Nullable: t.Nullable}
}

// Range returns the range-of-t type descriptor (e.g. int4range).
func (t SQLType) Range() SQLType {
	builtin := map[string]string{"integer": "int4range", "bigint": "int8range", "numeric": "numrange",
		"timestamp": "tsrange", "timestamptz": "tstzrange", "date": "daterange"}
	if name, ok := builtin[t.Name]; ok {
		return SQLType{Name: name, Nullable: t.Nullable}
	}
	return SQLType{Name: "range_" + t.Name, Nullable: t.Nullable}
}

// MultiRange returns the multirange-of-t type descriptor.
func (t SQLType) MultiRange() SQLType {
	return SQLType{Name: "multirange_" + t.Name, Nullable: t.Nullable}
}

// Enum declares a named enum type over the given labels. PostgreSQL
// enums are nominal types created with CREATE TYPE ... AS ENUM; pgqb
// does not emit DDL, but needs the type name for CAST and
// function-argument typing.
func Enum(name string, labels ...string) SQLType {
	return SQLType{Name: name}
}

// Built-in SQL type descriptors, all not-null by default; call
// .AsNullable() for a nullable projection.
var (
	SmallInt  = SQLType{Name: "smallint"}
	Integer   = SQLType{Name: "integer"}
	BigInt    = SQLType{Name: "bigint"}
	Real      = SQLType{Name: "real"}
	Double    = SQLType{Name: "double precision"}
	Numeric   = SQLType{Name: "numeric"}
	Text      = SQLType{Name: "text"}
	Boolean   = SQLType{Name: "boolean"}
	UUID      = SQLType{Name: "uuid"}
	Timestamp = SQLType{Name: "timestamp"}
	TimestampTZ = SQLType{Name: "timestamptz"}
	Date      = SQLType{Name: "date"}
	JSON      = SQLType{Name: "json"}
	JSONB     = SQLType{Name: "jsonb"}
	Bytea     = SQLType{Name: "bytea"}
)

// ValidateUUID checks s against RFC 4122 hex formatting via
// github.com/google/uuid, returning ErrInvalidUUID rather than the
// library's own parse error so callers can branch uniformly on pgqb's
// error classes.
func ValidateUUID(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return invalidUUID(s)
	}
	return nil
}

// must is a small helper for call sites that only ever pass
// compile-time-constant arguments (e.g. ConstUUID("...") literals in
// source) where a panic on a malformed literal is preferable to
// threading an error return through every builder call.
func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("pgqb: %v", err))
	}
	return v
}
