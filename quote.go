package pgqb

import "strings"

// looksBare reports whether s matches PostgreSQL's unquoted-identifier
// grammar: ^[A-Za-z_][A-Za-z0-9_$]*$.
func looksBare(s string) bool {
	if len(s) == 0 {
		return false
	}
	c0 := s[0]
	if !(c0 == '_' || (c0 >= 'a' && c0 <= 'z') || (c0 >= 'A' && c0 <= 'Z')) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		ok := c == '_' || c == '$' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !ok {
			return false
		}
	}
	return true
}

// quoteIdentifier renders s bare if it matches the unquoted-identifier
// grammar and is not a reserved word, otherwise double-quoted with
// internal quotes doubled. forceQuote always double-quotes regardless
// of shape.
func quoteIdentifier(s string, forceQuote bool) string {
	if !forceQuote && looksBare(s) && !isReservedWord(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// quoteLiteral renders s as a single-quoted SQL string literal with
// internal quotes doubled.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// whitelistedOperators is the glossary's closed set of keyword/symbolic
// operators that are always safe regardless of the symbol-safety check
// below (several of them, like "IS NULL", contain spaces and would
// otherwise fail the symbolic check).
var whitelistedOperators = map[string]struct{}{
	"AND": {}, "OR": {}, "NOT": {},
	"LIKE": {}, "NOT LIKE": {}, "ILIKE": {}, "NOT ILIKE": {},
	"SIMILAR TO": {}, "NOT SIMILAR TO": {},
	"IS NULL": {}, "IS NOT NULL": {},
	"IN": {}, "NOT IN": {}, "EXISTS": {},
	"IS DISTINCT FROM": {}, "IS NOT DISTINCT FROM": {},
	"COLLATE": {},
}

// symbolicOperatorChars is PostgreSQL's operator character class
// (production "Op" in the lexer), used to validate operators not on
// the whitelist (e.g. comparison/arithmetic operators used with ANY/ALL).
const symbolicOperatorChars = "+-*/<>=~!@#%^&|`?"

// validateOperator reports a string as a valid operator if it is in
// the whitelist, or if it is composed
// entirely of symbolic operator characters and contains neither "--"
// nor "/*" (both of which would either start a comment or otherwise
// desynchronize the lexer if accepted verbatim).
func validateOperator(op string) (string, error) {
	if _, ok := whitelistedOperators[op]; ok {
		return op, nil
	}
	if op == "" {
		return "", invalidOperator(op)
	}
	for i := 0; i < len(op); i++ {
		if strings.IndexByte(symbolicOperatorChars, op[i]) < 0 {
			return "", invalidOperator(op)
		}
	}
	if strings.Contains(op, "--") || strings.Contains(op, "/*") {
		return "", invalidOperator(op)
	}
	return op, nil
}

// MustOperator is validateOperator for callers constructing operators
// from compile-time string literals, where a construction-time panic
// on a typo is preferable to threading an error through every builder
// call. Dynamic operator strings should use validateOperator (exposed
// indirectly through Any/All, see expr.go) and handle the error.
func MustOperator(op string) string {
	v, err := validateOperator(op)
	if err != nil {
		panic(err)
	}
	return v
}
