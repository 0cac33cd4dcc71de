package pgqb

import "strings"

// SQLState extracts a PostgreSQL SQLSTATE code from a driver error,
// detected across drivers via interface rather than a concrete type
// import: pgx/pgconn exposes SQLState() string, lib/pq's *pq.Error
// exposes a Code field through its own error interface. Callers that
// want to branch on the server's error classification (retrying a
// serialization failure, reporting a unique-violation distinctly from
// other failures) use this instead of string-matching Error().
func SQLState(err error) string {
	type sqlStateErr interface{ SQLState() string }
	if e, ok := err.(sqlStateErr); ok {
		return e.SQLState()
	}

	type codeErr interface{ Code() string }
	if e, ok := err.(codeErr); ok {
		return e.Code()
	}

	errStr := err.Error()
	for _, prefix := range []string{"SQLSTATE ", "SQLSTATE: "} {
		if idx := strings.Index(errStr, prefix); idx >= 0 {
			start := idx + len(prefix)
			if start+5 <= len(errStr) {
				return errStr[start : start+5]
			}
		}
	}
	return ""
}

// PostgreSQL SQLSTATE codes this package's callers branch on most often.
const (
	SQLStateUniqueViolation      = "23505"
	SQLStateForeignKeyViolation  = "23503"
	SQLStateSerializationFailure = "40001"
	SQLStateDeadlockDetected     = "40P01"
	SQLStateUndefinedColumn      = "42703"
	SQLStateUndefinedTable       = "42P01"
)
