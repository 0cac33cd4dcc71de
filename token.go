package pgqb

import "strings"

// TokenKind tags a Token's variant: keyword (from a closed
// enumeration), identifier (with optional force-quote flag), literal
// (string/number/boolean/null), operator, special character, or
// column-reference.
type TokenKind int

const (
	TokenKeyword TokenKind = iota
	TokenIdentifier
	TokenLiteral
	TokenOperator
	TokenSpecial
	TokenColumnRef
)

// LiteralKind distinguishes how a literal Token's Text is interpreted
// by unlex.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
	LiteralNull
)

// Token is the tagged IR unlex renders. Every AST node in this package
// renders itself by appending Tokens to a *Tokens, never by building
// strings directly — that discipline is what lets quoting/escaping and
// spacing concerns live in exactly one place (quote.go and unlex,
// respectively).
type Token struct {
	Kind TokenKind

	// Keyword / Operator / Special text (verbatim, already validated).
	Text string

	// Identifier fields.
	ForceQuote bool

	// Literal fields.
	LitKind LiteralKind
	// BoolVal is meaningful when LitKind == LiteralBool.
	BoolVal bool

	// ColumnRef fields: Text doubles as the table (empty for unqualified
	// references); Column holds the column name.
	Column string
}

// Tokens is the mutable token vector assembled during one Serialize
// walk — the only mutable allocation in the rendering path, owned by
// the caller of Serialize rather than shared across calls.
type Tokens struct {
	toks []Token
}

func NewTokens() *Tokens { return &Tokens{} }

func (t *Tokens) Keyword(word string) *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenKeyword, Text: word})
	return t
}

func (t *Tokens) Identifier(name string, forceQuote bool) *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenIdentifier, Text: name, ForceQuote: forceQuote})
	return t
}

func (t *Tokens) StringLiteral(s string) *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenLiteral, LitKind: LiteralString, Text: s})
	return t
}

func (t *Tokens) NumberLiteral(decimalText string) *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenLiteral, LitKind: LiteralNumber, Text: decimalText})
	return t
}

func (t *Tokens) BoolLiteral(v bool) *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenLiteral, LitKind: LiteralBool, BoolVal: v})
	return t
}

func (t *Tokens) NullLiteral() *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenLiteral, LitKind: LiteralNull})
	return t
}

func (t *Tokens) Operator(op string) *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenOperator, Text: op})
	return t
}

func (t *Tokens) Special(ch string) *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenSpecial, Text: ch})
	return t
}

func (t *Tokens) ColumnRef(table, column string) *Tokens {
	t.toks = append(t.toks, Token{Kind: TokenColumnRef, Text: table, Column: column})
	return t
}

// Append concatenates another node's tokens into t, the combinator
// every composite node uses to render its children.
func (t *Tokens) Append(other *Tokens) *Tokens {
	t.toks = append(t.toks, other.toks...)
	return t
}

// commaSeparate renders each item with render, joining the results
// with ", " tokens.
func commaSeparate[T any](t *Tokens, items []T, render func(*Tokens, T)) {
	for i, item := range items {
		if i > 0 {
			t.Special(",")
		}
		render(t, item)
	}
}

// Raw is an escape hatch: it injects verbatim keyword text with no
// further validation. The public Raw expression constructor in expr.go
// passes its caller's SQL text through here unchanged.
func (t *Tokens) Raw(text string) *Tokens {
	return t.Keyword(text)
}

// OpenParen/CloseParen are convenience wrappers kept distinct from bare
// Special calls so call sites read as balanced pairs.
func (t *Tokens) OpenParen() *Tokens  { return t.Special("(") }
func (t *Tokens) CloseParen() *Tokens { return t.Special(")") }
func (t *Tokens) OpenBracket() *Tokens  { return t.Special("[") }
func (t *Tokens) CloseBracket() *Tokens { return t.Special("]") }

// noSpaceBefore reports whether rendering should suppress the space
// that would otherwise precede tok, given the previous token prev.
func noSpaceBefore(prev, tok Token) bool {
	if tok.Kind == TokenSpecial && (tok.Text == ")" || tok.Text == "]" || tok.Text == ",") {
		return true
	}
	if prev.Kind == TokenSpecial && (prev.Text == "(" || prev.Text == "[") {
		return true
	}
	// Function application: identifier/column-ref immediately followed by "(".
	if tok.Kind == TokenSpecial && tok.Text == "(" &&
		(prev.Kind == TokenIdentifier || prev.Kind == TokenColumnRef) {
		return true
	}
	// CAST/ARRAY/ANY/ALL immediately followed by a bracketed form.
	if prev.Kind == TokenKeyword && tok.Kind == TokenSpecial && (tok.Text == "(" || tok.Text == "[") {
		switch prev.Text {
		case "CAST", "ARRAY", "ANY", "ALL":
			return true
		}
	}
	return false
}

// renderToken renders a single token's text, applying the quoting and
// escaping rules from quote.go. This is the only place token content
// becomes a string.
func renderToken(tok Token) string {
	switch tok.Kind {
	case TokenKeyword:
		return tok.Text
	case TokenIdentifier:
		return quoteIdentifier(tok.Text, tok.ForceQuote)
	case TokenLiteral:
		switch tok.LitKind {
		case LiteralString:
			return quoteLiteral(tok.Text)
		case LiteralNumber:
			return tok.Text
		case LiteralBool:
			if tok.BoolVal {
				return "true"
			}
			return "false"
		case LiteralNull:
			return "null"
		}
		return ""
	case TokenOperator:
		// Operators reaching the renderer have already been validated
		// at construction time (see quote.go); render verbatim.
		return tok.Text
	case TokenSpecial:
		return tok.Text
	case TokenColumnRef:
		if tok.Text == "" {
			return quoteIdentifier(tok.Column, false)
		}
		return quoteIdentifier(tok.Text, false) + "." + quoteIdentifier(tok.Column, false)
	}
	return ""
}

// unlex walks toks and produces the final SQL text, inserting a single
// space between consecutive tokens except where noSpaceBefore forbids
// it.
func unlex(toks *Tokens) string {
	var sb strings.Builder
	var prev Token
	havePrev := false
	for _, tok := range toks.toks {
		text := renderToken(tok)
		if text == "" {
			continue
		}
		if havePrev && !noSpaceBefore(prev, tok) {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
		prev = tok
		havePrev = true
	}
	return sb.String()
}
