package lib

type charLocation struct {
	line int
	col  int
}

type token struct {
	value    []rune
	location charLocation
}

func (t token) String() string {
	return string(t.value)
}

// LexemeKind is the classification given to a single token.
type LexemeKind int

const (
	LexemeInvalid LexemeKind = iota
	LexemeIdentifier
	LexemeTypeKeyword
	LexemeLiteral
	LexemeAssign
	LexemeTerminator
	LexemeParen
)

func (k LexemeKind) String() string {
	switch k {
	case LexemeIdentifier:
		return "identifier"
	case LexemeTypeKeyword:
		return "type keyword"
	case LexemeLiteral:
		return "literal"
	case LexemeAssign:
		return "assignment operator"
	case LexemeTerminator:
		return "statement terminator"
	case LexemeParen:
		return "parenthesis"
	default:
		return "invalid"
	}
}

type lexeme struct {
	tok  token
	kind LexemeKind
}

func (l lexeme) text() string {
	return string(l.tok.value)
}

// Type keywords are identifier-shaped, so anything that accepts an identifier
// accepts them too.
func (l lexeme) isIdentifier() bool {
	return l.kind == LexemeIdentifier || l.kind == LexemeTypeKeyword
}
