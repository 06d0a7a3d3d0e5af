package lib

import "regexp"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
var stringLiteralPattern = regexp.MustCompile(`^".*"$`)
var integerLiteralPattern = regexp.MustCompile(`^\d+$`)

var typeKeywords = map[string]bool{
	"int":    true,
	"float":  true,
	"double": true,
	"char":   true,
	"String": true,
}

func IsIdentifier(tok string) bool {
	return identifierPattern.MatchString(tok)
}

// IsLiteral accepts a double-quoted string or an unsigned run of decimal
// digits.
func IsLiteral(tok string) bool {
	return isStringLiteral(tok) || isIntegerLiteral(tok)
}

func IsTypeKeyword(tok string) bool {
	return typeKeywords[tok]
}

func isStringLiteral(tok string) bool {
	return stringLiteralPattern.MatchString(tok)
}

func isIntegerLiteral(tok string) bool {
	return integerLiteralPattern.MatchString(tok)
}

// Precedence is identifier, literal, =, ;, parentheses. A type keyword is an
// identifier that happens to name a type.
func classify(tok token) lexeme {
	text := tok.String()
	kind := LexemeInvalid

	switch {
	case IsIdentifier(text):
		if IsTypeKeyword(text) {
			kind = LexemeTypeKeyword
		} else {
			kind = LexemeIdentifier
		}
	case IsLiteral(text):
		kind = LexemeLiteral
	case text == "=":
		kind = LexemeAssign
	case text == ";":
		kind = LexemeTerminator
	case text == "(" || text == ")":
		kind = LexemeParen
	}

	return lexeme{tok: tok, kind: kind}
}

func lexLine(line string) []lexeme {
	tokens := tokenize(line)
	lexemes := make([]lexeme, 0, len(tokens))
	for _, tok := range tokens {
		lexemes = append(lexemes, classify(tok))
	}
	return lexemes
}
