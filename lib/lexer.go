package lib

import "unicode"

type charInfo struct {
	ch       rune
	location charLocation
}

// Tokenize splits a line on whitespace and on the delimiters = ; ( ). Each
// delimiter is returned as a token of its own.
func Tokenize(line string) []string {
	tokens := tokenize(line)
	result := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		result = append(result, tok.String())
	}
	return result
}

func tokenize(line string) []token {
	tokens := []token{}
	lex(line, func(t token) {
		tokens = append(tokens, t)
	})
	return tokens
}

func lex(line string, emit func(token)) {
	l := newLexer(line, emit)
	l.scan()
}

type lexer struct {
	src              []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	tokenStartIndex  int
	tokenLocation    charLocation
	emitCallback     func(token)
}

func newLexer(line string, emit func(token)) *lexer {
	src := []rune(line)
	return &lexer{
		src:              src,
		length:           len(src),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		tokenStartIndex:  0,
		tokenLocation:    charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tok token) {
	l.endWord()
	l.emitCallback(tok)
	l.resetToken()
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.src[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, ok
}

func (l *lexer) scan() {
	for l.next() {
	}
}

func (l *lexer) next() bool {
	chInfo, ok := l.advance()
	if !ok {
		l.endWord()
		return false
	}

	switch ch := chInfo.ch; {
	case isDelimiter(ch):
		l.emit(token{value: []rune{ch}, location: chInfo.location})
	case unicode.IsSpace(ch):
		l.endWord()
	}

	return true
}

func isDelimiter(ch rune) bool {
	return ch == '=' || ch == ';' || ch == '(' || ch == ')'
}

func (l *lexer) isFirstCharOfToken() bool {
	return l.currentCharIndex-1 == l.tokenStartIndex
}

// Whitespace runs never reach the callback, so every emitted word is
// non-empty and already trimmed.
func (l *lexer) endWord() {
	if !l.isFirstCharOfToken() {
		substr := l.src[l.tokenStartIndex : l.currentCharIndex-1]
		l.emitCallback(token{value: substr, location: l.tokenLocation})
	}
	l.resetToken()
}

func (l *lexer) resetToken() {
	l.tokenLocation = l.currentLocation
	l.tokenStartIndex = l.currentCharIndex
}
