package lib

import (
	"fmt"
	"strings"
)

type Selector string

const (
	SelectLexeme    Selector = "lexeme"
	SelectSyntax    Selector = "syntax"
	SelectSemantics Selector = "semantics"
)

const lexemeHeader = "Lexeme Check:"

// Report is the outcome of one check. Lines holds one entry per token for
// lexeme checks and a single verdict otherwise.
type Report struct {
	Kind   Selector
	OK     bool
	Header string
	Lines  []string
}

func (r Report) String() string {
	if len(r.Header) == 0 {
		return strings.Join(r.Lines, "\n")
	}

	var b strings.Builder
	b.WriteString(r.Header)
	b.WriteString("\n")
	for _, line := range r.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func verdict(kind Selector, ok bool, format string, args ...interface{}) Report {
	return Report{Kind: kind, OK: ok, Lines: []string{fmt.Sprintf(format, args...)}}
}

// CheckLexeme reports a verdict for every token of line. Identifier-shaped
// tokens are recorded in the session's declared-variables set.
func CheckLexeme(s *Session, line string) Report {
	report := Report{Kind: SelectLexeme, OK: true, Header: lexemeHeader, Lines: []string{}}

	for _, lx := range lexLine(line) {
		text := lx.text()
		switch lx.kind {
		case LexemeIdentifier, LexemeTypeKeyword:
			s.observe(text)
			report.Lines = append(report.Lines, text+" is a valid identifier.")
		case LexemeLiteral:
			report.Lines = append(report.Lines, text+" is a valid literal.")
		case LexemeAssign:
			report.Lines = append(report.Lines, text+" is a valid assignment operator.")
		case LexemeTerminator:
			report.Lines = append(report.Lines, text+" is a valid statement terminator.")
		case LexemeParen, LexemeInvalid:
			report.OK = false
			report.Lines = append(report.Lines, text+" is an invalid lexeme.")
		}
	}

	return report
}

// CheckSyntax accepts only a complete declaration and records it in the
// symbol table.
func CheckSyntax(s *Session, line string) Report {
	decl, ok := matchDeclaration(lexLine(line))
	if !ok {
		return verdict(SelectSyntax, false, "Syntax is incorrect.")
	}

	s.declare(decl.Name, decl.Type)
	return verdict(SelectSyntax, true, "Syntax is correct.")
}

// CheckSemantics accepts a declaration like CheckSyntax does. Anything else
// is treated as a reassignment and checked against the declared type.
func CheckSemantics(s *Session, line string) Report {
	lexemes := lexLine(line)

	if decl, ok := matchDeclaration(lexemes); ok {
		s.declare(decl.Name, decl.Type)
		return verdict(SelectSemantics, true, "Semantics are correct.")
	}

	assign, ok := matchReassignment(lexemes)
	if !ok {
		return verdict(SelectSemantics, false, "Semantics check failed: Invalid input.")
	}

	declaredType, declared := s.Lookup(assign.Name)
	if !declared {
		return verdict(SelectSemantics, false,
			"Semantics are incorrect: Variable '%s' is not declared.", assign.Name)
	}

	if !typeAccepts(declaredType, assign.Value) {
		return verdict(SelectSemantics, false,
			"Semantic error: Type mismatch for variable '%s'. Expected %s but got %s.",
			assign.Name,
			declaredType,
			assign.Value,
		)
	}

	return verdict(SelectSemantics, true,
		"Semantics are correct: Variable '%s' assigned value %s.", assign.Name, assign.Value)
}
