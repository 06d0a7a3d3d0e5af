package lib

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

func TestCheckLexeme(t *testing.T) {
	s := NewSession()
	report := CheckLexeme(s, "int x = 5 ;")

	require.True(t, report.OK)
	require.Equal(t, SelectLexeme, report.Kind)
	require.Equal(t, `Lexeme Check:
int is a valid identifier.
x is a valid identifier.
= is a valid assignment operator.
5 is a valid literal.
; is a valid statement terminator.
`, report.String())

	if diff := deep.Equal(s.DeclaredVariables(), []string{"int", "x"}); diff != nil {
		t.Error(diff)
	}
	require.Empty(t, s.Symbols())
}

func TestCheckLexemeInvalid(t *testing.T) {
	s := NewSession()
	report := CheckLexeme(s, `f ( 4.2 ) "s"`)

	require.False(t, report.OK)
	if diff := deep.Equal(report.Lines, []string{
		"f is a valid identifier.",
		"( is an invalid lexeme.",
		"4.2 is an invalid lexeme.",
		") is an invalid lexeme.",
		`"s" is a valid literal.`,
	}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(s.DeclaredVariables(), []string{"f"}); diff != nil {
		t.Error(diff)
	}
}

func TestCheckLexemeEmpty(t *testing.T) {
	report := CheckLexeme(NewSession(), "")
	require.True(t, report.OK)
	require.Equal(t, "Lexeme Check:\n", report.String())
}

func TestCheckSyntax(t *testing.T) {
	s := NewSession()
	report := CheckSyntax(s, "int x = 5 ;")
	require.True(t, report.OK)
	require.Equal(t, "Syntax is correct.", report.String())

	typ, ok := s.Lookup("x")
	require.True(t, ok)
	require.Equal(t, "int", typ)

	// Declarations are not type checked.
	report = CheckSyntax(s, `char c = "long text" ;`)
	require.False(t, report.OK)
	report = CheckSyntax(s, `char c = "text" ;`)
	require.True(t, report.OK)
	typ, _ = s.Lookup("c")
	require.Equal(t, "char", typ)

	require.Empty(t, s.DeclaredVariables())
}

func TestCheckSyntaxFail(t *testing.T) {
	s := NewSession()
	report := CheckSyntax(s, "int x = 5")
	require.False(t, report.OK)
	require.Equal(t, "Syntax is incorrect.", report.String())
	require.Empty(t, s.Symbols())

	for _, line := range []string{"", "x = 5 ;", "int x = 3.5 ;", "bool b = 1 ;"} {
		require.False(t, CheckSyntax(s, line).OK, line)
	}
	require.Empty(t, s.Symbols())
}

func TestCheckSyntaxIdempotent(t *testing.T) {
	once := NewSession()
	CheckSyntax(once, "int x = 5 ;")

	twice := NewSession()
	CheckSyntax(twice, "int x = 5 ;")
	CheckSyntax(twice, "int x = 5 ;")

	if diff := deep.Equal(once.Symbols(), twice.Symbols()); diff != nil {
		t.Error(diff)
	}
}

func TestCheckSyntaxRedeclare(t *testing.T) {
	s := NewSession()
	CheckSyntax(s, "int x = 5 ;")
	require.True(t, CheckSyntax(s, `String x = "a" ;`).OK)

	typ, _ := s.Lookup("x")
	require.Equal(t, "String", typ)
}

func TestCheckSemanticsDeclaration(t *testing.T) {
	s := NewSession()
	report := CheckSemantics(s, `String name = "bob" ;`)
	require.True(t, report.OK)
	require.Equal(t, "Semantics are correct.", report.String())

	typ, ok := s.Lookup("name")
	require.True(t, ok)
	require.Equal(t, "String", typ)
}

func TestCheckSemanticsReassignment(t *testing.T) {
	s := NewSession()
	CheckSyntax(s, "int x = 5 ;")
	before := s.Symbols()

	report := CheckSemantics(s, "x = 10 ;")
	require.True(t, report.OK)
	require.Equal(t, "Semantics are correct: Variable 'x' assigned value 10.", report.String())

	report = CheckSemantics(s, `x = "hi" ;`)
	require.False(t, report.OK)
	require.Equal(t, `Semantic error: Type mismatch for variable 'x'. Expected int but got "hi".`, report.String())

	// Five tokens with = in the middle is also a reassignment of the second.
	report = CheckSemantics(s, "var x = 7 ;")
	require.True(t, report.OK)
	require.Equal(t, "Semantics are correct: Variable 'x' assigned value 7.", report.String())

	if diff := deep.Equal(s.Symbols(), before); diff != nil {
		t.Error(diff)
	}
}

func TestCheckSemanticsNotDeclared(t *testing.T) {
	s := NewSession()
	report := CheckSemantics(s, "y = 1 ;")
	require.False(t, report.OK)
	require.Equal(t, "Semantics are incorrect: Variable 'y' is not declared.", report.String())
	require.Empty(t, s.Symbols())

	// Lexeme checks do not declare anything.
	CheckLexeme(s, "y")
	require.Equal(t, "Semantics are incorrect: Variable 'y' is not declared.", CheckSemantics(s, "y = 1 ;").String())
}

func TestCheckSemanticsFloat(t *testing.T) {
	s := NewSession()

	// 3.5 is not a literal, so this is a reassignment of an undeclared f.
	report := CheckSemantics(s, "float f = 3.5 ;")
	require.False(t, report.OK)
	require.Equal(t, "Semantics are incorrect: Variable 'f' is not declared.", report.String())

	require.True(t, CheckSemantics(s, "float f = 1 ;").OK)

	report = CheckSemantics(s, "float f = 3.5 ;")
	require.False(t, report.OK)
	require.Equal(t, "Semantic error: Type mismatch for variable 'f'. Expected float but got 3.5.", report.String())

	report = CheckSemantics(s, "f = 2 ;")
	require.False(t, report.OK)
	require.Equal(t, "Semantic error: Type mismatch for variable 'f'. Expected float but got 2.", report.String())
}

func TestCheckSemanticsInvalid(t *testing.T) {
	s := NewSession()
	CheckSyntax(s, "int x = 5 ;")

	for _, line := range []string{"", "int x", "x = 10", "int x + 5 ;", "int x = 5 ; ;"} {
		report := CheckSemantics(s, line)
		require.False(t, report.OK, line)
		require.Equal(t, "Semantics check failed: Invalid input.", report.String(), line)
	}
}
