package lib

const statementLength = 5

type declaration struct {
	Type  string
	Name  string
	Value string
}

type reassignment struct {
	Name  string
	Value string
}

// matchDeclaration matches `<type> <identifier> = <literal> ;`.
func matchDeclaration(lexemes []lexeme) (declaration, bool) {
	if len(lexemes) != statementLength {
		return declaration{}, false
	}

	if lexemes[0].kind != LexemeTypeKeyword ||
		!lexemes[1].isIdentifier() ||
		lexemes[2].kind != LexemeAssign ||
		lexemes[3].kind != LexemeLiteral ||
		lexemes[4].kind != LexemeTerminator {
		return declaration{}, false
	}

	return declaration{
		Type:  lexemes[0].text(),
		Name:  lexemes[1].text(),
		Value: lexemes[3].text(),
	}, true
}

// matchReassignment is deliberately loose. With five tokens only the = in
// third position is required (target second, value fourth). The bare form
// `<identifier> = <value> ;` is four tokens long.
func matchReassignment(lexemes []lexeme) (reassignment, bool) {
	switch len(lexemes) {
	case statementLength:
		if lexemes[2].kind != LexemeAssign {
			return reassignment{}, false
		}
		return reassignment{Name: lexemes[1].text(), Value: lexemes[3].text()}, true
	case statementLength - 1:
		if lexemes[1].kind != LexemeAssign || lexemes[3].kind != LexemeTerminator {
			return reassignment{}, false
		}
		return reassignment{Name: lexemes[0].text(), Value: lexemes[2].text()}, true
	default:
		return reassignment{}, false
	}
}

// typeAccepts reports whether value may be assigned to a variable declared
// with declaredType. Only int and String accept anything.
func typeAccepts(declaredType string, value string) bool {
	switch declaredType {
	case "int":
		return isIntegerLiteral(value)
	case "String":
		return isStringLiteral(value)
	default:
		return false
	}
}
