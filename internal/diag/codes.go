package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexNotDeclaration Code = 1001
	LexNoDeclarations Code = 1002

	// Синтаксические
	SynExpectSemicolon   Code = 2001
	SynDoubleEquals      Code = 2002
	SynEmptyInitializer  Code = 2003
	SynMissingTypeOrName Code = 2004
	SynTooManyTokens     Code = 2005
	SynInvalidName       Code = 2006
	SynInvalidType       Code = 2007
	SynNoDeclarations    Code = 2008

	// Семантические
	SemaNotDeclaration Code = 3001
	SemaNoDeclarations Code = 3002
	SemaEmptyPart      Code = 3003
	SemaInvalidName    Code = 3004
	SemaDuplicate      Code = 3005
	SemaUndefinedRef   Code = 3006
	SemaTypeMismatch   Code = 3007
	SemaUnverifiable   Code = 3008

	// Ввод
	IOEmptySource   Code = 4001
	IOLoadFileError Code = 4002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		LexNotDeclaration:    "Line is not a variable declaration",
		LexNoDeclarations:    "No variable declarations found",
		SynExpectSemicolon:   "Missing terminating semicolon",
		SynDoubleEquals:      "'==' used instead of '='",
		SynEmptyInitializer:  "Empty initializer",
		SynMissingTypeOrName: "Missing type or variable name",
		SynTooManyTokens:     "Too many tokens in declaration",
		SynInvalidName:       "Invalid variable name",
		SynInvalidType:       "Invalid or missing type",
		SynNoDeclarations:    "No variable declarations found",
		SemaNotDeclaration:   "Line is not a variable declaration",
		SemaNoDeclarations:   "No variable declarations found",
		SemaEmptyPart:        "Empty declaration part",
		SemaInvalidName:      "Invalid variable name",
		SemaDuplicate:        "Variable already declared",
		SemaUndefinedRef:     "Undefined variable in initializer",
		SemaTypeMismatch:     "Type mismatch",
		SemaUnverifiable:     "Unable to verify initializer type",
		IOEmptySource:        "No source code provided",
		IOLoadFileError:      "I/O load file error",
	}
)

// Class groups codes the way reports describe them.
type Class uint8

const (
	ClassNone Class = iota
	// ClassStructural: missing terminator, token count, empty parts.
	ClassStructural
	// ClassGrammar: identifier and type grammar, bad operators.
	ClassGrammar
	// ClassSemantic: duplicates, undefined references, type mismatches.
	ClassSemantic
	// ClassInput: problems with the input as a whole.
	ClassInput
)

func (c Class) String() string {
	switch c {
	case ClassStructural:
		return "structural"
	case ClassGrammar:
		return "grammar"
	case ClassSemantic:
		return "semantic"
	case ClassInput:
		return "input"
	}
	return "none"
}

var codeClass = map[Code]Class{
	LexNotDeclaration:    ClassStructural,
	LexNoDeclarations:    ClassInput,
	SynExpectSemicolon:   ClassStructural,
	SynDoubleEquals:      ClassGrammar,
	SynEmptyInitializer:  ClassStructural,
	SynMissingTypeOrName: ClassStructural,
	SynTooManyTokens:     ClassStructural,
	SynInvalidName:       ClassGrammar,
	SynInvalidType:       ClassGrammar,
	SynNoDeclarations:    ClassInput,
	SemaNotDeclaration:   ClassStructural,
	SemaNoDeclarations:   ClassInput,
	SemaEmptyPart:        ClassStructural,
	SemaInvalidName:      ClassGrammar,
	SemaDuplicate:        ClassSemantic,
	SemaUndefinedRef:     ClassSemantic,
	SemaTypeMismatch:     ClassSemantic,
	SemaUnverifiable:     ClassSemantic,
	IOEmptySource:        ClassInput,
	IOLoadFileError:      ClassInput,
}

// Class returns the error category of the code.
func (c Code) Class() Class {
	return codeClass[c]
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
