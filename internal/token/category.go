package token

// Category classifies a lexeme.
type Category uint8

const (
	// Unknown marks a token that matched no other category.
	Unknown Category = iota
	// DataType is a primitive type name from the type registry.
	DataType
	// Identifier is a variable name or a reference to one.
	Identifier
	// AssignmentOperator is the single '='.
	AssignmentOperator
	// Delimiter is the statement terminator ';'.
	Delimiter
	// Value is a numeric, quoted or boolean literal.
	Value
)

var categoryNames = [...]string{
	Unknown:            "UNKNOWN",
	DataType:           "DATA_TYPE",
	Identifier:         "IDENTIFIER",
	AssignmentOperator: "ASSIGNMENT_OPERATOR",
	Delimiter:          "DELIMITER",
	Value:              "VALUE",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "UNKNOWN"
}

// ParseCategory is the inverse of String; used by the JSON and cache decoders.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), true
		}
	}
	return Unknown, false
}
