package instr

// BinaryOperator is an operator taking two source registers.
type BinaryOperator uint8

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Mod
	LeftShift
	RightShift
	And
	Or
	Xor
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
)

var binaryNames = map[BinaryOperator]string{
	Add: "add", Sub: "sub", Mul: "mul", Div: "div", Mod: "mod",
	LeftShift: "ls", RightShift: "rs",
	And: "and", Or: "or", Xor: "xor",
	Eq: "eq", Ne: "ne", Lt: "lt", Gt: "gt", Le: "le", Ge: "ge",
}

func (op BinaryOperator) String() string {
	if name, ok := binaryNames[op]; ok {
		return name
	}
	return "binop(?)"
}

// IsComparison reports whether the operator writes a boolean result.
func (op BinaryOperator) IsComparison() bool {
	return op >= Eq && op <= Ge
}

// UnaryOperator is an operator taking one source register.
type UnaryOperator uint8

const (
	Not UnaryOperator = iota
	Inc
	Dec
)

func (op UnaryOperator) String() string {
	switch op {
	case Not:
		return "not"
	case Inc:
		return "inc"
	case Dec:
		return "dec"
	default:
		return "unop(?)"
	}
}
