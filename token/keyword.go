package token

// Keyword is a reserved word of the source language.
type Keyword int

// Type keywords.
const (
	KwInt8 Keyword = iota
	KwInt16
	KwInt32
	KwInt64
	KwUint8
	KwUint16
	KwUint32
	KwUint64
	KwFloat32
	KwFloat64
	KwChar
	KwBool

	// Mnemonics.
	KwAdd
	KwSub
	KwMul
	KwDiv
	KwMod
	KwAnd
	KwOr
	KwNot
	KwXor
	KwEq
	KwNe
	KwLt
	KwLe
	KwGt
	KwGe
	KwLs
	KwRs
	KwInc
	KwDec
	KwPush
	KwSet
	KwLoad
	KwUnload
	KwMove
	KwCall
	KwCallIf
	KwJump
	KwJumpIf

	// Register names, A0 through I3. The order matches instr.RegisterName.
	KwA0
	KwA1
	KwA2
	KwA3
	KwB0
	KwB1
	KwB2
	KwB3
	KwC0
	KwC1
	KwC2
	KwC3
	KwD0
	KwD1
	KwD2
	KwD3
	KwF0
	KwF1
	KwF2
	KwF3
	KwG0
	KwG1
	KwG2
	KwG3
	KwI0
	KwI1
	KwI2
	KwI3

	// Bare register classes.
	KwClassA
	KwClassB
	KwClassC
	KwClassD
	KwClassF
	KwClassG
	KwClassI

	numKeywords
)

var keywordNames = [numKeywords]string{
	KwInt8:    "int8",
	KwInt16:   "int16",
	KwInt32:   "int32",
	KwInt64:   "int64",
	KwUint8:   "uint8",
	KwUint16:  "uint16",
	KwUint32:  "uint32",
	KwUint64:  "uint64",
	KwFloat32: "float32",
	KwFloat64: "float64",
	KwChar:    "char",
	KwBool:    "bool",

	KwAdd:    "add",
	KwSub:    "sub",
	KwMul:    "mul",
	KwDiv:    "div",
	KwMod:    "mod",
	KwAnd:    "and",
	KwOr:     "or",
	KwNot:    "not",
	KwXor:    "xor",
	KwEq:     "eq",
	KwNe:     "ne",
	KwLt:     "lt",
	KwLe:     "le",
	KwGt:     "gt",
	KwGe:     "ge",
	KwLs:     "ls",
	KwRs:     "rs",
	KwInc:    "inc",
	KwDec:    "dec",
	KwPush:   "push",
	KwSet:    "set",
	KwLoad:   "load",
	KwUnload: "unload",
	KwMove:   "move",
	KwCall:   "call",
	KwCallIf: "callif",
	KwJump:   "jump",
	KwJumpIf: "jumpif",

	KwA0: "a0", KwA1: "a1", KwA2: "a2", KwA3: "a3",
	KwB0: "b0", KwB1: "b1", KwB2: "b2", KwB3: "b3",
	KwC0: "c0", KwC1: "c1", KwC2: "c2", KwC3: "c3",
	KwD0: "d0", KwD1: "d1", KwD2: "d2", KwD3: "d3",
	KwF0: "f0", KwF1: "f1", KwF2: "f2", KwF3: "f3",
	KwG0: "g0", KwG1: "g1", KwG2: "g2", KwG3: "g3",
	KwI0: "i0", KwI1: "i1", KwI2: "i2", KwI3: "i3",

	KwClassA: "a",
	KwClassB: "b",
	KwClassC: "c",
	KwClassD: "d",
	KwClassF: "f",
	KwClassG: "g",
	KwClassI: "i",
}

var keywordByName = func() map[string]Keyword {
	m := make(map[string]Keyword, numKeywords)
	for kw, name := range keywordNames {
		m[name] = Keyword(kw)
	}
	return m
}()

// LookupKeyword returns the keyword spelled by word, if any.
func LookupKeyword(word string) (Keyword, bool) {
	kw, ok := keywordByName[word]
	return kw, ok
}

func (k Keyword) String() string {
	if k < 0 || k >= numKeywords {
		return "keyword(?)"
	}
	return keywordNames[k]
}

// IsType reports whether k names a variable type.
func (k Keyword) IsType() bool {
	return k >= KwInt8 && k <= KwBool
}

// IsMnemonic reports whether k starts an instruction.
func (k Keyword) IsMnemonic() bool {
	return k >= KwAdd && k <= KwJumpIf
}

// IsRegister reports whether k names a single register lane.
func (k Keyword) IsRegister() bool {
	return k >= KwA0 && k <= KwI3
}

// IsRegisterClass reports whether k is a bare class letter.
func (k Keyword) IsRegisterClass() bool {
	return k >= KwClassA && k <= KwClassI
}

// RegisterOrdinal returns the position of a register keyword in the A0..I3
// sequence.
func (k Keyword) RegisterOrdinal() (int, bool) {
	if !k.IsRegister() {
		return 0, false
	}
	return int(k - KwA0), true
}
