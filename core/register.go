package core

import (
	"encoding/binary"
	"math"

	"github.com/sarchlab/japl/instr"
)

type integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

type ordered interface {
	integer | float
}

// RegisterFile holds four lanes of every register class at native width.
type RegisterFile struct {
	A [instr.NumLanes]uint8
	B [instr.NumLanes]uint16
	C [instr.NumLanes]uint32
	D [instr.NumLanes]uint64
	F [instr.NumLanes]float32
	G [instr.NumLanes]float64
	I [instr.NumLanes]bool
}

func lane(r instr.RegisterName) (int, error) {
	if !r.Valid() {
		return 0, fault(RegisterIndexError, "register %v", r)
	}

	i := r.Index()
	if i < 0 || i >= instr.NumLanes {
		return 0, fault(RegisterIndexError, "lane %d of %v", i, r.Class())
	}

	return i, nil
}

func lanes(regs ...instr.RegisterName) ([]int, error) {
	out := make([]int, len(regs))
	for n, r := range regs {
		i, err := lane(r)
		if err != nil {
			return nil, err
		}
		out[n] = i
	}

	return out, nil
}

// CheckBinary reports whether op accepts the register classes of src1, src2
// and dst.
func CheckBinary(op instr.BinaryOperator, src1, src2, dst instr.RegisterName) error {
	class := src1.Class()
	if src2.Class() != class {
		return fault(OperationError, "%v on %v and %v", op, src1, src2)
	}

	if op.IsComparison() {
		if dst.Class() != instr.ClassI {
			return fault(OperationError, "%v writes a boolean, not %v", op, dst)
		}
		return nil
	}

	if dst.Class() != class {
		return fault(OperationError, "%v from class %v into %v", op, class, dst)
	}

	var ok bool
	switch op {
	case instr.Add, instr.Sub, instr.Mul, instr.Div:
		ok = class.IsInteger() || class.IsFloat()
	case instr.Mod, instr.LeftShift, instr.RightShift:
		ok = class.IsInteger()
	case instr.And, instr.Or, instr.Xor:
		ok = class.IsInteger() || class == instr.ClassI
	}

	if !ok {
		return fault(OperationError, "%v on class %v", op, class)
	}

	return nil
}

// CheckUnary reports whether op accepts the register classes of src and dst.
func CheckUnary(op instr.UnaryOperator, src, dst instr.RegisterName) error {
	class := src.Class()
	if dst.Class() != class {
		return fault(OperationError, "%v from %v into %v", op, src, dst)
	}

	var ok bool
	switch op {
	case instr.Not:
		ok = class.IsInteger() || class == instr.ClassI
	case instr.Inc, instr.Dec:
		ok = class.IsInteger() || class.IsFloat()
	}

	if !ok {
		return fault(OperationError, "%v on class %v", op, class)
	}

	return nil
}

// BinaryOperate applies op to src1 and src2 and writes the result into dst.
func (rf *RegisterFile) BinaryOperate(
	op instr.BinaryOperator,
	src1, src2, dst instr.RegisterName,
) error {
	idx, err := lanes(src1, src2, dst)
	if err != nil {
		return err
	}

	if err := CheckBinary(op, src1, src2, dst); err != nil {
		return err
	}

	a, b, d := idx[0], idx[1], idx[2]

	if op.IsComparison() {
		var res bool
		switch src1.Class() {
		case instr.ClassA:
			res = compare(op, rf.A[a], rf.A[b])
		case instr.ClassB:
			res = compare(op, rf.B[a], rf.B[b])
		case instr.ClassC:
			res = compare(op, rf.C[a], rf.C[b])
		case instr.ClassD:
			res = compare(op, rf.D[a], rf.D[b])
		case instr.ClassF:
			res = compare(op, rf.F[a], rf.F[b])
		case instr.ClassG:
			res = compare(op, rf.G[a], rf.G[b])
		case instr.ClassI:
			res = compare(op, boolBit(rf.I[a]), boolBit(rf.I[b]))
		}
		rf.I[d] = res
		return nil
	}

	switch src1.Class() {
	case instr.ClassA:
		return apply(&rf.A, a, b, d, op, integerOp[uint8])
	case instr.ClassB:
		return apply(&rf.B, a, b, d, op, integerOp[uint16])
	case instr.ClassC:
		return apply(&rf.C, a, b, d, op, integerOp[uint32])
	case instr.ClassD:
		return apply(&rf.D, a, b, d, op, integerOp[uint64])
	case instr.ClassF:
		return apply(&rf.F, a, b, d, op, floatOp[float32])
	case instr.ClassG:
		return apply(&rf.G, a, b, d, op, floatOp[float64])
	case instr.ClassI:
		return apply(&rf.I, a, b, d, op, boolOp)
	}

	return fault(OperationError, "%v on class %v", op, src1.Class())
}

// UnaryOperate applies op to src and writes the result into dst.
func (rf *RegisterFile) UnaryOperate(op instr.UnaryOperator, src, dst instr.RegisterName) error {
	idx, err := lanes(src, dst)
	if err != nil {
		return err
	}

	if err := CheckUnary(op, src, dst); err != nil {
		return err
	}

	s, d := idx[0], idx[1]

	switch src.Class() {
	case instr.ClassA:
		rf.A[d] = integerUnary(op, rf.A[s])
	case instr.ClassB:
		rf.B[d] = integerUnary(op, rf.B[s])
	case instr.ClassC:
		rf.C[d] = integerUnary(op, rf.C[s])
	case instr.ClassD:
		rf.D[d] = integerUnary(op, rf.D[s])
	case instr.ClassF:
		rf.F[d] = floatUnary(op, rf.F[s])
	case instr.ClassG:
		rf.G[d] = floatUnary(op, rf.G[s])
	case instr.ClassI:
		rf.I[d] = !rf.I[s]
	}

	return nil
}

func apply[T any](
	arr *[instr.NumLanes]T,
	a, b, d int,
	op instr.BinaryOperator,
	f func(instr.BinaryOperator, T, T) (T, error),
) error {
	res, err := f(op, arr[a], arr[b])
	if err != nil {
		return err
	}

	arr[d] = res

	return nil
}

func integerOp[T integer](op instr.BinaryOperator, a, b T) (T, error) {
	switch op {
	case instr.Add:
		return a + b, nil
	case instr.Sub:
		return a - b, nil
	case instr.Mul:
		return a * b, nil
	case instr.Div:
		if b == 0 {
			return 0, fault(DivisionByZero, "%v / 0", a)
		}
		return a / b, nil
	case instr.Mod:
		if b == 0 {
			return 0, fault(DivisionByZero, "%v %% 0", a)
		}
		return a % b, nil
	case instr.LeftShift:
		return a << b, nil
	case instr.RightShift:
		return a >> b, nil
	case instr.And:
		return a & b, nil
	case instr.Or:
		return a | b, nil
	case instr.Xor:
		return a ^ b, nil
	}

	return 0, fault(OperationError, "%v on integers", op)
}

func floatOp[T float](op instr.BinaryOperator, a, b T) (T, error) {
	switch op {
	case instr.Add:
		return a + b, nil
	case instr.Sub:
		return a - b, nil
	case instr.Mul:
		return a * b, nil
	case instr.Div:
		return a / b, nil
	}

	return 0, fault(OperationError, "%v on floats", op)
}

func boolOp(op instr.BinaryOperator, a, b bool) (bool, error) {
	switch op {
	case instr.And:
		return a && b, nil
	case instr.Or:
		return a || b, nil
	case instr.Xor:
		return a != b, nil
	}

	return false, fault(OperationError, "%v on booleans", op)
}

func compare[T ordered](op instr.BinaryOperator, a, b T) bool {
	switch op {
	case instr.Eq:
		return a == b
	case instr.Ne:
		return a != b
	case instr.Lt:
		return a < b
	case instr.Gt:
		return a > b
	case instr.Le:
		return a <= b
	case instr.Ge:
		return a >= b
	}

	return false
}

func integerUnary[T integer](op instr.UnaryOperator, a T) T {
	switch op {
	case instr.Not:
		return ^a
	case instr.Inc:
		return a + 1
	default:
		return a - 1
	}
}

func floatUnary[T float](op instr.UnaryOperator, a T) T {
	if op == instr.Inc {
		return a + 1
	}
	return a - 1
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Bytes returns the native-endian bytes of a lane.
func (rf *RegisterFile) Bytes(r instr.RegisterName) ([]byte, error) {
	i, err := lane(r)
	if err != nil {
		return nil, err
	}

	ne := binary.NativeEndian
	buf := make([]byte, 0, r.Size())

	switch r.Class() {
	case instr.ClassA:
		buf = append(buf, rf.A[i])
	case instr.ClassB:
		buf = ne.AppendUint16(buf, rf.B[i])
	case instr.ClassC:
		buf = ne.AppendUint32(buf, rf.C[i])
	case instr.ClassD:
		buf = ne.AppendUint64(buf, rf.D[i])
	case instr.ClassF:
		buf = ne.AppendUint32(buf, math.Float32bits(rf.F[i]))
	case instr.ClassG:
		buf = ne.AppendUint64(buf, math.Float64bits(rf.G[i]))
	case instr.ClassI:
		buf = append(buf, boolBit(rf.I[i]))
	}

	return buf, nil
}

// SetBytes reinterprets b as the native value of a lane. b must be exactly
// as wide as the register.
func (rf *RegisterFile) SetBytes(r instr.RegisterName, b []byte) error {
	i, err := lane(r)
	if err != nil {
		return err
	}

	if len(b) != r.Size() {
		return fault(SizeMismatch, "%d bytes into %v (%d bytes)", len(b), r, r.Size())
	}

	ne := binary.NativeEndian

	switch r.Class() {
	case instr.ClassA:
		rf.A[i] = b[0]
	case instr.ClassB:
		rf.B[i] = ne.Uint16(b)
	case instr.ClassC:
		rf.C[i] = ne.Uint32(b)
	case instr.ClassD:
		rf.D[i] = ne.Uint64(b)
	case instr.ClassF:
		rf.F[i] = math.Float32frombits(ne.Uint32(b))
	case instr.ClassG:
		rf.G[i] = math.Float64frombits(ne.Uint64(b))
	case instr.ClassI:
		rf.I[i] = b[0] != 0
	}

	return nil
}

// Reset sets a lane to its zero value.
func (rf *RegisterFile) Reset(r instr.RegisterName) error {
	return rf.SetBytes(r, make([]byte, r.Size()))
}

// Value returns the native value of a lane.
func (rf *RegisterFile) Value(r instr.RegisterName) (any, error) {
	i, err := lane(r)
	if err != nil {
		return nil, err
	}

	switch r.Class() {
	case instr.ClassA:
		return rf.A[i], nil
	case instr.ClassB:
		return rf.B[i], nil
	case instr.ClassC:
		return rf.C[i], nil
	case instr.ClassD:
		return rf.D[i], nil
	case instr.ClassF:
		return rf.F[i], nil
	case instr.ClassG:
		return rf.G[i], nil
	default:
		return rf.I[i], nil
	}
}
