package core_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/japl/core"
	"github.com/sarchlab/japl/instr"
)

func reg(c instr.RegisterClass, i int) instr.RegisterName {
	r, err := instr.Register(c, i)
	Expect(err).NotTo(HaveOccurred())
	return r
}

var _ = Describe("RegisterFile", func() {
	var rf *core.RegisterFile

	BeforeEach(func() {
		rf = &core.RegisterFile{}
	})

	Context("class gating", func() {
		It("should reject add from B into C", func() {
			err := rf.BinaryOperate(instr.Add,
				reg(instr.ClassB, 0), reg(instr.ClassB, 1), reg(instr.ClassC, 0))

			Expect(errors.Is(err, core.OperationError)).To(BeTrue())
		})

		It("should wrap add within B", func() {
			rf.B[0] = math.MaxUint16
			rf.B[1] = 3

			err := rf.BinaryOperate(instr.Add,
				reg(instr.ClassB, 0), reg(instr.ClassB, 1), reg(instr.ClassB, 2))

			Expect(err).NotTo(HaveOccurred())
			Expect(rf.B[2]).To(Equal(uint16(2)))
		})

		It("should reject mixed source classes", func() {
			err := rf.BinaryOperate(instr.Sub,
				reg(instr.ClassA, 0), reg(instr.ClassD, 0), reg(instr.ClassA, 1))

			Expect(errors.Is(err, core.OperationError)).To(BeTrue())
		})

		It("should reject mod on floats", func() {
			err := rf.BinaryOperate(instr.Mod,
				reg(instr.ClassG, 0), reg(instr.ClassG, 1), reg(instr.ClassG, 2))

			Expect(errors.Is(err, core.OperationError)).To(BeTrue())
		})

		It("should reject add on booleans", func() {
			err := rf.BinaryOperate(instr.Add,
				reg(instr.ClassI, 0), reg(instr.ClassI, 1), reg(instr.ClassI, 2))

			Expect(errors.Is(err, core.OperationError)).To(BeTrue())
		})

		It("should reject inc on booleans and not on floats", func() {
			Expect(errors.Is(rf.UnaryOperate(instr.Inc, reg(instr.ClassI, 0), reg(instr.ClassI, 0)),
				core.OperationError)).To(BeTrue())
			Expect(errors.Is(rf.UnaryOperate(instr.Not, reg(instr.ClassF, 0), reg(instr.ClassF, 0)),
				core.OperationError)).To(BeTrue())
		})
	})

	Context("arithmetic", func() {
		It("should divide floats", func() {
			rf.F[0] = 7
			rf.F[1] = 2

			Expect(rf.BinaryOperate(instr.Div,
				reg(instr.ClassF, 0), reg(instr.ClassF, 1), reg(instr.ClassF, 3))).To(Succeed())
			Expect(rf.F[3]).To(Equal(float32(3.5)))
		})

		It("should fail integer division by zero", func() {
			rf.C[0] = 9

			err := rf.BinaryOperate(instr.Div,
				reg(instr.ClassC, 0), reg(instr.ClassC, 1), reg(instr.ClassC, 2))

			Expect(errors.Is(err, core.DivisionByZero)).To(BeTrue())
			Expect(rf.C[2]).To(BeZero())
		})

		It("should shift and mask", func() {
			rf.A[0] = 0x81
			rf.A[1] = 1

			Expect(rf.BinaryOperate(instr.LeftShift,
				reg(instr.ClassA, 0), reg(instr.ClassA, 1), reg(instr.ClassA, 2))).To(Succeed())
			Expect(rf.A[2]).To(Equal(uint8(0x02)))

			Expect(rf.BinaryOperate(instr.Xor,
				reg(instr.ClassA, 0), reg(instr.ClassA, 2), reg(instr.ClassA, 3))).To(Succeed())
			Expect(rf.A[3]).To(Equal(uint8(0x83)))
		})

		It("should xor booleans", func() {
			rf.I[0] = true

			Expect(rf.BinaryOperate(instr.Xor,
				reg(instr.ClassI, 0), reg(instr.ClassI, 1), reg(instr.ClassI, 2))).To(Succeed())
			Expect(rf.I[2]).To(BeTrue())
		})

		It("should apply unary operators", func() {
			rf.D[0] = 0
			rf.G[1] = 1.5

			Expect(rf.UnaryOperate(instr.Dec, reg(instr.ClassD, 0), reg(instr.ClassD, 1))).To(Succeed())
			Expect(rf.D[1]).To(Equal(uint64(math.MaxUint64)))

			Expect(rf.UnaryOperate(instr.Inc, reg(instr.ClassG, 1), reg(instr.ClassG, 1))).To(Succeed())
			Expect(rf.G[1]).To(Equal(2.5))

			Expect(rf.UnaryOperate(instr.Not, reg(instr.ClassI, 0), reg(instr.ClassI, 1))).To(Succeed())
			Expect(rf.I[1]).To(BeTrue())
		})
	})

	Context("comparisons", func() {
		It("should write the result into I for any source class", func() {
			rf.G[0] = 1.25
			rf.G[1] = 2.5
			rf.B[0] = 4
			rf.B[1] = 4

			Expect(rf.BinaryOperate(instr.Lt,
				reg(instr.ClassG, 0), reg(instr.ClassG, 1), reg(instr.ClassI, 0))).To(Succeed())
			Expect(rf.BinaryOperate(instr.Ne,
				reg(instr.ClassB, 0), reg(instr.ClassB, 1), reg(instr.ClassI, 1))).To(Succeed())
			Expect(rf.BinaryOperate(instr.Ge,
				reg(instr.ClassB, 0), reg(instr.ClassB, 1), reg(instr.ClassI, 2))).To(Succeed())

			Expect(rf.I[0]).To(BeTrue())
			Expect(rf.I[1]).To(BeFalse())
			Expect(rf.I[2]).To(BeTrue())
		})

		It("should order false before true", func() {
			rf.I[1] = true

			Expect(rf.BinaryOperate(instr.Lt,
				reg(instr.ClassI, 0), reg(instr.ClassI, 1), reg(instr.ClassI, 2))).To(Succeed())
			Expect(rf.I[2]).To(BeTrue())
		})

		It("should reject a non-boolean destination", func() {
			rf.A[0] = 1

			err := rf.BinaryOperate(instr.Eq,
				reg(instr.ClassA, 0), reg(instr.ClassA, 0), reg(instr.ClassA, 1))

			Expect(errors.Is(err, core.OperationError)).To(BeTrue())
			Expect(rf.A[1]).To(BeZero())
		})
	})

	Context("bytes", func() {
		It("should round-trip every class", func() {
			rf.C[2] = 0xdeadbeef
			rf.F[3] = -0.5
			rf.I[1] = true

			for _, r := range []instr.RegisterName{
				reg(instr.ClassC, 2), reg(instr.ClassF, 3), reg(instr.ClassI, 1),
			} {
				b, err := rf.Bytes(r)
				Expect(err).NotTo(HaveOccurred())
				Expect(b).To(HaveLen(r.Size()))

				other := &core.RegisterFile{}
				Expect(other.SetBytes(r, b)).To(Succeed())

				want, _ := rf.Value(r)
				got, _ := other.Value(r)
				Expect(got).To(Equal(want))
			}
		})

		It("should reject a wrong width", func() {
			err := rf.SetBytes(reg(instr.ClassD, 0), []byte{1, 2})

			Expect(errors.Is(err, core.SizeMismatch)).To(BeTrue())
		})

		It("should reject an invalid register", func() {
			_, err := rf.Bytes(instr.RegisterName(instr.NumRegisters))

			Expect(errors.Is(err, core.RegisterIndexError)).To(BeTrue())
		})
	})
})
