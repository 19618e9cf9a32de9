package core_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/japl/core"
	"github.com/sarchlab/japl/instr"
	"github.com/sarchlab/japl/token"
)

var _ = Describe("Stack", func() {
	var (
		s  *core.Stack
		rf *core.RegisterFile
	)

	BeforeEach(func() {
		s = core.NewStack(core.DefaultStackSize)
		rf = &core.RegisterFile{}
	})

	It("should lay out variables in declaration order", func() {
		Expect(s.Push(instr.Int8, "a")).To(Succeed())
		Expect(s.Push(instr.Int32, "b")).To(Succeed())
		Expect(s.Push(instr.Int16, "c")).To(Succeed())
		Expect(s.Push(instr.Float64, "d")).To(Succeed())

		offsets := []int{}
		for _, v := range s.Variables() {
			offsets = append(offsets, v.Offset)
		}
		Expect(offsets).To(Equal([]int{0, 1, 5, 7}))
		Expect(s.Used()).To(Equal(15))
	})

	It("should fail past the capacity", func() {
		Expect(s.Push(instr.Int64, "a")).To(Succeed())
		Expect(s.Push(instr.Int64, "b")).To(Succeed())

		err := s.Push(instr.Bool, "c")

		Expect(errors.Is(err, core.StackOverflow)).To(BeTrue())
		Expect(s.Variables()).To(HaveLen(2))
	})

	It("should reject a duplicate declaration", func() {
		Expect(s.Push(instr.Int8, "a")).To(Succeed())

		Expect(errors.Is(s.Push(instr.Int8, "a"), core.DuplicateVariable)).To(BeTrue())
	})

	It("should report unknown variables", func() {
		err := s.Set("ghost", instr.Lit(token.Integer(1)))

		Expect(errors.Is(err, core.VariableNotFound)).To(BeTrue())
	})

	Context("set", func() {
		It("should encode a literal at the variable width", func() {
			Expect(s.Push(instr.Int16, "x")).To(Succeed())
			Expect(s.Set("x", instr.Lit(token.Integer(0x12345)))).To(Succeed())

			b, err := s.Bytes("x")
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(Equal([]byte{0x45, 0x23}))
		})

		It("should encode a negative literal as its bit pattern", func() {
			Expect(s.Push(instr.Int32, "x")).To(Succeed())
			Expect(s.Set("x", instr.Lit(token.Integer(token.BitCast(-2))))).To(Succeed())

			b, _ := s.Bytes("x")
			Expect(b).To(Equal([]byte{0xfe, 0xff, 0xff, 0xff}))
		})

		It("should truncate a copy into a narrower variable", func() {
			Expect(s.Push(instr.Int32, "wide")).To(Succeed())
			Expect(s.Push(instr.Int8, "narrow")).To(Succeed())
			Expect(s.Set("wide", instr.Lit(token.Integer(0x01020304)))).To(Succeed())

			Expect(s.Set("narrow", instr.Var("wide"))).To(Succeed())

			b, _ := s.Bytes("narrow")
			Expect(b).To(Equal([]byte{0x04}))
		})

		It("should copy only the shorter length into a wider variable", func() {
			Expect(s.Push(instr.Int8, "narrow")).To(Succeed())
			Expect(s.Push(instr.Int32, "wide")).To(Succeed())
			Expect(s.Set("wide", instr.Lit(token.Integer(0xaabbccdd)))).To(Succeed())
			Expect(s.Set("narrow", instr.Lit(token.Integer(7)))).To(Succeed())

			Expect(s.Set("wide", instr.Var("narrow"))).To(Succeed())

			b, _ := s.Bytes("wide")
			Expect(b).To(Equal([]byte{0x07, 0xcc, 0xbb, 0xaa}))
		})
	})

	Context("load and unload", func() {
		It("should load a float32 literal", func() {
			Expect(s.Load(instr.Lit(token.Float(1.5)), reg(instr.ClassF, 0), rf)).To(Succeed())

			Expect(rf.F[0]).To(Equal(float32(1.5)))
		})

		It("should zero-extend a narrow variable", func() {
			Expect(s.Push(instr.Int8, "x")).To(Succeed())
			Expect(s.Set("x", instr.Lit(token.Integer(0xff)))).To(Succeed())
			rf.D[0] = 0xffffffff00000000

			Expect(s.Load(instr.Var("x"), reg(instr.ClassD, 0), rf)).To(Succeed())

			Expect(rf.D[0]).To(Equal(uint64(0xff)))
		})

		It("should unload and reset the register", func() {
			Expect(s.Push(instr.Uint16, "x")).To(Succeed())
			rf.B[3] = 0x0102

			Expect(s.Unload(reg(instr.ClassB, 3), "x", rf)).To(Succeed())

			b, _ := s.Bytes("x")
			Expect(b).To(Equal([]byte{0x02, 0x01}))
			Expect(rf.B[3]).To(BeZero())
		})

		It("should leave the variable unchanged on a size mismatch", func() {
			Expect(s.Push(instr.Int32, "x")).To(Succeed())
			Expect(s.Set("x", instr.Lit(token.Integer(0x11223344)))).To(Succeed())
			rf.D[0] = 99

			err := s.Unload(reg(instr.ClassD, 0), "x", rf)

			Expect(errors.Is(err, core.SizeMismatch)).To(BeTrue())
			b, _ := s.Bytes("x")
			Expect(b).To(Equal([]byte{0x44, 0x33, 0x22, 0x11}))
			Expect(rf.D[0]).To(Equal(uint64(99)))
		})
	})
})
