package core_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/japl/core"
	"github.com/sarchlab/japl/lexer"
	"github.com/sarchlab/japl/program"
)

func mustDecode(src string) *program.Program {
	tokens, err := lexer.Tokenize(src)
	Expect(err).NotTo(HaveOccurred())

	p, err := program.Decode(tokens)
	Expect(err).NotTo(HaveOccurred())

	return p
}

const countdown = `
push uint8 n
push uint8 steps
set n 5
load n a0
load 1 a1
load 0 a2
loop:
	sub a0 a1 a0
	inc a3 a3
	eq a0 a2 i0
	not i0 i1
	jumpif loop i1
unload a0 n
unload a3 steps
`

var _ = Describe("Machine", func() {
	It("should run the load/unload round trip", func() {
		snap, err := core.Run(
			mustDecode("push int8 x; set x 1; load x a0; unload a0 x;"),
			core.DefaultLimits(),
		)

		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Stack[0]).To(Equal(byte(1)))
		Expect(snap.Registers.A[0]).To(BeZero())
		Expect(snap.Stack).To(HaveLen(core.DefaultStackSize))
	})

	It("should loop until the condition clears", func() {
		snap, err := core.Run(mustDecode(countdown), core.DefaultLimits())

		Expect(err).NotTo(HaveOccurred())
		n, _ := snap.Variable("n")
		steps, _ := snap.Variable("steps")
		Expect(n).To(Equal([]byte{0}))
		Expect(steps).To(Equal([]byte{5}))
		Expect(snap.PC).To(Equal(13))
	})

	Context("jump resolution", func() {
		It("should land on the instruction after the label", func() {
			snap, err := core.Run(mustDecode(`
				push int8 x
				jump skip
				set x 9
				skip:
				load x a0
			`), core.DefaultLimits())

			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Registers.A[0]).To(BeZero())
			Expect(snap.Steps).To(Equal(uint64(3)))
		})

		It("should finish when jumping to a trailing label", func() {
			snap, err := core.Run(mustDecode("push int8 x\njump end\nset x 1\nend:"),
				core.DefaultLimits())

			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Stack[0]).To(BeZero())
			Expect(snap.PC).To(Equal(3))
		})

		It("should execute the first instruction when jumping to a leading label", func() {
			_, err := core.Run(mustDecode(`
				top:
				push int8 x
				jump top
			`), core.DefaultLimits())

			Expect(errors.Is(err, core.DuplicateVariable)).To(BeTrue())
		})

		It("should report an unknown label", func() {
			_, err := core.Run(mustDecode("jump nowhere"), core.DefaultLimits())

			var coreErr *core.Error
			Expect(errors.As(err, &coreErr)).To(BeTrue())
			Expect(coreErr.Kind).To(Equal(core.LabelNotFound))
			Expect(coreErr.PC).To(Equal(0))
		})

		It("should require a boolean condition", func() {
			_, err := core.Run(mustDecode("l: jumpif l a0"), core.DefaultLimits())

			Expect(errors.Is(err, core.OperationError)).To(BeTrue())
		})
	})

	It("should reject reserved instructions", func() {
		for _, src := range []string{"move a0 a1", "fn: call fn", "fn: callif fn i0"} {
			_, err := core.Run(mustDecode(src), core.DefaultLimits())

			Expect(errors.Is(err, core.Unsupported)).To(BeTrue(), src)
		}
	})

	It("should stop at the step limit", func() {
		limits := core.DefaultLimits()
		limits.MaxSteps = 10

		snap, err := core.Run(mustDecode("spin: jump spin"), limits)

		var coreErr *core.Error
		Expect(errors.As(err, &coreErr)).To(BeTrue())
		Expect(coreErr.Kind).To(Equal(core.StepLimitExceeded))
		Expect(snap.Steps).To(Equal(uint64(10)))
	})

	It("should report the failing index and keep earlier effects", func() {
		snap, err := core.Run(mustDecode(`
			push int64 x
			push int64 y
			push int8 z
		`), core.DefaultLimits())

		var coreErr *core.Error
		Expect(errors.As(err, &coreErr)).To(BeTrue())
		Expect(coreErr.Kind).To(Equal(core.StackOverflow))
		Expect(coreErr.PC).To(Equal(2))
		Expect(snap.Variables).To(HaveLen(2))
	})

	It("should honor a larger stack", func() {
		limits := core.DefaultLimits()
		limits.StackSize = 32

		snap, err := core.Run(mustDecode("push int64 x\npush int64 y\npush int64 z"), limits)

		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Stack).To(HaveLen(32))
	})

	It("should render registers and variables", func() {
		snap, err := core.Run(mustDecode("push int16 v; set v -3; load 2.5 g1"), core.DefaultLimits())
		Expect(err).NotTo(HaveOccurred())

		out := snap.Render()

		Expect(out).To(ContainSubstring("Registers"))
		Expect(out).To(ContainSubstring("2.5"))
		Expect(out).To(ContainSubstring("-3"))
		Expect(out).To(ContainSubstring("fd ff"))
	})
})

var _ = Describe("Core", func() {
	var (
		engine sim.Engine
		c      *core.Core
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		c = core.NewBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			Build("Core")
	})

	It("should match the direct run", func() {
		prog := mustDecode(countdown)
		want, err := core.Run(prog, core.DefaultLimits())
		Expect(err).NotTo(HaveOccurred())

		c.MapProgram(prog)
		Expect(engine.Run()).To(Succeed())

		Expect(c.Err()).NotTo(HaveOccurred())
		Expect(c.Done()).To(BeTrue())
		Expect(c.Snapshot()).To(Equal(want))
		Expect(c.Cycles()).To(Equal(want.Steps))
	})

	It("should stop on a fault", func() {
		c.MapProgram(mustDecode("push int8 x\nload x d0\nunload d0 x\nset x 1"))
		Expect(engine.Run()).To(Succeed())

		Expect(errors.Is(c.Err(), core.SizeMismatch)).To(BeTrue())
		Expect(c.Snapshot().PC).To(Equal(2))
	})

	It("should apply the builder limits", func() {
		c = core.NewBuilder().
			WithEngine(engine).
			WithMaxSteps(4).
			Build("Limited")

		c.MapProgram(mustDecode("spin: jump spin"))
		Expect(engine.Run()).To(Succeed())

		Expect(errors.Is(c.Err(), core.StepLimitExceeded)).To(BeTrue())
	})
})
