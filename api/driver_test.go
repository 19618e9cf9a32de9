package api_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/japl/api"
	"github.com/sarchlab/japl/config"
	"github.com/sarchlab/japl/core"
	"github.com/sarchlab/japl/lexer"
	"github.com/sarchlab/japl/program"
)

var _ = Describe("Driver with a real engine", func() {
	decode := func(src string) *program.Program {
		tokens, err := lexer.Tokenize(src)
		Expect(err).NotTo(HaveOccurred())
		p, err := program.Decode(tokens)
		Expect(err).NotTo(HaveOccurred())
		return p
	}

	It("should run a program one instruction per cycle", func() {
		engine := sim.NewSerialEngine()
		driver := api.NewDriverBuilder().
			WithEngine(engine).
			Build("Driver")

		prog := decode(`
			push uint16 total
			load 0 b0
			load 3 b1
			load 0 b2
			again:
			add b0 b1 b0
			dec b1 b1
			ne b1 b2 i0
			jumpif again i0
			unload b0 total
		`)
		Expect(driver.MapProgram(prog)).To(Succeed())

		res, err := driver.Run()

		Expect(err).NotTo(HaveOccurred())
		total, ok := res.Snapshot.Variable("total")
		Expect(ok).To(BeTrue())
		Expect(total).To(Equal([]byte{6, 0}))
		Expect(res.Cycles).To(Equal(res.Snapshot.Steps))
		Expect(float64(res.Time)).To(BeNumerically(">", 0))

		direct, err := core.Run(prog, core.DefaultLimits())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Snapshot).To(Equal(direct))
	})

	It("should apply the configured limits", func() {
		cfg := config.Default()
		cfg.MaxSteps = 8

		driver := api.NewDriverBuilder().
			WithEngine(sim.NewSerialEngine()).
			WithConfig(cfg).
			Build("Driver")

		Expect(driver.MapProgram(decode("forever: jump forever"))).To(Succeed())

		res, err := driver.Run()

		Expect(err).To(MatchError(core.StepLimitExceeded))
		Expect(res.Cycles).To(Equal(uint64(9)))
	})
})
