package main

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/japl/api"
	"github.com/sarchlab/japl/lexer"
	"github.com/sarchlab/japl/program"
)

//go:embed countdown.japl
var countdownKernel string

func main() {
	tokens, err := lexer.Tokenize(countdownKernel)
	if err != nil {
		fmt.Println("tokenize:", err)
		atexit.Exit(1)
	}

	prog, err := program.Decode(tokens)
	if err != nil {
		fmt.Println("decode:", err)
		atexit.Exit(1)
	}

	engine := sim.NewSerialEngine()

	driver := api.NewDriverBuilder().
		WithEngine(engine).
		Build("Driver")

	if err := driver.MapProgram(prog); err != nil {
		fmt.Println("map:", err)
		atexit.Exit(1)
	}

	res, err := driver.Run()
	if err != nil {
		fmt.Println("run:", err)
		atexit.Exit(1)
	}

	sum, _ := res.Snapshot.Variable("sum")
	fmt.Print(res.Snapshot.Render())
	fmt.Printf("sum = %d after %d cycles\n", binary.NativeEndian.Uint16(sum), res.Cycles)

	atexit.Exit(0)
}
