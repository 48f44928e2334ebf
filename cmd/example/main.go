// Command example assembles a two-resistor series circuit grounded at both
// ends, prints its whole-circuit quantities, and renders its incidence
// structure and net graph as a runnable demo of the assembly pipeline.
package main

import (
	"log"
	"os"

	"github.com/RuiCat/dkcircuit/circuit"
	"github.com/RuiCat/dkcircuit/element"
	"github.com/RuiCat/dkcircuit/maths"
	"github.com/RuiCat/dkcircuit/topomat"
	"github.com/RuiCat/dkcircuit/visualize"
)

func resistor(ohms float64) *element.Element {
	e, err := element.NewBuilder().
		MV(maths.NewDenseFromRows([][]float64{{1}})).
		MI(maths.NewDenseFromRows([][]float64{{-ohms}})).
		Build()
	if err != nil {
		log.Fatalf("building resistor: %v", err)
	}
	return e
}

func mustPin(e *element.Element, name string) circuit.PinOrName {
	p, err := e.Pin(name)
	if err != nil {
		log.Fatalf("pin %q: %v", name, err)
	}
	return circuit.Pin(p)
}

func main() {
	r1, r2 := resistor(100), resistor(220)

	c := circuit.New()
	c.Add(r1, r2)

	if err := c.Connect(mustPin(r1, "2"), mustPin(r2, "1")); err != nil {
		log.Fatalf("connecting r1-r2: %v", err)
	}
	if err := c.Connect(mustPin(r1, "1"), circuit.Name("gnd")); err != nil {
		log.Fatalf("grounding r1: %v", err)
	}
	if err := c.Connect(mustPin(r2, "2"), circuit.Name("gnd")); err != nil {
		log.Fatalf("grounding r2: %v", err)
	}

	log.Printf("nb=%d nl=%d nn=%d", c.NB(), c.NL(), c.NN())

	a := c.Incidence()
	log.Printf("incidence:\n%s", a.String())

	tv, ti, err := topomat.Reduce(a)
	if err != nil {
		log.Fatalf("topomat: %v", err)
	}
	log.Printf("ti (%d rows):\n%s", ti.Rows(), ti.String())
	log.Printf("tv (%d rows):\n%s", tv.Rows(), tv.String())

	f, err := os.Create("incidence.svg")
	if err != nil {
		log.Fatalf("creating incidence.svg: %v", err)
	}
	defer f.Close()
	if err := visualize.PlotIncidence(f, a, "svg"); err != nil {
		log.Fatalf("plotting incidence: %v", err)
	}

	g, err := os.Create("netgraph.html")
	if err != nil {
		log.Fatalf("creating netgraph.html: %v", err)
	}
	defer g.Close()
	elements := map[string]*element.Element{"R1": r1, "R2": r2}
	if err := visualize.RenderNetGraph(g, c, elements); err != nil {
		log.Fatalf("rendering net graph: %v", err)
	}
}
