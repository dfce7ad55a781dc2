// Package main provides the Spindle state-vector simulator CLI.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/theapemachine/errnie"

	"github.com/spindle-qc/spindle/simulator"
)

const version = "v0.1.0-dev"

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "version":
		fmt.Printf("Spindle %s\n", version)
	case "bell":
		n := 2
		if len(os.Args) > 2 {
			v, err := strconv.Atoi(os.Args[2])
			if err != nil || v < 2 {
				fmt.Fprintf(os.Stderr, "bell: qubit count must be an integer >= 2, got %q\n", os.Args[2])
				os.Exit(1)
			}
			n = v
		}
		if err := runBell(n); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "grad":
		theta := math.Pi / 3
		if len(os.Args) > 2 {
			v, err := strconv.ParseFloat(os.Args[2], 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "grad: angle must be a float, got %q\n", os.Args[2])
				os.Exit(1)
			}
			theta = v
		}
		if err := runGrad(theta); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Println("Spindle - State-Vector Quantum Simulator")
		fmt.Printf("Version: %s\n\n", version)
		fmt.Println("Commands:")
		fmt.Println("  bell [n]      Prepare an n-qubit GHZ state and show probabilities")
		fmt.Println("  grad [theta]  Differentiate <Z> after RX(theta) with the adjoint method")
		fmt.Println("  version       Show version")
	}
}

func newSimulator() (*simulator.Simulator, error) {
	cfg, err := simulator.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	errnie.Info("spindle config - shots %d, seed %d, workers %d", cfg.Shots, cfg.Seed, cfg.Workers)
	return simulator.New(simulator.WithConfig(cfg)), nil
}

// runBell prepares (|0...0> + |1...1>)/sqrt(2) on n qubits and renders the
// basis probabilities as bars.
func runBell(n int) error {
	sim, err := newSimulator()
	if err != nil {
		return err
	}
	q := sim.AllocateQubits(n)
	errnie.Info("allocated %d qubits", n)

	if err := sim.NamedOperation("Hadamard", nil, q[:1], false); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := sim.NamedOperation("CNOT", nil, []simulator.QubitID{q[i-1], q[i]}, false); err != nil {
			return err
		}
	}

	probs := make([]float64, 1<<n)
	if err := sim.Probs(probs); err != nil {
		return err
	}

	fmt.Println(panelStyle.Render(renderProbs(probs, n)))
	return nil
}

// runGrad records RX(theta) against <Z> on one qubit and differentiates it.
func runGrad(theta float64) error {
	sim, err := newSimulator()
	if err != nil {
		return err
	}
	q := sim.AllocateQubit()

	if err := sim.StartTapeRecording(); err != nil {
		return err
	}
	if err := sim.NamedOperation("RX", []float64{theta}, []simulator.QubitID{q}, false); err != nil {
		return err
	}
	key, err := sim.NamedObservable("PauliZ", []simulator.QubitID{q})
	if err != nil {
		return err
	}
	ev, err := sim.Expval(key)
	if err != nil {
		return err
	}
	if err := sim.StopTapeRecording(); err != nil {
		return err
	}

	grads := [][]float64{make([]float64, 1)}
	if err := sim.Gradient(grads, nil); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("RX(%.4f) against <Z>", theta)))
	fmt.Printf("  %s %+.6f\n", basisStyle.Render("expval        "), ev)
	fmt.Printf("  %s %+.6f\n", basisStyle.Render("d expval / d θ"), grads[0][0])
	fmt.Printf("  %s %+.6f\n", dimStyle.Render("analytic -sinθ"), -math.Sin(theta))
	return nil
}

// renderProbs draws one bar per basis state. Labels list wire 0 leftmost,
// matching the order Sample and Counts use.
func renderProbs(probs []float64, n int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d-qubit GHZ probabilities", n)))
	b.WriteByte('\n')
	for i, p := range probs {
		label := make([]byte, n)
		for w := 0; w < n; w++ {
			label[w] = '0' + byte(i>>w&1)
		}
		filled := int(p*barW + 0.5)
		bar := barStyle.Render(strings.Repeat("█", filled)) +
			dimStyle.Render(strings.Repeat("░", barW-filled))
		b.WriteString(fmt.Sprintf("%s%s%s %s\n",
			basisStyle.Render("|"+string(label)+"⟩"),
			strings.Repeat(" ", basisPadW),
			bar,
			probStyle.Render(fmt.Sprintf("%.4f", p))))
	}
	return strings.TrimRight(b.String(), "\n")
}
