package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// run executes a go subcommand, prints its combined output and returns the
// exit code.
func run(args ...string) int {
	cmd := exec.Command("go", args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	var exit *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "go %v: %v\n", args, err)
	return 1
}

var perftRuns = []struct {
	label, fen string
	depth      int
}{
	{"Initial", "", 3},
	{"Initial", "", 4},
	{"Initial", "", 5},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
	{"Position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3},
}

// Usage: go run ./cmd/benchrun
func main() {
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	if code := run("test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, p := range perftRuns {
		args := []string{"run", "./cmd/perft", "-depth", fmt.Sprint(p.depth), "-label", p.label}
		if p.fen != "" {
			args = append(args, "-fen", p.fen)
		}
		run(args...)
	}

	fmt.Println("\nSearch Performance:")
	run("run", "./cmd/searchbench", "-depth", "4", "-repeat", "2")
}
