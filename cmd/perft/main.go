package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"time"

	"chess-game/game"
	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	stats := flag.Bool("stats", false, "Classify leaves (captures, checks, mates, ...)")
	parallel := flag.Bool("parallel", false, "Search root moves concurrently on cloned games")
	verify := flag.Bool("verify", false, "Compare the root divide against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	gs, err := game.FromFingerprint(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(2)
	}

	switch {
	case *verify:
		if !verifyDivide(gs, *fen, *depth) {
			os.Exit(1)
		}
		return
	case *divide:
		var div map[string]uint64
		if *parallel {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if div, err = game.PerftDivideParallel(ctx, gs, *depth); err != nil {
				fmt.Fprintf(os.Stderr, "perft: %v\n", err)
				os.Exit(1)
			}
		} else {
			div = game.PerftDivide(gs, *depth)
		}
		printDivide(div)
		return
	case *stats:
		start := time.Now()
		s := game.PerftDetailed(gs, *depth)
		fmt.Printf("depth %d nodes %d captures %d ep %d castles %d promotions %d checks %d discovered %d double %d mates %d (%s)\n",
			*depth, s.Nodes, s.Captures, s.EnPassant, s.Castles, s.Promotions, s.Checks, s.DiscoveredChecks, s.DoubleChecks, s.Checkmates, time.Since(start))
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += game.Perft(gs, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

func printDivide(div map[string]uint64) {
	keys := maps.Keys(div)
	slices.Sort(keys)
	var sum uint64
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, div[k])
		sum += div[k]
	}
	fmt.Printf("Total: %d\n", sum)
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		n += dragonPerft(b, depth-1)
		unapply()
	}
	return n
}

// verifyDivide prints every root move whose subtree count differs from
// dragontoothmg. Positions drawn by repetition, the move clock or bare
// material stop early here but not there, so deep walks into such
// endings can legitimately differ.
func verifyDivide(gs *game.GameState, fen string, depth int) bool {
	ours := game.PerftDivide(gs, depth)
	fields := strings.Fields(fen)
	for len(fields) < 6 {
		fields = append(fields, [...]string{"0", "1"}[len(fields)-4])
	}
	board := dragontoothmg.ParseFen(strings.Join(fields, " "))
	theirs := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		m := m
		var n uint64 = 1
		if depth > 1 {
			unapply := board.Apply(m)
			n = dragonPerft(&board, depth-1)
			unapply()
		}
		theirs[m.String()] = n
	}

	keys := append(maps.Keys(ours), maps.Keys(theirs)...)
	slices.Sort(keys)
	keys = slices.Compact(keys)
	ok := true
	for _, k := range keys {
		if ours[k] != theirs[k] {
			fmt.Printf("%s: ours %d dragontoothmg %d\n", k, ours[k], theirs[k])
			ok = false
		}
	}
	if ok {
		fmt.Printf("depth %d: %d root moves agree\n", depth, len(keys))
	}
	return ok
}
