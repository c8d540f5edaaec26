package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"chess-game/engine"
	"chess-game/game"
)

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	qpliesFlag := flag.Int("qplies", engine.DefaultOptions().QuiescencePlies, "quiescence ply budget")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	verbose := flag.Bool("v", false, "log one info line per search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := game.StartFingerprint
	if *fenFlag != "" {
		fen = *fenFlag
	}
	opts := engine.DefaultOptions()
	opts.QuiescencePlies = *qpliesFlag
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, *depthFlag, *repeatFlag)

	var total engine.Stats
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh game and memo for each run
		gs, err := game.FromFingerprint(fen)
		if err != nil {
			log.Fatalf("bad fen: %v", err)
		}
		res := engine.New(opts).Search(gs, *depthFlag)
		total.Nodes += res.Stats.Nodes
		total.QNodes += res.Stats.QNodes
		fmt.Printf("iteration %d: bestmove %s score %d time=%v %s\n", i+1, res.Move.UCI(), res.Score, res.Time, res.Stats)
	}
	elapsed := time.Since(startAll)
	nps := float64(total.Nodes+total.QNodes) / elapsed.Seconds()
	fmt.Printf("total time: %v nodes %d nps %.0f\n", elapsed, total.Nodes+total.QNodes, nps)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
