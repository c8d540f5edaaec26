package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"chess-game/engine"
	"chess-game/game"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func main() {
	depth := flag.Int("depth", engine.DefaultOptions().Depth, "search depth for go without a depth")
	qplies := flag.Int("qplies", engine.DefaultOptions().QuiescencePlies, "quiescence ply budget")
	memo := flag.Int("memo", engine.DefaultOptions().MemoEntries, "memo entries")
	verbose := flag.Bool("v", false, "log search statistics to stderr")
	flag.Parse()

	opts := engine.DefaultOptions()
	opts.Depth, opts.QuiescencePlies, opts.MemoEntries = *depth, *qplies, *memo
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	}
	newDriver(os.Stdout, opts).uciLoop(os.Stdin)
}

type driver struct {
	out  io.Writer
	opts engine.Options
	eng  *engine.Engine
	gs   *game.GameState
}

func newDriver(out io.Writer, opts engine.Options) *driver {
	return &driver{out: out, opts: opts, eng: engine.New(opts), gs: game.NewGameStateWith(opts.Weights)}
}

func (d *driver) uciLoop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		if !d.handle(tokens) {
			return
		}
	}
}

// handle runs one command and reports whether the loop should continue.
func (d *driver) handle(tokens []string) bool {
	switch strings.ToLower(tokens[0]) {
	case "uci":
		fmt.Fprintln(d.out, "id name chess-game")
		fmt.Fprintln(d.out, "id author chess-game authors")
		fmt.Fprintf(d.out, "option name Depth type spin default %d min 1 max 64\n", d.opts.Depth)
		fmt.Fprintf(d.out, "option name QuiescencePlies type spin default %d min 1 max 32\n", d.opts.QuiescencePlies)
		fmt.Fprintf(d.out, "option name MemoEntries type spin default %d min 1 max %d\n", d.opts.MemoEntries, 1<<26)
		fmt.Fprintln(d.out, "uciok")
	case "isready":
		fmt.Fprintln(d.out, "readyok")
	case "ucinewgame":
		d.gs = game.NewGameStateWith(d.opts.Weights)
		d.eng.Clear()
	case "position":
		d.position(tokens[1:])
	case "go":
		d.search(tokens[1:])
	case "setoption":
		d.setOption(tokens[1:])
	case "d":
		fmt.Fprintln(d.out, d.gs.String())
	case "eval":
		fmt.Fprintf(d.out, "info string eval %d\n", d.gs.Eval())
	case "perft":
		d.perft(tokens[1:])
	case "quit":
		return false
	default:
		fmt.Fprintln(d.out, "info string Unknown command:", strings.Join(tokens, " "))
	}
	return true
}

func (d *driver) position(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(d.out, "info string Malformed position command")
		return
	}
	var gs *game.GameState
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		gs = game.NewGameStateWith(d.opts.Weights)
	case "fen":
		end := slices.Index(rest, "moves")
		if end < 0 {
			end = len(rest)
		}
		var err error
		gs, err = game.FromFingerprintWith(strings.Join(rest[:end], " "), d.opts.Weights)
		if err != nil {
			fmt.Fprintln(d.out, "info string Invalid fen position:", err)
			return
		}
		rest = rest[end:]
	default:
		fmt.Fprintln(d.out, "info string Invalid position subcommand")
		return
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, text := range rest[1:] {
			m, ok := gs.FindMove(strings.ToLower(text))
			if !ok {
				fmt.Fprintln(d.out, "info string Move", text, "not found for position", gs.Fingerprint())
				break
			}
			gs.MakeMove(m)
		}
	}
	d.gs = gs
}

func (d *driver) search(args []string) {
	depth := d.opts.Depth
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			if i+1 >= len(args) {
				fmt.Fprintln(d.out, "info string Malformed go command option depth")
				continue
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				fmt.Fprintln(d.out, "info string Malformed go command option; could not convert depth")
				continue
			}
			depth = n
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime":
			i++ // fixed-depth engine; clocks are ignored
		case "infinite":
		default:
			fmt.Fprintln(d.out, "info string Unknown go subcommand", args[i])
		}
	}

	res := d.eng.Search(d.gs, depth)
	fmt.Fprintf(d.out, "info depth %d score %s nodes %d time %d pv %s\n",
		res.Depth, scoreString(res.Score), res.Stats.Nodes+res.Stats.QNodes, res.Time.Milliseconds(), res.Move.UCI())
	fmt.Fprintln(d.out, "bestmove", res.Move.UCI())
}

// scoreString formats a search score as UCI "cp" or "mate" text.
func scoreString(score int) string {
	switch {
	case score > game.MateScore-1000:
		return fmt.Sprintf("mate %d", (game.MateScore-score+1)/2)
	case score < -(game.MateScore - 1000):
		return fmt.Sprintf("mate %d", -(game.MateScore+score)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

func (d *driver) setOption(args []string) {
	// setoption name <id> value <x>
	if len(args) != 4 || !strings.EqualFold(args[0], "name") || !strings.EqualFold(args[2], "value") {
		fmt.Fprintln(d.out, "info string Malformed setoption command")
		return
	}
	n, err := strconv.Atoi(args[3])
	if err != nil || n < 1 {
		fmt.Fprintln(d.out, "info string Malformed setoption value", args[3])
		return
	}
	switch strings.ToLower(args[1]) {
	case "depth":
		d.opts.Depth = n
	case "quiescenceplies":
		d.opts.QuiescencePlies = n
	case "memoentries":
		d.opts.MemoEntries = n
	default:
		fmt.Fprintln(d.out, "info string Unknown option", args[1])
		return
	}
	d.eng = engine.New(d.opts)
}

func (d *driver) perft(args []string) {
	depth := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(d.out, "info string Malformed perft depth", args[0])
			return
		}
		depth = n
	}
	divide := game.PerftDivide(d.gs, depth)
	keys := maps.Keys(divide)
	slices.Sort(keys)
	var total uint64
	for _, k := range keys {
		fmt.Fprintf(d.out, "%s: %d\n", k, divide[k])
		total += divide[k]
	}
	fmt.Fprintf(d.out, "\nNodes searched: %d\n", total)
}
