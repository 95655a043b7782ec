package main

import (
	"encoding/csv"
	"flag"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/retrodesk/mines"
	"github.com/zucenko/retrodesk/model"
)

// Result is the summary of one played game.
type Result struct {
	Outcome  model.Outcome
	Reveals  int
	Revealed int
	Flags    int
}

func main() {
	games := flag.Int("games", 1000, "number of games to play")
	rows := flag.Int("rows", mines.DefaultRows, "rows per field")
	cols := flag.Int("cols", mines.DefaultCols, "columns per field")
	count := flag.Int("mines", mines.DefaultMines, "mines per field")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("out", "games.csv", "output file, - for stdout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var w io.Writer = os.Stdout
	if *out != "-" {
		file, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		w = file
	}

	rnd := rand.New(rand.NewSource(*seed))
	won, err := run(w, rnd, *games, *rows, *cols, *count, *out != "-")
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"games": *games,
		"won":   won,
		"seed":  *seed,
		"out":   *out,
	}).Info("done")
}

// run plays games and writes one csv record per game. It returns the number
// of games won.
func run(w io.Writer, rnd *rand.Rand, games, rows, cols, count int, progress bool) (int, error) {
	field := mines.New(mines.WithRand(rnd))
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"game", "outcome", "reveals", "revealed", "flags"}); err != nil {
		return 0, err
	}

	var bar *pb.ProgressBar
	if progress {
		bar = pb.StartNew(games)
		defer bar.Finish()
	}

	won := 0
	for i := 0; i < games; i++ {
		res, err := Play(field, rnd, rows, cols, count)
		if err != nil {
			return won, err
		}
		if res.Outcome == model.Win {
			won++
		}
		record := []string{
			strconv.Itoa(i),
			res.Outcome.Name(),
			strconv.Itoa(res.Reveals),
			strconv.Itoa(res.Revealed),
			strconv.Itoa(res.Flags),
		}
		if err := writer.Write(record); err != nil {
			return won, err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	writer.Flush()
	return won, writer.Error()
}

// Play runs one game to the end. Cells that are certainly mines are flagged
// first, cells that are certainly safe are revealed next, otherwise a random
// hidden cell is revealed.
func Play(field *mines.Field, rnd *rand.Rand, rows, cols, count int) (Result, error) {
	state, err := field.Reset(rows, cols, count)
	if err != nil {
		return Result{}, err
	}
	res := Result{}
	for !state.IsOver {
		flags, safe := deduce(state)
		for _, p := range flags {
			if state, err = field.ToggleFlag(p[0], p[1]); err != nil {
				return res, err
			}
		}
		if len(safe) == 0 {
			hidden := hiddenCells(state)
			safe = append(safe, hidden[rnd.Intn(len(hidden))])
		}
		for _, p := range safe {
			if state.Cells[p[0]][p[1]].Revealed {
				continue
			}
			if state, err = field.Reveal(p[0], p[1]); err != nil {
				return res, err
			}
			res.Reveals++
			if state.IsOver {
				break
			}
		}
	}
	res.Outcome = state.Outcome
	res.Revealed = state.RevealedCount
	res.Flags = state.FlagCount
	log.WithFields(log.Fields{
		"outcome": res.Outcome.Name(),
		"reveals": res.Reveals,
	}).Debug("game played")
	return res, nil
}

func hiddenCells(state *model.FieldState) [][2]int {
	var cells [][2]int
	for r := range state.Cells {
		for c, cell := range state.Cells[r] {
			if !cell.Revealed && !cell.Flagged {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

// deduce applies the single-cell rules: a number whose hidden neighbours
// equal its missing mines makes them all mines, a number already satisfied
// by its flags makes the rest safe.
func deduce(state *model.FieldState) (flags, safe [][2]int) {
	seen := map[[2]int]bool{}
	for r := range state.Cells {
		for c, cell := range state.Cells[r] {
			if !cell.Revealed || cell.NeighborMines == 0 {
				continue
			}
			var hidden [][2]int
			flagged := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr, nc := r+dr, c+dc
					if (dr == 0 && dc == 0) || nr < 0 || nc < 0 || nr >= state.Rows || nc >= state.Cols {
						continue
					}
					n := state.Cells[nr][nc]
					switch {
					case n.Flagged:
						flagged++
					case !n.Revealed:
						hidden = append(hidden, [2]int{nr, nc})
					}
				}
			}
			if len(hidden) == 0 {
				continue
			}
			switch cell.NeighborMines - flagged {
			case len(hidden):
				for _, p := range hidden {
					if !seen[p] {
						seen[p] = true
						flags = append(flags, p)
					}
				}
			case 0:
				for _, p := range hidden {
					if !seen[p] {
						seen[p] = true
						safe = append(safe, p)
					}
				}
			}
		}
	}
	return flags, safe
}
