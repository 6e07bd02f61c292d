package scrabble

import (
	"sort"
	"strings"

	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

func (that Direction) step() int {
	if that == Vertical {
		return entity.BoardSize
	}
	return 1
}

type Word struct {
	Text      string    `json:"text"`
	Start     int       `json:"start"`
	End       int       `json:"end"`
	Direction Direction `json:"direction"`
	Points    int       `json:"points"`
}

type interval struct {
	start, end int
	direction  Direction
}

func (that interval) length() int {
	return (that.end-that.start)/that.direction.step() + 1
}

// ExtractWords - every word of two or more letters running through a newly placed position.
// The board must already carry the placed letters. Multipliers apply to every occupied space
// of a word, not only to the new tiles.
func ExtractWords(board *entity.Board, placed []int) []Word {
	intervals := make(map[interval]struct{})

	for _, pos := range placed {
		if !board.Occupied(pos) {
			continue
		}

		intervals[verticalRun(board, pos)] = struct{}{}
		intervals[horizontalRun(board, pos)] = struct{}{}
	}

	runs := make([]interval, 0, len(intervals))
	for run := range intervals {
		if run.length() > 1 {
			runs = append(runs, run)
		}
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].start != runs[j].start {
			return runs[i].start < runs[j].start
		}
		return runs[i].direction < runs[j].direction
	})

	words := make([]Word, 0, len(runs))
	for _, run := range runs {
		words = append(words, scoreRun(board, run))
	}

	return words
}

// Score - formed words and their total points.
func Score(board *entity.Board, placed []int) ([]string, int) {
	words := ExtractWords(board, placed)

	texts := make([]string, 0, len(words))
	total := 0

	for _, word := range words {
		texts = append(texts, word.Text)
		total += word.Points
	}

	return texts, total
}

func verticalRun(board *entity.Board, pos int) interval {
	start, end := pos, pos

	for board.Occupied(start - entity.BoardSize) {
		start -= entity.BoardSize
	}

	for board.Occupied(end + entity.BoardSize) {
		end += entity.BoardSize
	}

	return interval{start: start, end: end, direction: Vertical}
}

func horizontalRun(board *entity.Board, pos int) interval {
	start, end := pos, pos

	for entity.Col(start) > 0 && board.Occupied(start-1) {
		start--
	}

	for entity.Col(end) < entity.BoardSize-1 && board.Occupied(end+1) {
		end++
	}

	return interval{start: start, end: end, direction: Horizontal}
}

func scoreRun(board *entity.Board, run interval) Word {
	var text strings.Builder

	letterPoints, wordMultiplier := 0, 1
	for pos := run.start; pos <= run.end; pos += run.direction.step() {
		space := board[pos]

		text.WriteString(space.Letter)
		letterPoints += entity.LetterValue(space.Letter) * space.Effect.LetterMultiplier()
		wordMultiplier *= space.Effect.WordMultiplier()
	}

	return Word{
		Text:      text.String(),
		Start:     run.start,
		End:       run.end,
		Direction: run.direction,
		Points:    letterPoints * wordMultiplier,
	}
}
