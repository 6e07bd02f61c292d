package entity

const (
	BoardSize  = 15
	BoardCells = BoardSize * BoardSize

	// CenterIndex is the anchor of the first move.
	CenterIndex = BoardCells / 2

	boardCenter = BoardSize / 2
)

type Effect string

const (
	EffectNone         Effect = ""
	EffectDoubleLetter Effect = "double-letter"
	EffectTripleLetter Effect = "triple-letter"
	EffectDoubleWord   Effect = "double-word"
	EffectTripleWord   Effect = "triple-word"
)

// LetterMultiplier - multiplier applied to the tile sitting on the space.
func (that Effect) LetterMultiplier() int {
	switch that {
	case EffectDoubleLetter:
		return 2
	case EffectTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier - multiplier applied to every word running through the space.
func (that Effect) WordMultiplier() int {
	switch that {
	case EffectDoubleWord:
		return 2
	case EffectTripleWord:
		return 3
	default:
		return 1
	}
}

type Space struct {
	Letter string `json:"letter,omitempty"`
	Effect Effect `json:"effect,omitempty"`
	Owner  string `json:"owner,omitempty"`
}

func (that Space) Occupied() bool {
	return that.Letter != ""
}

// Board is row-major: index i is (col = i % BoardSize, row = i / BoardSize).
type Board [BoardCells]Space

// GenerateBoard - builds an empty board with the symmetric multiplier layout.
func GenerateBoard() Board {
	var board Board

	for i := range board {
		board[i].Effect = EffectAt(Col(i), Row(i))
	}

	return board
}

// EffectAt - effect of the space at (x, y). Rules are checked in order, first match wins.
func EffectAt(x, y int) Effect {
	dx, dy := abs(boardCenter-x), abs(boardCenter-y)
	isCenter := dx == 0 && dy == 0

	switch {
	case x%7 == 0 && y%7 == 0 && !isCenter:
		return EffectTripleWord
	case x%4 == 1 && y%4 == 1 && !(dx == 6 && dy == 6):
		return EffectTripleLetter
	case dx*dy == 1 || dx*dy == 5 || dx*dy == 28,
		x == boardCenter && dy == 4,
		y == boardCenter && dx == 4:
		return EffectDoubleLetter
	case x == y || x == BoardSize-1-y:
		return EffectDoubleWord
	default:
		return EffectNone
	}
}

func (that *Board) Occupied(index int) bool {
	return InBounds(index) && that[index].Occupied()
}

// Clone - returns a copy the caller may mutate freely.
func (that *Board) Clone() *Board {
	board := *that
	return &board
}

func Col(index int) int {
	return index % BoardSize
}

func Row(index int) int {
	return index / BoardSize
}

func Index(col, row int) int {
	return row*BoardSize + col
}

func InBounds(index int) bool {
	return index >= 0 && index < BoardCells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
