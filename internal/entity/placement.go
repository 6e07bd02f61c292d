package entity

// Placement - a rack tile put on a board position during the current turn.
type Placement struct {
	Position  int `json:"position"`
	RackIndex int `json:"rackIndex"`
}

// Pending - placements of the current turn in the order they were made.
type Pending []Placement

func (that Pending) Has(position int) bool {
	for _, p := range that {
		if p.Position == position {
			return true
		}
	}
	return false
}

func (that Pending) Positions() []int {
	positions := make([]int, len(that))
	for i, p := range that {
		positions[i] = p.Position
	}
	return positions
}

func (that Pending) RackIndexes() []int {
	indexes := make([]int, len(that))
	for i, p := range that {
		indexes[i] = p.RackIndex
	}
	return indexes
}
