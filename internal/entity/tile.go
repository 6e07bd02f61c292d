package entity

import "math/rand"

const (
	// BlankTile is the wildcard; it scores nothing.
	BlankTile = "?"

	DefaultTileLimit = 7
)

var letterValues = map[string]int{
	"A": 1, "B": 3, "C": 3, "D": 2, "E": 1, "F": 4, "G": 2, "H": 4, "I": 1,
	"J": 8, "K": 5, "L": 1, "M": 3, "N": 1, "O": 1, "P": 3, "Q": 10, "R": 1,
	"S": 1, "T": 1, "U": 1, "V": 4, "W": 4, "X": 8, "Y": 4, "Z": 10,
	BlankTile: 0,
}

var letterCounts = map[string]int{
	"A": 9, "B": 2, "C": 2, "D": 4, "E": 12, "F": 2, "G": 3, "H": 2, "I": 9,
	"J": 1, "K": 1, "L": 4, "M": 2, "N": 6, "O": 8, "P": 2, "Q": 1, "R": 6,
	"S": 4, "T": 6, "U": 4, "V": 2, "W": 2, "X": 1, "Y": 2, "Z": 1,
	BlankTile: 2,
}

// tileBag is built in a fixed order so draws are reproducible for a given seed.
var tileBag = buildTileBag()

func buildTileBag() []string {
	bag := make([]string, 0, 100)

	for letter := 'A'; letter <= 'Z'; letter++ {
		for i := 0; i < letterCounts[string(letter)]; i++ {
			bag = append(bag, string(letter))
		}
	}

	for i := 0; i < letterCounts[BlankTile]; i++ {
		bag = append(bag, BlankTile)
	}

	return bag
}

// TileBag - copy of the weighted distribution every draw samples from.
func TileBag() []string {
	bag := make([]string, len(tileBag))
	copy(bag, tileBag)
	return bag
}

// LetterValue - base points of a tile; unknown letters score zero.
func LetterValue(letter string) int {
	return letterValues[letter]
}

func IsTile(letter string) bool {
	_, ok := letterValues[letter]
	return ok
}

// Refill - tops the rack up to limit. Draws sample the whole distribution, the bag is never depleted.
func Refill(rack []string, limit int, rng *rand.Rand) []string {
	for len(rack) < limit {
		rack = append(rack, tileBag[rng.Intn(len(tileBag))])
	}

	return rack
}
