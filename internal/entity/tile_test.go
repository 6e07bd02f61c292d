package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileBag(t *testing.T) {
	t.Run("Holds the classic distribution", func(t *testing.T) {
		bag := TileBag()

		counts := make(map[string]int)
		for _, tile := range bag {
			counts[tile]++
		}

		assert.Len(t, bag, 100)
		assert.Equal(t, 12, counts["E"])
		assert.Equal(t, 9, counts["A"])
		assert.Equal(t, 1, counts["Z"])
		assert.Equal(t, 2, counts[BlankTile])
	})

	t.Run("Returns a copy", func(t *testing.T) {
		bag := TileBag()
		bag[0] = "Z"

		assert.Equal(t, "A", TileBag()[0])
	})
}

func TestLetterValue(t *testing.T) {
	assert.Equal(t, 1, LetterValue("A"))
	assert.Equal(t, 3, LetterValue("C"))
	assert.Equal(t, 10, LetterValue("Q"))
	assert.Equal(t, 0, LetterValue(BlankTile))
	assert.Equal(t, 0, LetterValue("a"))
	assert.True(t, IsTile(BlankTile))
	assert.False(t, IsTile("1"))
}

func TestRefill(t *testing.T) {
	t.Run("Tops an empty rack up to the limit", func(t *testing.T) {
		// Given: an empty rack
		rng := rand.New(rand.NewSource(1))

		// When: refilling to the default limit
		rack := Refill([]string{}, DefaultTileLimit, rng)

		// Then: every drawn tile is a real tile
		require.Len(t, rack, DefaultTileLimit)
		for _, tile := range rack {
			assert.True(t, IsTile(tile), tile)
		}
	})

	t.Run("Keeps the tiles already on the rack", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		rack := Refill([]string{"Q", "Z"}, 5, rng)

		require.Len(t, rack, 5)
		assert.Equal(t, []string{"Q", "Z"}, rack[:2])
	})

	t.Run("Leaves a full rack alone", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		full := []string{"A", "B", "C"}

		assert.Equal(t, full, Refill(full, 3, rng))
		assert.Equal(t, full, Refill(full, 0, rng))
	})

	t.Run("Is reproducible for a seed", func(t *testing.T) {
		first := Refill(nil, 20, rand.New(rand.NewSource(42)))
		second := Refill(nil, 20, rand.New(rand.NewSource(42)))

		assert.Equal(t, first, second)
	})
}
