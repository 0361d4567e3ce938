package almanac

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/interval"
	"range-remapper/internal/remap"
)

func TestModeStringAndParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "scalar", ModeScalar.String())
	assert.Equal(t, "interval", ModeInterval.String())
	assert.Equal(t, "Mode(0)", Mode(0).String())
	assert.Equal(t, "Mode(7)", Mode(7).String())

	for _, m := range []Mode{ModeScalar, ModeInterval} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMode("pairs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scalar")

	var m Mode
	require.NoError(t, m.Set("interval"))
	assert.Equal(t, ModeInterval, m)
	require.Error(t, m.Set("bogus"))
	assert.Equal(t, ModeInterval, m)
	assert.Equal(t, "mode", m.Type())
}

func TestSeedRanges(t *testing.T) {
	t.Parallel()

	got, err := ScalarRanges([]uint64{79, 14})
	require.NoError(t, err)
	assert.Equal(t, []interval.Range{interval.New(79, 80), interval.New(14, 15)}, got)

	got, err = PairRanges([]uint64{79, 14, 55, 13})
	require.NoError(t, err)
	assert.Equal(t, []interval.Range{interval.New(79, 93), interval.New(55, 68)}, got)

	got, err = PairRanges([]uint64{4, 0})
	require.NoError(t, err)
	assert.Equal(t, []interval.Range{interval.New(4, 4)}, got)

	_, err = PairRanges([]uint64{1, 2, 3})
	require.ErrorIs(t, err, ErrOddPairs)

	_, err = PairRanges([]uint64{math.MaxUint64, 2})
	require.ErrorIs(t, err, ErrSeedOverflow)

	_, err = ScalarRanges([]uint64{math.MaxUint64})
	require.ErrorIs(t, err, ErrSeedOverflow)

	_, err = Mode(0).Ranges([]uint64{1})
	require.Error(t, err)
}

func Example() {
	soil, _ := remap.NewTableFromTriples([3]uint64{50, 98, 2}, [3]uint64{52, 50, 48})
	initial, _ := PairRanges([]uint64{95, 10})

	a, err := NewBuilder().
		SetInitial(initial...).
		AddEdge("seed", "soil", soil).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	ranges, _ := a.ResolveInitial("seed", "soil")
	for _, r := range interval.Sorted(ranges) {
		fmt.Println(r)
	}

	lowest, _ := MinimumValue(ranges)
	fmt.Println("lowest:", lowest)

	// Output:
	// [50, 52)
	// [97, 100)
	// [100, 105)
	// lowest: 50
}
