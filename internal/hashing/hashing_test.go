package hashing

import (
	"testing"

	"github.com/lgbarn/gravity-games-go/internal/testutil"
)

func grid(rows ...[]float64) [][]float64 { return rows }

func TestGridHash(t *testing.T) {
	a := grid([]float64{0, 1, 0}, []float64{2, 0, 0})
	b := grid([]float64{0, 1, 0}, []float64{2, 0, 0})
	moved := grid([]float64{1, 0, 0}, []float64{2, 0, 0})
	wide := grid([]float64{0, 1, 0, 0}, []float64{2, 0, 0, 0})

	testutil.AssertEqual(t, GridHash(a), GridHash(b), "equal grids")
	testutil.AssertTrue(t, GridHash(a) != GridHash(moved), "piece on another cell")
	testutil.AssertTrue(t, GridHash(a) != GridHash(wide), "different shape")
	testutil.AssertEqual(t, GridHash(nil), GridHash([][]float64{}), "empty grids")
}

func TestMoveSequenceHash(t *testing.T) {
	testutil.AssertEqual(t, MoveSequenceHash(nil), uint64(0))
	testutil.AssertEqual(t, MoveSequenceHash([]int{3, 5}), MoveSequenceHash([]int{3, 5}))
	testutil.AssertTrue(t, MoveSequenceHash([]int{3, 5}) != MoveSequenceHash([]int{5, 3}), "order matters")
	testutil.AssertTrue(t, MoveSequenceHash([]int{0}) != MoveSequenceHash(nil), "action zero counts")
}

func TestDuplicateDetector_FinalPosition(t *testing.T) {
	d := NewDuplicateDetector(false, 0)
	final := grid([]float64{0, 1}, []float64{1, 0})

	testutil.AssertFalse(t, d.CheckAndAdd(Sign(final, []int{1, 2})), "first match")
	testutil.AssertTrue(t, d.CheckAndAdd(Sign(final, []int{2, 1})), "same final grid")
	testutil.AssertFalse(t, d.CheckAndAdd(Sign(grid([]float64{1, 1}), nil)), "other grid")

	testutil.AssertEqual(t, d.DuplicateCount(), 1)
	testutil.AssertEqual(t, d.UniqueCount(), 2)
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	d := NewDuplicateDetector(true, 0)
	final := grid([]float64{0, 1}, []float64{1, 0})

	testutil.AssertFalse(t, d.CheckAndAdd(Sign(final, []int{1, 2})))
	testutil.AssertFalse(t, d.CheckAndAdd(Sign(final, []int{2, 1})), "other move order")
	testutil.AssertTrue(t, d.CheckAndAdd(Sign(final, []int{1, 2})), "replayed match")

	testutil.AssertEqual(t, d.DuplicateCount(), 1)
	testutil.AssertEqual(t, d.UniqueCount(), 2)
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	d := NewDuplicateDetector(false, 2)

	for i := 0; i < 4; i++ {
		d.CheckAndAdd(Sign(grid([]float64{float64(i + 1)}), nil))
	}
	testutil.AssertTrue(t, d.IsFull())
	testutil.AssertEqual(t, d.UniqueCount(), 2)

	testutil.AssertTrue(t, d.CheckAndAdd(Sign(grid([]float64{1}), nil)), "stored before filling up")
	testutil.AssertFalse(t, d.CheckAndAdd(Sign(grid([]float64{4}), nil)), "dropped once full")
}

func TestDuplicateDetector_Reset(t *testing.T) {
	d := NewDuplicateDetector(false, 1)
	sig := Sign(grid([]float64{1}), []int{0})
	d.CheckAndAdd(sig)
	d.CheckAndAdd(sig)

	d.Reset()
	testutil.AssertEqual(t, d.DuplicateCount(), 0)
	testutil.AssertEqual(t, d.UniqueCount(), 0)
	testutil.AssertFalse(t, d.IsFull())
	testutil.AssertFalse(t, d.CheckAndAdd(sig), "forgotten after reset")
}
