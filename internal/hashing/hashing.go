// Package hashing detects repeated self-play matches.
package hashing

import "math"

// GameSignature stores identifying information about a finished match.
type GameSignature struct {
	// Hash is the Zobrist-style hash of the final grid
	Hash uint64
	// MoveHash is the hash of the action sequence
	MoveHash uint64
	// MoveCount is the number of actions played
	MoveCount int
}

// Sign builds the signature of a match from its final grid and actions.
func Sign(final [][]float64, actions []int) GameSignature {
	return GameSignature{
		Hash:      GridHash(final),
		MoveHash:  MoveSequenceHash(actions),
		MoveCount: len(actions),
	}
}

// GridHash hashes a grid cell by cell. Zero cells contribute nothing, so
// the empty grid hashes to the key of its shape alone.
func GridHash(g [][]float64) uint64 {
	var cols int
	if len(g) > 0 {
		cols = len(g[0])
	}
	hash := mix64(uint64(len(g))<<32 | uint64(cols))

	i := uint64(0)
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				hash ^= mix64(i*0x9e3779b97f4a7c15 ^ math.Float64bits(v))
			}
			i++
		}
	}
	return hash
}

// MoveSequenceHash hashes the actions in order.
func MoveSequenceHash(actions []int) uint64 {
	var hash uint64
	multiplier := uint64(31)
	for _, a := range actions {
		hash = hash*multiplier + uint64(a+1)
	}
	return hash
}

// mix64 is the splitmix64 finaliser.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// DuplicateDetector tracks seen matches.
type DuplicateDetector struct {
	// hashTable stores signatures by final grid hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also compares the action sequences
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	// stored is the number of signatures held
	stored int
}

// NewDuplicateDetector creates a new duplicate detector. Without exactMatch
// two matches are duplicates when they end on the same grid.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a match is a duplicate and records it.
// Returns true if the match is a duplicate. Once the detector is full,
// new signatures are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.stored++
	}
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash {
		return false
	}
	if d.useExactMatch && (a.MoveCount != b.MoveCount || a.MoveHash != b.MoveHash) {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique matches stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull reports whether the detector has reached its capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.stored = 0
}
