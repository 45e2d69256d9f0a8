package counting

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/itemsets"
)

// DefaultHashFilterRows is the number of independent hash rows in a HashFilter
const DefaultHashFilterRows = 2

// HashFilter is a count-min table over Itemsets, used for direct hashing and
// pruning: while pass k scans transactions, every (k+1)-subset is hashed into it,
// and pass k+1 discards candidates whose estimate is below the minimum support.
// Estimates never under-count, so pruning with them never drops a frequent Itemset.
type HashFilter struct {
	rows    int
	buckets int
	matrix  [][]uint64
	buf     []byte
}

// NewHashFilter returns a HashFilter with the given number of buckets per row.
// rows < 1 selects DefaultHashFilterRows.
func NewHashFilter(rows, buckets int) *HashFilter {
	if rows < 1 {
		rows = DefaultHashFilterRows
	}
	if buckets < 1 {
		buckets = 1
	}
	matrix := make([][]uint64, rows)
	for i := range matrix {
		matrix[i] = make([]uint64, buckets)
	}
	return &HashFilter{rows: rows, buckets: buckets, matrix: matrix}
}

// positions uses double hashing of a single 64-bit digest to pick one bucket per row
func (f *HashFilter) positions(set itemsets.Itemset, fn func(row, col int)) {
	f.buf = f.buf[:0]
	for _, it := range set {
		f.buf = binary.LittleEndian.AppendUint32(f.buf, uint32(it))
	}
	h := xxhash.Sum64(f.buf)
	h1, h2 := h&0xffffffff, h>>32
	for r := 0; r < f.rows; r++ {
		fn(r, int((h1+uint64(r)*h2)%uint64(f.buckets)))
	}
}

// Increment adds one to every bucket set hashes to
func (f *HashFilter) Increment(set itemsets.Itemset) {
	f.positions(set, func(row, col int) {
		f.matrix[row][col]++
	})
}

// Estimate returns an upper bound of the number of times set was incremented
func (f *HashFilter) Estimate(set itemsets.Itemset) uint64 {
	var est uint64
	f.positions(set, func(row, col int) {
		if v := f.matrix[row][col]; row == 0 || v < est {
			est = v
		}
	})
	return est
}
