package candidates

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/go-sif/itemsets"
	"gonum.org/v1/gonum/stat/combin"
)

// Saturated is returned by Binomial when the true value does not fit in a uint64
const Saturated = uint64(math.MaxUint64)

// Binomial returns C(n, k), saturating to Saturated on overflow. C(n, k) is 0 when k > n.
func Binomial(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := uint64(1)
	for i := 0; i < k; i++ {
		// c*(n-i) is always divisible by i+1, since it equals C(n, i+1)*(i+1)
		hi, lo := bits.Mul64(c, uint64(n-i))
		d := uint64(i + 1)
		if hi >= d {
			return Saturated
		}
		c, _ = bits.Div64(hi, lo, d)
	}
	return c
}

// SaturatingMul multiplies a and b, saturating to Saturated on overflow
func SaturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return Saturated
	}
	return lo
}

// ForEachSubset calls fn with every size-k subset of t, in increasing index order.
// The Itemset passed to fn is reused between calls and must be cloned to be retained.
// Nothing is enumerated when t is shorter than k. Callers must not ask for more
// subsets than fit in an int; the cost heuristics never do.
func ForEachSubset(t itemsets.Itemset, k int, fn func(sub itemsets.Itemset)) {
	if k < 1 || len(t) < k {
		return
	}
	if Binomial(len(t), k) > math.MaxInt64 {
		panic(fmt.Sprintf("candidates: C(%d, %d) subsets cannot be enumerated", len(t), k))
	}
	gen := combin.NewCombinationGenerator(len(t), k)
	idx := make([]int, k)
	sub := make(itemsets.Itemset, k)
	for gen.Next() {
		gen.Combination(idx)
		for i, j := range idx {
			sub[i] = t[j]
		}
		fn(sub)
	}
}
