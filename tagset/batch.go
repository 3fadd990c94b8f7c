package tagset

import "math/bits"

// Batch is a row-major matrix of Sets sharing one Universe.
type Batch struct {
	words int
	rows  int
	bits  []uint64
}

// Len returns the number of rows.
func (b *Batch) Len() int { return b.rows }

// Row returns row i as a Set sharing storage with b.
func (b *Batch) Row(i int) Set {
	return Set(b.bits[i*b.words : (i+1)*b.words])
}

func grow(dst []int, n int) []int {
	if cap(dst) < n {
		return make([]int, n)
	}
	return dst[:n]
}

// Score writes min(|v∩a|, |v\a|, |a\v|) for every row a into dst (reused
// when large enough) and returns it.
func (b *Batch) Score(v Set, dst []int) []int {
	dst = grow(dst, b.rows)
	w := b.words
	for r := 0; r < b.rows; r++ {
		row := b.bits[r*w : (r+1)*w]
		var and, vOnly, aOnly int
		for k, x := range row {
			y := v[k]
			and += bits.OnesCount64(y & x)
			vOnly += bits.OnesCount64(y &^ x)
			aOnly += bits.OnesCount64(x &^ y)
		}
		dst[r] = min(and, vOnly, aOnly)
	}
	return dst
}

// Overlap writes |v ∩ a| for every row a into dst and returns it.
func (b *Batch) Overlap(v Set, dst []int) []int {
	dst = grow(dst, b.rows)
	w := b.words
	for r := 0; r < b.rows; r++ {
		n := 0
		for k, x := range b.bits[r*w : (r+1)*w] {
			n += bits.OnesCount64(v[k] & x)
		}
		dst[r] = n
	}
	return dst
}

// Union writes |v ∪ a| for every row a into dst and returns it.
func (b *Batch) Union(v Set, dst []int) []int {
	dst = grow(dst, b.rows)
	w := b.words
	for r := 0; r < b.rows; r++ {
		n := 0
		for k, x := range b.bits[r*w : (r+1)*w] {
			n += bits.OnesCount64(v[k] | x)
		}
		dst[r] = n
	}
	return dst
}

// Keep compacts b in place to the rows for which keep returns true,
// preserving their relative order.
func (b *Batch) Keep(keep func(row int) bool) {
	w := b.words
	out := 0
	for r := 0; r < b.rows; r++ {
		if !keep(r) {
			continue
		}
		if out != r {
			copy(b.bits[out*w:(out+1)*w], b.bits[r*w:(r+1)*w])
		}
		out++
	}
	b.rows = out
	b.bits = b.bits[:out*w]
}
