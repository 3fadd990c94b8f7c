package splice

import (
	"fmt"

	"github.com/katalvlaran/slideshow/chain"
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/rng"
	"github.com/katalvlaran/slideshow/tagset"
)

// Splice tries to merge or extend chains with combined proposals built from
// the vertical pool. It returns the surviving chains (in slot order) and
// the pool without the photos consumed by accepted proposals.
//
// Contracts:
//   - every chain is perfect for threshold th on entry;
//   - u covers the tags of the chains and of the pool.
//
// The chains are checked on exit; a loss of perfection is reported as
// chain.ErrImperfectChain.
func Splice(chains []chain.Chain, pool []photo.Photo, th int, u tagset.Universe, opts Options, r rng.Source) ([]chain.Chain, []photo.Photo, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	if len(chains) <= 1 || opts.Proposals == 0 || !anyFits(pool, th) {
		return chains, pool, nil
	}

	st := &state{
		chains: append([]chain.Chain(nil), chains...),
		dead:   make([]bool, len(chains)),
		th:     th,
		u:      u,
		build:  opts.BuildProb,
		r:      r,
	}

	for s1 := 1; s1 <= th; s1++ {
		s2 := 2*th - s1
		props, err := proposals(pool, s1, s2, opts.Proposals, r)
		if err != nil {
			return nil, nil, err
		}
		if len(props) == 0 {
			continue
		}

		used := st.run(props)
		if len(used) > 0 {
			pool = without(pool, used)
		}
	}

	out := make([]chain.Chain, 0, len(st.chains))
	for i, c := range st.chains {
		if st.dead[i] {
			continue
		}
		if !c.Perfect() {
			return nil, nil, fmt.Errorf("splice (th=%d): %w", th, chain.ErrImperfectChain)
		}
		out = append(out, c)
	}
	return out, pool, nil
}

func anyFits(pool []photo.Photo, th int) bool {
	for _, p := range pool {
		if p.Len() <= th {
			return true
		}
	}
	return false
}

func without(pool []photo.Photo, used map[int]struct{}) []photo.Photo {
	out := make([]photo.Photo, 0, len(pool))
	for _, p := range pool {
		if _, ok := used[p.ID.First()]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// state holds the chain slots shared by every size pair of one Splice call.
type state struct {
	chains []chain.Chain
	dead   []bool
	th     int
	u      tagset.Universe
	build  float64
	r      rng.Source
}

// scoring buffers for one chain pair
type ends struct {
	s11, s12, s21, s22 []int
}

// run applies one batch of proposals over every chain pair (i < j) and
// returns the source ids it consumed.
func (st *state) run(props []photo.Photo) map[int]struct{} {
	batch := st.u.Batch(props)
	used := make(map[int]struct{})

	var (
		last *photo.Photo
		e    ends
		idx  []int
	)
	for i := 0; i < len(st.chains); i++ {
		for j := i + 1; j < len(st.chains); j++ {
			if st.dead[i] || st.dead[j] {
				continue
			}
			if last != nil {
				props = drop(props, batch, last.ID)
				last = nil
			}
			if len(props) == 0 {
				return used
			}

			a, b := st.chains[i], st.chains[j]
			e = st.score(batch, a, b, e)

			k := -1
			switch {
			case st.pick(sum2(e.s12, e.s21, 2*st.th, &idx), &k):
				st.bridge(i, j, chain.Concat(a, chain.Chain{props[k]}, b))
			case st.pick(sum2(e.s12, e.s22, 2*st.th, &idx), &k):
				st.bridge(i, j, chain.Concat(a, chain.Chain{props[k]}, b.Reversed()))
			case st.pick(sum2(e.s11, e.s21, 2*st.th, &idx), &k):
				st.bridge(i, j, chain.Concat(a.Reversed(), chain.Chain{props[k]}, b))
			case st.pick(sum2(e.s11, e.s22, 2*st.th, &idx), &k):
				st.bridge(i, j, chain.Concat(a.Reversed(), chain.Chain{props[k]}, b.Reversed()))
			case st.maybe(atLeast(e.s11, st.th, &idx), &k):
				st.chains[i] = chain.Concat(chain.Chain{props[k]}, a)
			case st.maybe(atLeast(e.s12, st.th, &idx), &k):
				st.chains[i] = chain.Concat(a, chain.Chain{props[k]})
			case st.maybe(atLeast(e.s21, st.th, &idx), &k):
				st.chains[j] = chain.Concat(chain.Chain{props[k]}, b)
			case st.maybe(atLeast(e.s22, st.th, &idx), &k):
				st.chains[j] = chain.Concat(b, chain.Chain{props[k]})
			}

			if k >= 0 {
				p := props[k]
				for _, n := range p.ID.Parts() {
					used[n] = struct{}{}
				}
				last = &p
			}
		}
	}
	return used
}

// score evaluates the four chain ends against every proposal.
func (st *state) score(batch *tagset.Batch, a, b chain.Chain, e ends) ends {
	e.s11 = batch.Score(st.u.Set(a.Head()), e.s11)
	if len(a) == 1 {
		e.s12 = append(e.s12[:0], e.s11...)
	} else {
		e.s12 = batch.Score(st.u.Set(a.Tail()), e.s12)
	}
	e.s21 = batch.Score(st.u.Set(b.Head()), e.s21)
	if len(b) == 1 {
		e.s22 = append(e.s22[:0], e.s21...)
	} else {
		e.s22 = batch.Score(st.u.Set(b.Tail()), e.s22)
	}
	return e
}

func (st *state) bridge(i, j int, c chain.Chain) {
	st.chains[i], st.dead[i] = nil, true
	st.chains[j] = c
}

// pick chooses one candidate uniformly when any exist.
func (st *state) pick(idx []int, k *int) bool {
	if len(idx) == 0 {
		return false
	}
	*k = rng.Choice(st.r, idx)
	return true
}

// maybe is pick gated by the build probability; the coin is only flipped
// when a candidate exists.
func (st *state) maybe(idx []int, k *int) bool {
	if len(idx) == 0 || st.r.Float64() > st.build {
		return false
	}
	*k = rng.Choice(st.r, idx)
	return true
}

// drop removes from props (and batch) every proposal sharing a source
// photo with id.
func drop(props []photo.Photo, batch *tagset.Batch, id photo.ID) []photo.Photo {
	keep := make([]bool, len(props))
	out := props[:0]
	for r, p := range props {
		if p.ID.Contains(id.First()) || p.ID.Contains(id.Second()) {
			continue
		}
		keep[r] = true
		out = append(out, p)
	}
	batch.Keep(func(r int) bool { return keep[r] })
	return out
}

func sum2(x, y []int, target int, idx *[]int) []int {
	out := (*idx)[:0]
	for r := range x {
		if x[r]+y[r] >= target {
			out = append(out, r)
		}
	}
	*idx = out
	return out
}

func atLeast(x []int, target int, idx *[]int) []int {
	out := (*idx)[:0]
	for r, v := range x {
		if v >= target {
			out = append(out, r)
		}
	}
	*idx = out
	return out
}
