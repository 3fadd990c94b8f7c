package arrange

import (
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/slideshow/chain"
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/rng"
	"github.com/katalvlaran/slideshow/splice"
	"github.com/katalvlaran/slideshow/tagset"
)

// Arrange orders photos into a sequence of perfect chains, one bucket at a
// time. Vertical photos are not arranged; they form the splice pool and
// the ones left unused are returned in Result.Vertical.
//
// Returns ErrOptionViolation for invalid options and wraps
// chain.ErrImperfectChain if a bucket ends with an imperfect chain.
func Arrange(photos []photo.Photo, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	log := opts.logger()
	cache := opts.Cache
	if cache == nil {
		cache = photo.NewCache(photo.DefaultCacheCapacity)
	}

	var items, pool []photo.Photo
	for _, p := range photos {
		if p.Orientation == photo.Vertical {
			pool = append(pool, p)
		} else {
			items = append(items, p)
		}
	}

	sizes := bucketSizes(items)
	jobs := make([]*bucket, len(sizes))
	base := rng.New(opts.Seed)
	for k, size := range sizes {
		jobs[k] = &bucket{
			size:  size,
			th:    size / 2,
			items: bucketItems(items, size),
			r:     rng.Derive(base, uint64(k)),
		}
	}

	u := tagset.NewUniverse(photos)
	log.Info("arrange started",
		slog.Int("photos", len(items)),
		slog.Int("vertical", len(pool)),
		slog.Int("buckets", len(jobs)),
		slog.Int("tags", u.Len()))

	opt := optimizer{opts: opts, cache: cache, u: u, log: log}
	var err error
	if len(pool) == 0 && opts.Workers > 1 {
		err = opt.parallel(jobs)
	} else {
		pool, err = opt.sequential(jobs, pool)
	}
	if err != nil {
		return Result{}, err
	}

	res := Result{Vertical: pool, Buckets: make([]BucketStats, len(jobs))}
	for k, b := range jobs {
		res.Sequence = append(res.Sequence, chain.Flatten(b.chains)...)
		res.Buckets[k] = b.stats
	}
	log.Info("arrange finished",
		slog.Int("slides", len(res.Sequence)),
		slog.Int("score", photo.SequenceScore(res.Sequence)),
		slog.Int("max", photo.SequenceMaxScore(res.Sequence)),
		slog.Int("vertical_left", len(res.Vertical)))
	return res, nil
}

// bucketSizes returns the distinct even-rounded tag counts of items, sorted.
func bucketSizes(items []photo.Photo) []int {
	var sizes []int
	for _, p := range items {
		sizes = append(sizes, p.Len()/2*2)
	}
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

// bucketItems keeps the photos of size or size+1 tags, in input order.
func bucketItems(items []photo.Photo, size int) []photo.Photo {
	var out []photo.Photo
	for _, p := range items {
		if n := p.Len(); n == size || n == size+1 {
			out = append(out, p)
		}
	}
	return out
}

type bucket struct {
	size   int
	th     int
	items  []photo.Photo
	r      rng.Source
	chains []chain.Chain
	stats  BucketStats
}

type optimizer struct {
	opts  Options
	cache *photo.Cache
	u     tagset.Universe
	log   *slog.Logger
}

// sequential runs the buckets in size order, threading the vertical pool
// from one bucket to the next.
func (o optimizer) sequential(jobs []*bucket, pool []photo.Photo) ([]photo.Photo, error) {
	var err error
	for _, b := range jobs {
		if pool, err = o.run(b, pool); err != nil {
			return nil, err
		}
	}
	return pool, nil
}

// parallel runs independent buckets with at most Workers in flight.
func (o optimizer) parallel(jobs []*bucket) error {
	var g errgroup.Group
	g.SetLimit(o.opts.Workers)
	for _, b := range jobs {
		b := b
		g.Go(func() error {
			_, err := o.run(b, nil)
			return err
		})
	}
	return g.Wait()
}

// run optimizes one bucket and returns the pool left after splicing.
func (o optimizer) run(b *bucket, pool []photo.Photo) ([]photo.Photo, error) {
	chains, err := chain.Build(b.items, b.th)
	if err != nil {
		return nil, fmt.Errorf("arrange: bucket %d: %w", b.size, err)
	}
	b.stats = BucketStats{
		Size:          b.size,
		Threshold:     b.th,
		Photos:        len(b.items),
		InitialChains: len(chains),
	}
	before := len(pool)

	var prev, idle int
	for {
		b.stats.Rounds++
		chains = stitchAll(chains, b.th, o.cache)
		chains = insertAll(chains, b.th, o.cache)
		chains = shuffleAll(chains, b.th, o.opts.ShuffleProb, b.r, o.cache)
		chains = reverseAll(chains, b.th, o.opts.ReverseProb, b.r)
		chains, pool, err = splice.Splice(chains, pool, b.th, o.u, o.opts.Splice, b.r)
		if err != nil {
			return nil, fmt.Errorf("arrange: bucket %d: %w", b.size, err)
		}

		total := chain.TotalScore(chains)
		if total <= prev {
			idle++
		} else {
			idle = 0
		}
		prev = total
		o.log.Debug("arrange round",
			slog.Int("size", b.size),
			slog.Int("round", b.stats.Rounds),
			slog.Int("chains", len(chains)),
			slog.Int("score", total),
			slog.Int("idle", idle))
		if len(chains) <= 1 || idle >= o.opts.Patience {
			break
		}
	}

	if !chain.AllPerfect(chains) {
		return nil, fmt.Errorf("arrange: bucket %d: %w", b.size, chain.ErrImperfectChain)
	}
	b.chains = chains
	b.stats.Chains = len(chains)
	b.stats.Spliced = before - len(pool)
	o.log.Info("bucket arranged",
		slog.Int("size", b.size),
		slog.Int("threshold", b.th),
		slog.Int("photos", b.stats.Photos),
		slog.Int("initial_chains", b.stats.InitialChains),
		slog.Int("chains", b.stats.Chains),
		slog.Int("rounds", b.stats.Rounds),
		slog.Int("spliced", b.stats.Spliced))
	return pool, nil
}
