// Package bench measures generator throughput with several workers drawing
// from independent streams at the same time. Each worker owns its stream;
// no generator is ever shared between goroutines.
package bench

import (
	"context"
	"fmt"
	"math/bits"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/marusama/semaphore/v2"
	"github.com/paulbellamy/ratecounter"
	"github.com/puzpuzpuz/xsync"
	"wasi.team/prng/internal/logger"
	"wasi.team/prng/rng"
)

// Config of a benchmark run.
type Config struct {
	Workers  int           // number of streams
	Parallel int           // max simultaneously drawing workers, 0 = all
	Duration time.Duration // stop after this time, 0 = only by Limit
	Limit    int64         // draws per worker, 0 = only by Duration
	Batch    int           // draws between counter updates
	Report   time.Duration // log progress at this interval, 0 = never
}

// Result of a single worker.
type Result struct {
	Worker   string
	Draws    int64
	Checksum uint64
}

type Bench struct {
	conf    Config
	metrics *Metrics

	// totals are updated concurrently by all workers
	total   *xsync.Counter
	results *xsync.MapOf[string, Result]

	// ratecounter is used to keep track of throughput [draws/s]
	rate *ratecounter.RateCounter
}

const defaultBatch = 4096

// New validates the configuration. The run must be bounded by Duration,
// Limit or both.
func New(conf Config, metrics *Metrics) (*Bench, error) {
	if conf.Workers <= 0 {
		return nil, fmt.Errorf("need at least one worker, got %d", conf.Workers)
	}
	if conf.Duration <= 0 && conf.Limit <= 0 {
		return nil, fmt.Errorf("must limit the run by duration or draw count")
	}
	if conf.Parallel <= 0 || conf.Parallel > conf.Workers {
		conf.Parallel = conf.Workers
	}
	if conf.Batch <= 0 {
		conf.Batch = defaultBatch
	}
	if metrics == nil {
		metrics = NewMetrics("unknown")
	}
	return &Bench{
		conf:    conf,
		metrics: metrics,
		total:   &xsync.Counter{},
		results: xsync.NewMapOf[Result](),
		rate:    ratecounter.NewRateCounter(time.Second),
	}, nil
}

// Streams splits root into n streams that do not overlap. Algorithms that
// cannot jump return rng.ErrUnsupported.
func Streams(root rng.Random, n int) ([]rng.Random, error) {
	streams := make([]rng.Random, n)
	for i := range streams {
		s, err := root.Fork()
		if err != nil {
			return nil, fmt.Errorf("stream %d: %w", i, err)
		}
		streams[i] = s
	}
	return streams, nil
}

// Run starts one worker per stream and blocks until all of them stopped.
// Results are sorted by worker name. Every run starts from zero totals;
// the prometheus counters keep accumulating across runs.
func (b *Bench) Run(ctx context.Context, streams []rng.Random) ([]Result, error) {
	if len(streams) != b.conf.Workers {
		return nil, fmt.Errorf("expected %d streams, got %d", b.conf.Workers, len(streams))
	}
	b.total = &xsync.Counter{}
	b.results = xsync.NewMapOf[Result]()
	if b.conf.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.conf.Duration)
		defer cancel()
	}

	// progress reports until the workers are done
	done := make(chan struct{})
	if b.conf.Report > 0 {
		go b.report(done)
	}

	limiter := semaphore.New(b.conf.Parallel) // limit simultaneously drawing workers
	var wg sync.WaitGroup
	for i, r := range streams {
		wg.Add(1)
		go func(name string, r rng.Random) {
			defer wg.Done()
			b.results.Store(name, b.work(ctx, limiter, name, r))
		}(fmt.Sprintf("w%03d", i), r)
	}
	wg.Wait()
	close(done)

	results := make([]Result, 0, b.results.Size())
	b.results.Range(func(_ string, r Result) bool {
		results = append(results, r)
		return true
	})
	slices.SortFunc(results, func(a, b Result) int {
		return strings.Compare(a.Worker, b.Worker)
	})
	return results, nil
}

func (b *Bench) work(ctx context.Context, limiter semaphore.Semaphore, name string, r rng.Random) Result {
	res := Result{Worker: name}

	// acquire a semaphore before drawing; a cancelled wait leaves zero draws
	queued := time.Now()
	if err := limiter.Acquire(ctx, 1); err != nil {
		return res
	}
	defer limiter.Release(1)
	b.metrics.WorkerWait.Observe(time.Since(queued).Seconds())
	b.metrics.RunningWorkers.Inc()
	defer b.metrics.RunningWorkers.Dec()

	for b.conf.Limit <= 0 || res.Draws < b.conf.Limit {
		if ctx.Err() != nil {
			break
		}
		n := int64(b.conf.Batch)
		if b.conf.Limit > 0 {
			n = min(n, b.conf.Limit-res.Draws)
		}
		for range n {
			res.Checksum = bits.RotateLeft64(res.Checksum, 1) ^ r.Next64()
		}
		res.Draws += n
		b.total.Add(n)
		b.rate.Incr(n)
		b.metrics.observe(name, int(n))
	}
	return res
}

func (b *Bench) report(done <-chan struct{}) {
	ticker := time.NewTicker(b.conf.Report)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			logger.Log().Info().Int64("draws", b.Total()).Int64("rate", b.Rate()).Msg("bench progress")
		}
	}
}

// Total is the number of values drawn by all workers so far.
func (b *Bench) Total() int64 {
	return b.total.Value()
}

// Rate is the number of values drawn in the last second.
func (b *Bench) Rate() int64 {
	return b.rate.Rate()
}
