package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"wasi.team/prng/bench"
	"wasi.team/prng/catalog"
	"wasi.team/prng/config"
	"wasi.team/prng/internal/logger"
	"wasi.team/prng/markov"
	"wasi.team/prng/plan"
	"wasi.team/prng/rng"
)

// generator builds the configured generator for algorithm.
func generator(conf *config.Configuration, algorithm string) (rng.Random, error) {
	words, random, err := conf.SeedWords()
	if err != nil {
		return nil, err
	}
	if random {
		return catalog.Randomized(algorithm)
	}
	return catalog.Seeded(algorithm, words...)
}

// optional positional argument at index i, parsed as a positive count
func countArg(args []string, i int, fallback int) (int, error) {
	if len(args) <= i {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid count %q", args[i])
	}
	return n, nil
}

// vectors prints the first native draws, one decimal value per line.
func vectors(conf *config.Configuration, args []string) error {
	algorithm := conf.Algorithm
	if len(args) > 0 {
		algorithm = args[0]
	}
	count, err := countArg(args, 1, conf.Count)
	if err != nil {
		return err
	}
	r, err := generator(conf, algorithm)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for range count {
		fmt.Fprintln(out, r.Next())
	}
	return nil
}

// samplePlan runs a plan file, writes the samples as CSV and logs a
// summary per stream.
func samplePlan(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("plan needs exactly one file argument")
	}
	p, err := plan.ReadPlan(args[0])
	if err != nil {
		return err
	}
	logger.Log().Info().Str("plan", p.Name).Uint64("seed", p.Seed).
		Str("algorithm", p.Algorithm).Int("samples", p.Samples).Msg("sampling plan")

	frame := p.Run()
	if err := plan.WriteCSV(os.Stdout, frame); err != nil {
		return err
	}
	summaries, err := plan.Summarize(frame)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		logger.Log().Info().Str("stream", s.Name).Int("n", s.Count).
			Float64("mean", s.Mean).Float64("stddev", s.StdDev).
			Float64("min", s.Min).Float64("max", s.Max).Msg("summary")
	}
	return nil
}

// benchmark draws from split streams until the configured duration passed
// or ^C was pressed.
func benchmark(conf *config.Configuration) error {
	duration, err := time.ParseDuration(conf.BenchDuration)
	if err != nil {
		return fmt.Errorf("bench duration: %w", err)
	}
	metrics := bench.NewMetrics(conf.Algorithm)
	b, err := bench.New(bench.Config{
		Workers:  conf.BenchWorkers,
		Parallel: conf.BenchParallel,
		Duration: duration,
		Report:   time.Second,
	}, metrics)
	if err != nil {
		return err
	}

	// prometheus metrics
	if conf.MetricsListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(conf.MetricsListen, mux); err != nil {
				logger.Log().Error().Err(err).Msg("metrics server failed")
			}
		}()
		logger.Log().Info().Msgf("Prometheus metrics: http://%s/metrics", conf.MetricsListen)
	}

	// split one root generator; algorithms without jump get entropy-seeded
	// streams instead
	root, err := generator(conf, conf.Algorithm)
	if err != nil {
		return err
	}
	streams, err := bench.Streams(root, conf.BenchWorkers)
	if errors.Is(err, rng.ErrUnsupported) {
		logger.Log().Warn().Str("algorithm", conf.Algorithm).Msg("cannot split, using randomized streams")
		streams = make([]rng.Random, conf.BenchWorkers)
		for i := range streams {
			if streams[i], err = catalog.Randomized(conf.Algorithm); err != nil {
				return err
			}
		}
	} else if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	start := time.Now()
	results, err := b.Run(ctx, streams)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, r := range results {
		logger.Log().Info().Str("worker", r.Worker).Int64("draws", r.Draws).
			Str("checksum", fmt.Sprintf("%016x", r.Checksum)).Msg("worker done")
	}
	logger.Log().Info().Int64("draws", b.Total()).Dur("elapsed", elapsed).
		Float64("per_second", float64(b.Total())/elapsed.Seconds()).Msg("bench finished")
	return nil
}

// markovOrder is the prefix length of generated text.
const markovOrder = 2

// maxLineWords bounds a single generated line.
const maxLineWords = 64

// babble prints generated lines from a text corpus.
func babble(conf *config.Configuration, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("markov needs a corpus file argument")
	}
	count, err := countArg(args, 1, conf.Count)
	if err != nil {
		return err
	}
	lines, err := markov.ReadLines(args[0])
	if err != nil {
		return err
	}
	chain := markov.Build(markovOrder, lines)
	logger.Log().Debug().Int("lines", chain.Len()).Int("order", chain.Order()).Msg("built chain")

	r, err := generator(conf, conf.Algorithm)
	if err != nil {
		return err
	}
	for range count {
		line, err := chain.Generate(r, maxLineWords)
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
	return nil
}
