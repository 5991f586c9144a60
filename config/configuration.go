package config

// Prefix for envionment variable names, so ALGORITHM becomes PRNG_ALGORITHM.
const envprefix = "PRNG"

// Configuration via environment variables with github.com/kelseyhightower/envconfig.
type Configuration struct {

	// ALGORITHM selects the generator by catalog name.
	Algorithm string `default:"mt19937-64" desc:"Generator algorithm (mt19937, mt19937-64, splitmix64, platform)"`

	// SEED is a list of seed words. Empty uses the algorithm's default seed,
	// "random" seeds from system entropy.
	Seed []string `desc:"Comma-separated seed words, or \"random\""`

	// COUNT is the number of values printed by the vectors command.
	Count int `default:"10" desc:"Number of values to print"`

	// LOG_LEVEL and LOG_JSON control the logger.
	LogLevel string `split_words:"true" default:"info" desc:"Log level (trace, debug, info, warn, error)"`
	LogJson  bool   `split_words:"true" default:"false" desc:"Log JSON lines instead of console output"`

	// BENCH_WORKERS is the number of split streams drawn concurrently.
	BenchWorkers int `split_words:"true" default:"4" desc:"Concurrent benchmark workers"`

	// BENCH_PARALLEL limits how many workers may run at the same time.
	BenchParallel int `split_words:"true" default:"0" desc:"Max simultaneously running workers (0 = all)"`

	// BENCH_DURATION is how long the benchmark runs.
	BenchDuration string `split_words:"true" default:"5s" desc:"Benchmark run time"`

	// METRICS_LISTEN exposes Prometheus metrics on /metrics when set.
	MetricsListen string `split_words:"true" desc:"Listening Addr for Prometheus /metrics (empty = off)"`
}
