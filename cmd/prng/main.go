package main

import (
	"fmt"
	"os"

	"wasi.team/prng/catalog"
	"wasi.team/prng/config"
	"wasi.team/prng/internal/logger"
)

const usageText = `usage: prng <command> [arguments]

commands:
  vectors [algorithm] [n]   print the first n native draws
  plan <file.yaml>          sample a plan and write CSV to stdout
  bench                     measure throughput of split streams
  markov <file> [n]         generate n lines of text from a corpus
  algorithms                list the available algorithms

`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
	if err := config.Usage(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func main() {

	// print usage with the environment table on -h / --help
	if config.HelpRequested(os.Args[1:]) {
		usage()
		os.Exit(0)
	}

	// use configuration from environment variables
	conf, err := config.GetConfiguration()
	if err != nil {
		logger.Log().Fatal().Err(err).Msg("configuration")
	}
	if conf.LogJson {
		logger.SetJSONWriter(os.Stderr)
	} else {
		printBanner()
		printVersion()
	}
	if err := logger.SetLevel(conf.LogLevel); err != nil {
		logger.Log().Fatal().Err(err).Msg("configuration")
	}
	logger.Log().Debug().Msgf("%#v", &conf)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command, args := os.Args[1], os.Args[2:]

	switch command {
	case "vectors":
		err = vectors(&conf, args)
	case "plan":
		err = samplePlan(args)
	case "bench":
		err = benchmark(&conf)
	case "markov":
		err = babble(&conf, args)
	case "algorithms":
		for _, name := range catalog.Names() {
			entry, _ := catalog.Lookup(name)
			fmt.Printf("%-12s %s\n", name, entry.Description)
		}
	default:
		usage()
		logger.Log().Fatal().Str("command", command).Msg("unknown command")
	}
	if err != nil {
		logger.Log().Fatal().Err(err).Str("command", command).Msg("failed")
	}

}
