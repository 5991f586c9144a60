package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Keep a global lazy-loaded instance of the configuration
var configuration *Configuration

// GetConfiguration returns a lazily-loaded configuration parsed from environment.
func GetConfiguration() (conf Configuration, err error) {
	if configuration == nil {
		c, err := Load()
		if err != nil {
			return Configuration{}, err
		}
		configuration = c
	}
	return *configuration, nil
}

// HelpRequested checks if the user asked for help (-h/--help) on the commandline.
func HelpRequested(args []string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "-h" || arg == "--help"
	})
}

// Usage prints a table of all environment variables with their defaults.
func Usage(w io.Writer) error {
	tabs := tabwriter.NewWriter(w, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(envprefix, &Configuration{}, tabs, usageHelpFormat); err != nil {
		return err
	}
	return tabs.Flush()
}

// Load returns the configuration parsed from environment variables, after
// loading a .env file from the working directory if there is one.
func Load() (*Configuration, error) {
	conf := &Configuration{}

	// load .env file into environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		// ignore simple "not found" errors
		return nil, fmt.Errorf("failed to load dotenv: %w", err)
	}

	// parse configuration from environment variables
	if err := envconfig.Process(envprefix, conf); err != nil {
		return nil, fmt.Errorf("failed parsing config: %w", err)
	}
	return conf, nil
}

// SeedWords parses the configured seed. It returns random == true for the
// literal "random" and nil words for an empty seed.
func (c *Configuration) SeedWords() (words []uint64, random bool, err error) {
	if len(c.Seed) == 1 && strings.EqualFold(strings.TrimSpace(c.Seed[0]), "random") {
		return nil, true, nil
	}
	for _, s := range c.Seed {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		w, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, false, fmt.Errorf("invalid seed word %q: %w", s, err)
		}
		words = append(words, w)
	}
	return words, false, nil
}

// see https://github.com/kelseyhightower/envconfig/blob/v1.4.0/usage.go#L31
const usageHelpFormat = `This application is configured with the following environment variables:
KEY	DESCRIPTION	DEFAULT
{{range .}}{{usage_key .}}	{{usage_description .}}	{{usage_default .}}
{{end}}`
