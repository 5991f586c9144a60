// Package markov builds word-level Markov chains from lines of text and
// walks them with an rng generator. The same corpus, order and generator
// state always produce the same text.
package markov

import (
	"errors"
	"fmt"
	"strings"

	"wasi.team/prng/rng"
)

// ErrEmptyChain is returned when generating from a chain without lines.
var ErrEmptyChain = errors.New("chain has no lines")

// end marks the end of a line in the successor lists.
const end = ""

// Chain maps every prefix of up to order words to the words that followed
// it in the corpus. Successor lists keep duplicates, so frequent words are
// picked more often.
type Chain struct {
	order  int
	starts []string
	next   map[string][]string
}

// NewChain returns an empty chain of the given order. It panics if order
// is not positive.
func NewChain(order int) *Chain {
	if order <= 0 {
		panic(fmt.Sprintf("markov: order must be positive, got %d", order))
	}
	return &Chain{order: order, next: make(map[string][]string)}
}

// Build adds all lines and returns the chain.
func Build(order int, lines []string) *Chain {
	c := NewChain(order)
	for _, line := range lines {
		c.Add(line)
	}
	return c
}

// Order is the number of words in a prefix.
func (c *Chain) Order() int { return c.order }

// Len is the number of lines added.
func (c *Chain) Len() int { return len(c.starts) }

// Add splits line into words and records its start and every transition.
func (c *Chain) Add(line string) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}
	c.starts = append(c.starts, join(words[:min(c.order, len(words))]))
	if len(words) < c.order {
		c.next[join(words)] = append(c.next[join(words)], end)
		return
	}
	for i := c.order; i <= len(words); i++ {
		key := join(words[i-c.order : i])
		succ := end
		if i < len(words) {
			succ = words[i]
		}
		c.next[key] = append(c.next[key], succ)
	}
}

// Generate walks the chain from a random line start until the end of a
// line or until maxWords words were produced.
func (c *Chain) Generate(r rng.Random, maxWords int) (string, error) {
	if len(c.starts) == 0 {
		return "", ErrEmptyChain
	}
	if maxWords <= 0 {
		return "", fmt.Errorf("%w: maxWords must be positive, got %d", rng.ErrInvalidRange, maxWords)
	}

	start, err := pick(r, c.starts)
	if err != nil {
		return "", err
	}
	out := strings.Fields(start)
	if len(out) > maxWords {
		out = out[:maxWords]
	}

	for len(out) < maxWords {
		key := join(out[max(0, len(out)-c.order):])
		word, err := pick(r, c.next[key])
		if err != nil || word == end {
			break
		}
		out = append(out, word)
	}
	return join(out), nil
}

// pick returns a uniformly chosen element of list.
func pick(r rng.Random, list []string) (string, error) {
	i, err := r.GetInt32(int32(len(list)), false)
	if err != nil {
		return "", err
	}
	return list[i], nil
}

func join(words []string) string {
	return strings.Join(words, " ")
}
