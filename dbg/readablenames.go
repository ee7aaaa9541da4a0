// Package dbg names things for debug output.
package dbg

import (
	"strconv"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

func init() {
	// Names depend on the order they are asked for, so they are shuffled
	// between runs rather than looking like stable identifiers.
	petname.NonDeterministicMode()
}

// A Namer hands out names like "BriskOtter" for keys such as gesture numbers,
// so the log lines of one gesture are easy to pick out of a replay. A key keeps
// its name for the life of the Namer and no two keys share one. Keys must be
// comparable. Not safe for concurrent use.
type Namer struct {
	names map[interface{}]string
	taken map[string]bool
}

func NewNamer() *Namer {
	return &Namer{
		names: make(map[interface{}]string),
		taken: make(map[string]bool),
	}
}

func (n *Namer) Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if name, ok := n.names[key]; ok {
		return name
	}
	name := n.fresh()
	n.names[key] = name
	n.taken[name] = true
	return name
}

// Number of keys named so far.
func (n *Namer) Len() int {
	return len(n.names)
}

// Draw petnames until one is free, then fall back to numbering.
func (n *Namer) fresh() string {
	name := ""
	for attempt := 0; attempt < 8; attempt++ {
		name = capitalize(petname.Adjective()) + capitalize(petname.Name())
		if !n.taken[name] {
			return name
		}
	}
	for i := 2; ; i++ {
		if numbered := name + strconv.Itoa(i); !n.taken[numbered] {
			return numbered
		}
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
