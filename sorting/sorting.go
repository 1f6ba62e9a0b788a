// Package sorting holds the in-place algorithms the visualizer animates.
// Algorithms only see the Array interface, so every element access can be
// observed by the caller.
package sorting

import (
	"fmt"
	"strings"
)

// Array is an indexable sequence of non-negative integers
type Array interface {
	Len() int
	Get(i int) int
	Set(i, v int)
}

// Func sorts an Array in place, ascending
type Func func(Array)

type entry struct {
	name string
	fn   Func
}

// registry keeps insertion order for listings and the default choice
var registry = []entry{
	{"quicksort", Quicksort},
	{"bubble_sort", BubbleSort},
	{"merge_sort", MergeSort},
	{"cocktail_shaker_sort", CocktailShakerSort},
	{"radix_sort", RadixSort},
}

// Default is the algorithm used when none is selected
const Default = "quicksort"

// Names returns the registered algorithm names in registration order
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Lookup returns the algorithm registered under name
func Lookup(name string) (Func, error) {
	for _, e := range registry {
		if e.name == name {
			return e.fn, nil
		}
	}
	return nil, fmt.Errorf("unknown algorithm %q, available: %s", name, strings.Join(Names(), ", "))
}

func swap(a Array, i, j int) {
	vi, vj := a.Get(i), a.Get(j)
	a.Set(i, vj)
	a.Set(j, vi)
}
