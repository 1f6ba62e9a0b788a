package visual

import (
	"time"

	"github.com/lixenwraith/termsort/sorting"
)

// fault carries an access error out of a sorting algorithm
// Algorithms see the unchecked sorting.Array interface, so errors unwind as a panic
type fault struct {
	err error
}

// Get is the sorting.Array form of Read
func (a *Array) Get(i int) int {
	v, err := a.Read(i)
	if err != nil {
		panic(fault{err})
	}
	return v
}

// Set is the sorting.Array form of Write
func (a *Array) Set(i, v int) {
	if err := a.Write(i, v); err != nil {
		panic(fault{err})
	}
}

var _ sorting.Array = (*Array)(nil)

// Result summarizes one animated sort
type Result struct {
	Original []int
	Sorted   []int
	Elapsed  time.Duration
	Reads    int
	Writes   int
}

// Sort runs algorithm on a, then the completion animation
// An access error aborts the algorithm and is returned as is
func Sort(a *Array, algorithm sorting.Func) (res Result, err error) {
	res.Original = a.Values()
	start := time.Now()

	if err = run(a, algorithm); err != nil {
		return res, err
	}
	if err = a.EndOfSort(); err != nil {
		return res, err
	}

	res.Elapsed = time.Since(start)
	res.Sorted = a.Values()
	res.Reads, res.Writes = a.Stats()
	return res, nil
}

func run(a *Array, algorithm sorting.Func) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fault)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()
	algorithm(a)
	return nil
}
