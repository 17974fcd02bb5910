// Package testutil collects timing for grouped subtests and prints a summary,
// the way the suites in this repo report their runs.
package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// Result is the outcome of one tracked subtest.
type Result struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// Suite accumulates results of subtests tracked with Track.
type Suite struct {
	Name string

	mu      sync.Mutex
	results []Result
}

func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// Track starts timing t and returns the func to defer at the end of the subtest.
func (s *Suite) Track(t *testing.T, name string) func() {
	t.Helper()
	start := time.Now()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.results = append(s.results, Result{
			Name:     name,
			Duration: time.Since(start),
			Passed:   !t.Failed(),
		})
	}
}

// Results returns a copy of everything recorded so far.
func (s *Suite) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Result(nil), s.results...)
}

// PrintSummary prints totals and one line per subtest.
func (s *Suite) PrintSummary() {
	results := s.Results()
	if len(results) == 0 {
		return
	}

	var total time.Duration
	passed := 0
	for _, r := range results {
		total += r.Duration
		if r.Passed {
			passed++
		}
	}

	fmt.Printf("\n📊 Test Suite Summary: %s\n", s.Name)
	fmt.Printf("   Passed: %d/%d\n", passed, len(results))
	fmt.Printf("   Total Time: %v (avg %v)\n", total, total/time.Duration(len(results)))
	for _, r := range results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
	fmt.Println()
}
