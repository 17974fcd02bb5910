package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuiteTrack(t *testing.T) {
	s := NewSuite("tracking")

	t.Run("records a passing subtest", func(t *testing.T) {
		done := s.Track(t, "first")
		done()
	})

	results := s.Results()
	assert.Len(t, results, 1)
	assert.Equal(t, "first", results[0].Name)
	assert.True(t, results[0].Passed)
}
