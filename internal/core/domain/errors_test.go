package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedDataset", ErrUnsupportedDataset},
		{"ErrFetchFailed", ErrFetchFailed},
		{"ErrMalformedRecord", ErrMalformedRecord},
		{"ErrMissingCorpus", ErrMissingCorpus},
		{"ErrInvalidCorpus", ErrInvalidCorpus},
		{"ErrInvalidProvider", ErrInvalidProvider},
		{"ErrMissingAPIKey", ErrMissingAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("load corpus %s: %w", "x.json", ErrMissingCorpus)

	assert.True(t, errors.Is(err, ErrMissingCorpus))
	assert.False(t, errors.Is(err, ErrInvalidCorpus))
	assert.Equal(t, "load corpus x.json: corpus file not found", err.Error())
}
