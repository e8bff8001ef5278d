package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		maxWidth int
		want     string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name:     "empty message",
			err:      errors.New(""),
			maxWidth: 40,
			want:     "Error: unknown error",
		},
		{
			name:     "fits on one line",
			err:      errors.New("archives: bridge invocation failed"),
			maxWidth: 80,
			want:     "Error: archives: bridge invocation failed",
		},
		{
			name:     "wraps to second line",
			err:      errors.New("failed to fetch sprite: connection refused"),
			maxWidth: 30,
			want:     "Error: failed to fetch sprite:\nconnection refused",
		},
		{
			name:     "truncates after two lines",
			err:      errors.New("one two three four five six seven eight nine ten eleven twelve"),
			maxWidth: 17,
			want:     "Error: one two\nthree four fiv...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatErrorForDisplay(tt.err, tt.maxWidth))
		})
	}
}

func TestFormatErrorForDisplay_NeverExceedsTwoLines(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 200))

	got := formatErrorForDisplay(err, 20)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestErrorManager(t *testing.T) {
	em := NewErrorManager(0)
	assert.False(t, em.HasError())

	em.SetError(errors.New("boom"))
	assert.True(t, em.HasError())
	assert.EqualError(t, em.GetError(), "boom")

	em.ClearError()
	assert.False(t, em.HasError())
	assert.Nil(t, em.GetError())
}
