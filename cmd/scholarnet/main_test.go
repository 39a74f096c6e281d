package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/matzehuels/scholarnet/internal/cli"
	apperr "github.com/matzehuels/scholarnet/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"canceled", fmt.Errorf("fetch: %w", context.Canceled), 130},
		{"reported", cli.ErrReported, 1},
		{"invalid input", apperr.New(apperr.ErrCodeInvalidInput, "query is empty"), 2},
		{"invalid format", apperr.New(apperr.ErrCodeInvalidFormat, "bad format"), 2},
		{"other", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
