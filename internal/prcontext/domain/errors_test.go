package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidStateError(t *testing.T) {
	err := NewInvalidStateError("pullRequestID", "GitHub Actions")

	expected := "pullRequestID was called on GitHub Actions when the run is not pull-request shaped"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestIsInvalidState(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "typed InvalidStateError",
			err:  NewInvalidStateError("repoSlug", "GitHub Actions"),
			want: true,
		},
		{
			name: "wrapped InvalidStateError",
			err:  fmt.Errorf("resolving context: %w", NewInvalidStateError("repoSlug", "GitLab CI")),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("permission denied"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsInvalidState(tt.err)
			if got != tt.want {
				t.Errorf("IsInvalidState(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
