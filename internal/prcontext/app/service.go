// Package app orchestrates pull request context resolution across the URL
// parser and the CI sources.
package app

import (
	"errors"
	"fmt"

	"github.com/nathantilsley/pr-sentry/internal/prcontext/ci"
	"github.com/nathantilsley/pr-sentry/internal/prcontext/domain"
)

// Expected "not applicable" outcomes, distinct from invalid-state failures.
var (
	ErrNoMatch = errors.New("address is not a recognized pull request URL")
	ErrNotCI   = errors.New("no CI provider detected in the environment")
	ErrNotPR   = errors.New("CI run is not associated with a pull request")
)

// Service resolves the pull request context of the current invocation.
type Service struct {
	env    ci.Env
	detect func(ci.Env) (ci.Source, error)
}

// NewService creates a resolver over the given environment snapshot.
func NewService(env ci.Env) *Service {
	return &Service{
		env:    env,
		detect: ci.Detect,
	}
}

// Resolve normalizes an explicit address when one is given, and otherwise
// derives the context from the detected CI provider.
func (s *Service) Resolve(address string) (domain.PullRequestParts, error) {
	if address != "" {
		parts, ok := domain.ParsePullRequestAddress(address)
		if !ok {
			return domain.PullRequestParts{}, fmt.Errorf("%w: %q", ErrNoMatch, address)
		}
		return parts, nil
	}
	return s.resolveFromCI()
}

func (s *Service) resolveFromCI() (domain.PullRequestParts, error) {
	src, err := s.detect(s.env)
	if err != nil {
		return domain.PullRequestParts{}, err
	}
	if src == nil {
		return domain.PullRequestParts{}, ErrNotCI
	}

	if !src.IsPR() {
		return domain.PullRequestParts{}, fmt.Errorf("%w (%s)", ErrNotPR, src.Name())
	}

	// Providers may report IsPR permissively, so the accessors re-validate:
	// an invalid-state failure here means the run only looked like a PR run.
	id, err := src.PullRequestID()
	if err != nil {
		if domain.IsInvalidState(err) {
			return domain.PullRequestParts{}, fmt.Errorf("%w (%s)", ErrNotPR, src.Name())
		}
		return domain.PullRequestParts{}, err
	}

	slug, err := src.RepoSlug()
	if err != nil {
		if domain.IsInvalidState(err) {
			return domain.PullRequestParts{}, fmt.Errorf("%w (%s)", ErrNotPR, src.Name())
		}
		return domain.PullRequestParts{}, err
	}

	return domain.PullRequestParts{
		Platform:          src.Platform(),
		Repo:              slug,
		PullRequestNumber: id,
	}, nil
}
