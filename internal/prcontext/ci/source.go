// Package ci detects which CI provider a process is running under and
// extracts the pull request context the run is about. Each provider exposes
// the same query surface so callers never branch on provider specifics.
package ci

import (
	"os"
	"strings"

	"github.com/nathantilsley/pr-sentry/internal/prcontext/domain"
)

// Env is a snapshot of environment variables, taken once per run and
// read-only afterwards.
type Env map[string]string

// SnapshotEnv captures the process environment as an Env.
func SnapshotEnv() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Source is the uniform query surface over a CI run.
//
// IsCI, IsPR, and UseEventDSL are pure reads over already-materialized state
// and always return a boolean. PullRequestID and RepoSlug fail with a
// domain.InvalidStateError when the run is not pull-request shaped; callers
// are expected to guard with IsPR and UseEventDSL first.
type Source interface {
	Name() string
	Platform() domain.Platform
	IsCI() bool
	IsPR() bool
	UseEventDSL() bool
	PullRequestID() (string, error)
	RepoSlug() (string, error)
}

// envKeysPresent reports whether every key is present and non-empty.
func envKeysPresent(env Env, keys ...string) bool {
	for _, key := range keys {
		if env[key] == "" {
			return false
		}
	}
	return true
}
