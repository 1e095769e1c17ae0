package ci

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nathantilsley/pr-sentry/internal/prcontext/domain"
)

const (
	githubEventPathVar     = "GITHUB_EVENT_PATH"
	defaultGitHubEventPath = "/github/workflow/event.json"
)

// GitHubActions reads the run context GitHub Actions provides: detection via
// environment variables and pull request context via the workflow event
// payload written to disk before the job starts.
type GitHubActions struct {
	env   Env
	event *Event
}

// NewGitHubActions builds a source from an environment snapshot.
//
// A non-nil event is used as-is and no file is touched; pass a pointer to an
// empty Event to force the "no payload" state. With a nil event the payload
// is read once from $GITHUB_EVENT_PATH (or the conventional default path).
// A missing file leaves the event unset and the PR accessors fail closed; a
// present but unparseable file aborts construction, because a run whose
// event cannot be read cannot be classified at all.
func NewGitHubActions(env Env, event *Event) (*GitHubActions, error) {
	src := &GitHubActions{env: env, event: event}
	if event != nil {
		return src, nil
	}

	path := env[githubEventPathVar]
	if path == "" {
		path = defaultGitHubEventPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return src, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading event payload %s: %w", path, err)
	}

	var loaded Event
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing event payload %s: %w", path, err)
	}
	src.event = &loaded
	return src, nil
}

// Name identifies this provider in logs and error messages.
func (g *GitHubActions) Name() string { return "GitHub Actions" }

// Platform reports which hosting platform this provider's runs belong to.
func (g *GitHubActions) Platform() domain.Platform { return domain.PlatformGitHub }

// IsCI reports whether the required provider variables are present.
func (g *GitHubActions) IsCI() bool {
	return envKeysPresent(g.env, "GITHUB_WORKFLOW")
}

// IsPR is deliberately permissive: the environment alone cannot distinguish
// pull request runs from other workflow runs, so every run is accepted and
// callers re-validate through PullRequestID's error path.
func (g *GitHubActions) IsPR() bool { return true }

// UseEventDSL reports whether the payload lacks both a pull_request and an
// issue sub-object, in which case callers should fall back to the secondary
// extraction path instead of reading PR fields directly. An absent payload
// counts as lacking both.
func (g *GitHubActions) UseEventDSL() bool {
	return g.event == nil || (g.event.PullRequest == nil && g.event.Issue == nil)
}

// PullRequestID returns the pull request number as written in the payload.
func (g *GitHubActions) PullRequestID() (string, error) {
	switch {
	case g.event != nil && g.event.PullRequest != nil:
		return g.event.PullRequest.Number.String(), nil
	case g.event != nil && g.event.Issue != nil:
		return g.event.Issue.Number.String(), nil
	}
	return "", domain.NewInvalidStateError("pullRequestID", g.Name())
}

// RepoSlug returns the full name of the repository the run is about.
func (g *GitHubActions) RepoSlug() (string, error) {
	switch {
	case g.event != nil && g.event.PullRequest != nil:
		return g.event.PullRequest.Base.Repo.FullName, nil
	case g.event != nil && g.event.Repository != nil:
		return g.event.Repository.FullName, nil
	}
	return "", domain.NewInvalidStateError("repoSlug", g.Name())
}
