package app

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nathantilsley/pr-sentry/internal/prcontext/ci"
	"github.com/nathantilsley/pr-sentry/internal/prcontext/domain"
)

func TestService_Resolve_Address(t *testing.T) {
	svc := NewService(ci.Env{})

	parts, err := svc.Resolve("https://gitlab.com/group/proj/-/merge_requests/4")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := domain.PullRequestParts{
		Platform:          domain.PlatformGitLab,
		Repo:              "group/proj",
		PullRequestNumber: "4",
	}
	if parts != want {
		t.Errorf("Resolve() = %+v, want %+v", parts, want)
	}
}

func TestService_Resolve_AddressNoMatch(t *testing.T) {
	svc := NewService(ci.Env{})

	_, err := svc.Resolve("https://example.com/docs/readme")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Resolve() error = %v, want ErrNoMatch", err)
	}
}

func TestService_Resolve_FromCI(t *testing.T) {
	env := ci.Env{"GITHUB_WORKFLOW": "ci"}
	event := &ci.Event{
		PullRequest: &ci.EventPullRequest{
			Number: json.Number("12"),
			Base:   ci.EventBranch{Repo: ci.EventRepository{FullName: "proj/repo"}},
		},
	}

	svc := &Service{
		env: env,
		detect: func(e ci.Env) (ci.Source, error) {
			return ci.NewGitHubActions(e, event)
		},
	}

	parts, err := svc.Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := domain.PullRequestParts{
		Platform:          domain.PlatformGitHub,
		Repo:              "proj/repo",
		PullRequestNumber: "12",
	}
	if parts != want {
		t.Errorf("Resolve() = %+v, want %+v", parts, want)
	}
}

func TestService_Resolve_NotCI(t *testing.T) {
	svc := &Service{
		env:    ci.Env{},
		detect: func(ci.Env) (ci.Source, error) { return nil, nil },
	}

	_, err := svc.Resolve("")
	if !errors.Is(err, ErrNotCI) {
		t.Errorf("Resolve() error = %v, want ErrNotCI", err)
	}
}

// GitHub Actions reports IsPR permissively; the service has to catch the
// invalid-state failure from the accessors and translate it.
func TestService_Resolve_PermissiveIsPRRevalidated(t *testing.T) {
	svc := &Service{
		env: ci.Env{"GITHUB_WORKFLOW": "ci"},
		detect: func(e ci.Env) (ci.Source, error) {
			return ci.NewGitHubActions(e, &ci.Event{})
		},
	}

	_, err := svc.Resolve("")
	if !errors.Is(err, ErrNotPR) {
		t.Errorf("Resolve() error = %v, want ErrNotPR", err)
	}
}

func TestService_Resolve_FromGitLabCI(t *testing.T) {
	svc := &Service{
		env: ci.Env{
			"GITLAB_CI":                     "true",
			"CI_MERGE_REQUEST_IID":          "31",
			"CI_MERGE_REQUEST_PROJECT_PATH": "group/sub/proj",
		},
		detect: ci.Detect,
	}

	parts, err := svc.Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := domain.PullRequestParts{
		Platform:          domain.PlatformGitLab,
		Repo:              "group/sub/proj",
		PullRequestNumber: "31",
	}
	if parts != want {
		t.Errorf("Resolve() = %+v, want %+v", parts, want)
	}
}
