// Package githubapi provides the GitHub client used once a pull request
// context has been resolved: fetching PR details and maintaining the
// sticky summary comment.
package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/nathantilsley/pr-sentry/internal/log"
	linediff "github.com/nathantilsley/pr-sentry/internal/prcontext/adapters/line_diff"
	"github.com/nathantilsley/pr-sentry/internal/prcontext/domain"
)

// Adapter wraps a go-github client for a single resolved context.
type Adapter struct {
	client *github.Client
	differ *linediff.Adapter
}

// New creates a GitHub adapter. An empty token yields an unauthenticated
// client, which is enough for read access to public repositories.
func New(ctx context.Context, token string) *Adapter {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	return &Adapter{
		client: github.NewClient(httpClient),
		differ: linediff.New(),
	}
}

// PullRequestInfo is the subset of PR details this tool reports.
type PullRequestInfo struct {
	Number  int
	Title   string
	State   string
	Author  string
	BaseRef string
	HeadRef string
	URL     string
}

// FetchPullRequest loads PR details for a resolved context.
func (a *Adapter) FetchPullRequest(ctx context.Context, parts domain.PullRequestParts) (*PullRequestInfo, error) {
	owner, repo, number, err := splitParts(parts)
	if err != nil {
		return nil, err
	}

	pr, _, err := a.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetching PR: %w", err)
	}

	info := &PullRequestInfo{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		State:  pr.GetState(),
		URL:    pr.GetHTMLURL(),
	}
	if user := pr.GetUser(); user != nil {
		info.Author = user.GetLogin()
	}
	if base := pr.GetBase(); base != nil {
		info.BaseRef = base.GetRef()
	}
	if head := pr.GetHead(); head != nil {
		info.HeadRef = head.GetRef()
	}
	return info, nil
}

// UpsertSummaryComment creates or updates the marker-tagged comment on the
// pull request. When a comment with the marker already exists and its body
// is unchanged, no API write happens at all.
func (a *Adapter) UpsertSummaryComment(ctx context.Context, parts domain.PullRequestParts, marker, body string) error {
	owner, repo, number, err := splitParts(parts)
	if err != nil {
		return err
	}

	tagged := body + "\n\n" + marker

	existing, err := a.findMarkedComment(ctx, owner, repo, number, marker)
	if err != nil {
		return err
	}

	if existing == nil {
		_, _, err := a.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
			Body: github.String(tagged),
		})
		if err != nil {
			return fmt.Errorf("creating comment: %w", err)
		}
		return nil
	}

	delta := a.differ.ComputeDiff("comment (current)", "comment (new)", []byte(existing.GetBody()), []byte(tagged))
	if delta == "" {
		log.Get().Debugw("summary comment already up to date", "repo", parts.Repo, "pr", parts.PullRequestNumber)
		return nil
	}
	log.Get().Debugw("updating summary comment", "repo", parts.Repo, "pr", parts.PullRequestNumber, "delta", delta)

	existing.Body = github.String(tagged)
	if _, _, err := a.client.Issues.EditComment(ctx, owner, repo, existing.GetID(), existing); err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}
	return nil
}

// findMarkedComment pages through issue comments looking for the marker.
func (a *Adapter) findMarkedComment(ctx context.Context, owner, repo string, number int, marker string) (*github.IssueComment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		comments, resp, err := a.client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing PR comments: %w", err)
		}

		if found := matchMarkedComment(comments, marker); found != nil {
			return found, nil
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return nil, nil
}

// matchMarkedComment returns the first comment whose body carries the marker.
func matchMarkedComment(comments []*github.IssueComment, marker string) *github.IssueComment {
	for _, comment := range comments {
		if strings.Contains(comment.GetBody(), marker) {
			return comment
		}
	}
	return nil
}

// splitParts validates that the context belongs to GitHub and decomposes the
// opaque repo path into owner and repository.
func splitParts(parts domain.PullRequestParts) (owner, repo string, number int, err error) {
	if parts.Platform != domain.PlatformGitHub {
		return "", "", 0, fmt.Errorf("github adapter cannot serve %s context", parts.Platform)
	}

	owner, repo, ok := strings.Cut(parts.Repo, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", 0, fmt.Errorf("malformed repo slug %q, expected owner/repo", parts.Repo)
	}

	number, err = strconv.Atoi(parts.PullRequestNumber)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid PR number %q: %w", parts.PullRequestNumber, err)
	}

	return owner, repo, number, nil
}
