package ci

import "github.com/nathantilsley/pr-sentry/internal/prcontext/domain"

// GitLabCI reads the run context GitLab CI provides. Everything lives in
// predefined environment variables, so there is no event payload to load.
type GitLabCI struct {
	env Env
}

// NewGitLabCI builds a source from an environment snapshot.
func NewGitLabCI(env Env) *GitLabCI {
	return &GitLabCI{env: env}
}

func (g *GitLabCI) Name() string { return "GitLab CI" }

func (g *GitLabCI) Platform() domain.Platform { return domain.PlatformGitLab }

func (g *GitLabCI) IsCI() bool {
	return envKeysPresent(g.env, "GITLAB_CI")
}

// IsPR is exact here: merge request pipelines always carry the IID variable.
func (g *GitLabCI) IsPR() bool {
	return envKeysPresent(g.env, "CI_MERGE_REQUEST_IID")
}

// UseEventDSL is always false: there is no raw payload to diverge from.
func (g *GitLabCI) UseEventDSL() bool { return false }

func (g *GitLabCI) PullRequestID() (string, error) {
	if iid := g.env["CI_MERGE_REQUEST_IID"]; iid != "" {
		return iid, nil
	}
	return "", domain.NewInvalidStateError("pullRequestID", g.Name())
}

func (g *GitLabCI) RepoSlug() (string, error) {
	if path := g.env["CI_MERGE_REQUEST_PROJECT_PATH"]; path != "" {
		return path, nil
	}
	if path := g.env["CI_PROJECT_PATH"]; path != "" {
		return path, nil
	}
	return "", domain.NewInvalidStateError("repoSlug", g.Name())
}
