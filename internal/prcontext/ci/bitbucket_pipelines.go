package ci

import "github.com/nathantilsley/pr-sentry/internal/prcontext/domain"

// BitbucketPipelines reads the run context Bitbucket Pipelines provides
// through its predefined environment variables.
type BitbucketPipelines struct {
	env Env
}

// NewBitbucketPipelines builds a source from an environment snapshot.
func NewBitbucketPipelines(env Env) *BitbucketPipelines {
	return &BitbucketPipelines{env: env}
}

func (b *BitbucketPipelines) Name() string { return "Bitbucket Pipelines" }

func (b *BitbucketPipelines) Platform() domain.Platform { return domain.PlatformBitBucketCloud }

func (b *BitbucketPipelines) IsCI() bool {
	return envKeysPresent(b.env, "BITBUCKET_BUILD_NUMBER")
}

// IsPR is exact here: the PR id variable only exists on pull request builds.
func (b *BitbucketPipelines) IsPR() bool {
	return envKeysPresent(b.env, "BITBUCKET_PR_ID")
}

// UseEventDSL is always false: there is no raw payload to diverge from.
func (b *BitbucketPipelines) UseEventDSL() bool { return false }

func (b *BitbucketPipelines) PullRequestID() (string, error) {
	if id := b.env["BITBUCKET_PR_ID"]; id != "" {
		return id, nil
	}
	return "", domain.NewInvalidStateError("pullRequestID", b.Name())
}

func (b *BitbucketPipelines) RepoSlug() (string, error) {
	if slug := b.env["BITBUCKET_REPO_FULL_NAME"]; slug != "" {
		return slug, nil
	}
	return "", domain.NewInvalidStateError("repoSlug", b.Name())
}
