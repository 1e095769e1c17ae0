package domain

// PullRequestParts is the canonical decomposition of a pull request address.
// Repo is a platform-specific path segment and is kept verbatim: the format
// differs per platform (projects/P/repos/R for BitBucket Server,
// group/subgroup/project for GitLab, owner/repo elsewhere) and only the
// matching platform client knows how to interpret it.
type PullRequestParts struct {
	Platform          Platform
	Repo              string
	PullRequestNumber string // decimal digits, preserved exactly as written
}
