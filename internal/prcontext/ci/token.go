package ci

// Token environment variables. Both may be present at once: GITHUB_TOKEN is
// injected automatically by the platform, PR_SENTRY_GITHUB_TOKEN is a
// personal override.
const (
	automaticTokenVar = "GITHUB_TOKEN"
	personalTokenVar  = "PR_SENTRY_GITHUB_TOKEN"
)

// ReviewToken returns the credential to author review comments with. The
// personal override wins over the platform-automatic token: comments posted
// with the automatic token are attributed to the platform bot, and reusing
// it for authoring can silently suppress comment updates.
func ReviewToken(env Env) string {
	if token := env[personalTokenVar]; token != "" {
		return token
	}
	return env[automaticTokenVar]
}
