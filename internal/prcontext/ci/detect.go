package ci

import "fmt"

// Detect probes the known providers in a fixed order and returns the first
// one whose required environment variables are present. A nil Source with a
// nil error means the process is not running under a recognized CI.
//
// The GitHub Actions probe checks the environment before constructing the
// source, so the event payload is only read when actually on that provider.
func Detect(env Env) (Source, error) {
	if envKeysPresent(env, "GITHUB_WORKFLOW") {
		src, err := NewGitHubActions(env, nil)
		if err != nil {
			return nil, fmt.Errorf("initializing GitHub Actions source: %w", err)
		}
		return src, nil
	}
	if src := NewGitLabCI(env); src.IsCI() {
		return src, nil
	}
	if src := NewBitbucketPipelines(env); src.IsCI() {
		return src, nil
	}
	return nil, nil
}
