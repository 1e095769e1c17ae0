package domain

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	bitbucketServerPattern = regexp.MustCompile(`(projects/\w+/repos/[\w\-.]+)/pull-requests/(\d+)`)
	gitlabMergePattern     = regexp.MustCompile(`/(.+)/merge_requests/(\d+)`)
)

// ParsePullRequestAddress decomposes an address string into its platform,
// repository path, and pull request number. The second return value reports
// whether the address matched a known pull request URL shape; false is the
// expected outcome for unrecognized addresses, not a failure.
//
// Matching is an ordered cascade because later shapes are substrings of
// earlier ones: BitBucket Server paths contain "pull-requests", which
// contains "pull", so reordering would misclassify BitBucket URLs as GitHub.
func ParsePullRequestAddress(address string) (PullRequestParts, bool) {
	u, err := url.Parse(address)
	if err != nil || u.Path == "" {
		return PullRequestParts{}, false
	}
	path := u.Path

	if m := bitbucketServerPattern.FindStringSubmatch(path); m != nil {
		return PullRequestParts{
			Platform:          PlatformBitBucketServer,
			Repo:              m[1],
			PullRequestNumber: m[2],
		}, true
	}

	if strings.Contains(path, "pull-requests") {
		return splitAddressPath(path, PlatformBitBucketCloud, "pull-requests", true)
	}

	if strings.Contains(path, "pull") {
		return splitAddressPath(path, PlatformGitHub, "pull", false)
	}

	// Issue URLs are accepted as an alias: review comments attach to the
	// issue side of a pull request on GitHub.
	if strings.Contains(path, "issue") {
		return splitAddressPath(path, PlatformGitHub, "issue", false)
	}

	if m := gitlabMergePattern.FindStringSubmatch(path); m != nil {
		return PullRequestParts{
			Platform:          PlatformGitLab,
			Repo:              strings.TrimSuffix(m[1], "/-"),
			PullRequestNumber: m[2],
		}, true
	}

	return PullRequestParts{}, false
}

// splitAddressPath extracts repo and number around a path marker.
// The repo is everything before "/<marker>" with the leading separator
// stripped; the number is everything after "/<marker>/", truncated at the
// next separator when firstSegment is set. A result is only produced when
// both parts are non-empty, so partial matches never leak through.
func splitAddressPath(path string, platform Platform, marker string, firstSegment bool) (PullRequestParts, bool) {
	repoEnd := strings.Index(path, "/"+marker)
	if repoEnd < 0 {
		return PullRequestParts{}, false
	}
	repo := strings.TrimPrefix(path[:repoEnd], "/")

	numStart := strings.Index(path, "/"+marker+"/")
	if numStart < 0 {
		return PullRequestParts{}, false
	}
	number := path[numStart+len(marker)+2:]
	if firstSegment {
		if i := strings.IndexByte(number, '/'); i >= 0 {
			number = number[:i]
		}
	}

	if repo == "" || number == "" {
		return PullRequestParts{}, false
	}
	return PullRequestParts{
		Platform:          platform,
		Repo:              repo,
		PullRequestNumber: number,
	}, true
}
