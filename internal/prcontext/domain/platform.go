package domain

// Platform identifies a supported code hosting platform.
// It is a closed enumeration: the zero value is deliberately invalid so a
// PullRequestParts can never silently report an unset platform.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformBitBucketServer
	PlatformBitBucketCloud
	PlatformGitHub
	PlatformGitLab
)

// String returns a stable identifier for the platform, suitable for logs
// and machine output. It is not a display name.
func (p Platform) String() string {
	switch p {
	case PlatformBitBucketServer:
		return "bitbucket-server"
	case PlatformBitBucketCloud:
		return "bitbucket-cloud"
	case PlatformGitHub:
		return "github"
	case PlatformGitLab:
		return "gitlab"
	default:
		return "unknown"
	}
}
