package ci

import "encoding/json"

// Event is the webhook-style payload a CI provider writes to describe why a
// run was triggered. All sub-objects are optional; which ones are present
// decides how the pull request context is extracted.
type Event struct {
	PullRequest *EventPullRequest `json:"pull_request,omitempty"`
	Issue       *EventIssue       `json:"issue,omitempty"`
	Repository  *EventRepository  `json:"repository,omitempty"`
}

// EventPullRequest is the pull_request sub-object of an event payload.
type EventPullRequest struct {
	Number json.Number `json:"number"`
	Base   EventBranch `json:"base"`
}

// EventBranch is a branch reference carrying its owning repository.
type EventBranch struct {
	Repo EventRepository `json:"repo"`
}

// EventIssue is the issue sub-object of an event payload.
type EventIssue struct {
	Number json.Number `json:"number"`
}

// EventRepository is a repository reference in an event payload.
type EventRepository struct {
	FullName string `json:"full_name"`
}
