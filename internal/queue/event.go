// Package queue defines message payloads exchanged over the message broker.
package queue

// Activity types published on the feed.activity queue.
const (
	ActivityPostCreated         = "post.created"
	ActivityPostLiked           = "post.liked"
	ActivityClassifiedFavorited = "classified.favorited"
)

// ActivityEvent is published when a social action succeeds.  It contains
// enough information for downstream consumers to log, notify, or trigger
// analytics without querying the primary database.  TargetID is the post
// or classified ad the action applies to.
type ActivityEvent struct {
	Type       string `json:"type"`
	UserID     int64  `json:"user_id"`
	TargetID   int64  `json:"target_id"`
	OccurredAt string `json:"occurred_at"`
}
