package component

import "github.com/milk9111/platformer/character"

// FeedbackQueue collects particle feedback requests emitted during a frame.
type FeedbackQueue struct {
	Requests []character.FeedbackRequest
}

var FeedbackQueueComponent = NewComponent[FeedbackQueue]()
