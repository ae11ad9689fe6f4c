package topic

import "github.com/mschaff99/Challenge-Foro-Hub/internal/types"

// CreateTopicRequest represents the topic registration request body.
type CreateTopicRequest struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	CourseRef string `json:"courseRef"`
	AuthorRef string `json:"authorRef"`
}

// UpdateTopicRequest represents the partial-update request body. A nil
// field means "leave unchanged"; this is distinct from an empty value.
type UpdateTopicRequest struct {
	Title   *string            `json:"title,omitempty"`
	Message *string            `json:"message,omitempty"`
	Status  *types.TopicStatus `json:"status,omitempty"`
}
