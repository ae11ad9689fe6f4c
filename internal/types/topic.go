package types

import (
	"time"

	"github.com/google/uuid"
)

// TopicStatus is the lifecycle status of a topic.
type TopicStatus string

const (
	TopicStatusOpen   TopicStatus = "OPEN"
	TopicStatusClosed TopicStatus = "CLOSED"
)

// Valid reports whether s is one of the known statuses.
func (s TopicStatus) Valid() bool {
	return s == TopicStatusOpen || s == TopicStatusClosed
}

// Topic is the central forum entity. ID and CreatedAt are assigned by
// the database on insert; no two topics may share the same
// (title, message) pair.
type Topic struct {
	ID        int64       `json:"id" example:"42"`
	Title     string      `json:"title" example:"Bug"`
	Message   string      `json:"message" example:"Crashes on save"`
	CreatedAt time.Time   `json:"created_at"`
	Status    TopicStatus `json:"status" example:"OPEN"`
	AuthorID  uuid.UUID   `json:"author_id"`
	Course    string      `json:"course" example:"Go"`
}

// TopicSummary is the listing projection of a topic.
type TopicSummary struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
	Status    TopicStatus `json:"status"`
	Course    string      `json:"course"`
}

// Summary projects t to its listing view.
func (t Topic) Summary() TopicSummary {
	return TopicSummary{
		ID:        t.ID,
		Title:     t.Title,
		Message:   t.Message,
		CreatedAt: t.CreatedAt,
		Status:    t.Status,
		Course:    t.Course,
	}
}
