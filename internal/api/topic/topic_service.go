package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

const defaultPageSize = 10
const maxPageSize = 100

var _ TopicService = (*TopicServiceImpl)(nil)

// TopicService orchestrates the topic lifecycle: register, list,
// detail, partial update and delete.
type TopicService interface {
	Register(ctx context.Context, req CreateTopicRequest) (*types.Topic, error)
	List(ctx context.Context, page, size int) (types.TopicPage, error)
	Detail(ctx context.Context, id int64) (*types.Topic, error)
	Update(ctx context.Context, id int64, req UpdateTopicRequest) (*types.Topic, error)
	Delete(ctx context.Context, id int64) error
}

type TopicServiceImpl struct {
	logger *slog.Logger
	repo   TopicRepository
}

func NewTopicService(repo TopicRepository, logger *slog.Logger) *TopicServiceImpl {
	return &TopicServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// Register creates a new topic. The duplicate pre-check gives a
// friendly error when it wins the race; when it loses, the storage
// layer's unique constraint surfaces the same ErrConflict from Insert.
func (s *TopicServiceImpl) Register(ctx context.Context, req CreateTopicRequest) (*types.Topic, error) {
	if req.Title == "" || req.Message == "" || req.CourseRef == "" || req.AuthorRef == "" {
		return nil, fmt.Errorf("title, message, courseRef and authorRef are required: %w", types.ErrValidation)
	}
	authorID, err := uuid.Parse(req.AuthorRef)
	if err != nil {
		return nil, fmt.Errorf("authorRef must be a valid user id: %w", types.ErrValidation)
	}

	exists, err := s.repo.ExistsByTitleAndMessage(ctx, req.Title, req.Message)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("topic with same title and message already exists: %w", types.ErrConflict)
	}

	topic := &types.Topic{
		Title:    req.Title,
		Message:  req.Message,
		AuthorID: authorID,
		Course:   req.CourseRef,
	}
	return s.repo.Insert(ctx, topic)
}

// List returns one page of topic summaries ordered ascending by
// creation time. Page defaults to 1 and size to 10.
func (s *TopicServiceImpl) List(ctx context.Context, page, size int) (types.TopicPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	topics, total, err := s.repo.ListOrderedByCreation(ctx, page, size)
	if err != nil {
		return types.TopicPage{}, err
	}

	summaries := make([]types.TopicSummary, 0, len(topics))
	for _, t := range topics {
		summaries = append(summaries, t.Summary())
	}
	return types.NewTopicPage(summaries, page, size, total), nil
}

func (s *TopicServiceImpl) Detail(ctx context.Context, id int64) (*types.Topic, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. Only non-nil request fields
// overwrite the stored topic. The duplicate check runs against the
// prospective post-merge (title, message) pair, and excludes the topic
// itself so resubmitting the current values is not a false collision.
func (s *TopicServiceImpl) Update(ctx context.Context, id int64, req UpdateTopicRequest) (*types.Topic, error) {
	topic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *topic
	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("title must not be empty: %w", types.ErrValidation)
		}
		merged.Title = *req.Title
	}
	if req.Message != nil {
		if *req.Message == "" {
			return nil, fmt.Errorf("message must not be empty: %w", types.ErrValidation)
		}
		merged.Message = *req.Message
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("status must be OPEN or CLOSED: %w", types.ErrValidation)
		}
		merged.Status = *req.Status
	}

	if merged.Title != topic.Title || merged.Message != topic.Message {
		exists, err := s.repo.ExistsOtherByTitleAndMessage(ctx, id, merged.Title, merged.Message)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("topic with same title and message already exists: %w", types.ErrConflict)
		}
	}

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes a topic unconditionally once found. Deleting an
// unknown id fails with ErrNotFound.
func (s *TopicServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}
