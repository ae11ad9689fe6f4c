package types

// TopicPage is one page of the ascending-by-creation-time topic listing.
type TopicPage struct {
	Content       []TopicSummary `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int64          `json:"total_pages"`
}

// NewTopicPage builds a page response, deriving TotalPages from the
// total element count and page size.
func NewTopicPage(content []TopicSummary, page, size int, total int64) TopicPage {
	totalPages := int64(0)
	if size > 0 {
		totalPages = (total + int64(size) - 1) / int64(size)
	}
	if content == nil {
		content = []TopicSummary{}
	}
	return TopicPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
