package dto

import "threadhub_backend/internal/models"

// CreateThreadRequest is the multipart form payload for thread creation.
// The optional image part is handled separately by the handler. Content
// presence (including whitespace-only input) is checked by the service so
// the missing and blank cases produce the same error.
type CreateThreadRequest struct {
	Content string `form:"content"`
}

// UpdateThreadRequest is the multipart form payload for thread updates.
// Omitted content preserves the stored value.
type UpdateThreadRequest struct {
	Content *string `form:"content"`
}

// ThreadListQuery is the query shape of both listing endpoints, built by
// the handler: page and limit are parsed leniently (non-numeric input
// falls back to defaults, never a 400). hasImage is tri-state: absent,
// "true" or "false"; anything else is treated as absent.
type ThreadListQuery struct {
	Page     int
	Limit    int
	HasImage string
}

// HasImageFilter converts the raw query value into the tri-state filter.
func (q *ThreadListQuery) HasImageFilter() *bool {
	switch q.HasImage {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// PaginationMeta describes one page of a thread listing.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ThreadListResponse is the payload of both listing endpoints.
type ThreadListResponse struct {
	Threads    []models.Thread `json:"threads"`
	Pagination PaginationMeta  `json:"pagination"`
}
