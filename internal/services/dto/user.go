package dto

import "threadhub_backend/internal/models"

// AdminUserFilter narrows the admin user listing. The string fields bind
// from the query; page and limit are parsed leniently by the handler.
type AdminUserFilter struct {
	Role   string `form:"role" validate:"omitempty,is-user-role"`
	Status string `form:"status"`
	Search string `form:"search"`
	Page   int    `form:"-"`
	Limit  int    `form:"-"`
}

// StatusFilter converts the raw status query value into a bool filter.
// Absent means no filtering; any present value other than "true" filters
// for blocked accounts.
func (f *AdminUserFilter) StatusFilter() *bool {
	if f.Status == "" {
		return nil
	}
	v := f.Status == "true"
	return &v
}

// ChangeStatusRequest is the payload of the admin status endpoint. The
// pointer distinguishes a missing field from an explicit false.
type ChangeStatusRequest struct {
	Status *bool `json:"status"`
}

// AdminPaginationMeta mirrors the admin listing pagination shape.
type AdminPaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	Limit       int   `json:"limit"`
}

// AppliedFilters echoes the filters the listing was produced with.
type AppliedFilters struct {
	Role       string `json:"role,omitempty"`
	Status     string `json:"status,omitempty"`
	SearchTerm string `json:"searchTerm,omitempty"`
}

// AdminUserListResponse is the payload of the admin user listing.
type AdminUserListResponse struct {
	Data           []models.User       `json:"data"`
	Pagination     AdminPaginationMeta `json:"pagination"`
	AppliedFilters AppliedFilters      `json:"appliedFilters"`
}
