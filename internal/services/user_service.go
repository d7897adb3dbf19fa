package services

import (
	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/models"
	"threadhub_backend/internal/repositories"
	"threadhub_backend/internal/services/dto"
)

type UserService interface {
	ListUsers(filter *dto.AdminUserFilter) (*dto.AdminUserListResponse, error)
	GetUserByID(id string) (*models.User, error)

	// ChangeStatus sets the active flag of a user. actorID is the admin
	// performing the change; self-deactivation is rejected.
	ChangeStatus(actorID, userID string, status bool) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListUsers(filter *dto.AdminUserFilter) (*dto.AdminUserListResponse, error) {
	if filter.Role != "" && !models.ValidRole(filter.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:   models.UserRole(filter.Role),
		Status: filter.StatusFilter(),
		Search: filter.Search,
		Page:   filter.Page,
		Limit:  filter.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	p := repositories.NormalizePagination(filter.Page, filter.Limit)

	if users == nil {
		users = []models.User{}
	}

	return &dto.AdminUserListResponse{
		Data: users,
		Pagination: dto.AdminPaginationMeta{
			CurrentPage: p.Page,
			TotalPages:  repositories.TotalPages(total, p.Limit),
			TotalUsers:  total,
			Limit:       p.Limit,
		},
		AppliedFilters: dto.AppliedFilters{
			Role:       filter.Role,
			Status:     filter.Status,
			SearchTerm: filter.Search,
		},
	}, nil
}

func (s *UserServiceImpl) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) ChangeStatus(actorID, userID string, status bool) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// An admin locking themselves out leaves nobody to undo it.
	if user.ID == actorID && !status {
		return nil, apperrors.ErrCannotModifySelf
	}

	if err := s.userRepo.UpdateStatus(userID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.Status = status
	return user, nil
}
