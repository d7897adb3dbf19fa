package repositories

import (
	"errors"

	"threadhub_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateRefreshToken(userID, token string) error
	UpdateStatus(userID string, status bool) error
	FindWithFilter(filter UserFilter) ([]models.User, int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Role   models.UserRole
	Status *bool
	Search string
	Page   int
	Limit  int
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	// A malformed id matches no row; without the guard postgres rejects
	// it against the uuid column (SQLSTATE 22P02) instead of missing.
	if uuid.Validate(id) != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateRefreshToken(userID, token string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("refresh_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateStatus(userID string, status bool) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindWithFilter lists users for the admin surface, newest first.
func (r *UserRepositoryImpl) FindWithFilter(filter UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p := NormalizePagination(filter.Page, filter.Limit)

	var users []models.User
	err := query.Order("created_at DESC").
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
