package repositories

import (
	"errors"

	"threadhub_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrThreadNotFound = errors.New("thread not found")

type ThreadRepository interface {
	Create(thread *models.Thread) error
	FindByID(id string) (*models.Thread, error)
	Update(thread *models.Thread) error
	Delete(id string) error
	FindWithFilter(filter ThreadFilter) ([]models.Thread, int64, error)
}

type ThreadRepositoryImpl struct {
	db *gorm.DB
}

// ThreadFilter narrows thread listings. AuthorID empty means all authors;
// HasImage nil means no image-presence filtering.
type ThreadFilter struct {
	AuthorID string
	HasImage *bool
	Page     int
	Limit    int
}

func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &ThreadRepositoryImpl{db: db}
}

func (r *ThreadRepositoryImpl) Create(thread *models.Thread) error {
	return r.db.Create(thread).Error
}

func (r *ThreadRepositoryImpl) FindByID(id string) (*models.Thread, error) {
	// A malformed id matches no row; postgres would reject it against the
	// uuid column (SQLSTATE 22P02) and turn a lookup miss into a 500.
	if uuid.Validate(id) != nil {
		return nil, ErrThreadNotFound
	}

	var thread models.Thread
	err := r.db.First(&thread, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}
	return &thread, nil
}

func (r *ThreadRepositoryImpl) Update(thread *models.Thread) error {
	return r.db.Save(thread).Error
}

func (r *ThreadRepositoryImpl) Delete(id string) error {
	if uuid.Validate(id) != nil {
		return ErrThreadNotFound
	}

	result := r.db.Delete(&models.Thread{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrThreadNotFound
	}
	return nil
}

// FindWithFilter lists threads newest-created-first with the total count
// for the same filter.
func (r *ThreadRepositoryImpl) FindWithFilter(filter ThreadFilter) ([]models.Thread, int64, error) {
	query := r.db.Model(&models.Thread{})

	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.HasImage != nil {
		if *filter.HasImage {
			query = query.Where("image IS NOT NULL")
		} else {
			query = query.Where("image IS NULL")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p := NormalizePagination(filter.Page, filter.Limit)

	var threads []models.Thread
	err := query.Order("created_at DESC").
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&threads).Error
	if err != nil {
		return nil, 0, err
	}

	return threads, total, nil
}
