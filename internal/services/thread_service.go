package services

import (
	"context"
	"strings"

	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/logger"
	"threadhub_backend/internal/models"
	"threadhub_backend/internal/repositories"
	"threadhub_backend/internal/services/dto"
)

type ThreadService interface {
	// Create stores a new thread. image is the raw bytes of the optional
	// attachment, nil when no file part was sent.
	Create(ctx context.Context, authorID string, req *dto.CreateThreadRequest, image []byte) (*models.Thread, error)

	GetByID(id string) (*models.Thread, error)
	ListMine(authorID string, query *dto.ThreadListQuery) (*dto.ThreadListResponse, error)
	ListAll(query *dto.ThreadListQuery) (*dto.ThreadListResponse, error)

	// Update mutates content and/or image of an owned thread.
	Update(ctx context.Context, authorID, threadID string, req *dto.UpdateThreadRequest, image []byte) (*models.Thread, error)

	// Delete removes an owned thread and its attachment.
	Delete(ctx context.Context, authorID, threadID string) error
}

type ThreadServiceImpl struct {
	threadRepo  repositories.ThreadRepository
	attachments AttachmentService
}

func NewThreadService(
	threadRepo repositories.ThreadRepository,
	attachments AttachmentService,
) ThreadService {
	return &ThreadServiceImpl{
		threadRepo:  threadRepo,
		attachments: attachments,
	}
}

func (s *ThreadServiceImpl) Create(ctx context.Context, authorID string, req *dto.CreateThreadRequest, image []byte) (*models.Thread, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.ErrContentRequired
	}

	var imageURL *string
	if image != nil {
		// Sniff-validate and persist before the document exists; a
		// rejected file never reaches storage.
		url, err := s.attachments.SaveImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	thread := &models.Thread{
		Content:  req.Content,
		Image:    imageURL,
		AuthorID: authorID,
	}

	if err := s.threadRepo.Create(thread); err != nil {
		// Document write failed after the file write: clean the file up
		// rather than orphan it.
		if imageURL != nil {
			if rmErr := s.attachments.RemoveImage(ctx, *imageURL); rmErr != nil {
				logger.CtxError(ctx, "failed to clean up attachment after create failure",
					"url", *imageURL, "error", rmErr.Error())
			}
		}
		return nil, apperrors.InternalError(err)
	}

	return thread, nil
}

func (s *ThreadServiceImpl) GetByID(id string) (*models.Thread, error) {
	thread, err := s.threadRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrThreadNotFound) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return thread, nil
}

func (s *ThreadServiceImpl) ListMine(authorID string, query *dto.ThreadListQuery) (*dto.ThreadListResponse, error) {
	return s.list(repositories.ThreadFilter{
		AuthorID: authorID,
		HasImage: query.HasImageFilter(),
		Page:     query.Page,
		Limit:    query.Limit,
	})
}

func (s *ThreadServiceImpl) ListAll(query *dto.ThreadListQuery) (*dto.ThreadListResponse, error) {
	return s.list(repositories.ThreadFilter{
		HasImage: query.HasImageFilter(),
		Page:     query.Page,
		Limit:    query.Limit,
	})
}

func (s *ThreadServiceImpl) list(filter repositories.ThreadFilter) (*dto.ThreadListResponse, error) {
	threads, total, err := s.threadRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Echo the normalized values so clients see the page that was
	// actually served, not the raw input.
	p := repositories.NormalizePagination(filter.Page, filter.Limit)

	if threads == nil {
		threads = []models.Thread{}
	}

	return &dto.ThreadListResponse{
		Threads: threads,
		Pagination: dto.PaginationMeta{
			Total:      total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: repositories.TotalPages(total, p.Limit),
		},
	}, nil
}

func (s *ThreadServiceImpl) Update(ctx context.Context, authorID, threadID string, req *dto.UpdateThreadRequest, image []byte) (*models.Thread, error) {
	thread, err := s.loadOwned(authorID, threadID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil && strings.TrimSpace(*req.Content) != "" {
		thread.Content = *req.Content
	}

	if image != nil {
		url, err := s.attachments.ReplaceImage(ctx, thread.Image, image)
		if err != nil {
			return nil, err
		}
		thread.Image = &url
	}

	if err := s.threadRepo.Update(thread); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return thread, nil
}

func (s *ThreadServiceImpl) Delete(ctx context.Context, authorID, threadID string) error {
	thread, err := s.loadOwned(authorID, threadID)
	if err != nil {
		return err
	}

	if thread.Image != nil {
		if err := s.attachments.RemoveImage(ctx, *thread.Image); err != nil {
			return err
		}
	}

	if err := s.threadRepo.Delete(thread.ID); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// loadOwned fetches a thread and enforces authorship. Existence is
// checked first: a missing thread is 404 for every caller, owner or not.
func (s *ThreadServiceImpl) loadOwned(authorID, threadID string) (*models.Thread, error) {
	thread, err := s.threadRepo.FindByID(threadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrThreadNotFound) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if thread.AuthorID != authorID {
		return nil, apperrors.ErrNotThreadAuthor
	}

	return thread, nil
}
