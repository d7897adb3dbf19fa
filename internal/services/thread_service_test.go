package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/models"
	"threadhub_backend/internal/repositories"
	"threadhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeThreadRepo is an in-memory ThreadRepository.
type fakeThreadRepo struct {
	seq       int
	threads   map[string]models.Thread
	createErr error
}

func newFakeThreadRepo() *fakeThreadRepo {
	return &fakeThreadRepo{threads: make(map[string]models.Thread)}
}

func (r *fakeThreadRepo) Create(thread *models.Thread) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	thread.ID = fmt.Sprintf("thread-%d", r.seq)
	thread.CreatedAt = time.Unix(int64(r.seq), 0)
	r.threads[thread.ID] = *thread
	return nil
}

func (r *fakeThreadRepo) FindByID(id string) (*models.Thread, error) {
	thread, ok := r.threads[id]
	if !ok {
		return nil, repositories.ErrThreadNotFound
	}
	return &thread, nil
}

func (r *fakeThreadRepo) Update(thread *models.Thread) error {
	if _, ok := r.threads[thread.ID]; !ok {
		return repositories.ErrThreadNotFound
	}
	r.threads[thread.ID] = *thread
	return nil
}

func (r *fakeThreadRepo) Delete(id string) error {
	if _, ok := r.threads[id]; !ok {
		return repositories.ErrThreadNotFound
	}
	delete(r.threads, id)
	return nil
}

func (r *fakeThreadRepo) FindWithFilter(filter repositories.ThreadFilter) ([]models.Thread, int64, error) {
	var matched []models.Thread
	for _, thread := range r.threads {
		if filter.AuthorID != "" && thread.AuthorID != filter.AuthorID {
			continue
		}
		if filter.HasImage != nil && *filter.HasImage != (thread.Image != nil) {
			continue
		}
		matched = append(matched, thread)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	p := repositories.NormalizePagination(filter.Page, filter.Limit)
	start := p.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + p.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func newTestThreadService(t *testing.T) (ThreadService, *fakeThreadRepo, string) {
	t.Helper()
	repo := newFakeThreadRepo()
	attachments, dir := newTestAttachments(t)
	return NewThreadService(repo, attachments), repo, dir
}

func TestThreadCreate_ContentRequired(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestThreadService(t)

	_, err := svc.Create(context.Background(), "author-1", &dto.CreateThreadRequest{Content: "   "}, nil)
	assert.ErrorIs(t, err, apperrors.ErrContentRequired)
	assert.Empty(t, repo.threads)
}

func TestThreadCreate_WithoutImage(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestThreadService(t)

	thread, err := svc.Create(context.Background(), "author-1", &dto.CreateThreadRequest{Content: "hello"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", thread.Content)
	assert.Equal(t, "author-1", thread.AuthorID)
	assert.Nil(t, thread.Image)
	assert.Len(t, repo.threads, 1)
}

func TestThreadCreate_WithImage(t *testing.T) {
	t.Parallel()

	svc, _, dir := newTestThreadService(t)

	thread, err := svc.Create(context.Background(), "author-1", &dto.CreateThreadRequest{Content: "with pic"}, jpegBytes)
	require.NoError(t, err)
	require.NotNil(t, thread.Image)

	files := uploadedFiles(t, dir)
	require.Len(t, files, 1)
	assert.Equal(t, "/uploads/"+files[0], *thread.Image)
}

func TestThreadCreate_RejectedImage(t *testing.T) {
	t.Parallel()

	svc, repo, dir := newTestThreadService(t)

	_, err := svc.Create(context.Background(), "author-1", &dto.CreateThreadRequest{Content: "bad pic"}, textBytes)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)

	// Neither a document nor a file may survive the rejection.
	assert.Empty(t, repo.threads)
	assert.Empty(t, uploadedFiles(t, dir))
}

func TestThreadCreate_RepoFailureCleansUpFile(t *testing.T) {
	t.Parallel()

	svc, repo, dir := newTestThreadService(t)
	repo.createErr = errors.New("connection reset")

	_, err := svc.Create(context.Background(), "author-1", &dto.CreateThreadRequest{Content: "doomed"}, pngBytes)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInternalError, appErr.Code)

	assert.Empty(t, uploadedFiles(t, dir), "attachment must not be orphaned")
}

func TestThreadGetByID_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestThreadService(t)

	_, err := svc.GetByID("missing")
	assert.ErrorIs(t, err, apperrors.ErrThreadNotFound)
}

func TestThreadUpdate_MissingThreadIsNotFoundForAnyone(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestThreadService(t)
	content := "update"

	// Existence wins over ownership: nobody learns whether a thread they
	// don't own exists via the error code.
	_, err := svc.Update(context.Background(), "someone", "missing", &dto.UpdateThreadRequest{Content: &content}, nil)
	assert.ErrorIs(t, err, apperrors.ErrThreadNotFound)
}

func TestThreadUpdate_ForbiddenForNonAuthor(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestThreadService(t)
	ctx := context.Background()

	thread, err := svc.Create(ctx, "owner", &dto.CreateThreadRequest{Content: "mine"}, nil)
	require.NoError(t, err)

	content := "hijack"
	_, err = svc.Update(ctx, "intruder", thread.ID, &dto.UpdateThreadRequest{Content: &content}, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotThreadAuthor)
}

func TestThreadUpdate_OmittedContentPreserved(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestThreadService(t)
	ctx := context.Background()

	thread, err := svc.Create(ctx, "owner", &dto.CreateThreadRequest{Content: "original"}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "owner", thread.ID, &dto.UpdateThreadRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Content)

	empty := ""
	updated, err = svc.Update(ctx, "owner", thread.ID, &dto.UpdateThreadRequest{Content: &empty}, nil)
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Content)
}

func TestThreadUpdate_ReplacesImage(t *testing.T) {
	t.Parallel()

	svc, _, dir := newTestThreadService(t)
	ctx := context.Background()

	thread, err := svc.Create(ctx, "owner", &dto.CreateThreadRequest{Content: "pic"}, jpegBytes)
	require.NoError(t, err)
	oldURL := *thread.Image

	updated, err := svc.Update(ctx, "owner", thread.ID, &dto.UpdateThreadRequest{}, pngBytes)
	require.NoError(t, err)
	require.NotNil(t, updated.Image)
	assert.NotEqual(t, oldURL, *updated.Image)

	files := uploadedFiles(t, dir)
	require.Len(t, files, 1)
	assert.Equal(t, "/uploads/"+files[0], *updated.Image)
}

func TestThreadUpdate_RejectedImageKeepsThread(t *testing.T) {
	t.Parallel()

	svc, repo, dir := newTestThreadService(t)
	ctx := context.Background()

	thread, err := svc.Create(ctx, "owner", &dto.CreateThreadRequest{Content: "pic"}, gifBytes)
	require.NoError(t, err)

	content := "new content"
	_, err = svc.Update(ctx, "owner", thread.ID, &dto.UpdateThreadRequest{Content: &content}, textBytes)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)

	stored := repo.threads[thread.ID]
	assert.Equal(t, "pic", stored.Content, "rejected update must not persist anything")
	assert.Len(t, uploadedFiles(t, dir), 1)
}

func TestThreadDelete(t *testing.T) {
	t.Parallel()

	svc, repo, dir := newTestThreadService(t)
	ctx := context.Background()

	thread, err := svc.Create(ctx, "owner", &dto.CreateThreadRequest{Content: "pic"}, jpegBytes)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "owner", thread.ID))
	assert.Empty(t, repo.threads)
	assert.Empty(t, uploadedFiles(t, dir))

	assert.ErrorIs(t, svc.Delete(ctx, "owner", thread.ID), apperrors.ErrThreadNotFound)
}

func TestThreadDelete_ForbiddenForNonAuthor(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestThreadService(t)
	ctx := context.Background()

	thread, err := svc.Create(ctx, "owner", &dto.CreateThreadRequest{Content: "mine"}, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "intruder", thread.ID), apperrors.ErrNotThreadAuthor)
	assert.Len(t, repo.threads, 1)
}

func TestThreadList_PaginationAndFilter(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestThreadService(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		var image []byte
		if i%2 == 0 {
			image = jpegBytes
		}
		_, err := svc.Create(ctx, "author-1", &dto.CreateThreadRequest{Content: fmt.Sprintf("post %d", i)}, image)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "author-2", &dto.CreateThreadRequest{Content: "other author"}, nil)
	require.NoError(t, err)

	// Defaults: zero page/limit (non-numeric input) clamp to 1/10.
	res, err := svc.ListMine("author-1", &dto.ThreadListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Pagination.Total)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, 10, res.Pagination.Limit)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	require.Len(t, res.Threads, 10)

	// Newest first.
	assert.Equal(t, "post 11", res.Threads[0].Content)

	// Second page holds the remainder.
	res, err = svc.ListMine("author-1", &dto.ThreadListQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, res.Threads, 2)
	assert.Equal(t, 2, res.Pagination.Page)

	// hasImage=true keeps only attachment-bearing threads.
	res, err = svc.ListMine("author-1", &dto.ThreadListQuery{HasImage: "true"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Pagination.Total)
	for _, thread := range res.Threads {
		assert.NotNil(t, thread.Image)
	}

	// Unrecognized hasImage values mean no filtering.
	res, err = svc.ListMine("author-1", &dto.ThreadListQuery{HasImage: "maybe"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Pagination.Total)

	// ListAll spans authors.
	res, err = svc.ListAll(&dto.ThreadListQuery{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(13), res.Pagination.Total)
}
