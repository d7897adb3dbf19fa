package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"threadhub_backend/internal/apperrors"
	"threadhub_backend/internal/logger"
	"threadhub_backend/internal/storage"

	"github.com/gabriel-vasile/mimetype"
)

// uploadsDir is the subpath inside the storage backend where thread
// images live. Thread records store the URL the backend reports for that
// path: local storage without a base URL yields the relative
// "/uploads/<name>", s3 yields an absolute URL.
const uploadsDir = "uploads"

// allowedImageTypes maps accepted sniffed MIME types to the stored file
// extension. Client-declared content types and filenames are never
// consulted.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
}

type AttachmentService interface {
	// SaveImage validates the raw bytes by magic number and stores them,
	// returning the relative URL to record on the thread.
	SaveImage(ctx context.Context, data []byte) (string, error)

	// ReplaceImage validates the new bytes, removes the old file (when
	// set), then writes the new one. On success exactly one file backs
	// the returned URL.
	ReplaceImage(ctx context.Context, oldURL *string, data []byte) (string, error)

	// RemoveImage deletes the file behind a relative URL. A file that is
	// already gone is not an error.
	RemoveImage(ctx context.Context, url string) error
}

type attachmentService struct {
	storage storage.Storage
}

func NewAttachmentService(store storage.Storage) AttachmentService {
	return &attachmentService{storage: store}
}

func (s *attachmentService) SaveImage(ctx context.Context, data []byte) (string, error) {
	ext, contentType, err := sniffImageType(data)
	if err != nil {
		return "", err
	}

	// Monotonic-timestamp name keeps concurrent uploads from colliding.
	name := fmt.Sprintf("thread-%d.%s", time.Now().UnixNano(), ext)
	path := uploadsDir + "/" + name

	if err := s.storage.Save(ctx, path, bytes.NewReader(data), contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *attachmentService) ReplaceImage(ctx context.Context, oldURL *string, data []byte) (string, error) {
	// Validate before touching anything: a rejected file must leave the
	// old attachment in place and no partial file behind.
	if _, _, err := sniffImageType(data); err != nil {
		return "", err
	}

	// Delete old, then write new. The brief window with neither file is
	// accepted; ending with zero files on the success path is not.
	if oldURL != nil {
		if err := s.RemoveImage(ctx, *oldURL); err != nil {
			return "", err
		}
	}

	return s.SaveImage(ctx, data)
}

func (s *attachmentService) RemoveImage(ctx context.Context, url string) error {
	path := storagePath(url)

	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		logger.Warn("attachment already missing from storage", "path", path)
		return nil
	}

	if err := s.storage.Delete(ctx, path); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// storagePath recovers the storage-relative path from a stored image
// URL, which may be relative ("/uploads/<name>") or absolute (a base-URL
// or s3 backed store).
func storagePath(url string) string {
	if i := strings.Index(url, uploadsDir+"/"); i >= 0 {
		return url[i:]
	}
	return strings.TrimPrefix(url, "/")
}

// sniffImageType detects the true content type from the byte stream and
// rejects anything but JPEG, PNG and GIF.
func sniffImageType(data []byte) (ext, contentType string, err error) {
	mime := mimetype.Detect(data)

	for allowed, extension := range allowedImageTypes {
		if mime.Is(allowed) {
			return extension, allowed, nil
		}
	}

	return "", "", apperrors.ErrUnsupportedFileType
}
