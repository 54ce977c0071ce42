package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/models"
	"github.com/arrazka/lifeboard/internal/repository"
	"github.com/arrazka/lifeboard/internal/storage"
)

// maxDocumentSize caps vault uploads at 25 MiB
const maxDocumentSize = 25 << 20

// downloadURLExpiry limits how long a presigned link stays valid
const downloadURLExpiry = 15 * time.Minute

// DocumentService manages the S3-backed document vault
type DocumentService struct {
	documents *repository.DocumentRepository
	store     *storage.Store
	log       *logrus.Logger
}

func NewDocumentService(documents *repository.DocumentRepository, store *storage.Store, log *logrus.Logger) *DocumentService {
	return &DocumentService{documents: documents, store: store, log: log}
}

// Upload stores the file in the bucket and records its metadata
func (s *DocumentService) Upload(ctx context.Context, userID int64, fileName, contentType string, size int64, reader io.Reader) (*models.Document, error) {
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if size <= 0 || size > maxDocumentSize {
		return nil, fmt.Errorf("file size must be between 1 byte and %d bytes", maxDocumentSize)
	}

	doc := &models.Document{
		ID:          uuid.New(),
		UserID:      userID,
		FileName:    filepath.Base(fileName),
		ContentType: contentType,
		SizeBytes:   size,
	}
	doc.ObjectKey = fmt.Sprintf("%d/%s_%s", userID, doc.ID, doc.FileName)

	if err := s.store.Put(ctx, doc.ObjectKey, reader, size, contentType); err != nil {
		return nil, err
	}
	if err := s.documents.CreateDocument(ctx, doc); err != nil {
		// metadata write failed; drop the orphaned object
		if rmErr := s.store.Remove(ctx, doc.ObjectKey); rmErr != nil {
			s.log.Warnf("Failed to remove orphaned object %s: %v", doc.ObjectKey, rmErr)
		}
		return nil, err
	}

	s.log.Infof("Document uploaded for user %d: %s (%d bytes)", userID, doc.FileName, doc.SizeBytes)
	return doc, nil
}

// ListDocuments returns the user's vault entries
func (s *DocumentService) ListDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	return s.documents.ListDocuments(ctx, userID)
}

// DownloadURL returns a time-limited link for one document
func (s *DocumentService) DownloadURL(ctx context.Context, userID int64, id uuid.UUID) (string, error) {
	doc, err := s.documents.GetDocument(ctx, userID, id)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, doc.ObjectKey, doc.FileName, downloadURLExpiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Delete removes the object and its metadata row
func (s *DocumentService) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	doc, err := s.documents.GetDocument(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, doc.ObjectKey); err != nil {
		return err
	}
	if err := s.documents.DeleteDocument(ctx, userID, id); err != nil {
		return err
	}
	s.log.Infof("Document %s deleted for user %d", id, userID)
	return nil
}
