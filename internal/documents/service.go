package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"brsr-backend/internal/extract"
	"brsr-backend/internal/shared/metrics"
	"brsr-backend/internal/shared/storage/object"
	"brsr-backend/internal/shared/telemetry"
)

const mimePDF = "application/pdf"

// Service runs the ingestion pipeline: validate, store and extract
// concurrently, merge the branch outcomes into exactly one terminal record.
type Service struct {
	Store     object.Store
	Extractor extract.Client
	Repo      Repo

	StorageTimeout time.Duration
	ExtractTimeout time.Duration
}

// NewService constructs a Service.
func NewService(store object.Store, extractor extract.Client, repo Repo, storageTimeout, extractTimeout time.Duration) *Service {
	return &Service{
		Store:          store,
		Extractor:      extractor,
		Repo:           repo,
		StorageTimeout: storageTimeout,
		ExtractTimeout: extractTimeout,
	}
}

// Upload is one validated file queued for processing.
type Upload struct {
	FileName string
	Data     []byte
}

// ValidateUpload checks that the payload is a non-empty PDF. Validation
// failures never create records.
func ValidateUpload(fileName string, data []byte) error {
	if strings.TrimSpace(fileName) == "" {
		return fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: file %q is empty", ErrInvalidInput, fileName)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return fmt.Errorf("%w: file %q is not a PDF", ErrInvalidInput, fileName)
	}
	if sniffed := http.DetectContentType(data); sniffed != mimePDF {
		return fmt.Errorf("%w: file %q is not a PDF (%s)", ErrInvalidInput, fileName, sniffed)
	}
	return nil
}

type branchResult struct {
	fileURL   string
	extracted json.RawMessage
	err       error
}

// Process runs the two pipeline branches for one file and persists the
// merged terminal record. Branch failures are data, not errors: they are
// folded into the record, and the only error returned is a persistence
// failure.
func (s *Service) Process(ctx context.Context, ownerID string, up Upload) (Document, error) {
	if err := ValidateUpload(up.FileName, up.Data); err != nil {
		return Document{}, err
	}

	started := time.Now()
	metrics.IncDocumentProcessed()

	// The branches run on independent deadlines so that one failing or
	// timing out never cancels the other; both outcomes are needed for
	// the merge.
	var storage, extraction branchResult
	done := make(chan struct{}, 2)

	go func() {
		defer func() { done <- struct{}{} }()
		branchCtx, cancel := context.WithTimeout(ctx, s.StorageTimeout)
		defer cancel()
		fileURL, _, _, err := s.Store.Save(branchCtx, ownerID, up.FileName, bytes.NewReader(up.Data))
		storage = branchResult{fileURL: fileURL, err: err}
	}()

	go func() {
		defer func() { done <- struct{}{} }()
		branchCtx, cancel := context.WithTimeout(ctx, s.ExtractTimeout)
		defer cancel()
		raw, err := s.Extractor.Extract(branchCtx, up.Data)
		extraction = branchResult{extracted: raw, err: err}
	}()

	<-done
	<-done

	doc := s.merge(ownerID, up.FileName, storage, extraction)
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("persist document %s: %w", doc.ID, err)
	}

	metrics.ObservePipelineDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("document processed", map[string]any{
		"document_id": doc.ID,
		"user_id":     ownerID,
		"status":      doc.Status,
		"file_name":   doc.FileName,
	})
	return doc, nil
}

// merge applies the outcome table. Storage failure is fatal regardless of
// what extraction produced; a stored file with failed extraction keeps its
// URL alongside the extraction reason.
func (s *Service) merge(ownerID, fileName string, storage, extraction branchResult) Document {
	now := time.Now().UTC()
	doc := Document{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		FileName:  fileName,
		CreatedAt: now,
		ParsedAt:  &now,
	}

	switch {
	case storage.err != nil:
		doc.Status = StatusFailed
		doc.ErrorMessage = fmt.Sprintf("storage upload failed: %v", storage.err)
		metrics.IncDocumentFailed()
		telemetry.Error("storage branch failed", map[string]any{
			"user_id":   ownerID,
			"file_name": fileName,
			"error":     storage.err.Error(),
		})
	case extraction.err != nil:
		doc.Status = StatusFailed
		doc.FileURL = storage.fileURL
		doc.ErrorMessage = fmt.Sprintf("extraction failed: %v", extraction.err)
		metrics.IncDocumentFailed()
		telemetry.Error("extraction branch failed", map[string]any{
			"user_id":   ownerID,
			"file_name": fileName,
			"error":     extraction.err.Error(),
		})
	default:
		doc.Status = StatusCompleted
		doc.FileURL = storage.fileURL
		doc.ExtractedJSON = extraction.extracted
		metrics.IncDocumentCompleted()
	}
	return doc
}

// ProcessBatch validates every file up front, then processes them
// concurrently. Any invalid file fails the whole batch before the
// pipeline touches storage or the extractor, so a rejected request
// leaves zero records behind. Results are in input order.
func (s *Service) ProcessBatch(ctx context.Context, ownerID string, uploads []Upload) ([]Document, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no files uploaded", ErrInvalidInput)
	}
	for _, up := range uploads {
		if err := ValidateUpload(up.FileName, up.Data); err != nil {
			return nil, err
		}
	}

	// No derived context here: branch outcomes are data, and one file's
	// persistence failure must not cancel sibling pipelines mid-flight
	// and turn their records into bogus failures.
	docs := make([]Document, len(uploads))
	var g errgroup.Group
	for i, up := range uploads {
		g.Go(func() error {
			doc, err := s.Process(ctx, ownerID, up)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Get returns an owner's document by id.
func (s *Service) Get(ctx context.Context, ownerID, documentID string) (Document, error) {
	return s.Repo.GetByID(ctx, ownerID, documentID)
}

// List returns all of an owner's documents, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]Document, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Status returns the owner's documents among ids; an empty id list means
// all of the owner's documents. Unknown and foreign ids are omitted.
func (s *Service) Status(ctx context.Context, ownerID string, ids []string) ([]Document, error) {
	if len(ids) == 0 {
		return s.Repo.ListByOwner(ctx, ownerID)
	}
	return s.Repo.ListByOwnerAndIDs(ctx, ownerID, ids)
}
