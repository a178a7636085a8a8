package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"brsr-backend/internal/documents"
	"brsr-backend/internal/shared/metrics"
	"brsr-backend/internal/shared/telemetry"
)

// ErrNoCompletedDocuments is returned when the selection holds nothing
// exportable.
var ErrNoCompletedDocuments = errors.New("no completed documents to export")

const sheetName = "Section A"

// Service aggregates completed extractions into one XLSX workbook.
type Service struct {
	Repo documents.Repo
}

// NewService constructs a Service.
func NewService(repo documents.Repo) *Service {
	return &Service{Repo: repo}
}

// BuildWorkbook loads the owner's completed documents among ids (all of the
// owner's documents when ids is empty), flattens each extraction and returns
// the workbook bytes. Failed and in-flight documents are skipped; zero
// completed documents is an error.
func (s *Service) BuildWorkbook(ctx context.Context, ownerID string, ids []string) ([]byte, error) {
	started := time.Now()

	var docs []documents.Document
	var err error
	if len(ids) == 0 {
		docs, err = s.Repo.ListByOwner(ctx, ownerID)
	} else {
		docs, err = s.Repo.ListByOwnerAndIDs(ctx, ownerID, ids)
	}
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	var rows []row
	completed := 0
	for _, doc := range docs {
		if doc.Status != documents.StatusCompleted || len(doc.ExtractedJSON) == 0 {
			continue
		}
		docRows, err := flattenDocument(doc.ExtractedJSON)
		if err != nil {
			telemetry.Warn("skipping unflattenable document", map[string]any{
				"document_id": doc.ID,
				"error":       err.Error(),
			})
			continue
		}
		rows = append(rows, docRows...)
		completed++
	}
	if completed == 0 {
		return nil, ErrNoCompletedDocuments
	}

	out, err := writeWorkbook(rows)
	if err != nil {
		return nil, err
	}

	metrics.IncExportGenerated()
	telemetry.Info("excel export generated", map[string]any{
		"user_id":    ownerID,
		"documents":  completed,
		"rows":       len(rows),
		"elapsed_ms": time.Since(started).Milliseconds(),
	})
	return out, nil
}

func writeWorkbook(rows []row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for i, header := range sectionAColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("write header %q: %w", header, err)
		}
	}

	for rowIdx, r := range rows {
		for colIdx, header := range sectionAColumns {
			value, ok := r[header]
			if !ok || value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(value)); err != nil {
				return nil, fmt.Errorf("write row %d col %q: %w", rowIdx+2, header, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue keeps JSON scalars as-is and stringifies anything structured so
// a surprising nested value never breaks the sheet.
func cellValue(value any) any {
	switch v := value.(type) {
	case string, float64, bool, int, int64, nil:
		return v
	default:
		return fmt.Sprint(v)
	}
}
