package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const docColumns = "id, owner_id, file_name, file_url, status, extracted_json, error_message, created_at, parsed_at"

// Create inserts a terminal document record.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, owner_id, file_name, file_url, status, extracted_json, error_message, created_at, parsed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.OwnerID,
		doc.FileName,
		nullableString(doc.FileURL),
		doc.Status,
		nullableJSON(doc.ExtractedJSON),
		nullableString(doc.ErrorMessage),
		doc.CreatedAt,
		doc.ParsedAt,
	)
	return err
}

// GetByID returns an owner's document by id. Ids that are not valid
// UUIDs cannot match a row and are treated as not found rather than
// handed to Postgres, where the uuid cast would error out.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, documentID string) (Document, error) {
	if uuid.Validate(documentID) != nil {
		return Document{}, ErrNotFound
	}
	query := fmt.Sprintf(`
SELECT %s
FROM documents
WHERE owner_id = $1 AND id = $2
LIMIT 1`, docColumns)
	return scanDocument(r.DB.QueryRowContext(ctx, query, ownerID, documentID))
}

// ListByOwner returns all of an owner's documents, newest first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Document, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM documents
WHERE owner_id = $1
ORDER BY created_at DESC, id`, docColumns)

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

// ListByOwnerAndIDs returns the owner's documents among ids, newest first.
// Unknown, foreign and malformed ids are silently omitted.
func (r *PGRepo) ListByOwnerAndIDs(ctx context.Context, ownerID string, ids []string) ([]Document, error) {
	valid := ids[:0:0]
	for _, id := range ids {
		if uuid.Validate(id) == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(valid))
	args := make([]any, 0, len(valid)+1)
	args = append(args, ownerID)
	for i, id := range valid {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}

	query := fmt.Sprintf(`
SELECT %s
FROM documents
WHERE owner_id = $1 AND id IN (%s)
ORDER BY created_at DESC, id`, docColumns, strings.Join(placeholders, ", "))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row *sql.Row) (Document, error) {
	doc, err := scanDocumentFrom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

func scanDocumentFrom(scanner rowScanner) (Document, error) {
	var doc Document
	var fileURL sql.NullString
	var extracted []byte
	var errorMessage sql.NullString
	var parsedAt sql.NullTime
	err := scanner.Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.FileName,
		&fileURL,
		&doc.Status,
		&extracted,
		&errorMessage,
		&doc.CreatedAt,
		&parsedAt,
	)
	if err != nil {
		return Document{}, err
	}
	if fileURL.Valid {
		doc.FileURL = fileURL.String
	}
	if len(extracted) > 0 {
		doc.ExtractedJSON = extracted
	}
	if errorMessage.Valid {
		doc.ErrorMessage = errorMessage.String
	}
	if parsedAt.Valid {
		doc.ParsedAt = &parsedAt.Time
	}
	return doc, nil
}

func collectDocuments(rows *sql.Rows) ([]Document, error) {
	var out []Document
	for rows.Next() {
		doc, err := scanDocumentFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableJSON(value []byte) any {
	if len(value) == 0 {
		return nil
	}
	return []byte(value)
}

var _ Repo = (*PGRepo)(nil)
