package documents

import "context"

// Repo defines persistence operations for documents. All reads are scoped
// to an owner; ids belonging to other owners are treated as absent.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, ownerID, documentID string) (Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Document, error)
	ListByOwnerAndIDs(ctx context.Context, ownerID string, ids []string) ([]Document, error)
}
