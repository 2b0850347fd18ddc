package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	apperrors "employee-directory/pkg/errors"
)

const documentsTable = "documents"

// Document is one record of a collection: the store-generated id plus the
// persisted fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// DocumentRepositoryInterface is the narrow seam to the document store. The
// backing implementation (Postgres JSONB here, an in-memory map in tests) is
// immaterial to callers.
type DocumentRepositoryInterface interface {
	GetAll(ctx context.Context, collection string) ([]Document, error)
	GetByID(ctx context.Context, collection, id string) (*Document, error)
	GetByFieldValue(ctx context.Context, collection, field, value string, limit int) ([]Document, error)
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

type DocumentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDocumentRepository(storage *pgxpool.Pool, logger *zap.Logger) DocumentRepositoryInterface {
	return &DocumentRepository{storage: storage, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *DocumentRepository) GetAll(ctx context.Context, collection string) ([]Document, error) {
	query, args, err := psql.Select("id", "fields").
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, apperrors.NewRepositoryError("failed to build documents query", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewRepositoryError(fmt.Sprintf("failed to query collection %s", collection), err)
	}
	defer rows.Close()

	return scanDocuments(rows, collection)
}

func (r *DocumentRepository) GetByID(ctx context.Context, collection, id string) (*Document, error) {
	query, args, err := psql.Select("id", "fields").
		From(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, apperrors.NewRepositoryError("failed to build document query", err)
	}

	doc := Document{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(&doc.ID, &doc.Fields)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewDocumentNotFoundError(collection, id)
	}
	if err != nil {
		return nil, apperrors.NewRepositoryError(fmt.Sprintf("failed to read document %s from collection %s", id, collection), err)
	}

	return &doc, nil
}

func (r *DocumentRepository) GetByFieldValue(ctx context.Context, collection, field, value string, limit int) ([]Document, error) {
	builder := psql.Select("id", "fields").
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		Where(sq.Expr("fields->>? = ?", field, value)).
		OrderBy("created_at")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperrors.NewRepositoryError("failed to build field filter query", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewRepositoryError(fmt.Sprintf("failed to query collection %s by %s", collection, field), err)
	}
	defer rows.Close()

	return scanDocuments(rows, collection)
}

func (r *DocumentRepository) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()

	query, args, err := psql.Insert(documentsTable).
		Columns("id", "collection", "fields").
		Values(id, collection, fields).
		ToSql()
	if err != nil {
		return "", apperrors.NewRepositoryError("failed to build insert query", err)
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return "", apperrors.NewRepositoryError(fmt.Sprintf("failed to create document in collection %s", collection), err)
	}

	return id, nil
}

func (r *DocumentRepository) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	// Partial update: the patch is merged over the stored fields, unspecified
	// fields stay untouched.
	query, args, err := psql.Update(documentsTable).
		Set("fields", sq.Expr("fields || ?", fields)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return apperrors.NewRepositoryError("failed to build update query", err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewRepositoryError(fmt.Sprintf("failed to update document %s in collection %s", id, collection), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewDocumentNotFoundError(collection, id)
	}

	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, collection, id string) error {
	query, args, err := psql.Delete(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return apperrors.NewRepositoryError("failed to build delete query", err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewRepositoryError(fmt.Sprintf("failed to delete document %s from collection %s", id, collection), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewDocumentNotFoundError(collection, id)
	}

	return nil
}

func scanDocuments(rows pgx.Rows, collection string) ([]Document, error) {
	docs := make([]Document, 0)
	for rows.Next() {
		doc := Document{}
		if err := rows.Scan(&doc.ID, &doc.Fields); err != nil {
			return nil, apperrors.NewRepositoryError(fmt.Sprintf("failed to scan document from collection %s", collection), err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewRepositoryError(fmt.Sprintf("failed to iterate collection %s", collection), err)
	}

	return docs, nil
}
