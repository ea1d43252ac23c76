package repository

import (
	"context"
	"fmt"

	"portfolio/internal/domain/models"
	"portfolio/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var galleryColumns = []string{
	"id", "title", "image_url", "caption", "category", "featured", "created_at", "updated_at",
}

type GalleryRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateGalleryItem inserts an item and returns its ID.
func (r *GalleryRepo) CreateGalleryItem(ctx context.Context, item models.GalleryItem) (uuid.UUID, error) {
	const op = "repository.GalleryRepo.CreateGalleryItem"

	query, args, err := r.sb.Insert("gallery_items").
		Columns(
			"title",
			"image_url",
			"caption",
			"category",
			"featured",
			"created_at",
			"updated_at",
		).
		Values(
			item.Title,
			item.ImageURL,
			item.Caption,
			item.Category,
			item.Featured,
			item.CreatedAt,
			item.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, conflict(op, err)
	}

	return id, nil
}

func (r *GalleryRepo) GetGalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	const op = "repository.GalleryRepo.GetGalleryItemByID"

	query, args, err := r.sb.Select(galleryColumns...).
		From("gallery_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := scanGalleryItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(op, err)
	}

	return &item, nil
}

func (r *GalleryRepo) GetGalleryItems(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryItem, error) {
	const op = "repository.GalleryRepo.GetGalleryItems"

	builder := r.sb.Select(galleryColumns...).
		From("gallery_items").
		OrderBy("created_at DESC")

	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Featured != nil {
		builder = builder.Where(squirrel.Eq{"featured": *filter.Featured})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.GalleryItem, 0)
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (r *GalleryRepo) UpdateGalleryItem(ctx context.Context, item models.GalleryItem) error {
	const op = "repository.GalleryRepo.UpdateGalleryItem"

	query, args, err := r.sb.Update("gallery_items").
		Set("title", item.Title).
		Set("image_url", item.ImageURL).
		Set("caption", item.Caption).
		Set("category", item.Category).
		Set("featured", item.Featured).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return conflict(op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *GalleryRepo) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	const op = "repository.GalleryRepo.DeleteGalleryItem"

	query, args, err := r.sb.Delete("gallery_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func scanGalleryItem(row scanner) (models.GalleryItem, error) {
	var item models.GalleryItem
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.ImageURL,
		&item.Caption,
		&item.Category,
		&item.Featured,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}
