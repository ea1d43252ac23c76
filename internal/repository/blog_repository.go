package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var blogColumns = []string{
	"id", "title", "slug", "excerpt", "content", "cover_image",
	"category", "tags", "featured", "published", "created_at", "updated_at",
}

type BlogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func (b *BlogRepo) SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	const op = "repository.blog_repository.SaveBlogPost"

	query, args, err := b.sb.Insert("blog_posts").
		Columns(
			"title",
			"slug",
			"excerpt",
			"content",
			"cover_image",
			"category",
			"tags",
			"featured",
			"published",
			"created_at",
			"updated_at",
		).
		Values(
			post.Title,
			post.Slug,
			post.Excerpt,
			post.Content,
			post.CoverImage,
			post.Category,
			emptyIfNil(post.Tags),
			post.Featured,
			post.Published,
			post.CreatedAt,
			post.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := b.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, conflict(op, err)
	}

	return id, nil
}

func (b *BlogRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	const op = "repository.blog_repository.SlugExists"

	query, args, err := b.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("blog_posts").
		Where(sq.Eq{"slug": slug}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var exists bool
	if err := b.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (b *BlogRepo) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	const op = "repository.blog_repository.GetBlogPostBySlug"

	query, args, err := b.sb.Select(blogColumns...).
		From("blog_posts").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post, err := scanBlogPost(b.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(op, err)
	}

	return &post, nil
}

func (b *BlogRepo) GetBlogPosts(ctx context.Context, filter models.BlogPostFilter) ([]models.BlogPost, error) {
	const op = "repository.blog_repository.GetBlogPosts"

	builder := b.sb.Select(blogColumns...).
		From("blog_posts").
		OrderBy("created_at DESC")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Tag != "" {
		builder = builder.Where(sq.Expr("? = ANY(tags)", filter.Tag))
	}
	if filter.Published != nil {
		builder = builder.Where(sq.Eq{"published": *filter.Published})
	}
	if filter.Featured != nil {
		builder = builder.Where(sq.Eq{"featured": *filter.Featured})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := b.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	posts := make([]models.BlogPost, 0)
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

// UpdateBlogPost overwrites every mutable column of the post identified by ID.
// The slug is never written.
func (b *BlogRepo) UpdateBlogPost(ctx context.Context, post models.BlogPost) error {
	const op = "repository.blog_repository.UpdateBlogPost"

	query, args, err := b.sb.Update("blog_posts").
		Set("title", post.Title).
		Set("excerpt", post.Excerpt).
		Set("content", post.Content).
		Set("cover_image", post.CoverImage).
		Set("category", post.Category).
		Set("tags", emptyIfNil(post.Tags)).
		Set("featured", post.Featured).
		Set("published", post.Published).
		Set("updated_at", post.UpdatedAt).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return conflict(op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (b *BlogRepo) UpdateBlogPostFields(ctx context.Context, slug string, updates map[string]interface{}) error {
	const op = "repository.blog_repository.UpdateBlogPostFields"

	allowedFields := map[string]bool{
		"published": true,
		"featured":  true,
	}

	if len(updates) == 0 {
		return fmt.Errorf("%s: no fields to update", op)
	}

	updateBuilder := b.sb.Update("blog_posts").
		Set("updated_at", time.Now().UTC())

	for field, value := range updates {
		if !allowedFields[field] {
			return fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	query, args, err := updateBuilder.Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (b *BlogRepo) DeleteBlogPost(ctx context.Context, slug string) error {
	const op = "repository.blog_repository.DeleteBlogPost"

	query, args, err := b.sb.Delete("blog_posts").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := b.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func scanBlogPost(row scanner) (models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.Category,
		&post.Tags,
		&post.Featured,
		&post.Published,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}
