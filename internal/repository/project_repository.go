package repository

import (
	"context"
	"fmt"

	"portfolio/internal/domain/models"
	"portfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var projectColumns = []string{
	"id", "title", "slug", "description", "content", "technologies",
	"image", "demo_url", "github_url", "featured", "created_at", "updated_at",
}

type ProjectRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *ProjectRepo) SaveProject(ctx context.Context, project models.Project) (uuid.UUID, error) {
	const op = "repository.project_repository.SaveProject"

	query, args, err := r.sb.Insert("projects").
		Columns(
			"title",
			"slug",
			"description",
			"content",
			"technologies",
			"image",
			"demo_url",
			"github_url",
			"featured",
			"created_at",
			"updated_at",
		).
		Values(
			project.Title,
			project.Slug,
			project.Description,
			project.Content,
			emptyIfNil(project.Technologies),
			project.Image,
			project.DemoURL,
			project.GithubURL,
			project.Featured,
			project.CreatedAt,
			project.UpdatedAt,
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

func (r *ProjectRepo) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	const op = "repository.project_repository.GetProjectBySlug"

	query, args, err := r.sb.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	project, err := scanProject(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(op, err)
	}

	return &project, nil
}

func (r *ProjectRepo) GetProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	const op = "repository.project_repository.GetProjects"

	builder := r.sb.Select(projectColumns...).
		From("projects").
		OrderBy("created_at DESC")

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

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return projects, nil
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, project models.Project) error {
	const op = "repository.project_repository.UpdateProject"

	query, args, err := r.sb.Update("projects").
		Set("title", project.Title).
		Set("description", project.Description).
		Set("content", project.Content).
		Set("technologies", emptyIfNil(project.Technologies)).
		Set("image", project.Image).
		Set("demo_url", project.DemoURL).
		Set("github_url", project.GithubURL).
		Set("featured", project.Featured).
		Set("updated_at", project.UpdatedAt).
		Where(sq.Eq{"id": project.ID}).
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

func (r *ProjectRepo) DeleteProject(ctx context.Context, slug string) error {
	const op = "repository.project_repository.DeleteProject"

	query, args, err := r.sb.Delete("projects").
		Where(sq.Eq{"slug": slug}).
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

func scanProject(row scanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.Content,
		&p.Technologies,
		&p.Image,
		&p.DemoURL,
		&p.GithubURL,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
