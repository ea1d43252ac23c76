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

var contactColumns = []string{"id", "name", "email", "subject", "message", "read", "created_at"}

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *ContactRepo) SaveContact(ctx context.Context, contact models.Contact) (uuid.UUID, error) {
	const op = "repository.contact_repository.SaveContact"

	query, args, err := r.sb.Insert("contacts").
		Columns("name", "email", "subject", "message", "read", "created_at").
		Values(contact.Name, contact.Email, contact.Subject, contact.Message, contact.Read, contact.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ContactRepo) GetContactByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	const op = "repository.contact_repository.GetContactByID"

	query, args, err := r.sb.Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contact, err := scanContact(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(op, err)
	}

	return &contact, nil
}

func (r *ContactRepo) GetContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	const op = "repository.contact_repository.GetContacts"

	builder := r.sb.Select(contactColumns...).
		From("contacts").
		OrderBy("created_at DESC")

	if filter.Read != nil {
		builder = builder.Where(sq.Eq{"read": *filter.Read})
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

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}

func (r *ContactRepo) SetRead(ctx context.Context, id uuid.UUID, read bool) error {
	const op = "repository.contact_repository.SetRead"

	query, args, err := r.sb.Update("contacts").
		Set("read", read).
		Where(sq.Eq{"id": id}).
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

func (r *ContactRepo) DeleteContact(ctx context.Context, id uuid.UUID) error {
	const op = "repository.contact_repository.DeleteContact"

	query, args, err := r.sb.Delete("contacts").
		Where(sq.Eq{"id": id}).
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

func scanContact(row scanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Read, &c.CreatedAt)
	return c, err
}
