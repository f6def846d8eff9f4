package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/repository"
)

// ItemStore implements repository.ItemStore on PostgreSQL
type ItemStore struct {
	db *pgxpool.Pool
}

// NewItemStore creates a new ItemStore
func NewItemStore(db *pgxpool.Pool) *ItemStore {
	return &ItemStore{db: db}
}

// UpsertActor creates the actor or renames an existing one
func (s *ItemStore) UpsertActor(ctx context.Context, actor domain.Actor) error {
	if _, err := s.db.Exec(ctx, queryUpsertActor, actor.ID, actor.Name); err != nil {
		return fmt.Errorf(ErrMsgUpsertActorFailed, err)
	}
	return nil
}

// GetActor returns the actor or domain.ErrActorNotFound
func (s *ItemStore) GetActor(ctx context.Context, actorID string) (*domain.Actor, error) {
	var actor domain.Actor
	err := s.db.QueryRow(ctx, queryGetActor, actorID).Scan(&actor.ID, &actor.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetActorFailed, err)
	}
	return &actor, nil
}

// ListItems implements repository.ItemStore
func (s *ItemStore) ListItems(ctx context.Context, actorID string) ([]domain.Item, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, queryActorExists, actorID).Scan(&exists); err != nil {
		return nil, fmt.Errorf(ErrMsgCheckActorFailed, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}

	rows, err := s.db.Query(ctx, queryListItems, actorID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryItemsFailed, err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Type, &it.Quantity, &it.Description); err != nil {
			return nil, fmt.Errorf(ErrMsgScanItemFailed, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQueryItemsFailed, err)
	}
	return items, nil
}

// UpdateItems implements repository.ItemStore. All updates are sent as one batch
// inside a transaction holding the actor row lock; any miss rolls the batch back.
func (s *ItemStore) UpdateItems(ctx context.Context, actorID string, updates []domain.ItemUpdate) error {
	for _, u := range updates {
		if u.Field != domain.FieldQuantity {
			return fmt.Errorf("%w: unsupported field %q", domain.ErrInvalidInput, u.Field)
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := lockActor(ctx, tx, actorID); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(queryUpdateQuantity, u.Value, actorID, u.ItemID)
	}

	br := tx.SendBatch(ctx, batch)
	for _, u := range updates {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return fmt.Errorf(ErrMsgUpdateItemFailed, u.ItemID, err)
		}
		if tag.RowsAffected() == 0 {
			_ = br.Close()
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, u.ItemID)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf(ErrMsgCloseBatchFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return nil
}

// CreateItems implements repository.ItemStore
func (s *ItemStore) CreateItems(ctx context.Context, actorID string, items []domain.ItemDescriptor) ([]domain.Item, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := lockActor(ctx, tx, actorID); err != nil {
		return nil, err
	}

	created := make([]domain.Item, 0, len(items))
	batch := &pgx.Batch{}
	for _, d := range items {
		it := domain.Item{
			ID:          uuid.NewString(),
			Name:        d.Name,
			Type:        d.Type,
			Quantity:    domain.IntPtr(d.Quantity),
			Description: d.Description,
		}
		batch.Queue(queryInsertItem, it.ID, actorID, it.Name, it.Type, d.Quantity, it.Description)
		created = append(created, it)
	}

	br := tx.SendBatch(ctx, batch)
	for _, it := range created {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation {
				return nil, fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
			}
			return nil, fmt.Errorf(ErrMsgInsertItemFailed, it.Name, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf(ErrMsgCloseBatchFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return created, nil
}

// lockActor takes the actor row lock so concurrent batches for one actor serialize
func lockActor(ctx context.Context, tx pgx.Tx, actorID string) error {
	var id string
	err := tx.QueryRow(ctx, queryLockActor, actorID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrActorNotFound, actorID)
	}
	if err != nil {
		return fmt.Errorf(ErrMsgLockActorFailed, err)
	}
	return nil
}
