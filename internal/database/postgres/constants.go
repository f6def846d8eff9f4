package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is raised when an item references a missing actor
	PgErrorCodeForeignKeyViolation = "23503"
)

// Queries
const (
	queryActorExists = `SELECT EXISTS(SELECT 1 FROM actors WHERE actor_id = $1)`

	queryGetActor = `SELECT actor_id, name FROM actors WHERE actor_id = $1`

	queryLockActor = `SELECT actor_id FROM actors WHERE actor_id = $1 FOR UPDATE`

	queryUpsertActor = `
		INSERT INTO actors (actor_id, name) VALUES ($1, $2)
		ON CONFLICT (actor_id) DO UPDATE SET name = EXCLUDED.name`

	queryListItems = `
		SELECT item_id, name, item_type, quantity, description
		FROM actor_items
		WHERE actor_id = $1
		ORDER BY seq`

	queryUpdateQuantity = `
		UPDATE actor_items SET quantity = $1, updated_at = NOW()
		WHERE actor_id = $2 AND item_id = $3`

	queryInsertItem = `
		INSERT INTO actor_items (item_id, actor_id, name, item_type, quantity, description)
		VALUES ($1, $2, $3, $4, $5, $6)`
)

// Error messages
const (
	ErrMsgBeginTxFailed     = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed    = "failed to commit transaction: %w"
	ErrMsgLockActorFailed   = "failed to lock actor: %w"
	ErrMsgCheckActorFailed  = "failed to check actor: %w"
	ErrMsgQueryItemsFailed  = "failed to query items: %w"
	ErrMsgScanItemFailed    = "failed to scan item: %w"
	ErrMsgUpdateItemFailed  = "failed to update item %s: %w"
	ErrMsgInsertItemFailed  = "failed to insert item %s: %w"
	ErrMsgUpsertActorFailed = "failed to upsert actor: %w"
	ErrMsgGetActorFailed    = "failed to get actor: %w"
	ErrMsgCloseBatchFailed  = "failed to close batch: %w"
)
