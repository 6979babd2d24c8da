package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Advisory lock key derivation
const (
	advisoryKeyMask = 0x7FFFFFFFFFFFFFFF
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToAcquireLock      = "failed to acquire pet lock"
	ErrMsgFailedToCommit           = "failed to commit transaction"
	ErrMsgFailedToRollback         = "failed to rollback transaction"
)

// Error Messages - Pet Operations
const (
	ErrMsgFailedToGetPet          = "failed to get pet"
	ErrMsgFailedToCreatePet       = "failed to create pet"
	ErrMsgFailedToUpdatePet       = "failed to update pet"
	ErrMsgFailedToPersistDecay    = "failed to persist decay"
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToGetItemQuantity = "failed to get item quantity"
	ErrMsgFailedToWriteInventory  = "failed to write inventory"
)

const petColumns = `owner_id, community_id, name, species_id, level, experience, stage,
	mood, satiety, attack, defense, money,
	last_fed_at, last_explored_at, last_duel_at, last_decay_applied_at, created_at`

const (
	queryAdvisoryLock = `SELECT pg_advisory_xact_lock($1)`

	querySelectPet = `SELECT ` + petColumns + ` FROM pets WHERE owner_id = $1 AND community_id = $2`

	queryInsertPet = `INSERT INTO pets (` + petColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	queryUpdatePet = `UPDATE pets SET
		level = COALESCE($3, level),
		experience = COALESCE($4, experience),
		stage = COALESCE($5, stage),
		mood = COALESCE($6, mood),
		satiety = COALESCE($7, satiety),
		attack = COALESCE($8, attack),
		defense = COALESCE($9, defense),
		money = COALESCE($10, money),
		last_fed_at = COALESCE($11, last_fed_at),
		last_explored_at = COALESCE($12, last_explored_at),
		last_duel_at = COALESCE($13, last_duel_at),
		last_decay_applied_at = COALESCE($14, last_decay_applied_at)
	WHERE owner_id = $1 AND community_id = $2`

	queryPersistDecay = `UPDATE pets SET satiety = $3, mood = $4, last_decay_applied_at = $5
	WHERE owner_id = $1 AND community_id = $2`

	querySelectInventory = `SELECT item_name, quantity FROM pet_inventory
	WHERE owner_id = $1 AND community_id = $2 ORDER BY item_name`

	querySelectQuantity = `SELECT quantity FROM pet_inventory
	WHERE owner_id = $1 AND community_id = $2 AND item_name = $3`

	queryInsertItem = `INSERT INTO pet_inventory (owner_id, community_id, item_name, quantity)
	VALUES ($1, $2, $3, $4)`

	queryUpdateItem = `UPDATE pet_inventory SET quantity = $4
	WHERE owner_id = $1 AND community_id = $2 AND item_name = $3`

	queryDeleteItem = `DELETE FROM pet_inventory
	WHERE owner_id = $1 AND community_id = $2 AND item_name = $3`
)
