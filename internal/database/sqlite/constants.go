package sqlite

// Driver and connection settings
const (
	DriverName = "sqlite"
	dsnParams  = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_txlock=immediate"
)

// Error Messages
const (
	ErrMsgPathRequired    = "sqlite path is required"
	ErrMsgOpenDB          = "open sqlite db"
	ErrMsgPingDB          = "ping sqlite db"
	ErrMsgRunMigrations   = "run migrations"
	ErrMsgBeginTx         = "begin transaction"
	ErrMsgGetPet          = "get pet"
	ErrMsgCreatePet       = "create pet"
	ErrMsgUpdatePet       = "update pet"
	ErrMsgPersistDecay    = "persist decay"
	ErrMsgGetInventory    = "get inventory"
	ErrMsgGetItemQuantity = "get item quantity"
	ErrMsgWriteInventory  = "write inventory"
	ErrMsgCommit          = "commit"
	ErrMsgRollback        = "rollback"
)

const petColumns = `owner_id, community_id, name, species_id, level, experience, stage,
	mood, satiety, attack, defense, money,
	last_fed_at, last_explored_at, last_duel_at, last_decay_applied_at, created_at`

const (
	querySelectPet = `SELECT ` + petColumns + ` FROM pets WHERE owner_id = ? AND community_id = ?`

	queryInsertPet = `INSERT INTO pets (` + petColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryUpdatePet = `UPDATE pets SET
		level = COALESCE(?, level),
		experience = COALESCE(?, experience),
		stage = COALESCE(?, stage),
		mood = COALESCE(?, mood),
		satiety = COALESCE(?, satiety),
		attack = COALESCE(?, attack),
		defense = COALESCE(?, defense),
		money = COALESCE(?, money),
		last_fed_at = COALESCE(?, last_fed_at),
		last_explored_at = COALESCE(?, last_explored_at),
		last_duel_at = COALESCE(?, last_duel_at),
		last_decay_applied_at = COALESCE(?, last_decay_applied_at)
	WHERE owner_id = ? AND community_id = ?`

	queryPersistDecay = `UPDATE pets SET satiety = ?, mood = ?, last_decay_applied_at = ?
	WHERE owner_id = ? AND community_id = ?`

	querySelectInventory = `SELECT item_name, quantity FROM pet_inventory
	WHERE owner_id = ? AND community_id = ? ORDER BY item_name`

	querySelectQuantity = `SELECT quantity FROM pet_inventory
	WHERE owner_id = ? AND community_id = ? AND item_name = ?`

	queryInsertItem = `INSERT INTO pet_inventory (owner_id, community_id, item_name, quantity)
	VALUES (?, ?, ?, ?)`

	queryUpdateItem = `UPDATE pet_inventory SET quantity = ?
	WHERE owner_id = ? AND community_id = ? AND item_name = ?`

	queryDeleteItem = `DELETE FROM pet_inventory
	WHERE owner_id = ? AND community_id = ? AND item_name = ?`
)
