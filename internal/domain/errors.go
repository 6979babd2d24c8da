package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Pet errors
	ErrMsgPetNotFound      = "pet not found"
	ErrMsgPetAlreadyExists = "pet already exists"
	ErrMsgSpeciesNotFound  = "species not found"

	// Invariant errors
	ErrMsgInvalidLevel      = "level must be at least 1"
	ErrMsgInvalidExperience = "experience must not be negative"
	ErrMsgInvalidStage      = "evolution stage out of range"
	ErrMsgStatOutOfRange    = "mood and satiety must stay within 0-100"
	ErrMsgNegativeMoney     = "money must not be negative"

	// Progression errors
	ErrMsgAlreadyFinalForm = "pet is already in its final form"
	ErrMsgLevelTooLow      = "level too low to evolve"

	// Economy errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgOutOfStock        = "item out of stock"
	ErrMsgNotFood           = "item is not food"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity"
	ErrMsgInvalidInput    = "invalid input"

	// Duel errors
	ErrMsgSelfDuel = "cannot duel yourself"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Database/System errors
	ErrMsgStorageFailure = "storage failure"
	ErrMsgKeyNotLocked   = "pet key not locked by transaction"
	ErrMsgTxClosed       = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Pet errors
	ErrPetNotFound      = errors.New(ErrMsgPetNotFound)
	ErrPetAlreadyExists = errors.New(ErrMsgPetAlreadyExists)
	ErrSpeciesNotFound  = errors.New(ErrMsgSpeciesNotFound)

	// Invariant errors
	ErrInvalidLevel      = errors.New(ErrMsgInvalidLevel)
	ErrInvalidExperience = errors.New(ErrMsgInvalidExperience)
	ErrInvalidStage      = errors.New(ErrMsgInvalidStage)
	ErrStatOutOfRange    = errors.New(ErrMsgStatOutOfRange)
	ErrNegativeMoney     = errors.New(ErrMsgNegativeMoney)

	// Progression errors
	ErrAlreadyFinalForm = errors.New(ErrMsgAlreadyFinalForm)
	ErrLevelTooLow      = errors.New(ErrMsgLevelTooLow)

	// Economy errors
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrOutOfStock        = errors.New(ErrMsgOutOfStock)
	ErrNotFood           = errors.New(ErrMsgNotFood)
	ErrInvalidQuantity   = errors.New("invalid " + ErrMsgInvalidQuantity)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Duel errors
	ErrSelfDuel = errors.New(ErrMsgSelfDuel)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Database/System errors
	ErrStorageFailure = errors.New(ErrMsgStorageFailure)
	ErrKeyNotLocked   = errors.New(ErrMsgKeyNotLocked)
	ErrTxClosed       = errors.New(ErrMsgTxClosed)
)
