package pet

// Error message format strings
const (
	ErrMsgSpeciesNotFoundFmt = "species %q: %w"
	ErrMsgMissingKeyFmt      = "owner and community ids are required: %w"
	ErrMsgNameTooLongFmt     = "name longer than %d characters: %w"
	ErrMsgEmptyCatalog       = "catalog has no species: %w"
)

// MaxNameLength bounds pet names in runes
const MaxNameLength = 32

// Log messages
const (
	LogMsgAdoptCalled  = "Adopt called"
	LogMsgPetAdopted   = "Pet adopted"
	LogMsgEvolveCalled = "Evolve called"
	LogMsgPetEvolved   = "Pet evolved"
	LogMsgEvolveFailed = "Failed to commit evolution"
	LogMsgAdoptFailed  = "Failed to create pet"
)
