package catalog

// CategoryFood is the only shop category a pet can be fed from
const CategoryFood = "food"

// PetNamePlaceholder is replaced with the pet's name in event descriptions
const PetNamePlaceholder = "{pet_name}"

const (
	ErrMsgInvalidCatalog   = "invalid catalog: %w"
	ErrMsgDecodeCatalog    = "failed to decode catalog: %w"
	ErrMsgReadCatalog      = "failed to read catalog %s: %w"
	ErrMsgDuplicateSpecies = "duplicate species %q"
	ErrMsgDuplicateItem    = "duplicate shop item %q"
	ErrMsgUnreachableStage = "species %q: stage %d follows a final form"
	ErrMsgMissingNextStage = "species %q: stage %d has an evolve level but no next stage"
)
