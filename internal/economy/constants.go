package economy

// MaxPurchaseQuantity caps a single purchase
const MaxPurchaseQuantity = 99

// FeedQuantity is how many units one feeding consumes
const FeedQuantity = 1

// ==================== Error Messages ====================

const (
	ErrMsgItemNotFoundFmt       = "item %q: %w"
	ErrMsgInvalidQuantityFmt    = "invalid quantity %d: %w"
	ErrMsgQuantityExceedsMaxFmt = "quantity %d exceeds maximum allowed (%d): %w"
	ErrMsgInsufficientFundsFmt  = "need %d, have %d: %w"
	ErrMsgNotFoodFmt            = "%q is not food: %w"
	ErrMsgOutOfStockFmt         = "no %q in backpack: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPurchaseCalled = "Purchase called"
	LogMsgItemPurchased  = "Item purchased"
	LogMsgFeedCalled     = "Feed called"
	LogMsgPetFed         = "Pet fed"
	LogMsgPurchaseFailed = "Purchase failed"
	LogMsgFeedFailed     = "Feed failed"
)
