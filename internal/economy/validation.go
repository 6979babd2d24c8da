package economy

import (
	"fmt"

	"github.com/osse101/PetBot_Go/internal/catalog"
	"github.com/osse101/PetBot_Go/internal/domain"
)

// validateQuantity validates the purchase quantity
func validateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidQuantity)
	}
	if quantity > MaxPurchaseQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, MaxPurchaseQuantity, domain.ErrInvalidQuantity)
	}
	return nil
}

// lookupItem resolves a shop item by name
func (s *service) lookupItem(name string) (catalog.ShopItem, error) {
	item, ok := s.catalog.Item(name)
	if !ok {
		return catalog.ShopItem{}, fmt.Errorf(ErrMsgItemNotFoundFmt, name, domain.ErrItemNotFound)
	}
	return item, nil
}
