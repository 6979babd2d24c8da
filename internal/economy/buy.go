package economy

import (
	"context"
	"fmt"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/logger"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// Purchase deducts price×quantity from the pet's money and adds the items to
// its backpack in one transaction.
func (s *service) Purchase(ctx context.Context, key domain.PetKey, itemName string, quantity int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "pet", key.String(), "item", itemName, "quantity", quantity)

	// 1. Validate request
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	item, err := s.lookupItem(itemName)
	if err != nil {
		return nil, err
	}
	cost := item.Price * quantity

	// 2. Begin transaction
	tx, err := s.repo.BeginTx(ctx, key)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	// 3. Check funds
	pet, err := tx.GetPet(ctx, key)
	if err != nil {
		return nil, err
	}
	if pet.Money < cost {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, cost, pet.Money, domain.ErrInsufficientFunds)
	}

	// 4. Apply
	remaining := pet.Money - cost
	if err := tx.UpdatePet(ctx, key, domain.PetUpdate{Money: domain.Int(remaining)}); err != nil {
		return nil, err
	}
	owned, err := tx.AddInventory(ctx, key, item.Name, quantity)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgPurchaseFailed, "pet", key.String(), "error", err)
		return nil, err
	}

	s.publish(ctx, event.NewItemPurchasedEvent(key, item.Name, quantity, cost, s.now()))
	log.Info(LogMsgItemPurchased, "pet", key.String(), "item", item.Name, "quantity", quantity, "cost", cost)

	return &PurchaseResult{
		Item:           item,
		Quantity:       quantity,
		TotalCost:      cost,
		RemainingMoney: remaining,
		Owned:          owned,
	}, nil
}
