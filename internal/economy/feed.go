package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/PetBot_Go/internal/domain"
	"github.com/osse101/PetBot_Go/internal/event"
	"github.com/osse101/PetBot_Go/internal/logger"
	"github.com/osse101/PetBot_Go/internal/repository"
)

// Feed consumes one food item from the backpack, raising satiety and mood
// up to the cap, and stamps the feeding time.
func (s *service) Feed(ctx context.Context, key domain.PetKey, itemName string) (*FeedResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFeedCalled, "pet", key.String(), "item", itemName)

	item, err := s.lookupItem(itemName)
	if err != nil {
		return nil, err
	}
	if !item.IsFood() {
		return nil, fmt.Errorf(ErrMsgNotFoodFmt, item.Name, domain.ErrNotFood)
	}

	tx, err := s.repo.BeginTx(ctx, key)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	pet, err := tx.GetPet(ctx, key)
	if err != nil {
		return nil, err
	}

	remaining, err := tx.AddInventory(ctx, key, item.Name, -FeedQuantity)
	if errors.Is(err, domain.ErrOutOfStock) {
		return nil, fmt.Errorf(ErrMsgOutOfStockFmt, item.Name, domain.ErrOutOfStock)
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	satiety := domain.ClampStat(pet.Satiety + item.SatietyGain)
	mood := domain.ClampStat(pet.Mood + item.MoodGain)
	update := domain.PetUpdate{
		Satiety:   domain.Int(satiety),
		Mood:      domain.Int(mood),
		LastFedAt: domain.Time(now),
	}
	if err := tx.UpdatePet(ctx, key, update); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgFeedFailed, "pet", key.String(), "error", err)
		return nil, err
	}

	s.publish(ctx, event.NewPetFedEvent(key, item.Name, satiety, mood, now))
	log.Info(LogMsgPetFed, "pet", key.String(), "item", item.Name, "satiety", satiety, "mood", mood)

	return &FeedResult{
		Item:        item,
		SatietyGain: satiety - pet.Satiety,
		MoodGain:    mood - pet.Mood,
		Satiety:     satiety,
		Mood:        mood,
		Remaining:   remaining,
	}, nil
}
