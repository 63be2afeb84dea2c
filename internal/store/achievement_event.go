package store

import (
	"context"
	"fmt"

	"github.com/abhisek/idiomaster/ent/achievementevent"
)

func (r *eventRepo) AppendAchievement(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetAchievementID(data.AchievementID).
		SetUserID(data.UserID).
		SetName(data.Name).
		SetRarity(data.Rarity).
		SetXpReward(data.XPReward)

	if data.SessionID != nil {
		builder = builder.SetSessionID(*data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) AchievementCounts(ctx context.Context, userID string) (map[string]int, int, error) {
	events, err := r.client.AchievementEvent.Query().
		Where(achievementevent.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query achievement events: %w", err)
	}

	byRarity := make(map[string]int)
	for _, e := range events {
		byRarity[e.Rarity]++
	}
	return byRarity, len(events), nil
}
