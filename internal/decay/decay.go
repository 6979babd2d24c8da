// Package decay computes the time-based attrition of a pet's satiety and mood.
package decay

import (
	"time"

	"github.com/osse101/PetBot_Go/internal/domain"
)

const (
	// SatietyPerHour is lost for every whole hour since the last application
	SatietyPerHour = 3
	// MoodPerHour is lost for every whole hour since the last application
	MoodPerHour = 2
)

// Apply returns satiety and mood after hours of decay, floored at zero
func Apply(satiety, mood, hours int) (int, int) {
	if hours <= 0 {
		return satiety, mood
	}
	return max(domain.MinStat, satiety-SatietyPerHour*hours),
		max(domain.MinStat, mood-MoodPerHour*hours)
}

// ElapsedHours counts whole hours from last to now. A clock behind last
// yields zero.
func ElapsedHours(last, now time.Time) int {
	if !now.After(last) {
		return 0
	}
	return int(now.Sub(last) / time.Hour)
}

// Resolve applies pending decay to p in place and returns the hours consumed.
// LastDecayAppliedAt advances by exactly those hours so the fractional
// remainder carries over to the next read.
func Resolve(p *domain.Pet, now time.Time) int {
	hours := ElapsedHours(p.LastDecayAppliedAt, now)
	if hours == 0 {
		return 0
	}
	p.Satiety, p.Mood = Apply(p.Satiety, p.Mood, hours)
	p.LastDecayAppliedAt = p.LastDecayAppliedAt.Add(time.Duration(hours) * time.Hour)
	return hours
}
