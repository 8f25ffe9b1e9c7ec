package client

import (
	"fmt"
	"math"
	"sort"

	"github.com/hopfield/habitrabbit/pkg/entity"
)

// WeeklyRate is a derived, presentation-side view: completion percentage of
// one ISO week of history. Weeks without entries are simply absent.
type WeeklyRate struct {
	Week           string  `json:"week"`
	CompletedCount int     `json:"completed_count"`
	TotalEntries   int     `json:"total_entries"`
	CompletionRate float64 `json:"completion_rate"`
}

// Summary aggregates a habit's whole history window.
type Summary struct {
	TotalDays      int     `json:"total_days"`
	CompletedDays  int     `json:"completed_days"`
	CompletionRate float64 `json:"completion_rate"`
}

// WeeklyRates groups history entries by ISO week and computes
// completed/total*100 per week, rounded to one decimal, ascending by week.
func WeeklyRates(entries []entity.HabitEntry) []WeeklyRate {
	buckets := make(map[string]*WeeklyRate)
	for _, e := range entries {
		year, week := e.Date.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		b, ok := buckets[key]
		if !ok {
			b = &WeeklyRate{Week: key}
			buckets[key] = b
		}
		b.TotalEntries++
		if e.Completed {
			b.CompletedCount++
		}
	}
	rates := make([]WeeklyRate, 0, len(buckets))
	for _, b := range buckets {
		b.CompletionRate = roundRate(float64(b.CompletedCount) / float64(b.TotalEntries) * 100)
		rates = append(rates, *b)
	}
	// Keys are zero padded, lexicographic order is chronological
	sort.Slice(rates, func(i, j int) bool { return rates[i].Week < rates[j].Week })
	return rates
}

// Summarize computes totals over the history window.
func Summarize(entries []entity.HabitEntry) Summary {
	s := Summary{TotalDays: len(entries)}
	for _, e := range entries {
		if e.Completed {
			s.CompletedDays++
		}
	}
	if s.TotalDays > 0 {
		s.CompletionRate = roundRate(float64(s.CompletedDays) / float64(s.TotalDays) * 100)
	}
	return s
}

func roundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}
