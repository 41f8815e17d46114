package queries

import (
	"context"
	"fmt"
	"time"

	"liblend/internal/domain/recommendation"
	"liblend/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	streakGapDays    = 7
	streakCapDays    = 365
	maxInsightBlurbs = 3
)

type ReadingInsights struct {
	TotalBooksRead    int                           `json:"total_books_read"`
	FavoriteGenre     string                        `json:"favorite_genre,omitempty"`
	FavoriteAuthor    string                        `json:"favorite_author,omitempty"`
	GenreDiversity    int                           `json:"genre_diversity"`
	ReadingPattern    recommendation.ReadingPattern `json:"reading_pattern"`
	ReadingStreakDays int                           `json:"reading_streak_days"`
	Insights          []string                      `json:"insights"`
}

type InsightsQueries interface {
	ForUser(ctx context.Context, userID uuid.UUID) (*ReadingInsights, error)
}

type insightsQueriesImpl struct {
	ledger LedgerReadStore
	clock  clock.Clock
}

func NewInsightsQueries(ledger LedgerReadStore, clock clock.Clock) InsightsQueries {
	return &insightsQueriesImpl{ledger: ledger, clock: clock}
}

func (q *insightsQueriesImpl) ForUser(ctx context.Context, userID uuid.UUID) (*ReadingInsights, error) {
	history, err := q.ledger.HistoryForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]recommendation.HistoryEntry, len(history))
	for i, item := range history {
		entries[i] = recommendation.HistoryEntry{Genre: item.Book.Genre, Author: item.Book.Author}
	}
	profile := recommendation.BuildProfile(entries)

	result := &ReadingInsights{
		TotalBooksRead:    profile.TotalBooksRead,
		GenreDiversity:    profile.GenreDiversity,
		ReadingPattern:    profile.ReadingPattern,
		ReadingStreakDays: readingStreakDays(history, q.clock.Now()),
		Insights:          []string{},
	}
	if len(profile.PreferredGenres) > 0 {
		result.FavoriteGenre = profile.PreferredGenres[0]
	}
	if len(profile.PreferredAuthors) > 0 {
		result.FavoriteAuthor = profile.PreferredAuthors[0]
	}

	result.Insights = buildInsightBlurbs(profile, result.ReadingStreakDays)
	return result, nil
}

// readingStreakDays counts checkouts made within the last week, walking the
// newest-first history and stopping at the first older record. The streak is
// reported in days (one week per qualifying checkout), capped at a year.
func readingStreakDays(history []*HistoryItem, now time.Time) int {
	streak := 0
	for _, item := range history {
		if now.Sub(item.CheckedOutAt) > streakGapDays*24*time.Hour {
			break
		}
		streak++
	}

	days := streak * streakGapDays
	if days > streakCapDays {
		days = streakCapDays
	}
	return days
}

func buildInsightBlurbs(profile recommendation.Profile, streakDays int) []string {
	var blurbs []string

	switch {
	case profile.TotalBooksRead == 0:
		blurbs = append(blurbs, "Check out your first book to start building your reading profile!")
	case profile.TotalBooksRead >= 20:
		blurbs = append(blurbs, fmt.Sprintf("You're a power reader with %d books checked out so far!", profile.TotalBooksRead))
	case profile.TotalBooksRead >= 5:
		blurbs = append(blurbs, fmt.Sprintf("You've explored %d books. Keep it up!", profile.TotalBooksRead))
	}

	switch profile.ReadingPattern {
	case recommendation.PatternGenreFocused:
		if len(profile.PreferredGenres) > 0 {
			blurbs = append(blurbs, fmt.Sprintf("You have a strong preference for %s. Try a related genre for variety!", profile.PreferredGenres[0]))
		}
	case recommendation.PatternDiverseReader:
		blurbs = append(blurbs, fmt.Sprintf("You read across %d genres. Impressive range!", profile.GenreDiversity))
	}

	if streakDays >= 28 {
		blurbs = append(blurbs, fmt.Sprintf("You're on a %d-day reading streak!", streakDays))
	}

	if len(blurbs) > maxInsightBlurbs {
		blurbs = blurbs[:maxInsightBlurbs]
	}
	if blurbs == nil {
		blurbs = []string{}
	}
	return blurbs
}
