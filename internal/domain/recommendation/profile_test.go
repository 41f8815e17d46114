//go:build unit

package recommendation_test

import (
	"testing"

	"liblend/internal/domain/recommendation"

	"github.com/stretchr/testify/assert"
)

func entries(genres ...string) []recommendation.HistoryEntry {
	out := make([]recommendation.HistoryEntry, len(genres))
	for i, g := range genres {
		out[i] = recommendation.HistoryEntry{Genre: g, Author: "Author " + g}
	}
	return out
}

func TestBuildProfile_ReadingPattern(t *testing.T) {
	tests := []struct {
		name    string
		history []recommendation.HistoryEntry
		want    recommendation.ReadingPattern
	}{
		{
			name:    "fewer than three books is a new reader",
			history: entries("Mystery", "Mystery"),
			want:    recommendation.PatternNewReader,
		},
		{
			name:    "empty history is a new reader",
			history: nil,
			want:    recommendation.PatternNewReader,
		},
		{
			// {A:8, B:2} of 10 -> concentration 0.8 > 0.7
			name: "dominant genre is genre focused",
			history: entries(
				"Fantasy", "Fantasy", "Fantasy", "Fantasy", "Fantasy",
				"Fantasy", "Fantasy", "Fantasy", "Mystery", "Mystery",
			),
			want: recommendation.PatternGenreFocused,
		},
		{
			// {A:5, B:5} of 10 -> concentration 0.5, distinct 2 < 5
			name: "even split over two genres is a moderate explorer",
			history: entries(
				"Fantasy", "Fantasy", "Fantasy", "Fantasy", "Fantasy",
				"Mystery", "Mystery", "Mystery", "Mystery", "Mystery",
			),
			want: recommendation.PatternModerateExplorer,
		},
		{
			name: "five distinct genres is a diverse reader",
			history: entries(
				"Fantasy", "Mystery", "Romance", "History", "Science",
				"Fantasy", "Mystery",
			),
			want: recommendation.PatternDiverseReader,
		},
		{
			// concentration wins over diversity when both thresholds hit
			name: "concentration check runs before diversity",
			history: entries(
				"Fantasy", "Fantasy", "Fantasy", "Fantasy", "Fantasy",
				"Fantasy", "Fantasy", "Fantasy", "Fantasy", "Fantasy",
				"Mystery", "Romance", "History", "Science",
			),
			want: recommendation.PatternModerateExplorer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommendation.BuildProfile(tt.history)
			assert.Equal(t, tt.want, got.ReadingPattern)
		})
	}
}

func TestBuildProfile_Preferences(t *testing.T) {
	t.Run("top three genres by frequency", func(t *testing.T) {
		history := entries(
			"Fantasy", "Fantasy", "Fantasy",
			"Mystery", "Mystery",
			"Romance", "Romance", "Romance", "Romance",
			"History",
		)
		p := recommendation.BuildProfile(history)

		assert.Equal(t, []string{"Romance", "Fantasy", "Mystery"}, p.PreferredGenres)
		assert.Equal(t, 10, p.TotalBooksRead)
		assert.Equal(t, 4, p.GenreDiversity)
	})

	t.Run("frequency ties break by first appearance", func(t *testing.T) {
		history := entries("Mystery", "Fantasy", "Mystery", "Fantasy", "Romance")
		p := recommendation.BuildProfile(history)

		// Mystery and Fantasy both count 2; Mystery was seen first.
		assert.Equal(t, []string{"Mystery", "Fantasy", "Romance"}, p.PreferredGenres)
	})

	t.Run("authors tally independently of genres", func(t *testing.T) {
		history := []recommendation.HistoryEntry{
			{Genre: "Fantasy", Author: "Le Guin"},
			{Genre: "Science Fiction", Author: "Le Guin"},
			{Genre: "Mystery", Author: "Christie"},
		}
		p := recommendation.BuildProfile(history)

		assert.Equal(t, []string{"Le Guin", "Christie"}, p.PreferredAuthors)
	})

	t.Run("empty history yields empty preferences", func(t *testing.T) {
		p := recommendation.BuildProfile(nil)
		assert.Empty(t, p.PreferredGenres)
		assert.Empty(t, p.PreferredAuthors)
		assert.Zero(t, p.TotalBooksRead)
		assert.Zero(t, p.GenreDiversity)
	})
}

func TestRelatedGenres(t *testing.T) {
	t.Run("known genre expands to its affinity list", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Fantasy", "Dystopian Fiction", "Technology"},
			recommendation.RelatedGenres("Science Fiction"),
		)
	})

	t.Run("relations are asymmetric", func(t *testing.T) {
		// Adventure lists Action, but Action has no entry of its own.
		assert.Contains(t, recommendation.RelatedGenres("Adventure"), "Action")
		assert.Equal(t, []string{"Action"}, recommendation.RelatedGenres("Action"))
	})

	t.Run("unknown genre falls back to itself", func(t *testing.T) {
		assert.Equal(t, []string{"Cookbooks"}, recommendation.RelatedGenres("Cookbooks"))
	})
}
