package recommendation

import "sort"

type ReadingPattern string

const (
	PatternNewReader        ReadingPattern = "new_reader"
	PatternGenreFocused     ReadingPattern = "genre_focused"
	PatternDiverseReader    ReadingPattern = "diverse_reader"
	PatternModerateExplorer ReadingPattern = "moderate_explorer"
)

// HistoryEntry is one ledger row projected to the attributes preference
// mining cares about.
type HistoryEntry struct {
	Genre  string
	Author string
}

// Profile summarizes a reader's affinities. It is derived fresh from the
// ledger on every request and never persisted: history can change between
// calls.
type Profile struct {
	PreferredGenres  []string
	PreferredAuthors []string
	TotalBooksRead   int
	GenreDiversity   int
	ReadingPattern   ReadingPattern
}

const topPreferences = 3

// genreFocusThreshold: share of a single genre above which the reader
// counts as genre_focused.
const genreFocusThreshold = 0.7

// diverseGenreCount: distinct genres at or above which the reader counts
// as diverse.
const diverseGenreCount = 5

// BuildProfile mines a preference profile from checkout history. Pure and
// deterministic for a given history snapshot: frequency ties are broken by
// first appearance in the history (stable sort).
func BuildProfile(history []HistoryEntry) Profile {
	genreCounts := make(map[string]int)
	authorCounts := make(map[string]int)
	var genreOrder, authorOrder []string

	for _, entry := range history {
		if _, seen := genreCounts[entry.Genre]; !seen {
			genreOrder = append(genreOrder, entry.Genre)
		}
		genreCounts[entry.Genre]++

		if _, seen := authorCounts[entry.Author]; !seen {
			authorOrder = append(authorOrder, entry.Author)
		}
		authorCounts[entry.Author]++
	}

	total := len(history)

	return Profile{
		PreferredGenres:  topByFrequency(genreOrder, genreCounts),
		PreferredAuthors: topByFrequency(authorOrder, authorCounts),
		TotalBooksRead:   total,
		GenreDiversity:   len(genreCounts),
		ReadingPattern:   classifyPattern(genreCounts, total),
	}
}

func topByFrequency(firstSeen []string, counts map[string]int) []string {
	ranked := make([]string, len(firstSeen))
	copy(ranked, firstSeen)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > topPreferences {
		ranked = ranked[:topPreferences]
	}
	return ranked
}

func classifyPattern(genreCounts map[string]int, total int) ReadingPattern {
	if total < 3 {
		return PatternNewReader
	}

	maxGenre := 0
	for _, c := range genreCounts {
		if c > maxGenre {
			maxGenre = c
		}
	}

	concentration := float64(maxGenre) / float64(total)
	switch {
	case concentration > genreFocusThreshold:
		return PatternGenreFocused
	case len(genreCounts) >= diverseGenreCount:
		return PatternDiverseReader
	default:
		return PatternModerateExplorer
	}
}
