package queries

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"liblend/internal/domain/recommendation"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Strategy scores. Fixed constants mirrored by downstream consumers; do
// not tune them.
const (
	scoreAuthorMatch    = 0.9
	scoreGenreMatch     = 0.8
	scoreRatedGenre     = 0.7
	scoreSearchHit      = 0.7
	scoreDefaultPopular = 0.5
)

const (
	booksPerAuthor      = 2
	topRatedPerGenre    = 2
	popularityDivisor   = 10.0
	recentEraYear       = 2010
	classicEraYear      = 1960
)

type RecommendationQueries interface {
	Personalized(ctx context.Context, userID uuid.UUID, limit int) ([]*Recommendation, error)
	Popular(ctx context.Context, limit int) ([]*Recommendation, error)
	SearchFallback(ctx context.Context, search string, userID uuid.UUID, limit int) ([]*Recommendation, error)
}

type recommendationQueriesImpl struct {
	books  BookReadStore
	ledger LedgerReadStore
}

func NewRecommendationQueries(books BookReadStore, ledger LedgerReadStore) RecommendationQueries {
	return &recommendationQueriesImpl{books: books, ledger: ledger}
}

// Personalized mines the user's ledger into a preference profile and runs
// the heuristic strategies against it. The author strategy is collected
// first so first-occurrence dedup keeps its higher score when a book also
// qualifies under a genre strategy.
func (q *recommendationQueriesImpl) Personalized(ctx context.Context, userID uuid.UUID, limit int) ([]*Recommendation, error) {
	history, err := q.ledger.HistoryForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return q.Popular(ctx, limit)
	}

	entries := make([]recommendation.HistoryEntry, len(history))
	excludeIDs := make([]uuid.UUID, len(history))
	for i, item := range history {
		entries[i] = recommendation.HistoryEntry{Genre: item.Book.Genre, Author: item.Book.Author}
		excludeIDs[i] = item.BookID
	}
	profile := recommendation.BuildProfile(entries)

	// The three strategies are independent reads; fetch them concurrently
	// and merge only once all complete.
	var byAuthor, byGenre, byRating []*Recommendation
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byAuthor, err = q.authorStrategy(gctx, profile, excludeIDs)
		return err
	})
	g.Go(func() error {
		var err error
		byGenre, err = q.genreStrategy(gctx, profile, excludeIDs, limit)
		return err
	})
	g.Go(func() error {
		var err error
		byRating, err = q.ratedGenreStrategy(gctx, profile, excludeIDs, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recs := make([]*Recommendation, 0, len(byAuthor)+len(byGenre)+len(byRating))
	recs = append(recs, byAuthor...)
	recs = append(recs, byGenre...)
	recs = append(recs, byRating...)

	if len(recs) < limit {
		popular, err := q.Popular(ctx, limit-len(recs))
		if err != nil {
			return nil, err
		}
		recs = append(recs, popular...)
	}

	return rank(recs, limit), nil
}

// Popular ranks currently-available books by all-time checkout count with
// a linear score clamped at 1.0. An empty ledger degrades to arbitrary
// available books at the default score.
func (q *recommendationQueriesImpl) Popular(ctx context.Context, limit int) ([]*Recommendation, error) {
	if limit <= 0 {
		return nil, nil
	}

	total, err := q.ledger.CountRecords(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		books, err := q.books.AvailableBooks(ctx, nil, limit)
		if err != nil {
			return nil, err
		}
		recs := make([]*Recommendation, len(books))
		for i, b := range books {
			recs[i] = &Recommendation{Book: b, Score: scoreDefaultPopular, Reason: "Popular in our library"}
		}
		return recs, nil
	}

	counts, err := q.ledger.PopularAvailable(ctx, limit)
	if err != nil {
		return nil, err
	}

	recs := make([]*Recommendation, len(counts))
	for i, bc := range counts {
		score := float64(bc.Count) / popularityDivisor
		if score > 1.0 {
			score = 1.0
		}
		b := bc.Book
		recs[i] = &Recommendation{
			Book:   &b,
			Score:  score,
			Reason: fmt.Sprintf("Popular book (%d checkouts)", bc.Count),
		}
	}
	return recs, nil
}

// SearchFallback is the non-AI search recommendation path, also used when
// the advisor fails: direct substring hits first, padded with personalized
// results when the match set is thin.
func (q *recommendationQueriesImpl) SearchFallback(ctx context.Context, search string, userID uuid.UUID, limit int) ([]*Recommendation, error) {
	books, err := q.books.SearchAvailable(ctx, search, limit)
	if err != nil {
		return nil, err
	}

	recs := make([]*Recommendation, len(books))
	for i, b := range books {
		recs[i] = &Recommendation{
			Book:   b,
			Score:  scoreSearchHit,
			Reason: fmt.Sprintf("Found based on your search for %q", search),
		}
	}

	if len(recs) < limit {
		personal, err := q.Personalized(ctx, userID, limit-len(recs))
		if err != nil {
			return nil, err
		}
		recs = append(recs, personal...)
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (q *recommendationQueriesImpl) authorStrategy(ctx context.Context, profile recommendation.Profile, excludeIDs []uuid.UUID) ([]*Recommendation, error) {
	var recs []*Recommendation
	for _, author := range profile.PreferredAuthors {
		books, err := q.books.AvailableByAuthor(ctx, author, excludeIDs, booksPerAuthor)
		if err != nil {
			return nil, err
		}
		for _, b := range books {
			recs = append(recs, &Recommendation{
				Book:   b,
				Score:  scoreAuthorMatch,
				Reason: fmt.Sprintf("Another book by %s", author),
			})
		}
	}
	return recs, nil
}

func (q *recommendationQueriesImpl) genreStrategy(ctx context.Context, profile recommendation.Profile, excludeIDs []uuid.UUID, limit int) ([]*Recommendation, error) {
	// limit/2 is integer division on purpose: a limit of 5 fetches 2 books
	// per related genre.
	perGenre := limit / 2

	var recs []*Recommendation
	for _, genre := range profile.PreferredGenres {
		for _, related := range recommendation.RelatedGenres(genre) {
			books, err := q.books.AvailableByGenre(ctx, related, excludeIDs, perGenre)
			if err != nil {
				return nil, err
			}
			for _, b := range books {
				recs = append(recs, &Recommendation{
					Book:   b,
					Score:  scoreGenreMatch,
					Reason: fmt.Sprintf("Similar to your interest in %s", genre),
				})
			}
		}
	}
	return recs, nil
}

// ratedGenreStrategy fetches a wider pool per preferred genre and keeps
// the top entries by a simulated rating. The rating is a heuristic proxy
// for real review data, not a model: recent and classic publication years
// draw from a higher band, and the draw is intentionally random.
func (q *recommendationQueriesImpl) ratedGenreStrategy(ctx context.Context, profile recommendation.Profile, excludeIDs []uuid.UUID, limit int) ([]*Recommendation, error) {
	var recs []*Recommendation
	for _, genre := range profile.PreferredGenres {
		books, err := q.books.AvailableByGenre(ctx, genre, excludeIDs, limit*2)
		if err != nil {
			return nil, err
		}

		type ratedBook struct {
			book   *BookView
			rating float64
		}
		rated := make([]ratedBook, len(books))
		for i, b := range books {
			rated[i] = ratedBook{book: b, rating: simulateRating(b.PublicationYear)}
		}
		sort.SliceStable(rated, func(i, j int) bool {
			return rated[i].rating > rated[j].rating
		})

		for i, rb := range rated {
			if i >= topRatedPerGenre {
				break
			}
			recs = append(recs, &Recommendation{
				Book:   rb.book,
				Score:  scoreRatedGenre,
				Reason: fmt.Sprintf("Highly rated %s book", genre),
			})
		}
	}
	return recs, nil
}

func simulateRating(publicationYear *int) float64 {
	if publicationYear != nil && (*publicationYear > recentEraYear || *publicationYear < classicEraYear) {
		return 4.0 + rand.Float64()
	}
	return 3.0 + rand.Float64()*1.5
}

// rank deduplicates by book id keeping the first occurrence, sorts by
// score descending (stable, so collection order breaks ties), and
// truncates to limit.
func rank(recs []*Recommendation, limit int) []*Recommendation {
	seen := make(map[uuid.UUID]bool, len(recs))
	unique := make([]*Recommendation, 0, len(recs))
	for _, rec := range recs {
		if seen[rec.Book.ID] {
			continue
		}
		seen[rec.Book.ID] = true
		unique = append(unique, rec)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Score > unique[j].Score
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}
