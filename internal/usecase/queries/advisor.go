package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CompletionClient is the port to a chat-completion backend. A nil client
// means the advisor runs in heuristic-only mode.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error)
}

const (
	advisorMaxTokens      = 1500
	advisorTemperature    = 0.7
	advisorMaxResults     = 5
	advisorDefaultScore   = 0.8
	advisorHistoryWindow  = 10
	advisorCandidatesWide = 25
	advisorCandidatesSlim = 20
	descriptionPreviewLen = 100
)

const advisorSystemPrompt = "You are a knowledgeable librarian helping readers discover books. " +
	"Respond with a JSON array only, no prose. Each element must have the fields " +
	`"book_id" (one of the candidate ids), "reason" (one sentence), and "score" (0.0 to 1.0).`

type AdvisorResult struct {
	Recommendations []*Recommendation `json:"recommendations"`
	AIPowered       bool              `json:"ai_powered"`
}

type RecommendationAdvisor interface {
	EnhancedRecommendations(ctx context.Context, userID uuid.UUID, limit int) (*AdvisorResult, error)
	SearchRecommendations(ctx context.Context, userID uuid.UUID, search string, limit int) (*AdvisorResult, error)
}

// advisorImpl decorates the heuristic engine with an LLM re-ranking pass.
// Every advisor failure (transport, malformed output, empty picks) falls
// back to the heuristics, so callers never see an error caused by the
// model alone.
type advisorImpl struct {
	engine  RecommendationQueries
	books   BookReadStore
	ledger  LedgerReadStore
	client  CompletionClient
	timeout time.Duration
}

func NewRecommendationAdvisor(
	engine RecommendationQueries,
	books BookReadStore,
	ledger LedgerReadStore,
	client CompletionClient,
	timeout time.Duration,
) RecommendationAdvisor {
	return &advisorImpl{
		engine:  engine,
		books:   books,
		ledger:  ledger,
		client:  client,
		timeout: timeout,
	}
}

func (a *advisorImpl) EnhancedRecommendations(ctx context.Context, userID uuid.UUID, limit int) (*AdvisorResult, error) {
	if a.client == nil {
		return a.heuristicFallback(ctx, userID, "", limit)
	}

	history, err := a.ledger.HistoryForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	exclude := make([]uuid.UUID, 0, len(history))
	for _, item := range history {
		exclude = append(exclude, item.BookID)
	}
	candidates, err := a.books.AvailableBooks(ctx, exclude, advisorCandidatesWide)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 || len(candidates) == 0 {
		return a.heuristicFallback(ctx, userID, "", limit)
	}

	prompt := buildAdvisorPrompt(history, candidates, "")
	recs := a.consult(ctx, prompt, candidates, limit)
	if recs == nil {
		return a.heuristicFallback(ctx, userID, "", limit)
	}
	return &AdvisorResult{Recommendations: recs, AIPowered: true}, nil
}

func (a *advisorImpl) SearchRecommendations(ctx context.Context, userID uuid.UUID, search string, limit int) (*AdvisorResult, error) {
	if a.client == nil {
		return a.heuristicFallback(ctx, userID, search, limit)
	}

	history, err := a.ledger.HistoryForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := a.books.SearchAvailable(ctx, search, advisorCandidatesSlim)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return a.heuristicFallback(ctx, userID, search, limit)
	}

	prompt := buildAdvisorPrompt(history, candidates, search)
	recs := a.consult(ctx, prompt, candidates, limit)
	if recs == nil {
		return a.heuristicFallback(ctx, userID, search, limit)
	}
	return &AdvisorResult{Recommendations: recs, AIPowered: true}, nil
}

// consult runs the completion round-trip and returns nil on any failure so
// the caller can fall back.
func (a *advisorImpl) consult(ctx context.Context, prompt string, candidates []*BookView, limit int) []*Recommendation {
	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.client.Complete(cctx, advisorSystemPrompt, prompt, advisorMaxTokens, advisorTemperature)
	if err != nil {
		slog.Warn("advisor completion failed", "error", err)
		return nil
	}

	recs := parseAdvisorResponse(raw, candidates, limit)
	if len(recs) == 0 {
		slog.Warn("advisor returned no usable picks")
		return nil
	}
	return recs
}

func (a *advisorImpl) heuristicFallback(ctx context.Context, userID uuid.UUID, search string, limit int) (*AdvisorResult, error) {
	var (
		recs []*Recommendation
		err  error
	)
	if search != "" {
		recs, err = a.engine.SearchFallback(ctx, search, userID, limit)
	} else {
		recs, err = a.engine.Personalized(ctx, userID, limit)
	}
	if err != nil {
		return nil, err
	}
	return &AdvisorResult{Recommendations: recs, AIPowered: false}, nil
}

func buildAdvisorPrompt(history []*HistoryItem, candidates []*BookView, search string) string {
	var sb strings.Builder

	if search != "" {
		fmt.Fprintf(&sb, "The reader searched for: %q\n\n", search)
	}

	sb.WriteString("Reading history (most recent first):\n")
	if len(history) == 0 {
		sb.WriteString("- none\n")
	}
	for i, item := range history {
		if i >= advisorHistoryWindow {
			break
		}
		fmt.Fprintf(&sb, "- %s by %s (%s)\n", item.Book.Title, item.Book.Author, item.Book.Genre)
	}

	sb.WriteString("\nAvailable candidates:\n")
	for _, b := range candidates {
		desc := ""
		if b.Description != nil {
			desc = *b.Description
			if r := []rune(desc); len(r) > descriptionPreviewLen {
				desc = string(r[:descriptionPreviewLen])
			}
		}
		fmt.Fprintf(&sb, "- id=%s | %s by %s | genre=%s | %s\n", b.ID, b.Title, b.Author, b.Genre, desc)
	}

	fmt.Fprintf(&sb, "\nRecommend up to %d books from the candidates as a JSON array.\n", advisorMaxResults)
	return sb.String()
}

type advisorPick struct {
	BookID string   `json:"book_id"`
	Reason string   `json:"reason"`
	Score  *float64 `json:"score"`
}

// parseAdvisorResponse extracts the JSON array from the model output,
// tolerating markdown code fences, and keeps only picks whose book_id
// matches a candidate. Unknown ids are dropped rather than failing the
// whole response.
func parseAdvisorResponse(raw string, candidates []*BookView, limit int) []*Recommendation {
	cleaned := stripCodeFences(raw)
	if !json.Valid([]byte(cleaned)) {
		return nil
	}

	var picks []advisorPick
	if err := json.Unmarshal([]byte(cleaned), &picks); err != nil {
		return nil
	}

	byID := make(map[uuid.UUID]*BookView, len(candidates))
	for _, b := range candidates {
		byID[b.ID] = b
	}

	if limit > advisorMaxResults {
		limit = advisorMaxResults
	}

	var recs []*Recommendation
	seen := make(map[uuid.UUID]bool)
	for _, pick := range picks {
		if len(recs) >= limit {
			break
		}
		id, err := uuid.Parse(pick.BookID)
		if err != nil {
			continue
		}
		b, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true

		score := advisorDefaultScore
		if pick.Score != nil && *pick.Score >= 0 && *pick.Score <= 1 {
			score = *pick.Score
		}
		reason := pick.Reason
		if reason == "" {
			reason = "Recommended for you"
		}

		recs = append(recs, &Recommendation{Book: b, Score: score, Reason: reason})
	}
	return recs
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
