package recommendation

// genreSimilarities is the hand-curated affinity table used to widen
// genre-based candidate pools. Relations are asymmetric on purpose: the
// table encodes editorial domain knowledge, not computed structure, so do
// not adjust the entries without updating the tests that pin them.
var genreSimilarities = map[string][]string{
	"Science Fiction":        {"Fantasy", "Dystopian Fiction", "Technology"},
	"Fantasy":                {"Science Fiction", "Adventure", "Young Adult"},
	"Mystery":                {"Thriller", "Crime", "Psychological Thriller"},
	"Thriller":               {"Mystery", "Crime", "Horror", "Psychological Thriller"},
	"Romance":                {"Drama", "Contemporary Fiction", "Young Adult"},
	"Non-fiction":            {"Biography", "History", "Science", "Philosophy", "Self-help"},
	"Biography":              {"History", "Non-fiction", "Memoir"},
	"History":                {"Biography", "Non-fiction", "Politics"},
	"Classic Literature":     {"Fiction", "Drama", "Philosophy"},
	"Young Adult":            {"Fantasy", "Romance", "Coming-of-age", "Adventure"},
	"Horror":                 {"Thriller", "Mystery", "Psychological Thriller"},
	"Business":               {"Self-help", "Non-fiction", "Technology"},
	"Science":                {"Non-fiction", "Technology", "Philosophy"},
	"Philosophy":             {"Non-fiction", "Science", "Psychology"},
	"Psychology":             {"Self-help", "Philosophy", "Non-fiction"},
	"Self-help":              {"Psychology", "Business", "Non-fiction"},
	"Technology":             {"Science", "Non-fiction", "Science Fiction"},
	"Crime":                  {"Mystery", "Thriller", "Psychological Thriller"},
	"Adventure":              {"Fantasy", "Young Adult", "Action"},
	"Drama":                  {"Classic Literature", "Romance", "Fiction"},
	"Memoir":                 {"Biography", "Non-fiction", "History"},
	"Coming-of-age":          {"Young Adult", "Fiction", "Drama"},
	"Dystopian Fiction":      {"Science Fiction", "Thriller", "Philosophy"},
	"Psychological Thriller": {"Thriller", "Mystery", "Horror", "Crime"},
}

// RelatedGenres returns the genres affine to the given one. Genres missing
// from the table degrade to self-similarity so an unknown genre still
// searches itself.
func RelatedGenres(genre string) []string {
	if related, ok := genreSimilarities[genre]; ok {
		return related
	}
	return []string{genre}
}
