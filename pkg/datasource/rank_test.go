package datasource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const gib = int64(1) << 30

func TestScore(t *testing.T) {
	keywords := []string{"cats", "dogs"}

	tests := []struct {
		name string
		c    Candidate
		want int
	}{
		{
			name: "both keywords, popular, ideal size",
			c:    Candidate{Ref: "a/cats-and-dogs", Title: "Cats and Dogs", SizeBytes: 2 * gib, Downloads: 15000},
			want: 100 + 100 + 50 + 30,
		},
		{
			name: "one keyword in ref only",
			c:    Candidate{Ref: "a/dogs", Title: "Canine photos", SizeBytes: 2 * gib, Downloads: 0},
			want: 100 + 30,
		},
		{
			name: "mid popularity, sub-gig size",
			c:    Candidate{Ref: "a/x", Title: "cats", SizeBytes: gib / 2, Downloads: 2500},
			want: 100 + 25 + 15,
		},
		{
			name: "low popularity, tiny size",
			c:    Candidate{Ref: "a/x", Title: "cats", SizeBytes: 10 << 20, Downloads: 150},
			want: 100 + 10 + 5,
		},
		{
			name: "no keywords, unknown size",
			c:    Candidate{Ref: "a/x", Title: "birds", SizeBytes: 0, Downloads: 0},
			want: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.c, keywords))
		})
	}
}

func TestRank(t *testing.T) {
	keywords := []string{"flowers"}
	candidates := []Candidate{
		{Ref: "a/huge", Title: "flowers", SizeBytes: 30 * gib, Downloads: 99999},
		{Ref: "b/big", Title: "flowers", SizeBytes: 4 * gib, Downloads: 15000},
		{Ref: "c/small", Title: "flowers", SizeBytes: 2 * gib, Downloads: 15000},
		{Ref: "d/weak", Title: "random plants", SizeBytes: 2 * gib, Downloads: 15000},
	}

	ranked := Rank(candidates, keywords, 10)

	// The oversized candidate is filtered out entirely.
	assert.Len(t, ranked, 3)
	// Equal scores tie-break toward the smaller archive.
	assert.Equal(t, "c/small", ranked[0].Ref)
	assert.Equal(t, "b/big", ranked[1].Ref)
	assert.Equal(t, "d/weak", ranked[2].Ref)
}

func TestRank_KeepsUnknownSizes(t *testing.T) {
	ranked := Rank([]Candidate{{Ref: "a/x", Title: "cats", SizeBytes: 0}}, []string{"cats"}, 1)
	assert.Len(t, ranked, 1)
}

type stubSource struct {
	results map[string][]Candidate
	errs    map[string]error
	queries []string
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Search(ctx context.Context, query string) ([]Candidate, error) {
	s.queries = append(s.queries, query)
	if err := s.errs[query]; err != nil {
		return nil, err
	}
	return s.results[query], nil
}

func (s *stubSource) Download(ctx context.Context, ref, destPath string) (string, error) {
	return "zip", nil
}

func TestFindBest_FallsThroughFailedStrategies(t *testing.T) {
	keywords := []string{"cats", "dogs"}
	src := &stubSource{
		errs: map[string]error{"cats dogs": errors.New("rate limited")},
		results: map[string][]Candidate{
			"cats": {{Ref: "a/too-big", Title: "cats", SizeBytes: 20 * gib}},
			"dogs": {{Ref: "b/good", Title: "dogs", SizeBytes: gib}},
		},
	}

	var failedQueries []string
	best := FindBest(t.Context(), src, keywords, 10, func(query string, err error) {
		failedQueries = append(failedQueries, query)
	})

	// The errored query and the query whose only hit was oversized are both
	// skipped; the first usable strategy wins.
	assert.NotNil(t, best)
	assert.Equal(t, "b/good", best[0].Ref)
	assert.Equal(t, []string{"cats dogs"}, failedQueries)
	assert.Equal(t, []string{"cats dogs", "cats", "dogs"}, src.queries)

	assert.Nil(t, FindBest(t.Context(), &stubSource{}, keywords, 10, nil))
}

func TestQueries(t *testing.T) {
	queries := Queries([]string{"dog", "breed", "images"})
	assert.Equal(t, []string{
		"dog breed images",
		"dog",
		"breed",
		"images",
		"dog breed",
		"breed images",
	}, queries)

	// Duplicates collapse: single keyword yields a single query.
	assert.Equal(t, []string{"dog"}, Queries([]string{"dog"}))
}
