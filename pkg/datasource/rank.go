package datasource

import (
	"context"
	"sort"
	"strings"
)

// Score computes a candidate's ranking score against the search keywords.
//
// Keyword coverage dominates: each keyword found in the title or ref is
// worth 100. Popularity adds a tier (50/25/10), and size adds a preference
// band that favors archives big enough to train on but small enough to move
// around.
func Score(c Candidate, keywords []string) int {
	score := 0

	haystack := strings.ToLower(c.Title + " " + c.Ref)
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			score += 100
		}
	}

	switch {
	case c.Downloads >= 10000:
		score += 50
	case c.Downloads >= 1000:
		score += 25
	case c.Downloads >= 100:
		score += 10
	}

	sizeGB := c.SizeGB()
	switch {
	case sizeGB >= 1 && sizeGB <= 10:
		score += 30
	case sizeGB >= 0.1 && sizeGB < 1:
		score += 15
	default:
		score += 5
	}

	return score
}

// Rank filters candidates to those within maxSizeGB and orders them best
// first: by score descending, ties broken by smaller size. Candidates with
// unknown (zero) size are kept; the archive is re-checked after download.
func Rank(candidates []Candidate, keywords []string, maxSizeGB float64) []Candidate {
	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.SizeGB() > maxSizeGB {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		si, sj := Score(filtered[i], keywords), Score(filtered[j], keywords)
		if si != sj {
			return si > sj
		}
		return filtered[i].SizeBytes < filtered[j].SizeBytes
	})
	return filtered
}

// FindBest runs the query strategies in order against source and returns the
// ranked candidates of the first query that yields any within the size cap.
// A failed search is reported through onError and the next strategy is tried.
func FindBest(ctx context.Context, source Source, keywords []string, maxSizeGB float64, onError func(query string, err error)) []Candidate {
	for _, query := range Queries(keywords) {
		candidates, err := source.Search(ctx, query)
		if err != nil {
			if onError != nil {
				onError(query, err)
			}
			continue
		}
		if ranked := Rank(candidates, keywords, maxSizeGB); len(ranked) > 0 {
			return ranked
		}
	}
	return nil
}
