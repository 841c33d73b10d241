// Package shares computes the percentage share of each category within a
// time bucket, optionally cumulated over time.
package shares

import (
	"sort"
	"time"
)

// Key identifies a bucket. Decade keys hold the decade itself (1990); date
// and bin keys hold a unix timestamp in seconds.
type Key int64

// Decade returns the decade key of year.
func Decade(year int) Key {
	return Key((year / 10) * 10)
}

// Day returns the key of the calendar date of t.
func Day(t time.Time) Key {
	y, m, d := t.Date()
	return Key(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix())
}

// Time converts a timestamp key back to a time.
func (k Key) Time() time.Time {
	return time.Unix(int64(k), 0).UTC()
}

// Share is the weight of one category within one bucket.
type Share struct {
	Bucket   Key    `json:"bucket"`
	Category string `json:"category"`
	// Count is the number of records, or the running total when cumulative.
	Count      float64 `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Aggregator groups records of type T into buckets and categories.
type Aggregator[T any] struct {
	// Bucket maps a record to its bucket. Records for which it reports false
	// are ignored.
	Bucket func(T) (Key, bool)
	// Category maps a record to its label.
	Category func(T) string
	// Cumulative turns each bucket into the running sum of all buckets up to
	// and including it.
	Cumulative bool
	// Order is the preferred category order. Categories it does not name
	// follow in the order they were first seen.
	Order []string
}

// Aggregate is a shortcut for an Aggregator without a category order.
func Aggregate[T any](records []T, bucket func(T) (Key, bool), category func(T) string, cumulative bool) []Share {
	return Aggregator[T]{Bucket: bucket, Category: category, Cumulative: cumulative}.Aggregate(records)
}

// Aggregate returns one Share per (bucket, category), buckets ascending.
// Every category seen anywhere appears in every bucket, with a zero count
// where it has no records. Percentages of a bucket sum to 100.
func (a Aggregator[T]) Aggregate(records []T) []Share {
	counts := map[Key]map[string]float64{}
	var seen []string
	known := map[string]bool{}

	for _, r := range records {
		key, ok := a.Bucket(r)
		if !ok {
			continue
		}
		cat := a.Category(r)
		if !known[cat] {
			known[cat] = true
			seen = append(seen, cat)
		}
		if counts[key] == nil {
			counts[key] = map[string]float64{}
		}
		counts[key][cat]++
	}
	if len(counts) == 0 {
		return nil
	}

	categories := orderCategories(a.Order, seen, known)

	keys := make([]Key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	running := map[string]float64{}
	out := make([]Share, 0, len(keys)*len(categories))
	for _, k := range keys {
		row := counts[k]
		if a.Cumulative {
			for _, c := range categories {
				running[c] += row[c]
			}
			row = running
		}

		var total float64
		for _, c := range categories {
			total += row[c]
		}
		if total == 0 {
			continue
		}

		for _, c := range categories {
			out = append(out, Share{
				Bucket:     k,
				Category:   c,
				Count:      row[c],
				Percentage: row[c] / total * 100,
			})
		}
	}

	return out
}

func orderCategories(order, seen []string, known map[string]bool) []string {
	categories := make([]string, 0, len(seen))
	placed := map[string]bool{}
	for _, c := range order {
		if known[c] && !placed[c] {
			placed[c] = true
			categories = append(categories, c)
		}
	}
	for _, c := range seen {
		if !placed[c] {
			categories = append(categories, c)
		}
	}
	return categories
}

// Categories returns the categories of shares in output order.
func Categories(shares []Share) []string {
	var cats []string
	seen := map[string]bool{}
	for _, s := range shares {
		if !seen[s.Category] {
			seen[s.Category] = true
			cats = append(cats, s.Category)
		}
	}
	return cats
}

// Buckets returns the distinct bucket keys of shares, ascending.
func Buckets(shares []Share) []Key {
	var keys []Key
	for i, s := range shares {
		if i == 0 || s.Bucket != shares[i-1].Bucket {
			keys = append(keys, s.Bucket)
		}
	}
	return keys
}

// Of returns the shares of one category, in bucket order.
func Of(shares []Share, category string) []Share {
	var out []Share
	for _, s := range shares {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
