package model

import "time"

// TrendingNews is a scraped news item keyed by its link. Rows are written once
// and never updated; a link seen again is treated as a duplicate and skipped.
type TrendingNews struct {
	ID        int64
	Headline  string
	Link      string
	Snippet   string
	Article   string
	FetchedAt time.Time
}
