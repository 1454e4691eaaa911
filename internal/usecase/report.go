package usecase

import (
	"sort"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
)

// ReportRow is one ready mix in the summary report, with its type
// distribution widened to the full category universe (absent categories
// fill with 0).
type ReportRow struct {
	Name         string             `json:"name"`
	Popularity   float64            `json:"popularity"`
	Distribution map[string]float64 `json:"distribution"`
}

// Report is the summary the reporting layer consumes: the top ready mixes
// by popularity rank with their per-category gram shares.
type Report struct {
	Categories []string    `json:"categories"`
	Rows       []ReportRow `json:"rows"`
}

// BuildReport derives the summary over the assembled collection. categories
// is the classifier's category universe. Mixes are ranked by ascending
// popularity value (the feed ranks its top products lowest) and the first
// top rows are kept; ties keep collection order.
func BuildReport(mixes []*domain.ReadyMix, categories []string, top int) *Report {
	ranked := make([]*domain.ReadyMix, len(mixes))
	copy(ranked, mixes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Popularity < ranked[j].Popularity
	})

	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}

	rows := make([]ReportRow, 0, len(ranked))
	for _, mix := range ranked {
		distribution := make(map[string]float64, len(categories))
		for _, category := range categories {
			distribution[category] = mix.TypeDistribution[category]
		}
		rows = append(rows, ReportRow{
			Name:         mix.Name,
			Popularity:   mix.Popularity,
			Distribution: distribution,
		})
	}

	return &Report{
		Categories: categories,
		Rows:       rows,
	}
}
