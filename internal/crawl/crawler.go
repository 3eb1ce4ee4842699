// Package crawl drives the year-by-year fetch and extraction and assembles
// the consolidated dataset.
//
// Years are processed strictly in table order, one at a time. Any failure
// aborts the whole run; nothing is written until every year has succeeded.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"xzqh/internal/extract"
	"xzqh/internal/fetch"
	"xzqh/internal/logging"
	"xzqh/internal/region"
	"xzqh/internal/source"
)

// Fetcher returns the decoded page for a cache id and URL.
type Fetcher interface {
	Fetch(ctx context.Context, id, url string) (fetch.Page, error)
}

// YearStat summarises one processed year.
type YearStat struct {
	Year    int
	Regions int
	Skipped int
	Cached  bool
}

// Crawler builds a Dataset from a list of sources.
type Crawler struct {
	fetcher Fetcher
	sources []source.Source
	logger  *slog.Logger
}

// New returns a Crawler over sources.
func New(f Fetcher, sources []source.Source, logger *slog.Logger) *Crawler {
	return &Crawler{
		fetcher: f,
		sources: sources,
		logger:  logging.NewComponentLogger(logger, "crawl"),
	}
}

// Run processes every source in order. Every year appears in the result,
// with an empty table when its page has no code rows.
func (c *Crawler) Run(ctx context.Context) (region.Dataset, []YearStat, error) {
	dataset := make(region.Dataset, len(c.sources))
	stats := make([]YearStat, 0, len(c.sources))

	for _, src := range c.sources {
		c.logger.Info("processing year", logging.Args(logging.Year(src.Year))...)

		page, err := c.fetcher.Fetch(ctx, src.CacheID(), src.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("year %d: %w", src.Year, err)
		}
		res, err := extract.Extract(page.Text)
		if err != nil {
			return nil, nil, fmt.Errorf("year %d: %w", src.Year, err)
		}
		for _, row := range res.Skipped {
			c.logger.Warn("code row has no name cell, skipped", logging.Args(
				logging.Year(src.Year),
				logging.Int("row", row.Index),
				logging.String("cells", strings.Join(row.Cells, " | ")),
			)...)
		}

		dataset[src.Year] = res.Regions
		stats = append(stats, YearStat{
			Year:    src.Year,
			Regions: len(res.Regions),
			Skipped: len(res.Skipped),
			Cached:  page.Cached,
		})
	}
	return dataset, stats, nil
}
