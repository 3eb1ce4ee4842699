// Package source holds the year-by-year index of the Ministry of Civil
// Affairs administrative-division code pages
// (https://www.mca.gov.cn/n156/n186/index.html).
package source

import "strconv"

// Source is one published code table.
type Source struct {
	Year int
	URL  string
}

// CacheID names the cache entry for the source.
func (s Source) CacheID() string {
	return strconv.Itoa(s.Year)
}
