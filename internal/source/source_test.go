package source

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCoversEveryYearOnce(t *testing.T) {
	require.Len(t, Table, 44)

	seen := make(map[int]bool, len(Table))
	for i, src := range Table {
		assert.False(t, seen[src.Year], "duplicate year %d", src.Year)
		seen[src.Year] = true
		if i > 0 {
			assert.Less(t, src.Year, Table[i-1].Year, "table must stay newest first")
		}

		u, err := url.Parse(src.URL)
		require.NoError(t, err)
		assert.Equal(t, "www.mca.gov.cn", u.Host)
	}
	assert.Equal(t, 2023, Table[0].Year)
	assert.Equal(t, 1980, Table[len(Table)-1].Year)
}

func TestCacheID(t *testing.T) {
	assert.Equal(t, "1987", Source{Year: 1987}.CacheID())
}
