package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xzqh/internal/region"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "db", "region.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadRoundTripKeepsEmptyYears(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	d := region.Dataset{
		2023: {"110000": "北京市", "110101": "东城区"},
		1980: {},
	}
	require.NoError(t, s.Save(ctx, d))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, d, loaded)
}

func TestSaveReplacesPreviousDataset(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, region.Dataset{2000: {"110000": "北京市"}}))
	require.NoError(t, s.Save(ctx, region.Dataset{2001: {"120000": "天津市"}}))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, region.Dataset{2001: {"120000": "天津市"}}, loaded)
}

func TestName(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Save(ctx, region.Dataset{2023: {"110101": "东城区"}}))

	name, ok, err := s.Name(ctx, 2023, "110101")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "东城区", name)

	_, ok, err = s.Name(ctx, 2022, "110101")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	require.Error(t, err)
}
