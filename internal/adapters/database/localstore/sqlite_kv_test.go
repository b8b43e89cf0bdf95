package localstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wheatworks/millbook/internal/adapters/database/localstore"
)

func TestSQLiteKV_PutGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	kv, err := localstore.OpenSQLiteKV(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer func() { require.NoError(t, kv.Close()) }()

	_, ok, err := kv.Get(ctx, "milling_records")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Put(ctx, "milling_records", []byte(`[]`)))

	value, ok, err := kv.Get(ctx, "milling_records")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[]`), value)

	// Put replaces the previous value wholesale.
	require.NoError(t, kv.Put(ctx, "milling_records", []byte(`[{"customer_id":1}]`)))
	value, ok, err = kv.Get(ctx, "milling_records")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[{"customer_id":1}]`), value)
}

func TestSQLiteKV_ValuesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	kv, err := localstore.OpenSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, "milling_records", []byte(`[]`)))
	require.NoError(t, kv.Close())

	reopened, err := localstore.OpenSQLiteKV(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	value, ok, err := reopened.Get(ctx, "milling_records")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[]`), value)
}
