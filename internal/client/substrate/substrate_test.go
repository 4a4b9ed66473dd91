package substrate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both implementations must satisfy the same contract, so the common cases
// run against each via this table.
func substrates(t *testing.T) map[string]Substrate {
	t.Helper()
	f, err := NewFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return map[string]Substrate{
		"memory": NewMemory(),
		"file":   f,
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	for name, s := range substrates(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "k", []byte("v1")))

			v, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v1"), v)
		})
	}
}

func TestGet_AbsentKeyReturnsNilNil(t *testing.T) {
	for name, s := range substrates(t) {
		t.Run(name, func(t *testing.T) {
			v, err := s.Get(context.Background(), "absent")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestSet_Overwrites(t *testing.T) {
	for name, s := range substrates(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "k", []byte("old")))
			require.NoError(t, s.Set(ctx, "k", []byte("new")))

			v, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("new"), v)
		})
	}
}

func TestDelete_IsIdempotent(t *testing.T) {
	for name, s := range substrates(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "k", []byte("v")))
			require.NoError(t, s.Delete(ctx, "k"))
			require.NoError(t, s.Delete(ctx, "k"))

			v, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestClear_RemovesEverything(t *testing.T) {
	for name, s := range substrates(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "a", []byte{1}))
			require.NoError(t, s.Set(ctx, "b", []byte{2}))
			require.NoError(t, s.Clear(ctx))

			m, err := s.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, m)
		})
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	for name, s := range substrates(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "k", []byte("abc")))

			v, err := s.Get(ctx, "k")
			require.NoError(t, err)
			v[0] = 'X'

			again, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("abc"), again)
		})
	}
}

func TestFile_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	f1, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f1.Set(ctx, "k", []byte("persisted")))

	f2, err := NewFile(path)
	require.NoError(t, err)
	v, err := f2.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), v)
}

func TestFile_MissingFileIsEmpty(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "nope", "state.json"))
	require.NoError(t, err)
	m, err := f.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestFile_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse substrate file")
}
