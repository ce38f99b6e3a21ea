package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	ctx := context.Background()

	stores := map[string]func(t *testing.T) Store{
		"Memory": func(t *testing.T) Store { return NewMemoryStore() },
		"Local": func(t *testing.T) Store {
			s, err := NewLocalStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)

			t.Run("OpenMissing", func(t *testing.T) {
				_, err := s.Open(ctx, "missing")
				assert.ErrorIs(t, err, ErrNotFound)
			})

			t.Run("PutOpenRoundTrip", func(t *testing.T) {
				require.NoError(t, s.Put(ctx, "model.snap", []byte("payload")))

				rc, err := s.Open(ctx, "model.snap")
				require.NoError(t, err)
				defer rc.Close()

				data, err := io.ReadAll(rc)
				require.NoError(t, err)
				assert.Equal(t, []byte("payload"), data)
			})

			t.Run("PutReplaces", func(t *testing.T) {
				require.NoError(t, s.Put(ctx, "model.snap", []byte("v2")))

				rc, err := s.Open(ctx, "model.snap")
				require.NoError(t, err)
				defer rc.Close()

				data, err := io.ReadAll(rc)
				require.NoError(t, err)
				assert.Equal(t, []byte("v2"), data)
			})

			t.Run("List", func(t *testing.T) {
				require.NoError(t, s.Put(ctx, "model-a", nil))
				require.NoError(t, s.Put(ctx, "model-b", nil))
				require.NoError(t, s.Put(ctx, "other", nil))

				names, err := s.List(ctx, "model-")
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"model-a", "model-b"}, names)
			})

			t.Run("Delete", func(t *testing.T) {
				require.NoError(t, s.Put(ctx, "gone", []byte("x")))
				require.NoError(t, s.Delete(ctx, "gone"))

				_, err := s.Open(ctx, "gone")
				assert.ErrorIs(t, err, ErrNotFound)

				// Deleting a missing blob is not an error.
				assert.NoError(t, s.Delete(ctx, "gone"))
			})
		})
	}
}
