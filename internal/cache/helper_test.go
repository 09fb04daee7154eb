package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			dest.Name = "from-db"
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "thing:1", &first, time.Minute, fetch(&first)))
	assert.Equal(t, "from-db", first.Name)
	assert.Equal(t, 1, fetches)
	assert.True(t, mr.Exists("thing:1"), "miss populates the cache")

	var second payload
	require.NoError(t, Aside(ctx, "thing:1", &second, time.Minute, fetch(&second)))
	assert.Equal(t, "from-db", second.Name)
	assert.Equal(t, 1, fetches, "hit skips the fetch")
}

func TestAside_NilClientDegradesToFetch(t *testing.T) {
	SetClient(nil)
	fetches := 0

	var dest string
	for i := 0; i < 2; i++ {
		err := Aside(context.Background(), "k", &dest, time.Minute, func() error {
			fetches++
			dest = "value"
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, fetches, "no client means every call fetches")
	assert.Equal(t, "value", dest)
}

func TestGetJSON_MissingKey(t *testing.T) {
	useMiniredis(t)

	var dest string
	found, err := GetJSON(context.Background(), "missing", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidatePost(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(7), "cached", time.Minute))
	require.NoError(t, SetJSON(ctx, PostSlugKey("my-post"), "cached", time.Minute))
	require.NoError(t, SetJSON(ctx, PublishedListKey, "cached", time.Minute))

	InvalidatePost(ctx, 7, "my-post")

	assert.False(t, mr.Exists(PostKey(7)))
	assert.False(t, mr.Exists(PostSlugKey("my-post")))
	assert.False(t, mr.Exists(PublishedListKey))
}
