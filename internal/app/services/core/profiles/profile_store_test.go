package profiles

import (
	"context"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRedis marshals values on write the same way the real repository does,
// so these tests cover the stored JSON shape end to end.
type memoryRedis struct {
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: make(map[string]string)}
}

func (r *memoryRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.data[key] = string(raw)
	return nil
}

func (r *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return r.data[key], nil
}

func (r *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func TestProfileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewProfileStore(newMemoryRedis())

	saved := &models.Profile{
		UserName:      "Harsha M",
		ContactNumber: "918277634896",
		Email:         "harsha@example.com",
		BloodGroup:    "O+ve",
		Location:      "Bangalore",
	}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestProfileStoreAbsentKey(t *testing.T) {
	store := NewProfileStore(newMemoryRedis())

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Profile{}, loaded)
}

func TestProfileStoreCorruptBlob(t *testing.T) {
	redis := newMemoryRedis()
	redis.data[constvars.StorageKeyProfile] = "{not json"
	store := NewProfileStore(redis)

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}
