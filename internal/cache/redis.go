package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/compress"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
)

const documentEntryTTL = 10 * time.Minute

func documentEntryKey(id string) string {
	return "document:index:" + id
}

var _ EntryCache = (*Redis)(nil)

type Redis struct {
	client  *redis.Client
	encoder compress.Compress
}

func NewRedis(addr, password string, encoder compress.Compress) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
		Protocol: 2,
	})

	return &Redis{client: client, encoder: encoder}
}

func (r *Redis) GetDocumentEntry(ctx context.Context, documentID string) (*index.DocumentEntry, error) {
	data, err := r.client.Get(ctx, documentEntryKey(documentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	decoded, err := r.encoder.Decode(data)
	if err != nil {
		return nil, err
	}

	var entry index.DocumentEntry
	if err := json.Unmarshal(decoded, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *Redis) SetDocumentEntry(ctx context.Context, entry *index.DocumentEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	encoded, err := r.encoder.Encode(data)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, documentEntryKey(entry.DocumentID), encoded, documentEntryTTL).Err()
}

func (r *Redis) DeleteDocumentEntry(ctx context.Context, documentID string) error {
	return r.client.Del(ctx, documentEntryKey(documentID)).Err()
}
