package infra_redis_room

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/stopbus/core/internal/model"
	usecase_game "github.com/humanbelnik/stopbus/core/internal/usecase/game"
)

const keyPrefix = "room:"

type Driver struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Driver {
	return &Driver{
		client: client,
		ttl:    ttl,
	}
}

func (d *Driver) Room(ctx context.Context, code model.RoomCode) (model.Room, error) {
	data, err := d.client.Get(fullKey(code)).Result()
	if err != nil {
		if err == redis.Nil {
			return model.Room{}, usecase_game.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	var room model.Room
	if err := json.Unmarshal([]byte(data), &room); err != nil {
		// Corrupt value; surface as absent rather than failing the engine
		return model.Room{}, usecase_game.ErrResourceNotFound
	}
	return room, nil
}

func (d *Driver) Save(ctx context.Context, code model.RoomCode, room model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	if err := d.client.Set(fullKey(code), string(data), d.ttl).Err(); err != nil {
		return err
	}
	return nil
}

func (d *Driver) Delete(ctx context.Context, code model.RoomCode) error {
	deleted, err := d.client.Del(fullKey(code)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return usecase_game.ErrResourceNotFound
	}
	return nil
}

func (d *Driver) Codes(ctx context.Context) ([]model.RoomCode, error) {
	keys, err := d.client.Keys(keyPrefix + "*").Result()
	if err != nil {
		return nil, err
	}

	codes := make([]model.RoomCode, 0, len(keys))
	for _, key := range keys {
		codes = append(codes, model.RoomCode(strings.TrimPrefix(key, keyPrefix)))
	}
	return codes, nil
}

// CleanupExpired is a no-op: redis drops expired keys on its own.
func (d *Driver) CleanupExpired(ctx context.Context) error {
	return nil
}

func fullKey(code model.RoomCode) string {
	return keyPrefix + string(code)
}
