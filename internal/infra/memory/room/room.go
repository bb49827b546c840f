package infra_memory_room

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/humanbelnik/stopbus/core/internal/model"
	usecase_game "github.com/humanbelnik/stopbus/core/internal/usecase/game"
)

// Driver keeps rooms in-process for single-instance deployments. Values are
// held serialized, same as the networked backends, so callers never share
// memory with the store and every read is a fresh snapshot.
type Driver struct {
	mu    sync.RWMutex
	rooms map[model.RoomCode]record
	ttl   time.Duration
}

type record struct {
	data      []byte
	expiresAt time.Time
}

func New(ttl time.Duration) *Driver {
	return &Driver{
		rooms: make(map[model.RoomCode]record),
		ttl:   ttl,
	}
}

func (d *Driver) Room(ctx context.Context, code model.RoomCode) (model.Room, error) {
	d.mu.RLock()
	rec, ok := d.rooms[code]
	d.mu.RUnlock()

	if !ok || time.Now().After(rec.expiresAt) {
		return model.Room{}, usecase_game.ErrResourceNotFound
	}

	var room model.Room
	if err := json.Unmarshal(rec.data, &room); err != nil {
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

	d.mu.Lock()
	d.rooms[code] = record{
		data:      data,
		expiresAt: time.Now().Add(d.ttl),
	}
	d.mu.Unlock()
	return nil
}

func (d *Driver) Delete(ctx context.Context, code model.RoomCode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.rooms[code]; !ok {
		return usecase_game.ErrResourceNotFound
	}
	delete(d.rooms, code)
	return nil
}

func (d *Driver) Codes(ctx context.Context) ([]model.RoomCode, error) {
	now := time.Now()

	d.mu.RLock()
	defer d.mu.RUnlock()

	codes := make([]model.RoomCode, 0, len(d.rooms))
	for code, rec := range d.rooms {
		if now.After(rec.expiresAt) {
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func (d *Driver) CleanupExpired(ctx context.Context) error {
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	for code, rec := range d.rooms {
		if now.After(rec.expiresAt) {
			delete(d.rooms, code)
		}
	}
	return nil
}
