package infra_memory_room

import (
	"context"
	"testing"
	"time"

	"github.com/humanbelnik/stopbus/core/internal/model"
	usecase_game "github.com/humanbelnik/stopbus/core/internal/usecase/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom(code model.RoomCode) model.Room {
	return model.Room{
		Code:      code,
		GameState: model.StateWaiting,
		Players: []model.Player{
			{ID: "p1", Name: "alice", Answers: model.CategoryAnswers{Animal: "Cat"}},
		},
		TotalRounds: model.DefaultTotalRounds,
		UsedLetters: []string{"C"},
		RoundScores: map[string][]int{"p1": {10, 5}},
		Host:        "p1",
	}
}

func TestSaveAndRoomRoundTrip(t *testing.T) {
	d := New(time.Hour)
	ctx := context.Background()
	room := testRoom("AAAAAA")

	require.NoError(t, d.Save(ctx, room.Code, room))

	got, err := d.Room(ctx, room.Code)
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestRoomReturnsSnapshots(t *testing.T) {
	d := New(time.Hour)
	ctx := context.Background()
	room := testRoom("AAAAAA")

	require.NoError(t, d.Save(ctx, room.Code, room))

	first, err := d.Room(ctx, room.Code)
	require.NoError(t, err)
	first.Players[0].Name = "mallory"
	first.RoundScores["p1"][0] = 0

	second, err := d.Room(ctx, room.Code)
	require.NoError(t, err)
	assert.Equal(t, "alice", second.Players[0].Name)
	assert.Equal(t, []int{10, 5}, second.RoundScores["p1"])
}

func TestRoomAbsent(t *testing.T) {
	d := New(time.Hour)

	_, err := d.Room(context.Background(), "NOPE12")
	assert.ErrorIs(t, err, usecase_game.ErrResourceNotFound)
}

func TestExpiry(t *testing.T) {
	d := New(20 * time.Millisecond)
	ctx := context.Background()
	room := testRoom("AAAAAA")

	require.NoError(t, d.Save(ctx, room.Code, room))
	time.Sleep(40 * time.Millisecond)

	_, err := d.Room(ctx, room.Code)
	assert.ErrorIs(t, err, usecase_game.ErrResourceNotFound)

	codes, err := d.Codes(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestSaveRefreshesExpiry(t *testing.T) {
	d := New(40 * time.Millisecond)
	ctx := context.Background()
	room := testRoom("AAAAAA")

	require.NoError(t, d.Save(ctx, room.Code, room))
	time.Sleep(25 * time.Millisecond)
	require.NoError(t, d.Save(ctx, room.Code, room))
	time.Sleep(25 * time.Millisecond)

	_, err := d.Room(ctx, room.Code)
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	d := New(time.Hour)
	ctx := context.Background()
	room := testRoom("AAAAAA")

	require.NoError(t, d.Save(ctx, room.Code, room))
	require.NoError(t, d.Delete(ctx, room.Code))

	_, err := d.Room(ctx, room.Code)
	assert.ErrorIs(t, err, usecase_game.ErrResourceNotFound)

	assert.ErrorIs(t, d.Delete(ctx, room.Code), usecase_game.ErrResourceNotFound)
}

func TestCodes(t *testing.T) {
	d := New(time.Hour)
	ctx := context.Background()

	require.NoError(t, d.Save(ctx, "AAAAAA", testRoom("AAAAAA")))
	require.NoError(t, d.Save(ctx, "BBBBBB", testRoom("BBBBBB")))

	codes, err := d.Codes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.RoomCode{"AAAAAA", "BBBBBB"}, codes)
}

func TestCleanupExpired(t *testing.T) {
	d := New(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, d.Save(ctx, "AAAAAA", testRoom("AAAAAA")))
	time.Sleep(40 * time.Millisecond)

	require.NoError(t, d.CleanupExpired(ctx))

	d.mu.RLock()
	defer d.mu.RUnlock()
	assert.Empty(t, d.rooms)
}
