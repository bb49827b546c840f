package usecase_game

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/humanbelnik/stopbus/core/internal/model"
)

var (
	ErrResourceNotFound = errors.New("no such resource")
	ErrInvalidState     = errors.New("wrong game state")
	ErrPrecondition     = errors.New("precondition failed")
	ErrGameOver         = errors.New("no further round")
	ErrRoomsUnavailable = errors.New("no available rooms")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=RoomStore --output=./mocks/store --outpkg=store_mocks --filename=store.go
type RoomStore interface {
	Room(ctx context.Context, code model.RoomCode) (model.Room, error)
	Save(ctx context.Context, code model.RoomCode, room model.Room) error
	Delete(ctx context.Context, code model.RoomCode) error
	Codes(ctx context.Context) ([]model.RoomCode, error)

	CleanupExpired(ctx context.Context) error
}

type Usecase struct {
	store RoomStore

	// Used to make periodic stuff on every Nth room creation
	cleanupPeriod int
	createsCount  int
}

func New(store RoomStore, cleanup int) *Usecase {
	if cleanup <= 0 {
		cleanup = 20 /* default */
	}

	return &Usecase{
		store:         store,
		cleanupPeriod: cleanup,
	}
}

func (u *Usecase) CreateRoom(ctx context.Context, hostName string) (model.Room, model.Player, error) {
	// Cleanup expired rooms
	u.createsCount++
	if u.createsCount%u.cleanupPeriod == 0 {
		if err := u.store.CleanupExpired(ctx); err != nil {
			return model.Room{}, model.Player{}, errors.Join(ErrInternal, err)
		}
	}

	code, err := u.resolveRoomCode(ctx)
	if err != nil {
		return model.Room{}, model.Player{}, err
	}

	host := newPlayer(hostName)
	room := model.Room{
		Code:         code,
		Players:      []model.Player{host},
		GameState:    model.StateWaiting,
		CurrentRound: 0,
		TotalRounds:  model.DefaultTotalRounds,
		UsedLetters:  []string{},
		RoundScores:  map[string][]int{},
		Host:         host.ID,
	}

	if err := u.store.Save(ctx, code, room); err != nil {
		return model.Room{}, model.Player{}, errors.Join(ErrInternal, err)
	}
	return room, host, nil
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) resolveRoomCode(ctx context.Context) (model.RoomCode, error) {
	var retries = 3
	for retries > 0 {
		code := u.buildRoomCode()
		_, err := u.store.Room(ctx, code)
		if err != nil {
			if errors.Is(err, ErrResourceNotFound) {
				return code, nil
			}
			return model.EmptyRoomCode, errors.Join(ErrInternal, err)
		}
		retries--
	}
	return model.EmptyRoomCode, ErrRoomsUnavailable
}

func (u *Usecase) buildRoomCode() model.RoomCode {
	var builder strings.Builder
	builder.Grow(model.RoomCodeLen)

	for i := 0; i < model.RoomCodeLen; i++ {
		builder.WriteByte(model.RoomCodeAlphabet[rand.Intn(len(model.RoomCodeAlphabet))])
	}

	return model.RoomCode(builder.String())
}

func (u *Usecase) JoinRoom(ctx context.Context, code model.RoomCode, playerName string) (model.Room, model.Player, error) {
	room, err := u.fetch(ctx, code)
	if err != nil {
		return model.Room{}, model.Player{}, err
	}
	if room.GameState != model.StateWaiting {
		return model.Room{}, model.Player{}, ErrInvalidState
	}

	player := newPlayer(playerName)
	room.Players = append(room.Players, player)

	if err := u.store.Save(ctx, code, room); err != nil {
		return model.Room{}, model.Player{}, errors.Join(ErrInternal, err)
	}
	return room, player, nil
}

func (u *Usecase) StartGame(ctx context.Context, code model.RoomCode) (model.Room, error) {
	room, err := u.fetch(ctx, code)
	if err != nil {
		return model.Room{}, err
	}
	if room.GameState != model.StateWaiting {
		return model.Room{}, ErrInvalidState
	}
	if len(room.Players) < 2 {
		return model.Room{}, ErrPrecondition
	}

	room.GameState = model.StatePlaying
	room.CurrentRound = 1
	u.assignLetter(&room)
	resetPlayers(&room)

	if err := u.store.Save(ctx, code, room); err != nil {
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) SubmitAnswers(ctx context.Context, code model.RoomCode, playerID string, answers model.CategoryAnswers) (model.Room, error) {
	room, err := u.fetch(ctx, code)
	if err != nil {
		return model.Room{}, err
	}
	if room.GameState != model.StatePlaying {
		return model.Room{}, ErrInvalidState
	}

	i := room.PlayerIndex(playerID)
	if i < 0 {
		return model.Room{}, ErrResourceNotFound
	}
	room.Players[i].Answers = answers
	room.Players[i].HasSubmitted = true

	// Last submitter closes the round
	if room.AllSubmitted() {
		endRound(&room)
	}

	if err := u.store.Save(ctx, code, room); err != nil {
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) StopBus(ctx context.Context, code model.RoomCode, playerID string) (model.Room, error) {
	room, err := u.fetch(ctx, code)
	if err != nil {
		return model.Room{}, err
	}
	if room.GameState != model.StatePlaying {
		return model.Room{}, ErrInvalidState
	}

	i := room.PlayerIndex(playerID)
	if i < 0 {
		return model.Room{}, ErrResourceNotFound
	}
	if !room.Players[i].HasSubmitted {
		return model.Room{}, ErrPrecondition
	}

	endRound(&room)

	if err := u.store.Save(ctx, code, room); err != nil {
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

// NextRound advances the game out of roundEnd. When all rounds are played it
// still persists the gameEnd transition but reports ErrGameOver so callers
// can tell completion from misuse.
func (u *Usecase) NextRound(ctx context.Context, code model.RoomCode) (model.Room, error) {
	room, err := u.fetch(ctx, code)
	if err != nil {
		return model.Room{}, err
	}
	if room.GameState != model.StateRoundEnd {
		return model.Room{}, ErrInvalidState
	}

	if room.CurrentRound >= room.TotalRounds {
		room.GameState = model.StateGameEnd
		if err := u.store.Save(ctx, code, room); err != nil {
			return model.Room{}, errors.Join(ErrInternal, err)
		}
		return room, ErrGameOver
	}

	room.CurrentRound++
	u.assignLetter(&room)
	room.GameState = model.StatePlaying
	resetPlayers(&room)

	if err := u.store.Save(ctx, code, room); err != nil {
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) Room(ctx context.Context, code model.RoomCode) (model.Room, error) {
	return u.fetch(ctx, code)
}

func (u *Usecase) Codes(ctx context.Context) ([]model.RoomCode, error) {
	codes, err := u.store.Codes(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return codes, nil
}

// RemovePlayer is idempotent: leaving twice or leaving an unknown room is
// not an error. The last player to leave takes the room with them.
func (u *Usecase) RemovePlayer(ctx context.Context, code model.RoomCode, playerID string) error {
	room, err := u.fetch(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil
		}
		return err
	}

	kept := room.Players[:0:0]
	for _, p := range room.Players {
		if p.ID != playerID {
			kept = append(kept, p)
		}
	}
	room.Players = kept

	if len(room.Players) == 0 {
		if err := u.store.Delete(ctx, code); err != nil && !errors.Is(err, ErrResourceNotFound) {
			return errors.Join(ErrInternal, err)
		}
		return nil
	}

	if room.Host == playerID {
		room.Host = room.Players[0].ID
	}

	if err := u.store.Save(ctx, code, room); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) fetch(ctx context.Context, code model.RoomCode) (model.Room, error) {
	room, err := u.store.Room(ctx, code)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Room{}, ErrResourceNotFound
		}
		return model.Room{}, errors.Join(ErrInternal, err)
	}
	return room, nil
}

func (u *Usecase) assignLetter(room *model.Room) {
	letter := drawLetter(room.UsedLetters)
	room.CurrentLetter = letter
	room.UsedLetters = append(room.UsedLetters, letter)
}

// drawLetter picks uniformly among letters not used this game. Once the
// whole alphabet is spent, repeats are allowed.
func drawLetter(used []string) string {
	available := make([]string, 0, len(model.Letters))
	for _, l := range model.Letters {
		if !slices.Contains(used, l) {
			available = append(available, l)
		}
	}
	if len(available) == 0 {
		return model.Letters[rand.Intn(len(model.Letters))]
	}
	return available[rand.Intn(len(available))]
}

func resetPlayers(room *model.Room) {
	for i := range room.Players {
		room.Players[i].Answers = model.CategoryAnswers{}
		room.Players[i].HasSubmitted = false
	}
}

func newPlayer(name string) model.Player {
	return model.Player{
		ID:   uuid.New().String(),
		Name: name,
	}
}
