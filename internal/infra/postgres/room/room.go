package infra_postgres_room

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/humanbelnik/stopbus/core/internal/model"
	usecase_game "github.com/humanbelnik/stopbus/core/internal/usecase/game"
	"github.com/jmoiron/sqlx"
)

// Driver stores rooms as a single expiring key-value table:
//
//	CREATE TABLE rooms (
//	    code       text PRIMARY KEY,
//	    state      jsonb NOT NULL,
//	    expires_at timestamptz NOT NULL
//	);
//
// Rows past expires_at count as absent; CleanupExpired reaps them.
type Driver struct {
	db  *sqlx.DB
	ttl time.Duration
}

func New(db *sqlx.DB, ttl time.Duration) *Driver {
	return &Driver{db: db, ttl: ttl}
}

type roomDTO struct {
	Code      string    `db:"code"`
	State     string    `db:"state"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (d *Driver) Room(ctx context.Context, code model.RoomCode) (model.Room, error) {
	var dto roomDTO

	query := `
        SELECT code, state, expires_at
        FROM rooms
        WHERE code = $1 AND expires_at > now()
    `

	err := d.db.GetContext(ctx, &dto, query, string(code))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Room{}, usecase_game.ErrResourceNotFound
		}
		return model.Room{}, err
	}

	var room model.Room
	if err := json.Unmarshal([]byte(dto.State), &room); err != nil {
		// Corrupt value; surface as absent rather than failing the engine
		return model.Room{}, usecase_game.ErrResourceNotFound
	}
	return room, nil
}

func (d *Driver) Save(ctx context.Context, code model.RoomCode, room model.Room) error {
	state, err := json.Marshal(room)
	if err != nil {
		return err
	}

	dto := roomDTO{
		Code:      string(code),
		State:     string(state),
		ExpiresAt: time.Now().Add(d.ttl),
	}

	query := `
		INSERT INTO rooms (code, state, expires_at)
		VALUES (:code, :state, :expires_at)
		ON CONFLICT (code) DO UPDATE
		SET state = EXCLUDED.state, expires_at = EXCLUDED.expires_at
	`

	_, err = d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) Delete(ctx context.Context, code model.RoomCode) error {
	query := `
        DELETE FROM rooms
        WHERE code = $1
    `

	result, err := d.db.ExecContext(ctx, query, string(code))
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_game.ErrResourceNotFound
	}

	return nil
}

func (d *Driver) Codes(ctx context.Context) ([]model.RoomCode, error) {
	var codes []string

	query := `
        SELECT code
        FROM rooms
        WHERE expires_at > now()
    `

	if err := d.db.SelectContext(ctx, &codes, query); err != nil {
		return nil, err
	}

	out := make([]model.RoomCode, 0, len(codes))
	for _, c := range codes {
		out = append(out, model.RoomCode(c))
	}
	return out, nil
}

func (d *Driver) CleanupExpired(ctx context.Context) error {
	query := `
        DELETE FROM rooms
        WHERE expires_at <= now()
    `

	_, err := d.db.ExecContext(ctx, query)
	return err
}
