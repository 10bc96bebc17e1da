package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

const getPokemonMoves = `-- name: GetPokemonMoves :many
SELECT m.move_id, m.name, m.type, m.category, m.power, m.is_spread, m.min_hits, m.max_hits, m.ignores_status, m.description
FROM moves m
JOIN pokemon_moves pm ON pm.move_id = m.move_id
WHERE pm.pokemon_id = $1
ORDER BY m.move_id
`

func (q *Queries) GetPokemonMoves(ctx context.Context, pokemonID int32) ([]Move, error) {
	rows, err := q.db.QueryContext(ctx, getPokemonMoves, pokemonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Move
	for rows.Next() {
		var i Move
		if err := rows.Scan(
			&i.MoveID,
			&i.Name,
			&i.Type,
			&i.Category,
			&i.Power,
			&i.IsSpread,
			&i.MinHits,
			&i.MaxHits,
			&i.IgnoresStatus,
			&i.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertMove = `-- name: InsertMove :exec
INSERT INTO moves (move_id, name, type, category, power, is_spread, min_hits, max_hits, ignores_status, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (move_id) DO NOTHING
`

type InsertMoveParams struct {
	MoveID        int32
	Name          string
	Type          string
	Category      string
	Power         int32
	IsSpread      bool
	MinHits       sql.NullInt32
	MaxHits       sql.NullInt32
	IgnoresStatus []string
	Description   sql.NullString
}

func (q *Queries) InsertMove(ctx context.Context, arg InsertMoveParams) error {
	// ignores_status is NOT NULL; pq encodes a nil slice as NULL.
	if arg.IgnoresStatus == nil {
		arg.IgnoresStatus = []string{}
	}
	_, err := q.db.ExecContext(ctx, insertMove,
		arg.MoveID,
		arg.Name,
		arg.Type,
		arg.Category,
		arg.Power,
		arg.IsSpread,
		arg.MinHits,
		arg.MaxHits,
		pq.Array(arg.IgnoresStatus),
		arg.Description,
	)
	return err
}

const insertPokemonMove = `-- name: InsertPokemonMove :exec
INSERT INTO pokemon_moves (pokemon_id, move_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

type InsertPokemonMoveParams struct {
	PokemonID int32
	MoveID    int32
}

func (q *Queries) InsertPokemonMove(ctx context.Context, arg InsertPokemonMoveParams) error {
	_, err := q.db.ExecContext(ctx, insertPokemonMove, arg.PokemonID, arg.MoveID)
	return err
}
