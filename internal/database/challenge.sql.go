package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const insertChallengePokemon = `-- name: InsertChallengePokemon :exec
INSERT INTO challenge_pokemon (id, pokemon_id, level, status, current_hp)
VALUES ($1, $2, $3, $4, $5)
`

type InsertChallengePokemonParams struct {
	ID        uuid.UUID
	PokemonID sql.NullInt32
	Level     int32
	Status    string
	CurrentHp int32
}

func (q *Queries) InsertChallengePokemon(ctx context.Context, arg InsertChallengePokemonParams) error {
	_, err := q.db.ExecContext(ctx, insertChallengePokemon,
		arg.ID,
		arg.PokemonID,
		arg.Level,
		arg.Status,
		arg.CurrentHp,
	)
	return err
}

const deleteChallengePokemon = `-- name: DeleteChallengePokemon :exec
DELETE FROM challenge_pokemon
WHERE id = $1
`

func (q *Queries) DeleteChallengePokemon(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteChallengePokemon, id)
	return err
}

const getUserChallengePokemon = `-- name: GetUserChallengePokemon :one
SELECT c.id, c.pokemon_id, c.level, c.status, c.current_hp
FROM challenge_pokemon c
JOIN users u ON u.challenge_pokemon_id = c.id
WHERE u.id = $1
`

func (q *Queries) GetUserChallengePokemon(ctx context.Context, userID uuid.UUID) (ChallengePokemon, error) {
	row := q.db.QueryRowContext(ctx, getUserChallengePokemon, userID)
	var i ChallengePokemon
	err := row.Scan(
		&i.ID,
		&i.PokemonID,
		&i.Level,
		&i.Status,
		&i.CurrentHp,
	)
	return i, err
}
