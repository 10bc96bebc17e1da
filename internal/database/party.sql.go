package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const userPokemonColumns = `id, user_id, pokemon_id, nickname, level, status, current_hp, is_active`

func scanUserPokemon(row *sql.Row) (UserPokemon, error) {
	var i UserPokemon
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.PokemonID,
		&i.Nickname,
		&i.Level,
		&i.Status,
		&i.CurrentHp,
		&i.IsActive,
	)
	return i, err
}

const countUserPokemon = `-- name: CountUserPokemon :one
SELECT COUNT(*) FROM user_pokemon
WHERE user_id = $1
`

func (q *Queries) CountUserPokemon(ctx context.Context, userID uuid.UUID) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUserPokemon, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const insertUserPokemon = `-- name: InsertUserPokemon :exec
INSERT INTO user_pokemon (id, user_id, pokemon_id, nickname, level, status, current_hp, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type InsertUserPokemonParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PokemonID sql.NullInt32
	Nickname  sql.NullString
	Level     int32
	Status    string
	CurrentHp int32
	IsActive  bool
}

func (q *Queries) InsertUserPokemon(ctx context.Context, arg InsertUserPokemonParams) error {
	_, err := q.db.ExecContext(ctx, insertUserPokemon,
		arg.ID,
		arg.UserID,
		arg.PokemonID,
		arg.Nickname,
		arg.Level,
		arg.Status,
		arg.CurrentHp,
		arg.IsActive,
	)
	return err
}

// One statement, so a party never ends up with zero or two active members.
const setActiveUserPokemon = `-- name: SetActiveUserPokemon :execrows
UPDATE user_pokemon
SET is_active = (id = $2)
WHERE user_id = $1
  AND EXISTS (SELECT 1 FROM user_pokemon WHERE id = $2 AND user_id = $1)
`

type SetActiveUserPokemonParams struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (q *Queries) SetActiveUserPokemon(ctx context.Context, arg SetActiveUserPokemonParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setActiveUserPokemon, arg.UserID, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getActiveUserPokemon = `-- name: GetActiveUserPokemon :one
SELECT ` + userPokemonColumns + ` FROM user_pokemon
WHERE user_id = $1 AND is_active
`

func (q *Queries) GetActiveUserPokemon(ctx context.Context, userID uuid.UUID) (UserPokemon, error) {
	return scanUserPokemon(q.db.QueryRowContext(ctx, getActiveUserPokemon, userID))
}

const getUserPokemonByID = `-- name: GetUserPokemonByID :one
SELECT ` + userPokemonColumns + ` FROM user_pokemon
WHERE user_id = $1 AND id = $2
`

type GetUserPokemonByIDParams struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (q *Queries) GetUserPokemonByID(ctx context.Context, arg GetUserPokemonByIDParams) (UserPokemon, error) {
	return scanUserPokemon(q.db.QueryRowContext(ctx, getUserPokemonByID, arg.UserID, arg.ID))
}

const setUserPokemonStatus = `-- name: SetUserPokemonStatus :one
UPDATE user_pokemon
SET status = $3
WHERE user_id = $1 AND id = $2
RETURNING ` + userPokemonColumns + `
`

type SetUserPokemonStatusParams struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Status string
}

func (q *Queries) SetUserPokemonStatus(ctx context.Context, arg SetUserPokemonStatusParams) (UserPokemon, error) {
	return scanUserPokemon(q.db.QueryRowContext(ctx, setUserPokemonStatus, arg.UserID, arg.ID, arg.Status))
}

const getAllUserPokemon = `-- name: GetAllUserPokemon :many
SELECT up.id, up.level, up.status, up.nickname, up.is_active,
       p.id, p.name, p.type1, p.type2, p.hp, p.attack, p.defense, p.special_attack, p.special_defense, p.speed, p.image_url
FROM user_pokemon up
JOIN pokedex p ON p.id = up.pokemon_id
WHERE up.user_id = $1
ORDER BY p.id
`

type GetAllUserPokemonRow struct {
	UserPokemonID  uuid.UUID
	Level          int32
	Status         string
	Nickname       sql.NullString
	IsActive       bool
	ID             int32
	Name           string
	Type1          string
	Type2          sql.NullString
	Hp             int32
	Attack         int32
	Defense        int32
	SpecialAttack  int32
	SpecialDefense int32
	Speed          int32
	ImageUrl       sql.NullString
}

func (q *Queries) GetAllUserPokemon(ctx context.Context, userID uuid.UUID) ([]GetAllUserPokemonRow, error) {
	rows, err := q.db.QueryContext(ctx, getAllUserPokemon, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetAllUserPokemonRow
	for rows.Next() {
		var i GetAllUserPokemonRow
		if err := rows.Scan(
			&i.UserPokemonID,
			&i.Level,
			&i.Status,
			&i.Nickname,
			&i.IsActive,
			&i.ID,
			&i.Name,
			&i.Type1,
			&i.Type2,
			&i.Hp,
			&i.Attack,
			&i.Defense,
			&i.SpecialAttack,
			&i.SpecialDefense,
			&i.Speed,
			&i.ImageUrl,
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
