package database

import (
	"context"
	"database/sql"
)

const pokedexColumns = `id, name, type1, type2, hp, attack, defense, special_attack, special_defense, speed, image_url`

func scanPokedex(row *sql.Row) (Pokedex, error) {
	var i Pokedex
	err := row.Scan(
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
	)
	return i, err
}

const fetchPokemonDataById = `-- name: FetchPokemonDataById :one
SELECT ` + pokedexColumns + ` FROM pokedex
WHERE id = $1
`

func (q *Queries) FetchPokemonDataById(ctx context.Context, id int32) (Pokedex, error) {
	return scanPokedex(q.db.QueryRowContext(ctx, fetchPokemonDataById, id))
}

const fetchPokemonDataByName = `-- name: FetchPokemonDataByName :one
SELECT ` + pokedexColumns + ` FROM pokedex
WHERE name = $1
`

func (q *Queries) FetchPokemonDataByName(ctx context.Context, name string) (Pokedex, error) {
	return scanPokedex(q.db.QueryRowContext(ctx, fetchPokemonDataByName, name))
}

const insertPokedex = `-- name: InsertPokedex :exec
INSERT INTO pokedex (id, name, type1, type2, hp, attack, defense, special_attack, special_defense, speed, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO NOTHING
`

type InsertPokedexParams struct {
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

func (q *Queries) InsertPokedex(ctx context.Context, arg InsertPokedexParams) error {
	_, err := q.db.ExecContext(ctx, insertPokedex,
		arg.ID,
		arg.Name,
		arg.Type1,
		arg.Type2,
		arg.Hp,
		arg.Attack,
		arg.Defense,
		arg.SpecialAttack,
		arg.SpecialDefense,
		arg.Speed,
		arg.ImageUrl,
	)
	return err
}
