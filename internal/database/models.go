package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ChallengePokemon struct {
	ID        uuid.UUID
	PokemonID sql.NullInt32
	Level     int32
	Status    string
	CurrentHp int32
}

type Move struct {
	MoveID        int32
	Name          string
	Type          string
	Category      string
	Power         int32
	IsSpread      bool
	MinHits       sql.NullInt32
	MaxHits       sql.NullInt32
	IgnoresStatus pq.StringArray
	Description   sql.NullString
}

type Pokedex struct {
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

type User struct {
	ID                 uuid.UUID
	Username           string
	PasswordHash       string
	SessionToken       sql.NullString
	CsrfToken          sql.NullString
	ChallengePokemonID uuid.NullUUID
	CreatedAt          time.Time
}

type UserPokemon struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PokemonID sql.NullInt32
	Nickname  sql.NullString
	Level     int32
	Status    string
	CurrentHp int32
	IsActive  bool
}
