package handlers

import (
	"context"
	"database/sql"
	"time"

	"github.com/JadedPigeon/tectoniccalc/internal/damage"
	"github.com/JadedPigeon/tectoniccalc/internal/database"
	"github.com/JadedPigeon/tectoniccalc/internal/describe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Querier is the subset of database.Queries the handlers use.
type Querier interface {
	CreateUser(ctx context.Context, arg database.CreateUserParams) error
	GetUserByUsername(ctx context.Context, username string) (database.User, error)
	GetUserBySessionToken(ctx context.Context, sessionToken sql.NullString) (database.User, error)
	SetUserSession(ctx context.Context, arg database.SetUserSessionParams) error
	SetUserChallengePokemon(ctx context.Context, arg database.SetUserChallengePokemonParams) error
	LockUser(ctx context.Context, id uuid.UUID) error

	FetchPokemonDataById(ctx context.Context, id int32) (database.Pokedex, error)
	FetchPokemonDataByName(ctx context.Context, name string) (database.Pokedex, error)
	GetPokemonMoves(ctx context.Context, pokemonID int32) ([]database.Move, error)

	CountUserPokemon(ctx context.Context, userID uuid.UUID) (int64, error)
	InsertUserPokemon(ctx context.Context, arg database.InsertUserPokemonParams) error
	SetActiveUserPokemon(ctx context.Context, arg database.SetActiveUserPokemonParams) (int64, error)
	GetActiveUserPokemon(ctx context.Context, userID uuid.UUID) (database.UserPokemon, error)
	GetUserPokemonByID(ctx context.Context, arg database.GetUserPokemonByIDParams) (database.UserPokemon, error)
	SetUserPokemonStatus(ctx context.Context, arg database.SetUserPokemonStatusParams) (database.UserPokemon, error)
	GetAllUserPokemon(ctx context.Context, userID uuid.UUID) ([]database.GetAllUserPokemonRow, error)

	InsertChallengePokemon(ctx context.Context, arg database.InsertChallengePokemonParams) error
	DeleteChallengePokemon(ctx context.Context, id uuid.UUID) error
	GetUserChallengePokemon(ctx context.Context, userID uuid.UUID) (database.ChallengePokemon, error)
}

var _ Querier = (*database.Queries)(nil)

// Store is a Querier that can also run a group of queries atomically. InTx
// commits when fn returns nil and rolls back otherwise.
type Store interface {
	Querier
	InTx(ctx context.Context, fn func(q Querier) error) error
}

const maxPartySize = 6

type Config struct {
	DB        Store
	Calc      *damage.Calculator
	Describer describe.Describer
	Log       *zap.Logger

	SessionDuration time.Duration
	DefaultLevel    int
}

func (cfg *Config) logger() *zap.Logger {
	if cfg.Log == nil {
		return zap.NewNop()
	}
	return cfg.Log
}

func (cfg *Config) describer() describe.Describer {
	if cfg.Describer == nil {
		return describe.Plain{}
	}
	return cfg.Describer
}
