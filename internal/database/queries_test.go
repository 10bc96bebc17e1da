package database

import (
	"context"
	"database/sql"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to TEST_DB_URL and applies migrations, or skips.
func openTestDB(t *testing.T) *Queries {
	t.Helper()
	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" {
		t.Skip("TEST_DB_URL not set")
	}
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Ping())
	require.NoError(t, Migrate(context.Background(), db))
	return New(db)
}

func TestQueries_SpeciesAndMoves(t *testing.T) {
	q := openTestDB(t)
	ctx := context.Background()

	id := int32(10_000 + rand.IntN(1_000_000))
	require.NoError(t, q.InsertPokedex(ctx, InsertPokedexParams{
		ID: id, Name: uuid.NewString(), Type1: "STEEL", Type2: sql.NullString{String: "FAIRY", Valid: true},
		Hp: 50, Attack: 85, Defense: 100, SpecialAttack: 55, SpecialDefense: 95, Speed: 50,
	}))
	require.NoError(t, q.InsertMove(ctx, InsertMoveParams{
		MoveID: id, Name: uuid.NewString(), Type: "NORMAL", Category: "Physical", Power: 70,
		IgnoresStatus: []string{"Burn"},
	}))
	require.NoError(t, q.InsertMove(ctx, InsertMoveParams{
		MoveID: id + 1, Name: uuid.NewString(), Type: "BUG", Category: "Physical", Power: 25,
		MinHits: sql.NullInt32{Int32: 2, Valid: true}, MaxHits: sql.NullInt32{Int32: 5, Valid: true},
	}))
	require.NoError(t, q.InsertPokemonMove(ctx, InsertPokemonMoveParams{PokemonID: id, MoveID: id}))
	require.NoError(t, q.InsertPokemonMove(ctx, InsertPokemonMoveParams{PokemonID: id, MoveID: id + 1}))
	// linking twice is a no-op
	require.NoError(t, q.InsertPokemonMove(ctx, InsertPokemonMoveParams{PokemonID: id, MoveID: id}))

	p, err := q.FetchPokemonDataById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "FAIRY", p.Type2.String)

	byName, err := q.FetchPokemonDataByName(ctx, p.Name)
	require.NoError(t, err)
	assert.Equal(t, p, byName)

	moves, err := q.GetPokemonMoves(ctx, id)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, []string{"Burn"}, []string(moves[0].IgnoresStatus))
	assert.False(t, moves[0].MinHits.Valid)
	assert.Equal(t, int32(5), moves[1].MaxHits.Int32)

	_, err = q.FetchPokemonDataById(ctx, -1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestQueries_PartyAndChallenge(t *testing.T) {
	q := openTestDB(t)
	ctx := context.Background()

	user := CreateUserParams{ID: uuid.New(), Username: uuid.NewString(), PasswordHash: "x"}
	require.NoError(t, q.CreateUser(ctx, user))

	// species 4 and 7 come from the seed migration
	first, second := uuid.New(), uuid.New()
	for _, m := range []InsertUserPokemonParams{
		{ID: first, UserID: user.ID, PokemonID: sql.NullInt32{Int32: 4, Valid: true}, Level: 50, CurrentHp: 39, IsActive: true},
		{ID: second, UserID: user.ID, PokemonID: sql.NullInt32{Int32: 7, Valid: true}, Level: 30, CurrentHp: 44},
	} {
		require.NoError(t, q.InsertUserPokemon(ctx, m))
	}

	n, err := q.CountUserPokemon(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rows, err := q.SetActiveUserPokemon(ctx, SetActiveUserPokemonParams{UserID: user.ID, ID: second})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	active, err := q.GetActiveUserPokemon(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, second, active.ID)

	rows, err = q.SetActiveUserPokemon(ctx, SetActiveUserPokemonParams{UserID: user.ID, ID: uuid.New()})
	require.NoError(t, err)
	assert.Zero(t, rows)

	updated, err := q.SetUserPokemonStatus(ctx, SetUserPokemonStatusParams{UserID: user.ID, ID: first, Status: "Burn"})
	require.NoError(t, err)
	assert.Equal(t, "Burn", updated.Status)

	party, err := q.GetAllUserPokemon(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, party, 2)
	assert.Equal(t, "charmander", party[0].Name)
	assert.False(t, party[0].IsActive)
	assert.True(t, party[1].IsActive)

	one, err := q.GetUserPokemonByID(ctx, GetUserPokemonByIDParams{UserID: user.ID, ID: first})
	require.NoError(t, err)
	assert.Equal(t, int32(4), one.PokemonID.Int32)

	// members are scoped to their owner
	_, err = q.GetUserPokemonByID(ctx, GetUserPokemonByIDParams{UserID: uuid.New(), ID: first})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, q.LockUser(ctx, user.ID))
	assert.ErrorIs(t, q.LockUser(ctx, uuid.New()), sql.ErrNoRows)

	challengeID := uuid.New()
	require.NoError(t, q.InsertChallengePokemon(ctx, InsertChallengePokemonParams{
		ID: challengeID, PokemonID: sql.NullInt32{Int32: 1, Valid: true}, Level: 40, Status: "Dizzy", CurrentHp: 45,
	}))
	require.NoError(t, q.SetUserChallengePokemon(ctx, SetUserChallengePokemonParams{
		ChallengePokemonID: uuid.NullUUID{UUID: challengeID, Valid: true}, ID: user.ID,
	}))
	c, err := q.GetUserChallengePokemon(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dizzy", c.Status)

	require.NoError(t, q.DeleteChallengePokemon(ctx, challengeID))
	_, err = q.GetUserChallengePokemon(ctx, user.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, q.SetUserSession(ctx, SetUserSessionParams{
		SessionToken: sql.NullString{String: user.Username + "-token", Valid: true},
		CsrfToken:    sql.NullString{String: "csrf", Valid: true},
		ID:           user.ID,
	}))
	u, err := q.GetUserBySessionToken(ctx, sql.NullString{String: user.Username + "-token", Valid: true})
	require.NoError(t, err)
	assert.Equal(t, user.Username, u.Username)
	assert.False(t, u.ChallengePokemonID.Valid)
}
