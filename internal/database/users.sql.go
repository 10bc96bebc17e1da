package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createUser = `-- name: CreateUser :exec
INSERT INTO users (id, username, password_hash)
VALUES ($1, $2, $3)
`

type CreateUserParams struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser, arg.ID, arg.Username, arg.PasswordHash)
	return err
}

const userColumns = `id, username, password_hash, session_token, csrf_token, challenge_pokemon_id, created_at`

func scanUser(row *sql.Row) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.PasswordHash,
		&i.SessionToken,
		&i.CsrfToken,
		&i.ChallengePokemonID,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByUsername = `-- name: GetUserByUsername :one
SELECT ` + userColumns + ` FROM users
WHERE username = $1
`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByUsername, username))
}

const lockUser = `-- name: LockUser :exec
SELECT id FROM users
WHERE id = $1
FOR UPDATE
`

// LockUser holds the user's row until the surrounding transaction ends, so
// writes to the user's party and challenger are serialized.
func (q *Queries) LockUser(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	return q.db.QueryRowContext(ctx, lockUser, id).Scan(&locked)
}

const getUserBySessionToken = `-- name: GetUserBySessionToken :one
SELECT ` + userColumns + ` FROM users
WHERE session_token = $1
`

func (q *Queries) GetUserBySessionToken(ctx context.Context, sessionToken sql.NullString) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserBySessionToken, sessionToken))
}

const setUserSession = `-- name: SetUserSession :exec
UPDATE users
SET session_token = $1, csrf_token = $2
WHERE id = $3
`

type SetUserSessionParams struct {
	SessionToken sql.NullString
	CsrfToken    sql.NullString
	ID           uuid.UUID
}

func (q *Queries) SetUserSession(ctx context.Context, arg SetUserSessionParams) error {
	_, err := q.db.ExecContext(ctx, setUserSession, arg.SessionToken, arg.CsrfToken, arg.ID)
	return err
}

const setUserChallengePokemon = `-- name: SetUserChallengePokemon :exec
UPDATE users
SET challenge_pokemon_id = $1
WHERE id = $2
`

type SetUserChallengePokemonParams struct {
	ChallengePokemonID uuid.NullUUID
	ID                 uuid.UUID
}

func (q *Queries) SetUserChallengePokemon(ctx context.Context, arg SetUserChallengePokemonParams) error {
	_, err := q.db.ExecContext(ctx, setUserChallengePokemon, arg.ChallengePokemonID, arg.ID)
	return err
}
