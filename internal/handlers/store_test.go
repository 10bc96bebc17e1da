package handlers

import (
	"cmp"
	"context"
	"database/sql"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/JadedPigeon/tectoniccalc/internal/database"
	"github.com/google/uuid"
)

var _ Store = (*memStore)(nil)

// memStore is an in-memory Store. Setting failures[method] makes that
// method return the error. InTx runs one transaction at a time and restores
// users, party and challengers when fn fails.
type memStore struct {
	txMu       sync.Mutex
	mu         sync.Mutex
	users      []database.User
	pokedex    map[int32]database.Pokedex
	moves      map[int32][]database.Move
	party      []database.UserPokemon
	challenges map[uuid.UUID]database.ChallengePokemon
	failures   map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		pokedex:    map[int32]database.Pokedex{},
		moves:      map[int32][]database.Move{},
		challenges: map[uuid.UUID]database.ChallengePokemon{},
		failures:   map[string]error{},
	}
}

func (s *memStore) addSpecies(p database.Pokedex, moves ...database.Move) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pokedex[p.ID] = p
	s.moves[p.ID] = moves
}

func (s *memStore) InTx(_ context.Context, fn func(q Querier) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	users := slices.Clone(s.users)
	party := slices.Clone(s.party)
	challenges := maps.Clone(s.challenges)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.users, s.party, s.challenges = users, party, challenges
		s.mu.Unlock()
		return err
	}
	return nil
}

// fail reports the injected error for method. Callers hold mu.
func (s *memStore) fail(method string) error {
	return s.failures[method]
}

func (s *memStore) setFailure(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = err
}

func (s *memStore) partySize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.party)
}

func (s *memStore) user(id uuid.UUID) *database.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *memStore) CreateUser(_ context.Context, arg database.CreateUserParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, database.User{
		ID:           arg.ID,
		Username:     arg.Username,
		PasswordHash: arg.PasswordHash,
		CreatedAt:    time.Now(),
	})
	return nil
}

func (s *memStore) GetUserByUsername(_ context.Context, username string) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return database.User{}, sql.ErrNoRows
}

func (s *memStore) GetUserBySessionToken(_ context.Context, token sql.NullString) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.SessionToken.Valid && token.Valid && u.SessionToken.String == token.String {
			return u, nil
		}
	}
	return database.User{}, sql.ErrNoRows
}

func (s *memStore) SetUserSession(_ context.Context, arg database.SetUserSessionParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u := s.user(arg.ID); u != nil {
		u.SessionToken = arg.SessionToken
		u.CsrfToken = arg.CsrfToken
	}
	return nil
}

func (s *memStore) LockUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user(id) == nil {
		return sql.ErrNoRows
	}
	return nil
}

func (s *memStore) SetUserChallengePokemon(_ context.Context, arg database.SetUserChallengePokemonParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("SetUserChallengePokemon"); err != nil {
		return err
	}
	if u := s.user(arg.ID); u != nil {
		u.ChallengePokemonID = arg.ChallengePokemonID
	}
	return nil
}

func (s *memStore) FetchPokemonDataById(_ context.Context, id int32) (database.Pokedex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pokedex[id]
	if !ok {
		return database.Pokedex{}, sql.ErrNoRows
	}
	return p, nil
}

func (s *memStore) FetchPokemonDataByName(_ context.Context, name string) (database.Pokedex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pokedex {
		if p.Name == name {
			return p, nil
		}
	}
	return database.Pokedex{}, sql.ErrNoRows
}

func (s *memStore) GetPokemonMoves(_ context.Context, pokemonID int32) ([]database.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves[pokemonID], nil
}

func (s *memStore) CountUserPokemon(_ context.Context, userID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, m := range s.party {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) InsertUserPokemon(_ context.Context, arg database.InsertUserPokemonParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.party = append(s.party, database.UserPokemon(arg))
	return nil
}

func (s *memStore) SetActiveUserPokemon(_ context.Context, arg database.SetActiveUserPokemonParams) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("SetActiveUserPokemon"); err != nil {
		return 0, err
	}
	owned := slices.ContainsFunc(s.party, func(m database.UserPokemon) bool {
		return m.UserID == arg.UserID && m.ID == arg.ID
	})
	if !owned {
		return 0, nil
	}
	var n int64
	for i := range s.party {
		if s.party[i].UserID == arg.UserID {
			s.party[i].IsActive = s.party[i].ID == arg.ID
			n++
		}
	}
	return n, nil
}

func (s *memStore) GetActiveUserPokemon(_ context.Context, userID uuid.UUID) (database.UserPokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.party {
		if m.UserID == userID && m.IsActive {
			return m, nil
		}
	}
	return database.UserPokemon{}, sql.ErrNoRows
}

func (s *memStore) GetUserPokemonByID(_ context.Context, arg database.GetUserPokemonByIDParams) (database.UserPokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.party {
		if m.UserID == arg.UserID && m.ID == arg.ID {
			return m, nil
		}
	}
	return database.UserPokemon{}, sql.ErrNoRows
}

func (s *memStore) SetUserPokemonStatus(_ context.Context, arg database.SetUserPokemonStatusParams) (database.UserPokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.party {
		if s.party[i].UserID == arg.UserID && s.party[i].ID == arg.ID {
			s.party[i].Status = arg.Status
			return s.party[i], nil
		}
	}
	return database.UserPokemon{}, sql.ErrNoRows
}

func (s *memStore) GetAllUserPokemon(_ context.Context, userID uuid.UUID) ([]database.GetAllUserPokemonRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetAllUserPokemon"); err != nil {
		return nil, err
	}
	var rows []database.GetAllUserPokemonRow
	for _, m := range s.party {
		if m.UserID != userID {
			continue
		}
		p := s.pokedex[m.PokemonID.Int32]
		rows = append(rows, database.GetAllUserPokemonRow{
			UserPokemonID:  m.ID,
			Level:          m.Level,
			Status:         m.Status,
			Nickname:       m.Nickname,
			IsActive:       m.IsActive,
			ID:             p.ID,
			Name:           p.Name,
			Type1:          p.Type1,
			Type2:          p.Type2,
			Hp:             p.Hp,
			Attack:         p.Attack,
			Defense:        p.Defense,
			SpecialAttack:  p.SpecialAttack,
			SpecialDefense: p.SpecialDefense,
			Speed:          p.Speed,
			ImageUrl:       p.ImageUrl,
		})
	}
	slices.SortStableFunc(rows, func(a, b database.GetAllUserPokemonRow) int { return cmp.Compare(a.ID, b.ID) })
	return rows, nil
}

func (s *memStore) InsertChallengePokemon(_ context.Context, arg database.InsertChallengePokemonParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("InsertChallengePokemon"); err != nil {
		return err
	}
	s.challenges[arg.ID] = database.ChallengePokemon(arg)
	return nil
}

func (s *memStore) DeleteChallengePokemon(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, id)
	for i := range s.users {
		if s.users[i].ChallengePokemonID.Valid && s.users[i].ChallengePokemonID.UUID == id {
			s.users[i].ChallengePokemonID = uuid.NullUUID{}
		}
	}
	return nil
}

func (s *memStore) GetUserChallengePokemon(_ context.Context, userID uuid.UUID) (database.ChallengePokemon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(userID)
	if u == nil || !u.ChallengePokemonID.Valid {
		return database.ChallengePokemon{}, sql.ErrNoRows
	}
	c, ok := s.challenges[u.ChallengePokemonID.UUID]
	if !ok {
		return database.ChallengePokemon{}, sql.ErrNoRows
	}
	return c, nil
}
