package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/JadedPigeon/tectoniccalc/internal/database"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errPartyFull = errors.New("party is full")

// CatchPokemonHandler adds a species to the user's party and makes it active.
func (cfg *Config) CatchPokemonHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Bad form data")
		return
	}

	// pokemon_identifier can be either name or ID
	pokemon := r.PostForm.Get("pokemon_identifier")
	if pokemon == "" {
		writeError(w, http.StatusBadRequest, "pokemon_identifier is required")
		return
	}
	level, err := cfg.parseLevel(r.PostForm.Get("level"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	status, err := parseStatus(r.PostForm.Get("status"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}

	species, err := cfg.lookupSpecies(ctx, pokemon)
	if err != nil {
		cfg.fail(w, err, "Pokemon not found")
		return
	}

	memberID := uuid.New()
	err = cfg.DB.InTx(ctx, func(q Querier) error {
		if err := q.LockUser(ctx, user.ID); err != nil {
			return err
		}
		partySize, err := q.CountUserPokemon(ctx, user.ID)
		if err != nil {
			return err
		}
		if partySize >= maxPartySize {
			return errPartyFull
		}

		if err := q.InsertUserPokemon(ctx, database.InsertUserPokemonParams{
			ID:        memberID,
			UserID:    user.ID,
			PokemonID: sql.NullInt32{Valid: true, Int32: species.ID},
			Level:     int32(level),
			Status:    string(status),
			CurrentHp: species.Hp,
		}); err != nil {
			return err
		}

		// Set the new pokemon as active
		_, err = q.SetActiveUserPokemon(ctx, database.SetActiveUserPokemonParams{
			UserID: user.ID,
			ID:     memberID,
		})
		return err
	})
	if errors.Is(err, errPartyFull) {
		writeError(w, http.StatusBadRequest, "You can only have at most six pokemon in your party")
		return
	}
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	cfg.logger().Info("pokemon caught",
		zap.String("username", user.Username),
		zap.String("pokemon", species.Name),
		zap.Int("level", level),
	)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":         "Pokemon caught successfully",
		"party_member_id": memberID,
		"pokemon_id":      species.ID,
		"pokemon_name":    species.Name,
		"level":           level,
		"status":          status,
		"user_username":   user.Username,
	})
}

type PartyMemberResponse struct {
	MemberID       uuid.UUID `json:"party_member_id"`
	ID             int32     `json:"id"`
	Name           string    `json:"name"`
	Nickname       string    `json:"nickname,omitempty"`
	Level          int32     `json:"level"`
	Status         string    `json:"status,omitempty"`
	Type1          string    `json:"type1"`
	Type2          string    `json:"type2,omitempty"`
	Hp             int32     `json:"hp"`
	Attack         int32     `json:"attack"`
	Defense        int32     `json:"defense"`
	SpecialAttack  int32     `json:"special_attack"`
	SpecialDefense int32     `json:"special_defense"`
	Speed          int32     `json:"speed"`
	Active         bool      `json:"active"`
	ImageUrl       string    `json:"image_url,omitempty"`
}

func (cfg *Config) GetUserPokemonHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}

	party, err := cfg.DB.GetAllUserPokemon(r.Context(), user.ID)
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	response := make([]PartyMemberResponse, 0, len(party))
	for _, p := range party {
		response = append(response, PartyMemberResponse{
			MemberID:       p.UserPokemonID,
			ID:             p.ID,
			Name:           p.Name,
			Nickname:       p.Nickname.String,
			Level:          p.Level,
			Status:         p.Status,
			Type1:          p.Type1,
			Type2:          p.Type2.String,
			Hp:             p.Hp,
			Attack:         p.Attack,
			Defense:        p.Defense,
			SpecialAttack:  p.SpecialAttack,
			SpecialDefense: p.SpecialDefense,
			Speed:          p.Speed,
			Active:         p.IsActive,
			ImageUrl:       p.ImageUrl.String,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// partyMember resolves the form to one of the user's party members, by
// party_member_id or else by pokemon_identifier (a pokedex number) when the
// user holds exactly one of that species. It writes the error response itself.
func (cfg *Config) partyMember(w http.ResponseWriter, r *http.Request, user *database.User) (database.UserPokemon, bool) {
	ctx := r.Context()
	var memberID uuid.UUID
	switch {
	case r.PostForm.Get("party_member_id") != "":
		id, err := uuid.Parse(r.PostForm.Get("party_member_id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "party_member_id must be a valid UUID")
			return database.UserPokemon{}, false
		}
		memberID = id

	case r.PostForm.Get("pokemon_identifier") != "":
		species, err := strconv.Atoi(r.PostForm.Get("pokemon_identifier"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "pokemon_identifier must be a valid integer")
			return database.UserPokemon{}, false
		}
		party, err := cfg.DB.GetAllUserPokemon(ctx, user.ID)
		if err != nil {
			cfg.fail(w, err, "")
			return database.UserPokemon{}, false
		}
		matches := 0
		for _, p := range party {
			if int(p.ID) == species {
				memberID = p.UserPokemonID
				matches++
			}
		}
		switch matches {
		case 0:
			writeError(w, http.StatusNotFound, "Pokemon not found for user")
			return database.UserPokemon{}, false
		case 1:
		default:
			writeError(w, http.StatusConflict, "Several party members share that species, use party_member_id")
			return database.UserPokemon{}, false
		}

	default:
		writeError(w, http.StatusBadRequest, "party_member_id or pokemon_identifier is required")
		return database.UserPokemon{}, false
	}

	member, err := cfg.DB.GetUserPokemonByID(ctx, database.GetUserPokemonByIDParams{
		UserID: user.ID,
		ID:     memberID,
	})
	if err != nil {
		cfg.fail(w, err, "Pokemon not found for user")
		return database.UserPokemon{}, false
	}
	return member, true
}

func (cfg *Config) ChangeActivePokemonHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Bad form data")
		return
	}
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}

	member, ok := cfg.partyMember(w, r, user)
	if !ok {
		return
	}

	n, err := cfg.DB.SetActiveUserPokemon(r.Context(), database.SetActiveUserPokemonParams{
		UserID: user.ID,
		ID:     member.ID,
	})
	if err != nil {
		cfg.fail(w, err, "")
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "pokemon not owned by user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Active pokemon changed successfully",
		"party_member_id": member.ID,
		"pokemon_id":      member.PokemonID.Int32,
		"user_username":   user.Username,
	})
}

func (cfg *Config) SetPokemonStatusHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Bad form data")
		return
	}
	status, err := parseStatus(r.PostForm.Get("status"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthorized.Error())
		return
	}

	member, ok := cfg.partyMember(w, r, user)
	if !ok {
		return
	}

	updated, err := cfg.DB.SetUserPokemonStatus(r.Context(), database.SetUserPokemonStatusParams{
		UserID: user.ID,
		ID:     member.ID,
		Status: string(status),
	})
	if err != nil {
		cfg.fail(w, err, "Pokemon not found for user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Status updated successfully",
		"party_member_id": updated.ID,
		"pokemon_id":      updated.PokemonID.Int32,
		"status":          updated.Status,
	})
}
