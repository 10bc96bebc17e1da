package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/JadedPigeon/tectoniccalc/internal/database"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChooseChallengePokemonHandler replaces the user's challenger.
func (cfg *Config) ChooseChallengePokemonHandler(w http.ResponseWriter, r *http.Request) {
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

	challengerID := uuid.New()
	err = cfg.DB.InTx(ctx, func(q Querier) error {
		if err := q.LockUser(ctx, user.ID); err != nil {
			return err
		}
		previous, err := q.GetUserChallengePokemon(ctx, user.ID)
		hadPrevious := err == nil
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if err := q.InsertChallengePokemon(ctx, database.InsertChallengePokemonParams{
			ID:        challengerID,
			PokemonID: sql.NullInt32{Valid: true, Int32: species.ID},
			Level:     int32(level),
			Status:    string(status),
			CurrentHp: species.Hp,
		}); err != nil {
			return err
		}
		if err := q.SetUserChallengePokemon(ctx, database.SetUserChallengePokemonParams{
			ChallengePokemonID: uuid.NullUUID{UUID: challengerID, Valid: true},
			ID:                 user.ID,
		}); err != nil {
			return err
		}

		// Remove previous challenge pokemon if exists
		if hadPrevious {
			return q.DeleteChallengePokemon(ctx, previous.ID)
		}
		return nil
	})
	if err != nil {
		cfg.fail(w, err, "")
		return
	}

	cfg.logger().Info("challenger chosen",
		zap.String("username", user.Username),
		zap.String("pokemon", species.Name),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":       "Challenge initiated successfully",
		"challenger_id": challengerID,
		"pokemon_id":    species.ID,
		"pokemon_name":  species.Name,
		"level":         level,
		"status":        status,
		"user_username": user.Username,
	})
}
