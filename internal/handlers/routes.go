package handlers

import "net/http"

// Routes registers every endpoint. Party, challenge and fight endpoints
// require a session cookie plus the matching X-CSRF-Token header.
func (cfg *Config) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", cfg.RegisterHandler)
	mux.HandleFunc("POST /login", cfg.LoginHandler)
	mux.HandleFunc("POST /logout", cfg.AuthMiddleware(cfg.LogoutHandler))
	mux.HandleFunc("POST /protected", cfg.AuthMiddleware(cfg.ProtectedHandler))

	mux.HandleFunc("POST /party", cfg.AuthMiddleware(cfg.CatchPokemonHandler))
	mux.HandleFunc("GET /party", cfg.AuthMiddleware(cfg.GetUserPokemonHandler))
	mux.HandleFunc("GET /party/coverage", cfg.AuthMiddleware(cfg.PartyCoverageHandler))
	mux.HandleFunc("POST /party/active", cfg.AuthMiddleware(cfg.ChangeActivePokemonHandler))
	mux.HandleFunc("POST /party/status", cfg.AuthMiddleware(cfg.SetPokemonStatusHandler))
	mux.HandleFunc("POST /challenge", cfg.AuthMiddleware(cfg.ChooseChallengePokemonHandler))
	mux.HandleFunc("GET /fight", cfg.AuthMiddleware(cfg.FightHandler))

	mux.HandleFunc("POST /calc", cfg.CalcHandler)
	mux.HandleFunc("GET /typechart", cfg.TypeChartHandler)
	mux.HandleFunc("GET /types", cfg.TypesHandler)

	return mux
}
