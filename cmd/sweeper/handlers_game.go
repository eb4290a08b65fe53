package main

import (
	"errors"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

var (
	dec = schema.NewDecoder()
	rnd = rand.New(&lockedSource{src: rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	)})
)

// lockedSource guards one PCG stream shared by all handler goroutines;
// rand.Rand does no locking of its own and keeps no state outside its
// source, so serializing the source is enough.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	GridSize  int `schema:"grid_size,required"`
	MineCount int `schema:"mine_count,required"`
}

type CellParams struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func handleNewGame(w http.ResponseWriter, r *http.Request) {
	var gameParams NewGameParams
	if err := dec.Decode(&gameParams, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	params := mines.GameParams(gameParams)
	game, err := mines.NewGame(params, rnd)
	var paramsErr mines.InvalidParamsError
	if errors.As(err, &paramsErr) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(paramsErr.Error()))
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	var playerId *int
	if claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims); ok {
		log.Debug("creating session for player ", claims.Username)
		playerId = &claims.PlayerId
		refreshPlayerCookies(w, *claims)
	} else {
		log.Debug("creating anonymous session")
	}
	session, err := pg.CreateGameSession(r.Context(), playerId, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := sendJSON(w, session); err != nil {
		log.Error(err)
	}
}

func handleGetGame(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}

// handleCellOp wraps the reveal/flag/action handlers: they differ only
// in which engine operation runs on the decoded coordinates.
func handleCellOp(op func(*mines.Game, int, int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cellParams CellParams
		if err := dec.Decode(&cellParams, r.URL.Query()); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		sessionId, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		session, err := pg.GetSession(r.Context(), sessionId)
		if errors.Is(err, pgx.ErrNoRows) {
			w.WriteHeader(http.StatusNotFound)
			return
		} else if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			log.Error(err)
			return
		}
		var coordErr mines.InvalidCoordinateError
		if err := op(&session.Game, cellParams.Row, cellParams.Col); errors.As(err, &coordErr) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(coordErr.Error()))
			return
		}
		session.syncOutcome()
		if err := pg.UpdateGameSession(r.Context(), session); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			log.Error(err)
			return
		}
		if err := sendJSON(w, &session); err != nil {
			log.Error(err)
		}
	}
}

// handleGameOp covers the coordinate-free operations: flag-mode toggle,
// tick and reset.
func handleGameOp(op func(*mines.Game)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionId, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		session, err := pg.GetSession(r.Context(), sessionId)
		if errors.Is(err, pgx.ErrNoRows) {
			w.WriteHeader(http.StatusNotFound)
			return
		} else if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			log.Error(err)
			return
		}
		op(&session.Game)
		session.syncOutcome()
		if err := pg.UpdateGameSession(r.Context(), session); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			log.Error(err)
			return
		}
		if err := sendJSON(w, &session); err != nil {
			log.Error(err)
		}
	}
}

func handleBatch(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	session, err := pg.GetSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	lines := strings.TrimSpace(string(body))
	for i, c := range numberedLines(lines) {
		if err := executeCommand(&session.Game, rnd, c); err != nil {
			payload := struct {
				Loc     int    `json:"loc"`
				Message string `json:"message"`
			}{i, err.Error()}
			w.WriteHeader(http.StatusBadRequest)
			if err := sendJSON(w, payload); err != nil {
				log.Error(err)
			}
			return
		}
		if session.Game.Over() {
			break
		}
	}
	session.syncOutcome()
	if err := pg.UpdateGameSession(r.Context(), session); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := sendJSON(w, &session); err != nil {
		log.Error(err)
	}
}
