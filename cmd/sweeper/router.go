package main

import (
	"net/http"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/register", handleRegister)
	mux.HandleFunc("POST /v1/login", handleLogin)
	mux.HandleFunc("POST /v1/logout", handleLogout)

	mux.HandleFunc("GET /v1/status", handleStatus)
	mux.HandleFunc("GET /v1/records", handleGetRecords)
	mux.HandleFunc("GET /v1/myrecords", handleGetOwnRecords)
	mux.HandleFunc("GET /v1/stats", handleGetStats)
	mux.HandleFunc("GET /v1/mystats", handleGetOwnStats)

	mux.HandleFunc("POST /v1/game", handleNewGame)
	mux.HandleFunc("GET /v1/game/{id}", handleGetGame)
	mux.HandleFunc("POST /v1/game/{id}/reveal", handleCellOp((*mines.Game).Reveal))
	mux.HandleFunc("POST /v1/game/{id}/flag", handleCellOp((*mines.Game).ToggleFlag))
	mux.HandleFunc("POST /v1/game/{id}/action", handleCellOp((*mines.Game).CellAction))
	mux.HandleFunc("POST /v1/game/{id}/flagmode", handleGameOp((*mines.Game).ToggleFlagMode))
	mux.HandleFunc("POST /v1/game/{id}/tick", handleGameOp((*mines.Game).Tick))
	mux.HandleFunc("POST /v1/game/{id}/reset", handleGameOp(func(g *mines.Game) {
		g.Reset(rnd)
	}))
	mux.HandleFunc("POST /v1/game/{id}/batch", handleBatch)

	mux.HandleFunc("/v1/game/{id}/connect", handleConnectWs)

	handler := useMiddleware(mux,
		corsMiddleware,
		authMiddleware,
		loggingMiddleware,
	)

	return handler
}
