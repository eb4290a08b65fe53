package main

import (
	"net/http"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

func recordFilterOptions(r *http.Request) []GameRecordsOption {
	var options []GameRecordsOption
	var gameParams NewGameParams
	if err := dec.Decode(&gameParams, r.URL.Query()); err == nil {
		params := mines.GameParams(gameParams)
		options = append(options, GameRecordsForGameParams(&params))
	}
	return options
}

func handleGetRecords(w http.ResponseWriter, r *http.Request) {
	records, err := getGameRecords(r.Context(), recordFilterOptions(r)...)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}

func handleGetOwnRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	options := append(
		recordFilterOptions(r), GameRecordsForPlayer(claims.Username),
	)
	records, err := getGameRecords(r.Context(), options...)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}

func handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := getPlayerStats(r.Context(), nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := sendJSON(w, stats); err != nil {
		log.Error(err)
	}
}

func handleGetOwnStats(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	stats, err := getPlayerStats(r.Context(), &claims.Username)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error(err)
		return
	}
	if err := sendJSON(w, stats); err != nil {
		log.Error(err)
	}
}
