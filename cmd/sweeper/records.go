package main

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

type GameRecord struct {
	GameSessionId string  `json:"session_id"`
	Username      *string `json:"username"`
	GridSize      int     `json:"grid_size"`
	MineCount     int     `json:"mine_count"`
	TimeElapsed   int     `json:"time_elapsed"`
}

type GameRecordFilters struct {
	username   *string
	gameParams *mines.GameParams
}

func (f GameRecordFilters) WhereClause() (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{}
	whereClauses := []string{}
	if f.username != nil {
		args["username"] = f.username
		whereClauses = append(whereClauses, "username = @username")
	}
	if f.gameParams != nil {
		args["gridSize"] = f.gameParams.GridSize
		args["mineCount"] = f.gameParams.MineCount
		whereClauses = append(
			whereClauses,
			"grid_size = @gridSize",
			"mine_count = @mineCount",
		)
	}

	if len(whereClauses) == 0 {
		return "", args
	}
	return strings.Join(whereClauses, " and "), args
}

type GameRecordsOption = func(*GameRecordFilters) error

func GameRecordsForPlayer(username string) GameRecordsOption {
	return func(f *GameRecordFilters) error {
		f.username = &username
		return nil
	}
}

func GameRecordsForGameParams(gameParams *mines.GameParams) GameRecordsOption {
	return func(f *GameRecordFilters) error {
		f.gameParams = gameParams
		return nil
	}
}

// getGameRecords lists winning games ordered by elapsed time, the first
// row per params being the best time.
func getGameRecords(
	ctx context.Context, options ...GameRecordsOption,
) ([]GameRecord, error) {
	filters := &GameRecordFilters{}
	for _, op := range options {
		err := op(filters)
		if err != nil {
			return nil, err
		}
	}

	sql := `
	select
		game_session_id
		, username
		, grid_size
		, mine_count
		, time_elapsed
	from game_session
		left outer join player using (player_id)
	where
		status = 'won'
		and ended_at is not null`

	whereClause, args := filters.WhereClause()
	if whereClause != "" {
		sql += " and " + whereClause
	}

	sql += " order by time_elapsed"

	rows, err := pg.db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameRecord])
}

// PlayerStats is the aggregate the settings store keeps: games played,
// games won and the best (minimum) winning time.
type PlayerStats struct {
	GamesPlayed int  `json:"games_played"`
	GamesWon    int  `json:"games_won"`
	BestTime    *int `json:"best_time"`
}

func getPlayerStats(ctx context.Context, username *string) (*PlayerStats, error) {
	sql := `
	select
		count(*) games_played
		, count(*) filter (where status = 'won') games_won
		, min(time_elapsed) filter (where status = 'won') best_time
	from game_session
		left outer join player using (player_id)
	where ended_at is not null`

	args := pgx.NamedArgs{}
	if username != nil {
		sql += " and username = @username"
		args["username"] = username
	}

	rows, err := pg.db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[PlayerStats])
}
