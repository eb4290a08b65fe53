package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ddrozdov/sweeper-server/internal/mines"
)

type postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbUrl string) (*postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dbUrl)
	if err != nil {
		return nil, err
	}
	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	return &postgres{db}, nil
}

func (pg *postgres) Ping(ctx context.Context) error {
	return pg.db.Ping(ctx)
}

func (pg *postgres) Close() {
	pg.db.Close()
}

func (pg *postgres) CreatePlayer(
	ctx context.Context, username string, passwordHash []byte,
) (*Player, error) {
	var playerId int
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO player (
			username, password_hash
		)
		VALUES (
			@username, @password_hash
		)
		RETURNING player_id`,
		pgx.NamedArgs{
			"username":      username,
			"password_hash": passwordHash,
		}).Scan(&playerId); err != nil {
		return nil, err
	}
	player := &Player{
		PlayerId: playerId,
		Username: username,
	}
	return player, nil
}

func (pg *postgres) GetPlayer(
	ctx context.Context, username string,
) (*Player, error) {
	rows, err := pg.db.Query(ctx, `
		SELECT player_id, username, password_hash
		FROM player
		WHERE username = $1;`,
		username)
	if err != nil {
		return nil, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Player])
}

func (pg *postgres) CreateGameSession(
	ctx context.Context, playerId *int, game *mines.Game,
) (*GameSession, error) {
	stateBuf, err := game.Bytes()
	if err != nil {
		return nil, err
	}
	var (
		gameSessionId int
		startedAt     time.Time
	)
	if err := pg.db.QueryRow(ctx, `
		INSERT INTO game_session (
			player_id, grid_size, mine_count, status, time_elapsed, state
		)
		VALUES (
			@player_id, @grid_size, @mine_count, @status, @time_elapsed, @state
		)
		RETURNING game_session_id, started_at;`,
		pgx.NamedArgs{
			"player_id":    playerId,
			"grid_size":    game.GridSize,
			"mine_count":   game.MineCount,
			"status":       game.Status.String(),
			"time_elapsed": game.TimeElapsed,
			"state":        stateBuf,
		}).Scan(&gameSessionId, &startedAt); err != nil {
		return nil, err
	}
	session := &GameSession{
		SessionId: gameSessionId,
		PlayerId:  playerId,
		Game:      *game,
		StartedAt: startedAt,
	}
	return session, nil
}

func (pg *postgres) GetSession(
	ctx context.Context, gameSessionId int,
) (*GameSession, error) {
	var (
		stateBuf  []byte
		playerId  *int
		startedAt time.Time
		endedAt   pgtype.Timestamptz
	)
	if err := pg.db.QueryRow(ctx, `
		SELECT player_id, state, started_at, ended_at
		FROM game_session
		WHERE game_session_id = $1;`,
		gameSessionId).Scan(
		&playerId, &stateBuf, &startedAt, &endedAt,
	); err != nil {
		return nil, err
	}
	game, err := mines.DecodeGame(stateBuf)
	if err != nil {
		return nil, err
	}
	gameSession := &GameSession{
		SessionId: gameSessionId,
		PlayerId:  playerId,
		Game:      *game,
		StartedAt: startedAt,
		EndedAt:   endedAt.Time,
	}
	return gameSession, nil
}

func (pg *postgres) UpdateGameSession(
	ctx context.Context, gameSession *GameSession,
) error {
	stateBuf, err := gameSession.Game.Bytes()
	if err != nil {
		return err
	}
	var endedAt *time.Time
	if !gameSession.EndedAt.IsZero() {
		endedAt = &gameSession.EndedAt
	}
	_, err = pg.db.Exec(ctx, `
		UPDATE game_session
		SET status = @status
			, time_elapsed = @time_elapsed
			, ended_at = @ended_at
			, state = @state
		WHERE game_session_id = @game_session_id;`,
		pgx.NamedArgs{
			"game_session_id": gameSession.SessionId,
			"status":          gameSession.Game.Status.String(),
			"time_elapsed":    gameSession.Game.TimeElapsed,
			"ended_at":        endedAt,
			"state":           stateBuf,
		})
	return err
}
