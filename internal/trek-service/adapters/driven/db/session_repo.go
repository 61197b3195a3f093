package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	model "trek-tango/internal/trek-service/core/domain/model"
	"trek-tango/internal/trek-service/core/myerrors"
	"trek-tango/internal/trek-service/core/ports"

	"github.com/jackc/pgx/v5"
)

type SessionRepo struct {
	db *DB
}

func NewSessionRepo(db *DB) ports.ISessionRepo {
	return &SessionRepo{
		db: db,
	}
}

func (sr *SessionRepo) CreateSession(ctx context.Context, s model.Session) error {
	placesJSON, err := json.Marshal(s.ListOfPlaces)
	if err != nil {
		return fmt.Errorf("%w: marshal places: %v", myerrors.ErrPersistence, err)
	}
	starterJSON, err := json.Marshal(s.ConfirmedStarterLocation)
	if err != nil {
		return fmt.Errorf("%w: marshal starter location: %v", myerrors.ErrPersistence, err)
	}

	q := `INSERT INTO sessions(
			session_id,
			user_id,
			username,
			list_of_places,
			detected,
			confirmed_starter_location,
			points,
			session_complete,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = sr.db.conn.Exec(ctx, q,
		s.SessionID,
		s.UserID,
		s.Username,
		placesJSON,
		s.Detected,
		starterJSON,
		s.Points,
		s.SessionComplete,
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", myerrors.ErrPersistence, err)
	}
	return nil
}

func (sr *SessionRepo) FindLatestIncomplete(ctx context.Context, username string) (model.Session, error) {
	q := `SELECT
			session_id,
			user_id,
			username,
			list_of_places,
			detected,
			confirmed_starter_location,
			points,
			session_complete,
			created_at
		FROM sessions
		WHERE username = $1 AND session_complete = FALSE
		ORDER BY created_at DESC
		LIMIT 1`

	row := sr.db.conn.QueryRow(ctx, q, username)
	return scanSession(row)
}

// UpdatePlaces does the read-modify-write under a row lock so the full
// new list replaces the stored one in one transaction. There is never a
// window where the list is empty, and concurrent markings on the same
// session serialize instead of losing updates.
func (sr *SessionRepo) UpdatePlaces(ctx context.Context, sessionId string, mutate ports.MutatePlaces) (model.Session, error) {
	tx, err := sr.db.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", myerrors.ErrPersistence, err)
	}
	defer tx.Rollback(ctx)

	q := `SELECT
			session_id,
			user_id,
			username,
			list_of_places,
			detected,
			confirmed_starter_location,
			points,
			session_complete,
			created_at
		FROM sessions
		WHERE session_id = $1
		FOR UPDATE`

	session, err := scanSession(tx.QueryRow(ctx, q, sessionId))
	if err != nil {
		return model.Session{}, err
	}

	updated, err := mutate(session.ListOfPlaces)
	if err != nil {
		return model.Session{}, err
	}

	placesJSON, err := json.Marshal(updated)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: marshal places: %v", myerrors.ErrPersistence, err)
	}

	if _, err := tx.Exec(ctx, `UPDATE sessions SET list_of_places = $1 WHERE session_id = $2`, placesJSON, sessionId); err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", myerrors.ErrPersistence, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", myerrors.ErrPersistence, err)
	}

	session.ListOfPlaces = updated
	return session, nil
}

func (sr *SessionRepo) CompleteSession(ctx context.Context, sessionId string) (string, error) {
	q := `UPDATE sessions SET session_complete = TRUE WHERE session_id = $1 RETURNING username`

	var username string
	err := sr.db.conn.QueryRow(ctx, q, sessionId).Scan(&username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", myerrors.ErrSessionNotFound
		}
		return "", fmt.Errorf("%w: %v", myerrors.ErrPersistence, err)
	}
	return username, nil
}

func scanSession(row pgx.Row) (model.Session, error) {
	var (
		s           model.Session
		placesJSON  []byte
		starterJSON []byte
	)

	err := row.Scan(
		&s.SessionID,
		&s.UserID,
		&s.Username,
		&placesJSON,
		&s.Detected,
		&starterJSON,
		&s.Points,
		&s.SessionComplete,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, myerrors.ErrSessionNotFound
		}
		return model.Session{}, fmt.Errorf("%w: %v", myerrors.ErrPersistence, err)
	}

	if err := json.Unmarshal(placesJSON, &s.ListOfPlaces); err != nil {
		return model.Session{}, fmt.Errorf("%w: unmarshal places: %v", myerrors.ErrPersistence, err)
	}
	if err := json.Unmarshal(starterJSON, &s.ConfirmedStarterLocation); err != nil {
		return model.Session{}, fmt.Errorf("%w: unmarshal starter location: %v", myerrors.ErrPersistence, err)
	}
	return s, nil
}
