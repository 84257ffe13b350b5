// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/models"
)

var sessionsBucket = []byte(sessionsTable)

// boltSessionRecord is the value stored under a user key. State holds the
// same JSON document the SQL store keeps in session_data.
type boltSessionRecord struct {
	State     json.RawMessage `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BoltSessionRepository is a [SessionRepository] kept in a bbolt file. Keys
// are decimal user ids.
type BoltSessionRepository struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltSessionRepository opens (or creates) the bbolt file at path and
// makes sure the sessions bucket exists.
func NewBoltSessionRepository(path string, log *logger.Logger) (*BoltSessionRepository, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltSessionRepository").Str("path", path).Msg("error opening bolt db")
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init sessions bucket: %w", err)
	}

	log.Info().Str("func", "NewBoltSessionRepository").Str("path", path).Msg("bolt session store opened")
	return &BoltSessionRepository{db: db, logger: log}, nil
}

func sessionKey(userID int64) []byte {
	return []byte(strconv.FormatInt(userID, 10))
}

func (r *BoltSessionRepository) GetSession(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	var record *boltSessionRecord
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(sessionsBucket).Get(sessionKey(userID))
		if data == nil {
			return nil
		}
		record = new(boltSessionRecord)
		return json.Unmarshal(data, record)
	})
	if err != nil {
		log.Err(err).Str("func", "*BoltSessionRepository.GetSession").Int64("user_id", userID).Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}
	if record == nil {
		return models.Session{}, ErrSessionNotFound
	}

	state, err := models.DecodeSessionState(record.State)
	if err != nil {
		log.Err(err).Str("func", "*BoltSessionRepository.GetSession").Int64("user_id", userID).Msg("stored session is corrupt")
		return models.Session{}, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}

	return models.Session{
		UserID:    userID,
		State:     state,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

// SetSession writes the session, keeping the creation time of an existing
// record.
func (r *BoltSessionRepository) SetSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	state, err := models.EncodeSessionState(session.State)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionsBucket)
		key := sessionKey(session.UserID)
		now := time.Now().UTC()

		record := boltSessionRecord{State: state, CreatedAt: now, UpdatedAt: now}
		if existing := bucket.Get(key); existing != nil {
			var previous boltSessionRecord
			if json.Unmarshal(existing, &previous) == nil && !previous.CreatedAt.IsZero() {
				record.CreatedAt = previous.CreatedAt
			}
		}

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return bucket.Put(key, data)
	})
	if err != nil {
		log.Err(err).Str("func", "*BoltSessionRepository.SetSession").Int64("user_id", session.UserID).Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *BoltSessionRepository) ClearSession(ctx context.Context, userID int64) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete(sessionKey(userID))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*BoltSessionRepository.ClearSession").Int64("user_id", userID).Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *BoltSessionRepository) Close() error {
	return r.db.Close()
}
