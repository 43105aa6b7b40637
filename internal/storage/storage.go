package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyActiveProfile = "active_profile"
	keyStats         = "stats"
	keyFirstLaunch   = "first_launch"
)

// WeightProfile names a C8 weight vector plus the search Config it was
// tuned under, so a saved profile reproduces the exact search that
// produced it.
type WeightProfile struct {
	Name         string    `json:"name"`
	WeightsB64   string    `json:"weights_b64"`
	FinesseDepth int       `json:"finesse_depth"`
	Take         int       `json:"take"`
	Depth        int       `json:"depth"`
	SavedAt      time.Time `json:"saved_at"`
}

// DefaultProfile returns the zero-weight profile named "default", used before any
// profile has been saved.
func DefaultProfile() *WeightProfile {
	return &WeightProfile{
		Name:         "default",
		FinesseDepth: 5, // board.FinFull2
		Take:         4,
		Depth:        2,
		SavedAt:      time.Now(),
	}
}

// SessionStats accumulates counters across evaluated games: how many
// pieces were locked, how many lines (and of what clear size) came down,
// and how many times the search had to fall back to a stuck-reset
// HardDrop because no finesse children were reachable.
type SessionStats struct {
	GamesPlayed  int            `json:"games_played"`
	PiecesLocked int            `json:"pieces_locked"`
	LinesCleared int            `json:"lines_cleared"`
	TSpins       int            `json:"t_spins"`
	ClearsBySize map[int]int    `json:"clears_by_size"`
	StuckResets  int            `json:"stuck_resets"`
	TotalTime    time.Duration  `json:"total_time"`
	BestScore    float64        `json:"best_score"`
	ScoresByFin  map[string]int `json:"scores_by_fin"`
}

// NewSessionStats returns empty session statistics.
func NewSessionStats() *SessionStats {
	return &SessionStats{
		ClearsBySize: make(map[int]int),
		ScoresByFin:  make(map[string]int),
	}
}

// EvalRecord summarizes one completed Evaluate call, folded into
// SessionStats by RecordEval.
type EvalRecord struct {
	LinesCleared int
	TSpin        bool
	StuckReset   bool
	Score        float64
	Finesse      string
	Elapsed      time.Duration
}

// Storage wraps BadgerDB for persistent storage of weight profiles and
// session statistics.
type Storage struct {
	db *badger.DB
}

// NewStorage creates a new storage instance backed by the platform data
// directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SaveActiveProfile saves the currently active weight profile.
func (s *Storage) SaveActiveProfile(p *WeightProfile) error {
	p.SavedAt = time.Now()

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyActiveProfile), data)
	})
}

// LoadActiveProfile loads the active weight profile, returning
// DefaultProfile if none was saved.
func (s *Storage) LoadActiveProfile() (*WeightProfile, error) {
	profile := DefaultProfile()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyActiveProfile))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, profile)
		})
	})

	return profile, err
}

// SaveStats saves session statistics.
func (s *Storage) SaveStats(stats *SessionStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads session statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*SessionStats, error) {
	stats := NewSessionStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordEval folds one completed Evaluate call into stats and persists
// the result.
func (s *Storage) RecordEval(rec EvalRecord) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.PiecesLocked++
	stats.LinesCleared += rec.LinesCleared
	stats.TotalTime += rec.Elapsed
	if rec.TSpin {
		stats.TSpins++
	}
	if rec.LinesCleared > 0 {
		stats.ClearsBySize[rec.LinesCleared]++
	}
	if rec.StuckReset {
		stats.StuckResets++
	}
	if rec.Score > stats.BestScore {
		stats.BestScore = rec.Score
	}
	if rec.Finesse != "" {
		stats.ScoresByFin[rec.Finesse]++
	}

	return s.SaveStats(stats)
}

// LinesPerPiece returns the average lines cleared per locked piece.
func (s *SessionStats) LinesPerPiece() float64 {
	if s.PiecesLocked == 0 {
		return 0
	}
	return float64(s.LinesCleared) / float64(s.PiecesLocked)
}
