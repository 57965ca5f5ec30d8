// Package morphodb persists dotprops clouds in a single SQLite database.
package morphodb

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite"

	"github.com/arborlab/morpho/neuron"
	"github.com/arborlab/morpho/units"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS dotprops (
	id          TEXT PRIMARY KEY,
	name        TEXT,
	k           INTEGER NOT NULL,
	units       TEXT,
	n_points    INTEGER NOT NULL,
	points_json TEXT NOT NULL,
	vect_json   TEXT NOT NULL,
	alpha_json  TEXT,
	length_json TEXT,
	created_at  TEXT NOT NULL
);
`

// Store provides persistence for dotprops clouds.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initializing dotprops schema")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save inserts or replaces a dotprops cloud, keyed by its neuron ID.
func (s *Store) Save(dp *neuron.Dotprops) error {
	points, err := json.Marshal(dp.Points)
	if err != nil {
		return errors.Wrap(err, "encoding points")
	}
	vect, err := json.Marshal(dp.Vect)
	if err != nil {
		return errors.Wrap(err, "encoding vectors")
	}
	var alpha, length []byte
	if dp.Alpha != nil {
		if alpha, err = json.Marshal(dp.Alpha); err != nil {
			return errors.Wrap(err, "encoding alpha")
		}
	}
	if dp.Length != nil {
		if length, err = json.Marshal(dp.Length); err != nil {
			return errors.Wrap(err, "encoding lengths")
		}
	}

	query := `
		INSERT OR REPLACE INTO dotprops (
			id, name, k, units, n_points,
			points_json, vect_json, alpha_json, length_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	err = retryOnBusy(func() error {
		_, err := s.db.Exec(query,
			dp.ID(),
			nullStr(dp.Name()),
			dp.K,
			nullStr(unitsStr(dp.Units())),
			dp.Len(),
			string(points),
			string(vect),
			nullStr(string(alpha)),
			nullStr(string(length)),
			time.Now().UTC().Format(time.RFC3339),
		)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "saving dotprops %s", dp.ID())
	}
	return nil
}

// Load reads one dotprops cloud by neuron ID.
func (s *Store) Load(id string) (*neuron.Dotprops, error) {
	row := s.db.QueryRow(`
		SELECT name, k, units, points_json, vect_json, alpha_json, length_json
		FROM dotprops WHERE id = ?`, id)

	var name, unitsText, alphaJSON, lengthJSON sql.NullString
	var k int
	var pointsJSON, vectJSON string
	if err := row.Scan(&name, &k, &unitsText, &pointsJSON, &vectJSON, &alphaJSON, &lengthJSON); err != nil {
		return nil, errors.Wrapf(err, "loading dotprops %s", id)
	}

	var points, vect [][3]float64
	if err := json.Unmarshal([]byte(pointsJSON), &points); err != nil {
		return nil, errors.Wrap(err, "decoding points")
	}
	if err := json.Unmarshal([]byte(vectJSON), &vect); err != nil {
		return nil, errors.Wrap(err, "decoding vectors")
	}

	meta := neuron.Meta{ID: id, Name: name.String}
	if unitsText.Valid && unitsText.String != "" {
		if q, err := units.Parse(unitsText.String); err == nil {
			meta.Units = q
		}
	}

	if k <= 0 {
		var length []float64
		if lengthJSON.Valid {
			if err := json.Unmarshal([]byte(lengthJSON.String), &length); err != nil {
				return nil, errors.Wrap(err, "decoding lengths")
			}
		}
		return neuron.NewEdgeDotprops(meta, points, vect, length)
	}

	var alpha []float64
	if alphaJSON.Valid {
		if err := json.Unmarshal([]byte(alphaJSON.String), &alpha); err != nil {
			return nil, errors.Wrap(err, "decoding alpha")
		}
	}
	return neuron.NewDotprops(meta, k, points, vect, alpha)
}

// Record is a lightweight listing entry; it omits the point arrays.
type Record struct {
	ID      string
	Name    string
	K       int
	Units   string
	NPoints int
}

// List returns a summary of every stored cloud, newest first.
func (s *Store) List() ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, name, k, units, n_points
		FROM dotprops ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "listing dotprops")
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var name, unitsText sql.NullString
		if err := rows.Scan(&r.ID, &name, &r.K, &unitsText, &r.NPoints); err != nil {
			return nil, errors.Wrap(err, "scanning dotprops row")
		}
		r.Name = name.String
		r.Units = unitsText.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// retryOnBusy retries a write a few times when SQLite reports lock
// contention, with linear backoff.
func retryOnBusy(fn func() error) error {
	const attempts = 5
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		msg := err.Error()
		if !strings.Contains(msg, "locked") && !strings.Contains(msg, "busy") {
			return err
		}
		time.Sleep(time.Duration(i+1) * 50 * time.Millisecond)
	}
	return err
}

func nullStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func unitsStr(q units.Quantity) string {
	if q.Dimensionless() && q.Magnitude() == 0 {
		return ""
	}
	return q.String()
}
