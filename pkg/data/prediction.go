package data

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/atmoforge/atmoctl/pkg/atmo"
)

const (
	insertPredictionSQL = `INSERT INTO prediction (
			created,
			pl_dens, pl_orbper, pl_eqtstr, st_rad, st_lum, pl_bmassj, pl_ratror, st_met,
			co2, n2, o2, h2o, ch4, h2, he, so2, o3, nh3
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectPredictionSQL = `SELECT
			id, created,
			pl_dens, pl_orbper, pl_eqtstr, st_rad, st_lum, pl_bmassj, pl_ratror, st_met,
			co2, n2, o2, h2o, ch4, h2, he, so2, o3, nh3
		FROM prediction
		ORDER BY id DESC
		LIMIT ?
	`
)

// Prediction is one recorded prediction: the input parameters and the
// normalized composition that was reported.
type Prediction struct {
	ID          int64            `json:"id"`
	Created     string           `json:"created"`
	Params      *atmo.Params     `json:"params"`
	Composition atmo.Composition `json:"composition"`
}

// SavePrediction records the prediction in the history store.
func SavePrediction(db *sql.DB, p *atmo.Params, c atmo.Composition) error {
	if db == nil {
		return errors.New("database not initialized")
	}
	if p == nil {
		return errors.New("params required")
	}
	if len(c) != len(atmo.Gases) {
		return errors.Errorf("composition has %d components, want %d", len(c), len(atmo.Gases))
	}

	args := make([]any, 0, 19)
	args = append(args, time.Now().UTC().Format(time.RFC3339))
	for _, v := range p.Vector() {
		args = append(args, v)
	}
	for _, v := range c {
		args = append(args, v)
	}

	if _, err := db.Exec(insertPredictionSQL, args...); err != nil {
		return errors.Wrap(err, "failed to insert prediction")
	}
	return nil
}

// ListPredictions returns up to limit most recent predictions, newest
// first.
func ListPredictions(db *sql.DB, limit int) ([]*Prediction, error) {
	if db == nil {
		return nil, errors.New("database not initialized")
	}
	if limit < 1 {
		return nil, errors.New("limit must be positive")
	}

	rows, err := db.Query(selectPredictionSQL, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query predictions")
	}
	defer rows.Close()

	list := make([]*Prediction, 0)
	for rows.Next() {
		p := &Prediction{
			Params:      &atmo.Params{},
			Composition: make(atmo.Composition, len(atmo.Gases)),
		}
		dest := []any{
			&p.ID, &p.Created,
			&p.Params.Density, &p.Params.OrbitPeriod, &p.Params.EqTemp,
			&p.Params.StellarRad, &p.Params.StellarLum, &p.Params.Mass,
			&p.Params.RadiusRatio, &p.Params.Metallicity,
		}
		for i := range p.Composition {
			dest = append(dest, &p.Composition[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "failed to scan prediction row")
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read prediction rows")
	}
	return list, nil
}
