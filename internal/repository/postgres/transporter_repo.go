package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"omsbridge/internal/port"
)

type transporterRepo struct {
	db *sqlx.DB
}

// NewTransporterRepo creates a PostgreSQL-backed TransporterRegistry over
// the integration master mapping table.
func NewTransporterRepo(db *sqlx.DB) port.TransporterRegistry {
	return &transporterRepo{db: db}
}

func (r *transporterRepo) Resolve(ctx context.Context, transporterID string) (bool, error) {
	if transporterID == "" {
		return false, nil
	}
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (
		   SELECT 1 FROM integration_transporter_map
		   WHERE transporter_id = $1 AND is_active = TRUE
		 )`, transporterID)
	if err != nil {
		return false, err
	}
	return exists, nil
}
