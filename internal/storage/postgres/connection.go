package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"activity_stream/internal/domain"
)

// ConnectionDirectory reads the broker's connections table. The broker owns
// those rows; this side only ever reads them.
type ConnectionDirectory struct {
	db *sqlx.DB
}

func NewConnectionDirectory(db *sqlx.DB) *ConnectionDirectory {
	return &ConnectionDirectory{db: db}
}

func (d *ConnectionDirectory) ListActiveConnections(ctx context.Context, userID int64) ([]domain.Connection, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, user_id, provider, external_account_id, username, name, auth_token, is_active
		 FROM connections
		 WHERE user_id = $1 AND is_active = TRUE
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var connections []domain.Connection
	for rows.Next() {
		var c domain.Connection
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Provider, &c.ExternalAccountID,
			&c.Username, &c.Name, &c.AuthToken, &c.IsActive,
		); err != nil {
			return nil, err
		}
		connections = append(connections, c)
	}

	return connections, rows.Err()
}
