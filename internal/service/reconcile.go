package service

import (
	"context"
	"fmt"
	"log/slog"

	"activity_stream/internal/config"
	"activity_stream/internal/domain"
)

// Reconciler keeps the set of StreamConnections aligned with the broker's
// active Connections for a user. It runs whenever the directory emits a
// connection change, and once at startup for each known stream.
type Reconciler struct {
	streams     StreamStore
	streamConns StreamConnectionStore
	directory   ConnectionDirectory
	txManager   TransactionManager
	logger      *slog.Logger
	config      config.SyncConfig
}

func NewReconciler(
	streams StreamStore,
	streamConns StreamConnectionStore,
	directory ConnectionDirectory,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *Reconciler {
	return &Reconciler{
		streams:     streams,
		streamConns: streamConns,
		directory:   directory,
		txManager:   txManager,
		logger:      logger,
		config:      cfg,
	}
}

// HandleChange reacts to one directory notification. The specific action
// does not matter: reconciliation always converges on the directory's
// current view.
func (r *Reconciler) HandleChange(ctx context.Context, change domain.ConnectionChange) error {
	r.logger.Info("connection change received",
		"user", change.UserID,
		"provider", change.Provider,
		"action", change.Action,
	)
	return r.Reconcile(ctx, change.UserID)
}

// Reconcile ensures one StreamConnection per active directory connection
// and deactivates the rest. The stream itself is created lazily here on the
// user's first connection.
func (r *Reconciler) Reconcile(ctx context.Context, userID int64) error {
	connections, err := r.directory.ListActiveConnections(ctx, userID)
	if err != nil {
		return fmt.Errorf("list connections: %w", err)
	}

	return r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		stream, err := r.streams.GetOrCreateByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get or create stream: %w", err)
		}

		activeIDs := make([]int64, 0, len(connections))
		for _, conn := range connections {
			activeIDs = append(activeIDs, conn.ID)

			sc := domain.StreamConnection{
				StreamID:           stream.ID,
				ConnectionID:       conn.ID,
				Provider:           conn.Provider,
				StreamRefreshHours: r.config.DefaultStreamRefreshHours,
				PostDelayHours:     r.config.DefaultPostDelayHours,
			}
			if err := r.streamConns.Ensure(txCtx, &sc); err != nil {
				return fmt.Errorf("ensure stream connection: %w", err)
			}
		}

		if err := r.streamConns.DeactivateMissing(txCtx, stream.ID, activeIDs); err != nil {
			return fmt.Errorf("deactivate missing: %w", err)
		}

		r.logger.Debug("reconciled stream connections",
			"stream", stream.ID,
			"active", len(activeIDs),
		)
		return nil
	})
}
