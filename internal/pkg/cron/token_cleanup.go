package cron

import (
	"context"
	"log/slog"

	"github.com/oredipendenti/backend-go/internal/domain/auth"
)

// TokenCleanupJob returns a job that purges expired refresh tokens. Revoked
// rows stay until their expiry passes so reuse can still be detected.
func TokenCleanupJob(tokenRepo auth.RefreshTokenRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		deleted, err := tokenRepo.DeleteExpired(ctx)
		if err != nil {
			return err
		}
		if deleted > 0 {
			slog.Info("Expired refresh tokens removed", "count", deleted)
		}
		return nil
	}
}
