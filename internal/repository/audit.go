package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrAuditUnavailable = errors.New("audit store is not configured")

// auditSchema stores request metadata only; passwords are never written.
const auditSchema = `
	CREATE TABLE IF NOT EXISTS audit_events (
		id                 CHAR(36)     NOT NULL PRIMARY KEY,
		kind               VARCHAR(32)  NOT NULL,
		length             INT          NOT NULL,
		count              INT          NOT NULL,
		entropy            DOUBLE       NOT NULL,
		strength           VARCHAR(16)  NOT NULL,
		client_fingerprint CHAR(64)     NOT NULL,
		created_at         DATETIME(6)  NOT NULL,
		INDEX idx_audit_created_at (created_at)
	)`

// AuditRepository handles audit event persistence.
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureSchema creates the audit table if it does not exist.
func (r *AuditRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, auditSchema)
	return err
}

// Record inserts a single audit event.
func (r *AuditRepository) Record(ctx context.Context, e *model.AuditEvent) error {
	if r.db == nil {
		return ErrAuditUnavailable
	}

	query := `INSERT INTO audit_events
		(id, kind, length, count, entropy, strength, client_fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Kind, e.Length, e.Count, e.Entropy, e.Strength, e.ClientFingerprint, e.CreatedAt,
	)
	return err
}

// CountByKind returns the number of events per kind.
func (r *AuditRepository) CountByKind(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, `SELECT kind, COUNT(*) FROM audit_events GROUP BY kind`)
}

// CountByStrength returns the number of events per strength tier.
func (r *AuditRepository) CountByStrength(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, `SELECT strength, COUNT(*) FROM audit_events GROUP BY strength`)
}

func (r *AuditRepository) countBy(ctx context.Context, query string) (map[string]int64, error) {
	if r.db == nil {
		return nil, ErrAuditUnavailable
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, rows.Err()
}
