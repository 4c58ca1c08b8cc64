package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

// AuditRecorder persists audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event *model.AuditEvent) error
}

// auditor stamps and records events. A nil recorder disables auditing.
type auditor struct {
	recorder AuditRecorder
	key      []byte
}

func (a auditor) record(ctx context.Context, kind, client string, length, count int, bits float64) {
	if a.recorder == nil {
		return
	}

	event := &model.AuditEvent{
		ID:                uuid.NewString(),
		Kind:              kind,
		Length:            length,
		Count:             count,
		Entropy:           bits,
		Strength:          strength.Classify(bits).String(),
		ClientFingerprint: crypto.Fingerprint(a.key, client),
		CreatedAt:         time.Now().UTC(),
	}

	if err := a.recorder.Record(ctx, event); err != nil {
		slog.Warn("audit record failed", "kind", kind, "error", err)
	}
}
