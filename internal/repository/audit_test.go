package repository

import (
	"context"
	"strings"
	"testing"
)

func TestNewAuditRepository(t *testing.T) {
	repo := NewAuditRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil AuditRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestCountsWithoutDatabase(t *testing.T) {
	repo := NewAuditRepository(nil)

	if _, err := repo.CountByKind(context.Background()); err != ErrAuditUnavailable {
		t.Errorf("CountByKind() error = %v, want %v", err, ErrAuditUnavailable)
	}
	if _, err := repo.CountByStrength(context.Background()); err != ErrAuditUnavailable {
		t.Errorf("CountByStrength() error = %v, want %v", err, ErrAuditUnavailable)
	}
}

func TestAuditSchemaHasNoSecretColumns(t *testing.T) {
	schema := strings.ToLower(auditSchema)
	for _, col := range []string{"password", "charset", "remote_addr"} {
		if strings.Contains(schema, col) {
			t.Errorf("audit schema must not contain %q", col)
		}
	}
}

func TestNewDBInvalidDSN(t *testing.T) {
	if _, err := NewDB(context.Background(), "not a dsn"); err == nil {
		t.Fatal("NewDB() expected error for malformed dsn")
	}
}

func TestRecordWithoutDatabase(t *testing.T) {
	err := NewAuditRepository(nil).Record(context.Background(), nil)
	if err != ErrAuditUnavailable {
		t.Errorf("Record() error = %v, want %v", err, ErrAuditUnavailable)
	}
}
