package model

import "time"

// Audit event kinds.
const (
	KindGenerate      = "generate"
	KindCustom        = "custom"
	KindPronounceable = "pronounceable"
	KindBatch         = "batch"
	KindAnalyze       = "analyze"
)

// AuditEvent records the shape of a request, never the password itself.
type AuditEvent struct {
	ID                string
	Kind              string
	Length            int
	Count             int
	Entropy           float64
	Strength          string
	ClientFingerprint string
	CreatedAt         time.Time
}

// StatsResponse summarizes recorded audit events.
type StatsResponse struct {
	Total      int64            `json:"total"`
	ByKind     map[string]int64 `json:"by_kind"`
	ByStrength map[string]int64 `json:"by_strength"`
}
