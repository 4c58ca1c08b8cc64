package service

import (
	"context"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

// AnalyzerService evaluates existing passwords.
type AnalyzerService struct {
	audit auditor
}

// NewAnalyzerService creates a new AnalyzerService. A nil recorder disables auditing.
func NewAnalyzerService(recorder AuditRecorder, fingerprintKey []byte) *AnalyzerService {
	return &AnalyzerService{audit: auditor{recorder: recorder, key: fingerprintKey}}
}

// Analyze reports the strength of req.Password. Only the length and the
// resulting entropy are audited.
func (s *AnalyzerService) Analyze(ctx context.Context, client string, req model.AnalyzeRequest) model.AnalyzeResponse {
	a := strength.Analyze(req.Password)
	s.audit.record(ctx, model.KindAnalyze, client, a.Length, 1, a.Entropy)

	return model.AnalyzeResponse{
		Length:       a.Length,
		HasUppercase: a.HasUppercase,
		HasLowercase: a.HasLowercase,
		HasNumbers:   a.HasNumbers,
		HasSymbols:   a.HasSymbols,
		Entropy:      a.Entropy,
		Strength:     a.Strength.String(),
		Diversity:    a.Diversity,
		Suggestions:  a.Suggestions,
	}
}

// CharacterSet returns the base character class summary.
func (s *AnalyzerService) CharacterSet() strength.CharacterSet {
	return strength.CharacterSetInfo()
}
