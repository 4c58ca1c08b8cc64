package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

var ErrUnknownMode = errors.New("mode must be one of standard, custom, pronounceable")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen   *crypto.Generator
	audit auditor
}

// NewGeneratorService creates a new GeneratorService. A nil gen uses the
// default secure source; a nil recorder disables auditing.
func NewGeneratorService(gen *crypto.Generator, recorder AuditRecorder, fingerprintKey []byte) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{
		gen:   gen,
		audit: auditor{recorder: recorder, key: fingerprintKey},
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, client string, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := optionsFrom(req.Length, req.Uppercase, req.Lowercase, req.Numbers, req.Symbols)

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := response(password, standardPoolSize(opts))
	s.audit.record(ctx, model.KindGenerate, client, resp.Length, 1, resp.Entropy)
	return resp, nil
}

// GenerateCustom produces a password from the request's character pool.
func (s *GeneratorService) GenerateCustom(ctx context.Context, client string, req model.CustomGenerateRequest) (model.GenerateResponse, error) {
	length := intOrDefault(req.Length, crypto.DefaultLength)

	password, err := s.gen.GenerateFromPool(length, req.Charset)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := response(password, customPoolSize(req.Charset))
	s.audit.record(ctx, model.KindCustom, client, resp.Length, 1, resp.Entropy)
	return resp, nil
}

// GeneratePronounceable produces an alternating consonant/vowel password.
func (s *GeneratorService) GeneratePronounceable(ctx context.Context, client string, req model.PronounceableRequest) (model.GenerateResponse, error) {
	length := intOrDefault(req.Length, crypto.DefaultPronounceableLength)
	includeNumbers := boolOrDefault(req.IncludeNumbers, true)

	password, err := s.gen.GeneratePronounceable(length, includeNumbers)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	bits := strength.PronounceableEntropy(len(password), includeNumbers)
	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Entropy:  bits,
		Strength: strength.Classify(bits).String(),
	}
	s.audit.record(ctx, model.KindPronounceable, client, resp.Length, 1, bits)
	return resp, nil
}

// GenerateBatch produces several independent passwords in one mode.
func (s *GeneratorService) GenerateBatch(ctx context.Context, client string, req model.BatchRequest) (model.BatchResponse, error) {
	count := intOrDefault(req.Count, crypto.DefaultCount)

	var (
		passwords []string
		err       error
		bits      float64
	)

	switch req.Mode {
	case "", model.ModeStandard:
		opts := optionsFrom(req.Length, req.Uppercase, req.Lowercase, req.Numbers, req.Symbols)
		passwords, err = s.gen.GenerateMultiple(count, opts)
		if err == nil {
			bits = strength.Entropy(utf8.RuneCountInString(passwords[0]), standardPoolSize(opts))
		}
	case model.ModeCustom:
		length := intOrDefault(req.Length, crypto.DefaultLength)
		passwords, err = s.gen.GenerateMultipleFromPool(count, length, req.Charset)
		if err == nil {
			bits = strength.Entropy(utf8.RuneCountInString(passwords[0]), customPoolSize(req.Charset))
		}
	case model.ModePronounceable:
		length := intOrDefault(req.Length, crypto.DefaultPronounceableLength)
		includeNumbers := boolOrDefault(req.IncludeNumbers, true)
		passwords, err = s.gen.GenerateMultiplePronounceable(count, length, includeNumbers)
		if err == nil {
			bits = strength.PronounceableEntropy(len(passwords[0]), includeNumbers)
		}
	default:
		return model.BatchResponse{}, ErrUnknownMode
	}
	if err != nil {
		return model.BatchResponse{}, err
	}

	s.audit.record(ctx, model.KindBatch, client, utf8.RuneCountInString(passwords[0]), len(passwords), bits)
	return model.BatchResponse{
		Passwords: passwords,
		Count:     len(passwords),
		Entropy:   bits,
		Strength:  strength.Classify(bits).String(),
	}, nil
}

func optionsFrom(length int, upper, lower, numbers, symbols *bool) crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:    intOrDefault(length, crypto.DefaultLength),
		Uppercase: boolOrDefault(upper, true),
		Lowercase: boolOrDefault(lower, true),
		Numbers:   boolOrDefault(numbers, true),
		Symbols:   boolOrDefault(symbols, true),
	}
}

// standardPoolSize mirrors the generator's alphanumeric fallback.
func standardPoolSize(opts crypto.GeneratorOptions) int {
	if pool := crypto.Compose(opts); pool != "" {
		return len(pool)
	}
	return len(crypto.Alphanumeric)
}

// customPoolSize counts runes, duplicates included; an empty pool means the full pool.
func customPoolSize(pool string) int {
	if pool == "" {
		return len(crypto.FullPool)
	}
	return utf8.RuneCountInString(pool)
}

func response(password string, poolSize int) model.GenerateResponse {
	length := utf8.RuneCountInString(password)
	bits := strength.Entropy(length, poolSize)
	return model.GenerateResponse{
		Password: password,
		Length:   length,
		Entropy:  bits,
		Strength: strength.Classify(bits).String(),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// intOrDefault treats zero as "not provided".
func intOrDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
