package service

import (
	"github.com/drivenpass/drivenpass-go/internal/crypto"
	"github.com/drivenpass/drivenpass-go/internal/model"
)

// GeneratorService produces random passwords for new credentials.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request, defaulting
// unset options to the full character set.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}
	if opts.Length == 0 {
		opts.Length = crypto.DefaultGeneratorOptions().Length
	}

	password, err := crypto.GeneratePassword(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{Password: password, Length: len(password)}, nil
}

func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
