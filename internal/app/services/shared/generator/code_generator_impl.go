package generator

import (
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
)

type codeGenerator struct {
	Lookups []contracts.VerificationCodeLookup
}

// NewCodeGenerator checks every lookup before handing out a verification code.
func NewCodeGenerator(lookups ...contracts.VerificationCodeLookup) contracts.CodeGenerator {
	return &codeGenerator{Lookups: lookups}
}

// ClampCodeLength keeps verification codes between 6 and 8 characters.
func ClampCodeLength(length int) int {
	if length <= 0 {
		return constvars.VerificationCodeDefaultLength
	}
	if length < constvars.VerificationCodeMinLength {
		return constvars.VerificationCodeMinLength
	}
	if length > constvars.VerificationCodeMaxLength {
		return constvars.VerificationCodeMaxLength
	}
	return length
}

func (g *codeGenerator) MintToken() (string, error) {
	token, err := utils.GenerateRandomHex(constvars.RegistrationTokenByteLength)
	if err != nil {
		return "", exceptions.ErrGenerateRandom(err)
	}
	return token, nil
}

// MintVerificationCode retries until no lookup knows the candidate.
func (g *codeGenerator) MintVerificationCode(ctx context.Context, length int) (string, error) {
	length = ClampCodeLength(length)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := utils.GenerateRandomString(constvars.VerificationCodeAlphabet, length)
		if err != nil {
			return "", exceptions.ErrGenerateRandom(err)
		}

		exists, err := g.codeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

func (g *codeGenerator) codeExists(ctx context.Context, code string) (bool, error) {
	for _, lookup := range g.Lookups {
		exists, err := lookup.VerificationCodeExists(ctx, code)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}
	return false, nil
}
