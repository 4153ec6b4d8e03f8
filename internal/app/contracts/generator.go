package contracts

import "context"

type VerificationCodeLookup interface {
	VerificationCodeExists(ctx context.Context, code string) (bool, error)
}

type CodeGenerator interface {
	MintToken() (string, error)
	MintVerificationCode(ctx context.Context, length int) (string, error)
}
