package usecase

import (
	"context"
)

// LoginInput defines the credentials for operator login.
type LoginInput struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginOutput returns the issued session token.
type LoginOutput struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	Username    string `json:"usuario"`
	FullName    string `json:"nomeCompleto"`
}

// AuthUsecase gates access to the mutating routes. The core only cares
// whether the operator is logged in; there are no roles or permissions.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
