package autherrors

import (
	"net/http"

	"go-attendo/internal/shared/apperror"
)

const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
)

var (
	ErrInvalidCredentials = apperror.New(
		CodeInvalidCredentials,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		CodeInvalidToken,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		CodeInvalidToken,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		CodeTokenExpired,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrManagerSignupDisabled = apperror.New(
		apperror.CodeForbidden,
		"Manager accounts cannot be self-registered",
		http.StatusForbidden,
	)
)
