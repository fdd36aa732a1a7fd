package model

import "errors"

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrTokenRevoked = errors.New("token revoked")
)
