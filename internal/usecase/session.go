package usecase

import (
	"errors"
	"time"

	"miccheck-web/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errors.New("token generation failed")

// SessionTokens issues and reads the signed cookie value naming a booking-form session.
type SessionTokens interface {
	Issue() (uuid.UUID, string, error)
	Refresh(sessionID uuid.UUID) (string, error)
	Resolve(tokenString string) (uuid.UUID, error)
	TokenDuration() time.Duration
}

type sessionTokensImpl struct {
	jwtService *jwt.Service
}

func NewSessionTokens(jwtService *jwt.Service) SessionTokens {
	return &sessionTokensImpl{
		jwtService: jwtService,
	}
}

func (s *sessionTokensImpl) Issue() (uuid.UUID, string, error) {
	id := uuid.New()
	token, err := s.jwtService.GenerateToken(id)
	if err != nil {
		return uuid.Nil, "", errors.Join(ErrTokenGeneration, err)
	}
	return id, token, nil
}

// Refresh signs a new token for an existing session, extending its lifetime.
func (s *sessionTokensImpl) Refresh(sessionID uuid.UUID) (string, error) {
	token, err := s.jwtService.GenerateToken(sessionID)
	if err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return token, nil
}

func (s *sessionTokensImpl) Resolve(tokenString string) (uuid.UUID, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.SessionID, nil
}

func (s *sessionTokensImpl) TokenDuration() time.Duration {
	return s.jwtService.TokenDuration()
}
