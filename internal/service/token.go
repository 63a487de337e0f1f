package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

func (s *Service) IssueToken(userID uuid.UUID) (string, error) {
	now := s.now()

	claims := entity.UserJwtClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.TokenExpiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// ValidateToken resolves a session token to its user; a token whose user no longer exists is rejected.
func (s *Service) ValidateToken(ctx context.Context, accessToken string) (entity.User, error) {
	var claims entity.UserJwtClaims

	_, err := jwt.ParseWithClaims(
		accessToken,
		&claims,
		func(*jwt.Token) (any, error) { return []byte(s.cfg.JWT.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5*time.Second),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: %w", entity.ErrTokenInvalid, err)
	}

	if claims.ID == uuid.Nil {
		return entity.User{}, entity.ErrTokenInvalid
	}

	user, err := s.users.UserByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.User{}, entity.ErrUnauthorized
		}

		return entity.User{}, fmt.Errorf("find token user: %w", err)
	}

	return user, nil
}
