package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-schedule-api/internal/models"
	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
)

// SessionConfig holds the token signing parameters.
type SessionConfig struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

// SessionService turns bearer tokens into request sessions. It never
// authenticates credentials itself; tokens come from an external issuer
// sharing the signing secret.
type SessionService struct {
	cfg    SessionConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(cfg SessionConfig, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = 15 * time.Minute
	}
	return &SessionService{cfg: cfg, logger: logger, now: time.Now}
}

// Resolve derives the session from an Authorization header value. An empty
// header yields the anonymous session; a malformed or invalid token is an error.
func (s *SessionService) Resolve(header string) (models.Session, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return models.AnonymousSession(), nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return models.AnonymousSession(), appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
	}
	claims, err := s.ValidateToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return models.AnonymousSession(), err
	}
	return models.Session{State: models.SessionAuthenticated, UserID: claims.UserID, Role: claims.Role}, nil
}

// ValidateToken parses and validates an access token returning the claims.
func (s *SessionService) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, opts...)
	if err != nil {
		s.logger.Debug("token rejected", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// IssueToken signs an access token for userID. It backs the dev token command
// and tests.
func (s *SessionService) IssueToken(userID string, role models.UserRole) (string, time.Time, error) {
	if strings.TrimSpace(userID) == "" {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrValidation, "user id is required")
	}
	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.cfg.Expiration)
	claims := &models.SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ResolveTeacherScope decides whose teacher schedule a caller may read.
// Teachers always get their own; admins get requested, where empty means all.
func ResolveTeacherScope(session models.Session, requested string) (string, error) {
	if !session.Authenticated() {
		return "", appErrors.ErrUnauthorized
	}
	requested = strings.TrimSpace(requested)
	switch session.Role {
	case models.RoleAdmin:
		return requested, nil
	case models.RoleTeacher:
		if requested != "" && requested != session.UserID {
			return "", appErrors.Clone(appErrors.ErrForbidden, "teachers may only read their own schedule")
		}
		return session.UserID, nil
	default:
		return "", appErrors.ErrForbidden
	}
}
