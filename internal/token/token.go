package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is the single failure returned for every decode
	// problem: bad signature, expired token, malformed input, missing
	// mandatory claims. Callers cannot distinguish the underlying cause.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingToken is returned when no bearer credential can be
	// extracted from an Authorization header.
	ErrMissingToken = errors.New("missing or invalid authorization header")

	// ErrMissingSecret is returned by NewService when no signing key is
	// supplied. The process must not start without one.
	ErrMissingSecret = errors.New("token signing secret is required")
)

const (
	bearerPrefix = "Bearer "

	identityTokenTTL = 6 * time.Hour
	inviteTokenTTL   = time.Hour
)

// Identity is the verified caller extracted from an identity token.
type Identity struct {
	UserID   string
	Username string
	Email    string
	Name     string
	Role     string
}

// InviteClaims is the payload of a team invite token: a short-lived
// capability authorizing one user to join one team with one role.
type InviteClaims struct {
	TeamID    string
	UserID    string
	Role      string
	InvitedBy string
}

type identityClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type inviteClaims struct {
	TeamID    string `json:"teamId"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	InvitedBy string `json:"invitedBy"`
	jwt.RegisteredClaims
}

// Service signs and verifies the two token kinds with a single symmetric
// key, immutable for the process lifetime.
type Service struct {
	secret  []byte
	baseURL string
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a token service. Fails when the secret is blank; the
// caller is expected to treat that as a fatal startup error.
func NewService(secret, baseURL string, opts ...Option) (*Service, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	s := &Service{
		secret:  []byte(secret),
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ExtractTokenFromHeader returns the bearer credential from an Authorization
// header. The "Bearer " prefix is matched case-sensitively.
func ExtractTokenFromHeader(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", ErrMissingToken
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingToken
	}
	tok := strings.TrimSpace(header[len(bearerPrefix):])
	if tok == "" {
		return "", ErrMissingToken
	}
	return tok, nil
}

// IssueIdentityToken signs a 6-hour identity token for the given user.
func (s *Service) IssueIdentityToken(userID, username, email, name, role string) (string, error) {
	now := s.now()
	claims := identityClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		Name:     name,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(identityTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// IssueInviteToken signs a 1-hour invite token. Issuance is stateless: the
// token itself is the only record of the pending invite.
func (s *Service) IssueInviteToken(teamID, userID, role, invitedBy string) (string, error) {
	now := s.now()
	claims := inviteClaims{
		TeamID:    teamID,
		UserID:    userID,
		Role:      role,
		InvitedBy: invitedBy,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(inviteTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify reports whether a token is well formed, correctly signed and not
// expired. It never returns an error: every failure mode is false.
func (s *Service) Verify(tok string) bool {
	if strings.TrimSpace(tok) == "" {
		return false
	}
	_, err := s.parse(tok, &jwt.RegisteredClaims{})
	return err == nil
}

// DecodeIdentity parses and signature-checks an identity token. Any failure,
// including a blank userId claim, yields ErrInvalidToken.
func (s *Service) DecodeIdentity(tok string) (*Identity, error) {
	var claims identityClaims
	if _, err := s.parse(tok, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Name:     claims.Name,
		Role:     claims.Role,
	}, nil
}

// DecodeInvite parses and signature-checks an invite token. A claim set with
// any of the four fields blank is invalid.
func (s *Service) DecodeInvite(tok string) (*InviteClaims, error) {
	var claims inviteClaims
	if _, err := s.parse(tok, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(claims.TeamID) == "" ||
		strings.TrimSpace(claims.UserID) == "" ||
		strings.TrimSpace(claims.Role) == "" ||
		strings.TrimSpace(claims.InvitedBy) == "" {
		return nil, ErrInvalidToken
	}
	return &InviteClaims{
		TeamID:    claims.TeamID,
		UserID:    claims.UserID,
		Role:      claims.Role,
		InvitedBy: claims.InvitedBy,
	}, nil
}

// InviteURL wraps an invite token in the shareable link sent to invitees.
func (s *Service) InviteURL(inviteToken string) string {
	return fmt.Sprintf("%s/teams/invite?token=%s", s.baseURL, inviteToken)
}

func (s *Service) parse(tok string, claims jwt.Claims) (*jwt.Token, error) {
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return parsed, nil
}
