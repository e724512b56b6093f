package auth

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 24 * time.Hour

// Service is the session context for the whole application: an explicit
// object constructed at the root, with Restore as its init path and
// Logout as its teardown. Authentication runs in mock mode; operations
// construct or clear records and always succeed.
type Service struct {
	secret []byte
	store  *SessionStore

	mu       sync.RWMutex
	sessions map[string]SessionRecord // in-memory slot per session
	accounts map[string][]byte        // email -> bcrypt hash, never persisted
}

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func NewService(secret string, store *SessionStore) *Service {
	return &Service{
		secret:   []byte(secret),
		store:    store,
		sessions: map[string]SessionRecord{},
		accounts: map[string][]byte{},
	}
}

// Restore loads the persisted record back into the in-memory slot, the
// equivalent of reading local storage at startup.
func (s *Service) Restore(ctx context.Context, sessionID string) (SessionRecord, bool, error) {
	record, ok, err := s.store.Load(ctx, sessionID)
	if err != nil || !ok {
		return SessionRecord{}, false, err
	}
	s.mu.Lock()
	s.sessions[sessionID] = record
	s.mu.Unlock()
	return record, true, nil
}

// Current returns the in-memory session without touching the store.
func (s *Service) Current(sessionID string) (SessionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.sessions[sessionID]
	return record, ok
}

func (s *Service) Register(ctx context.Context, sessionID string, req RegisterRequest) (SessionRecord, TokenResponse, error) {
	// the hash stays in process memory; the persisted record never
	// carries a password in any form
	if req.Password != "" {
		if hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost); err == nil {
			s.mu.Lock()
			s.accounts[strings.ToLower(req.Email)] = hash
			s.mu.Unlock()
		}
	}

	record := SessionRecord{
		UserID:    uuid.NewString(),
		Email:     req.Email,
		Username:  req.Username,
		CreatedAt: time.Now(),
	}
	return s.open(ctx, sessionID, record)
}

func (s *Service) Login(ctx context.Context, sessionID string, req LoginRequest) (SessionRecord, TokenResponse, error) {
	// mock mode: a bad password is logged, never rejected
	s.mu.RLock()
	hash, known := s.accounts[strings.ToLower(req.Email)]
	s.mu.RUnlock()
	if known {
		if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
			log.Printf("auth: password mismatch for %s ignored in mock mode", req.Email)
		}
	}

	record := SessionRecord{
		UserID:    uuid.NewString(),
		Email:     req.Email,
		Username:  usernameFromEmail(req.Email),
		CreatedAt: time.Now(),
	}
	return s.open(ctx, sessionID, record)
}

func (s *Service) LoginWithGoogle(ctx context.Context, sessionID string, req GoogleLoginRequest) (SessionRecord, TokenResponse, error) {
	username := req.Username
	if username == "" {
		username = usernameFromEmail(req.Email)
	}
	record := SessionRecord{
		UserID:    uuid.NewString(),
		Email:     req.Email,
		Username:  username,
		PhotoURL:  req.PhotoURL,
		CreatedAt: time.Now(),
	}
	return s.open(ctx, sessionID, record)
}

// Logout clears the in-memory slot first so the UI reflects the change
// immediately, then removes the persisted record.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return s.store.Clear(ctx, sessionID)
}

// ForgotPassword simulates sending a reset email. There is no email and
// no password to reset; it exists to complete the surface.
func (s *Service) ForgotPassword(_ context.Context, email string) string {
	return "Un email de réinitialisation a été envoyé à " + email
}

func (s *Service) open(ctx context.Context, sessionID string, record SessionRecord) (SessionRecord, TokenResponse, error) {
	if err := s.store.Save(ctx, sessionID, record); err != nil {
		return SessionRecord{}, TokenResponse{}, err
	}
	s.mu.Lock()
	s.sessions[sessionID] = record
	s.mu.Unlock()

	token, err := s.signToken(record.UserID, accessTokenTTL)
	if err != nil {
		return SessionRecord{}, TokenResponse{}, err
	}
	return record, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
	}, nil
}

func (s *Service) ValidateAccessToken(token string) (string, error) {
	return validateToken(s.secret, token)
}

func validateToken(secret []byte, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.UserID, nil
}

func (s *Service) signToken(userID string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func usernameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
