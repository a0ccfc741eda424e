// Package auth keeps the signed-in traveler in an encrypted cookie.
package auth

import (
	"encoding/gob"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"github.com/vangoframework/wayfarer/internal/domain"
)

// ErrSessionExpired is returned by Get for a cookie past its expiry.
var ErrSessionExpired = errors.New("session expired")

func init() {
	// Register types for gob encoding
	gob.Register(uuid.UUID{})
	gob.Register(SessionData{})
}

// SessionData identifies the signed-in traveler.
type SessionData struct {
	TravelerID uuid.UUID
	Name       string
	Email      string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// NewSessionData builds the session for a traveler who just signed in.
func NewSessionData(traveler *domain.Traveler) *SessionData {
	return &SessionData{
		TravelerID: traveler.ID,
		Name:       traveler.Name,
		Email:      traveler.Email,
	}
}

// FirstName returns the first word of the traveler's name for greetings.
func (s *SessionData) FirstName() string {
	if first, _, ok := strings.Cut(strings.TrimSpace(s.Name), " "); ok {
		return first
	}
	return strings.TrimSpace(s.Name)
}

// SessionStore manages session cookies.
type SessionStore struct {
	cookie *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

// NewSessionStore creates a new session store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewSessionStore(secret string, maxAge time.Duration, secure bool) *SessionStore {
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	return &SessionStore{
		cookie: securecookie.New(hashKey, blockKey),
		name:   "wayfarer_session",
		maxAge: int(maxAge.Seconds()),
		secure: secure,
	}
}

// Get retrieves the session data from the request cookie.
func (s *SessionStore) Get(r *http.Request) (*SessionData, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := s.cookie.Decode(s.name, cookie.Value, &data); err != nil {
		return nil, err
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, ErrSessionExpired
	}

	return &data, nil
}

// Set stores the session data in a cookie.
func (s *SessionStore) Set(w http.ResponseWriter, data *SessionData) error {
	data.CreatedAt = time.Now()
	data.ExpiresAt = time.Now().Add(time.Duration(s.maxAge) * time.Second)

	encoded, err := s.cookie.Encode(s.name, data)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear removes the session cookie.
func (s *SessionStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
