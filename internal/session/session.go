// Package session keeps server side login state. The browser holds a signed token that
// names the stored session, plus a readable CSRF token it must echo on writes.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/raffles-api/internal/repository"
)

const (
	CookieName     = "session"
	CSRFCookieName = "XSRF-TOKEN"
	ContextKey     = "session"

	DefaultLifetime = 120 * time.Minute
)

type Store interface {
	Save(ctx context.Context, s domain.Session) (domain.Session, error)
	FindByID(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Verifier checks login credentials.
type Verifier interface {
	Verify(ctx context.Context, name, password string) (domain.User, error)
}

type Config struct {
	SigningKey string
	Lifetime   time.Duration
	Secure     bool
	Domain     string
}

type Manager struct {
	store Store
	conf  Config
	now   func() time.Time
}

func NewManager(store Store, conf Config) *Manager {
	if conf.Lifetime <= 0 {
		conf.Lifetime = DefaultLifetime
	}

	return &Manager{
		store: store,
		conf:  conf,
		now:   time.Now,
	}
}

// Start resumes the session named by the request cookie, or begins a fresh guest
// session when there is none or it is no longer valid. A guest session is kept in
// memory until Persist or a login stores it. Only data store failures are returned.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	s := &Session{m: m, w: w}

	if data, ok, err := m.resume(ctx, r); err != nil {
		return nil, err
	} else if ok {
		s.data = data
		s.persisted = true

		if data.ExpiresAt.Sub(m.now()) < m.conf.Lifetime/2 {
			if err = s.save(ctx); err != nil {
				return nil, err
			}
		}

		return s, nil
	}

	s.data = m.fresh(r.UserAgent())

	return s, nil
}

func (m *Manager) resume(ctx context.Context, r *http.Request) (domain.Session, bool, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return domain.Session{}, false, nil
	}

	claims, err := jwthelper.ParseToken([]byte(m.conf.SigningKey), cookie.Value)
	if err != nil {
		return domain.Session{}, false, nil
	}

	data, err := m.store.FindByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Session{}, false, nil
		}

		return domain.Session{}, false, fmt.Errorf("m.store.FindByID -> %w", err)
	}
	if data.Expired(m.now()) {
		return domain.Session{}, false, nil
	}

	return data, true, nil
}

func (m *Manager) fresh(userAgent string) domain.Session {
	return domain.Session{
		ID:        uuid.NewString(),
		CSRFToken: newToken(),
		UserAgent: userAgent,
	}
}

// Prune removes every stored session past its expiry.
func (m *Manager) Prune(ctx context.Context) (int64, error) {
	n, err := m.store.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("m.store.DeleteExpired -> %w", err)
	}

	return n, nil
}

// Session is the per request view of the stored session. Changes are written to the
// store and to the response cookies immediately, so they must happen before the
// response body is written.
type Session struct {
	m         *Manager
	w         http.ResponseWriter
	data      domain.Session
	user      *domain.User
	persisted bool
}

func (s *Session) ID() string {
	return s.data.ID
}

func (s *Session) UserID() uint {
	return s.data.UserID
}

func (s *Session) CSRFToken() string {
	return s.data.CSRFToken
}

// Persist stores a session that has not been saved yet and sends its cookies.
func (s *Session) Persist(ctx context.Context) error {
	if s.persisted {
		return nil
	}

	return s.save(ctx)
}

// Check reports whether a user is logged in on this session.
func (s *Session) Check() bool {
	return s.data.UserID != 0
}

// User returns the logged in user once it has been resolved for this request.
func (s *Session) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}

	return *s.user, true
}

func (s *Session) SetUser(user domain.User) {
	s.user = &user
}

// VerifyCSRF compares token with the session's CSRF token in constant time.
func (s *Session) VerifyCSRF(token string) bool {
	if token == "" || s.data.CSRFToken == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(s.data.CSRFToken)) == 1
}

// Attempt logs in with the given credentials. A session that is already logged in is
// invalidated first. On success the session id and CSRF token are rotated.
func (s *Session) Attempt(ctx context.Context, v Verifier, name, password string) (domain.User, error) {
	if s.Check() {
		if err := s.Invalidate(ctx); err != nil {
			return domain.User{}, fmt.Errorf("s.Invalidate -> %w", err)
		}
	}

	user, err := v.Verify(ctx, name, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("v.Verify -> %w", err)
	}

	s.data.UserID = user.ID
	s.user = &user
	if err = s.Regenerate(ctx); err != nil {
		return domain.User{}, fmt.Errorf("s.Regenerate -> %w", err)
	}

	return user, nil
}

// Regenerate moves the session to a new id with a new CSRF token, keeping the user.
func (s *Session) Regenerate(ctx context.Context) error {
	if err := s.discard(ctx); err != nil {
		return err
	}

	userID := s.data.UserID
	s.data = s.m.fresh(s.data.UserAgent)
	s.data.UserID = userID

	return s.save(ctx)
}

// Invalidate forgets the user, deletes the stored session and clears the cookies.
func (s *Session) Invalidate(ctx context.Context) error {
	if err := s.discard(ctx); err != nil {
		return err
	}

	s.data = s.m.fresh(s.data.UserAgent)
	s.user = nil
	s.clearCookies()

	return nil
}

func (s *Session) discard(ctx context.Context) error {
	if !s.persisted {
		return nil
	}

	if err := s.m.store.Delete(ctx, s.data.ID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return fmt.Errorf("s.m.store.Delete -> %w", err)
	}
	s.persisted = false

	return nil
}

func (s *Session) save(ctx context.Context) error {
	s.data.ExpiresAt = s.m.now().Add(s.m.conf.Lifetime)

	saved, err := s.m.store.Save(ctx, s.data)
	if err != nil {
		return fmt.Errorf("s.m.store.Save -> %w", err)
	}
	s.data = saved
	s.persisted = true

	return s.writeCookies()
}

func (s *Session) writeCookies() error {
	token, err := jwthelper.GenerateToken([]byte(s.m.conf.SigningKey), s.data.ID, s.data.UserAgent, s.data.ExpiresAt)
	if err != nil {
		return fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	maxAge := int(s.m.conf.Lifetime.Seconds())
	http.SetCookie(s.w, s.cookie(CookieName, token, maxAge, true))
	http.SetCookie(s.w, s.cookie(CSRFCookieName, s.data.CSRFToken, maxAge, false))

	return nil
}

func (s *Session) clearCookies() {
	http.SetCookie(s.w, s.cookie(CookieName, "", -1, true))
	http.SetCookie(s.w, s.cookie(CSRFCookieName, "", -1, false))
}

func (s *Session) cookie(name, value string, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.m.conf.Domain,
		MaxAge:   maxAge,
		Secure:   s.m.conf.Secure,
		HttpOnly: httpOnly,
		SameSite: http.SameSiteLaxMode,
	}
}

// FromContext returns the session the session middleware stored on ctx.
func FromContext(ctx *gin.Context) (*Session, bool) {
	value, ok := ctx.Get(ContextKey)
	if !ok {
		return nil, false
	}

	s, ok := value.(*Session)
	if !ok {
		zap.L().Error("unexpected session type in context", zap.Any("value", value))
	}

	return s, ok
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
