package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/raffles-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffles-api/internal/cache"
	"github.com/vietanh2810/raffles-api/internal/config"
	"github.com/vietanh2810/raffles-api/internal/db"
	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/media"
	"github.com/vietanh2810/raffles-api/internal/repository"
	"github.com/vietanh2810/raffles-api/internal/repository/dao"
	"github.com/vietanh2810/raffles-api/internal/session"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

// journal records media calls and event table activity in the order they happen.
type journal struct {
	mu      sync.Mutex
	entries []string
	reads   map[string]int
}

func (j *journal) add(entry string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
}

func (j *journal) read(table string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.reads[table]++
}

func (j *journal) readsOf(table string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.reads[table]
}

func (j *journal) snapshot() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

type journalMedia struct {
	j    *journal
	mu   sync.Mutex
	next int
}

func (m *journalMedia) Upload(_ context.Context, _ domain.Image, folder string) (media.Asset, error) {
	m.mu.Lock()
	m.next++
	id := fmt.Sprintf("%s/asset-%d", folder, m.next)
	m.mu.Unlock()

	m.j.add("upload " + id)
	return media.Asset{SecureURL: "https://media.test/" + id, PublicID: id}, nil
}

func (m *journalMedia) Delete(_ context.Context, publicID string) (bool, error) {
	if publicID == "" {
		return false, nil
	}
	m.j.add("delete " + publicID)
	return true, nil
}

type testApp struct {
	t       *testing.T
	srv     *httptest.Server
	client  *http.Client
	db      *gorm.DB
	cache   *cache.MemoryStore
	journal *journal
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)

	j := &journal{reads: map[string]int{}}
	require.NoError(t, gdb.Callback().Query().After("gorm:query").Register("test:reads", func(tx *gorm.DB) {
		j.read(tx.Statement.Table)
	}))
	require.NoError(t, gdb.Callback().Delete().After("gorm:delete").Register("test:deletes", func(tx *gorm.DB) {
		if tx.Statement.Table == "events" && tx.Error == nil {
			j.add("db delete events")
		}
	}))

	conf := &config.AppConfig{
		API:     &config.APIConfig{Environment: "testing"},
		Gin:     &config.GinConfig{Mode: gin.TestMode},
		Cache:   &config.CacheConfig{TTL: time.Hour, Size: 128},
		Session: &config.SessionConfig{SigningKey: "test-signing-key", Lifetime: time.Hour},
		Media:   &config.MediaConfig{Driver: "memory"},
	}
	store := cache.NewMemoryStore(128, time.Hour)

	s := NewServer(conf, gdb, &journalMedia{j: j}, store)
	ctx, cancel := context.WithCancel(context.Background())
	go s.Feed.Run(ctx)

	srv := httptest.NewServer(s.Router)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testApp{
		t:       t,
		srv:     srv,
		client:  &http.Client{Jar: jar},
		db:      gdb,
		cache:   store,
		journal: j,
	}
}

func (a *testApp) csrfToken() string {
	u, _ := url.Parse(a.srv.URL)
	for _, c := range a.client.Jar.Cookies(u) {
		if c.Name == session.CSRFCookieName {
			return c.Value
		}
	}
	return ""
}

func (a *testApp) send(method, path, contentType string, body io.Reader, withCSRF bool) *http.Response {
	a.t.Helper()

	req, err := http.NewRequest(method, a.srv.URL+path, body)
	require.NoError(a.t, err)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if withCSRF {
		req.Header.Set("X-XSRF-TOKEN", a.csrfToken())
	}

	resp, err := a.client.Do(req)
	require.NoError(a.t, err)
	a.t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func (a *testApp) json(method, path string, payload any) *http.Response {
	a.t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(a.t, err)
		body = bytes.NewReader(raw)
	}

	return a.send(method, path, "application/json", body, true)
}

// multipart sends fields and files (field name -> file name) as a multipart form.
func (a *testApp) multipart(method, path string, fields map[string]string, files map[string]string) *http.Response {
	a.t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(a.t, w.WriteField(k, v))
	}
	for field, name := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(a.t, err)
		_, err = part.Write(pngBytes)
		require.NoError(a.t, err)
	}
	require.NoError(a.t, w.Close())

	return a.send(method, path, w.FormDataContentType(), &buf, true)
}

func (a *testApp) register(name, email, password string) *http.Response {
	return a.json(http.MethodPost, "/api/auth/register", map[string]string{
		"name":                  name,
		"email":                 email,
		"password":              password,
		"password_confirmation": password,
	})
}

func (a *testApp) login(name, password string) *http.Response {
	return a.json(http.MethodPost, "/api/auth/login", map[string]string{
		"name":     name,
		"password": password,
	})
}

func (a *testApp) loggedIn() {
	a.t.Helper()
	require.Equal(a.t, http.StatusCreated, a.register("ana", "ana@example.com", "secret-password").StatusCode)
	require.Equal(a.t, http.StatusOK, a.login("ana", "secret-password").StatusCode)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type errBody struct {
	Error    string              `json:"error"`
	Message  string              `json:"message"`
	Messages map[string][]string `json:"messages"`
}

type eventBody struct {
	ID                        uint    `json:"id"`
	Name                      string  `json:"name"`
	Organization              string  `json:"organization"`
	EventPhotoURL             *string `json:"event_photo_url"`
	EventPhotoPublicID        *string `json:"event_photo_public_id"`
	OrganizationPhotoPublicID *string `json:"organization_photo_public_id"`
}

type eventSaved struct {
	Message string    `json:"message"`
	Event   eventBody `json:"event"`
}

func TestHealthcheck(t *testing.T) {
	app := newTestApp(t)

	resp := app.send(http.MethodGet, "/", "", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := app.send(http.MethodGet, "/api/nothing-here", "", nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegisterCreatesExactlyOneUser(t *testing.T) {
	app := newTestApp(t)

	resp := app.register("ana", "ana@example.com", "secret-password")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode[struct {
		Message string `json:"message"`
		Data    struct {
			Email string `json:"email"`
		} `json:"data"`
	}](t, resp)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, "ana@example.com", body.Data.Email)

	var count int64
	require.NoError(t, app.db.Model(&dao.User{}).Where("email = ?", "ana@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusCreated, app.register("ana", "ana@example.com", "secret-password").StatusCode)

	resp := app.register("bea", "ana@example.com", "secret-password")
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[errBody](t, resp)
	assert.Contains(t, body.Messages, "email")

	var count int64
	require.NoError(t, app.db.Model(&dao.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	resp := app.json(http.MethodPost, "/api/auth/register", map[string]string{
		"name":                  "ana",
		"email":                 "not-an-email",
		"password":              "short",
		"password_confirmation": "other",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decode[errBody](t, resp)
	assert.Contains(t, body.Messages, "email")
	assert.Contains(t, body.Messages, "password")
}

func TestLoginEstablishesSession(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusCreated, app.register("ana", "ana@example.com", "secret-password").StatusCode)
	require.Equal(t, http.StatusNoContent, app.send(http.MethodGet, "/api/csrf-cookie", "", nil, false).StatusCode)
	guestToken := app.csrfToken()
	require.NotEmpty(t, guestToken)

	resp := app.login("ana", "secret-password")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}](t, resp)
	assert.Equal(t, "ana", body.User.Name)
	assert.NotEqual(t, guestToken, app.csrfToken(), "csrf token is rotated on login")

	me := app.send(http.MethodGet, "/api/auth/me", "", nil, false)
	assert.Equal(t, http.StatusOK, me.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusCreated, app.register("ana", "ana@example.com", "secret-password").StatusCode)

	for _, creds := range [][2]string{{"ana", "wrong-password"}, {"nobody", "secret-password"}} {
		resp := app.login(creds[0], creds[1])
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, creds[0])
	}

	me := app.send(http.MethodGet, "/api/auth/me", "", nil, false)
	assert.Equal(t, http.StatusUnauthorized, me.StatusCode)
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	resp := app.json(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	me := app.send(http.MethodGet, "/api/auth/me", "", nil, false)
	assert.Equal(t, http.StatusUnauthorized, me.StatusCode)
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/events", "/api/raffles", "/api/auth/me"} {
		resp := app.send(http.MethodGet, path, "", nil, false)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestWritesNeedCSRFToken(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	raw, _ := json.Marshal(map[string]string{"name": "Fair", "organization": "School"})
	resp := app.send(http.MethodPost, "/api/events", "application/json", bytes.NewReader(raw), false)
	require.Equal(t, response.StatusSessionExpired, resp.StatusCode)
}

func (a *testApp) storedSessions() int64 {
	a.t.Helper()

	var n int64
	require.NoError(a.t, a.db.Model(&dao.Session{}).Count(&n).Error)
	return n
}

func TestGuestTrafficStoresNoSession(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusCreated, app.register("ana", "ana@example.com", "secret-password").StatusCode)

	assert.Equal(t, http.StatusUnauthorized, app.login("ana", "wrong-password").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, app.send(http.MethodGet, "/api/auth/me", "", nil, false).StatusCode)
	assert.Zero(t, app.storedSessions())
	assert.Empty(t, app.csrfToken())

	for i := 0; i < 2; i++ {
		resp := app.send(http.MethodGet, "/api/csrf-cookie", "", nil, false)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	}
	assert.NotEmpty(t, app.csrfToken())
	assert.EqualValues(t, 1, app.storedSessions())
}

func TestCSRFIsCheckedBeforeAuthentication(t *testing.T) {
	app := newTestApp(t)
	payload := map[string]string{"name": "Fair", "organization": "School"}

	resp := app.json(http.MethodPost, "/api/events", payload)
	assert.Equal(t, response.StatusSessionExpired, resp.StatusCode)

	require.Equal(t, http.StatusNoContent, app.send(http.MethodGet, "/api/csrf-cookie", "", nil, false).StatusCode)
	resp = app.json(http.MethodPost, "/api/events", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEventNotFoundIsNotCached(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	resp := app.send(http.MethodGet, "/api/events/999", "", nil, false)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, ok, err := app.cache.Get(context.Background(), cache.Record(cache.KindEvent, 999).String())
	require.NoError(t, err)
	assert.False(t, ok)

	resp = app.send(http.MethodGet, "/api/events/abc", "", nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEventListIsCachedUntilWrite(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	created := app.json(http.MethodPost, "/api/events", map[string]string{"name": "Fair", "organization": "School"})
	require.Equal(t, http.StatusCreated, created.StatusCode)
	event := decode[eventSaved](t, created).Event

	list := func() []eventBody {
		resp := app.send(http.MethodGet, "/api/events", "", nil, false)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return decode[struct {
			Data []eventBody `json:"data"`
		}](t, resp).Data
	}

	first := list()
	reads := app.journal.readsOf("events")
	second := list()
	assert.Equal(t, first, second)
	assert.Equal(t, reads, app.journal.readsOf("events"), "second list is served from cache")

	patched := app.json(http.MethodPatch, fmt.Sprintf("/api/events/%d", event.ID), map[string]string{"name": "Spring Fair"})
	require.Equal(t, http.StatusOK, patched.StatusCode)
	after := list()
	require.Len(t, after, 1)
	assert.Equal(t, "Spring Fair", after[0].Name)

	created = app.json(http.MethodPost, "/api/events", map[string]string{"name": "Gala", "organization": "Club"})
	require.Equal(t, http.StatusCreated, created.StatusCode)
	assert.Len(t, list(), 2)

	deleted := app.send(http.MethodDelete, fmt.Sprintf("/api/events/%d", event.ID), "", nil, true)
	require.Equal(t, http.StatusNoContent, deleted.StatusCode)
	assert.Len(t, list(), 1)

	gone := app.send(http.MethodGet, fmt.Sprintf("/api/events/%d", event.ID), "", nil, false)
	assert.Equal(t, http.StatusNotFound, gone.StatusCode)
}

func TestEventPhotoReplaceDeletesPreviousAsset(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	created := app.multipart(http.MethodPost, "/api/events",
		map[string]string{"name": "Fair", "organization": "School"},
		map[string]string{"event_photo_url": "fair.png"},
	)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	event := decode[eventSaved](t, created).Event
	require.NotNil(t, event.EventPhotoPublicID)
	oldID := *event.EventPhotoPublicID

	updated := app.multipart(http.MethodPatch, fmt.Sprintf("/api/events/%d", event.ID),
		nil,
		map[string]string{"event_photo_url": "fair-2.png"},
	)
	require.Equal(t, http.StatusOK, updated.StatusCode)
	event = decode[eventSaved](t, updated).Event
	require.NotNil(t, event.EventPhotoPublicID)
	require.NotNil(t, event.EventPhotoURL)
	assert.NotEqual(t, oldID, *event.EventPhotoPublicID)
	assert.Contains(t, *event.EventPhotoURL, *event.EventPhotoPublicID)
	assert.Equal(t, "School", event.Organization)

	entries := app.journal.snapshot()
	assert.Equal(t, []string{
		"upload events/asset-1",
		"upload events/asset-2",
		"delete events/asset-1",
	}, entries)
}

func TestEventPhotoRejectsNonImage(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Fair"))
	require.NoError(t, w.WriteField("organization", "School"))
	part, err := w.CreateFormFile("event_photo_url", "notes.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text, not an image"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	resp := app.send(http.MethodPost, "/api/events", w.FormDataContentType(), &buf, true)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, decode[errBody](t, resp).Messages, "event_photo_url")
	assert.Empty(t, app.journal.snapshot())
}

func TestEventDeleteReleasesBothPhotosFirst(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	created := app.multipart(http.MethodPost, "/api/events",
		map[string]string{"name": "Fair", "organization": "School"},
		map[string]string{"event_photo_url": "fair.png", "organization_photo_url": "school.png"},
	)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	event := decode[eventSaved](t, created).Event
	require.NotNil(t, event.EventPhotoPublicID)
	require.NotNil(t, event.OrganizationPhotoPublicID)

	resp := app.send(http.MethodDelete, fmt.Sprintf("/api/events/%d", event.ID), "", nil, true)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	entries := app.journal.snapshot()
	require.Len(t, entries, 5)
	tail := entries[2:]
	assert.ElementsMatch(t, []string{
		"delete " + *event.EventPhotoPublicID,
		"delete " + *event.OrganizationPhotoPublicID,
	}, tail[:2])
	assert.Equal(t, "db delete events", tail[2])
}

func TestRaffleLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	invalid := app.json(http.MethodPost, "/api/raffles", map[string]any{"name": "Tombola", "price": "Bike", "events_id": 42})
	require.Equal(t, http.StatusUnprocessableEntity, invalid.StatusCode)
	assert.Contains(t, decode[errBody](t, invalid).Messages, "events_id")

	event := decode[eventSaved](t, app.json(http.MethodPost, "/api/events", map[string]string{"name": "Fair", "organization": "School"})).Event

	created := app.multipart(http.MethodPost, "/api/raffles",
		map[string]string{"name": "Tombola", "price": "Bike", "events_id": fmt.Sprint(event.ID)},
		map[string]string{"price_photo_url": "bike.png"},
	)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	raffle := decode[struct {
		Raffle struct {
			ID         uint    `json:"id"`
			EventID    uint    `json:"event_id"`
			PricePhoto *string `json:"price_photo"`
			IsPlayed   bool    `json:"is_played"`
		} `json:"raffle"`
	}](t, created).Raffle
	assert.Equal(t, event.ID, raffle.EventID)
	require.NotNil(t, raffle.PricePhoto)
	assert.True(t, strings.HasPrefix(*raffle.PricePhoto, "https://media.test/raffles_prices/"))

	played := app.json(http.MethodPatch, fmt.Sprintf("/api/raffles/%d", raffle.ID), map[string]any{"is_played": true})
	require.Equal(t, http.StatusOK, played.StatusCode)

	show := app.send(http.MethodGet, fmt.Sprintf("/api/raffles/%d", raffle.ID), "", nil, false)
	require.Equal(t, http.StatusOK, show.StatusCode)
	assert.True(t, decode[struct {
		Data struct {
			IsPlayed bool `json:"is_played"`
		} `json:"data"`
	}](t, show).Data.IsPlayed)

	deleted := app.send(http.MethodDelete, fmt.Sprintf("/api/raffles/%d", raffle.ID), "", nil, true)
	require.Equal(t, http.StatusNoContent, deleted.StatusCode)
	assert.Contains(t, app.journal.snapshot(), "delete raffles_prices/asset-1")
}

func TestFeedStreamsChanges(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	wsURL := "ws" + strings.TrimPrefix(app.srv.URL, "http") + "/api/feed"
	dialer := websocket.Dialer{Jar: app.client.Jar, HandshakeTimeout: 5 * time.Second}
	conn, resp, err := dialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		_ = resp.Body.Close()
	})

	created := app.json(http.MethodPost, "/api/events", map[string]string{"name": "Fair", "organization": "School"})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var change domain.Change
	require.NoError(t, conn.ReadJSON(&change))
	assert.Equal(t, domain.Change{Entity: "event", Action: domain.ChangeCreated, ID: 1}, change)
}

func TestRaffleWinnerTakesParticipantName(t *testing.T) {
	app := newTestApp(t)
	app.loggedIn()

	event := decode[eventSaved](t, app.json(http.MethodPost, "/api/events", map[string]string{"name": "Fair", "organization": "School"})).Event
	winner, err := repository.NewParticipantRepository(dao.NewParticipantDAO(app.db)).Create(context.Background(), domain.Participant{
		Name:       "Lucia",
		DocumentID: "12345678901",
		Position:   "coordinator",
		Email:      "lucia@example.com",
		Photo:      "https://media.test/participants/lucia",
		EventID:    event.ID,
	})
	require.NoError(t, err)

	created := app.json(http.MethodPost, "/api/raffles", map[string]any{"name": "Tombola", "price": "Bike", "events_id": event.ID})
	require.Equal(t, http.StatusCreated, created.StatusCode)
	raffleID := decode[struct {
		Raffle struct {
			ID uint `json:"id"`
		} `json:"raffle"`
	}](t, created).Raffle.ID

	unknown := app.json(http.MethodPatch, fmt.Sprintf("/api/raffles/%d", raffleID), map[string]any{"winner_id": winner.ID + 50})
	require.Equal(t, http.StatusUnprocessableEntity, unknown.StatusCode)
	assert.Contains(t, decode[errBody](t, unknown).Messages, "winner_id")

	drawn := app.json(http.MethodPatch, fmt.Sprintf("/api/raffles/%d", raffleID), map[string]any{"winner_id": winner.ID, "is_played": true})
	require.Equal(t, http.StatusOK, drawn.StatusCode)
	raffle := decode[struct {
		Raffle struct {
			WinnerID   *uint   `json:"winner_id"`
			WinnerName *string `json:"winner_name"`
			IsPlayed   bool    `json:"is_played"`
		} `json:"raffle"`
	}](t, drawn).Raffle
	require.NotNil(t, raffle.WinnerID)
	require.NotNil(t, raffle.WinnerName)
	assert.Equal(t, winner.ID, *raffle.WinnerID)
	assert.Equal(t, "Lucia", *raffle.WinnerName)
	assert.True(t, raffle.IsPlayed)
}
