package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, InitTables(db))

	return db
}

func TestUserDAO(t *testing.T) {
	d := NewUserDAO(newTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, User{Name: "ana", Email: "ana@example.com", Password: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = d.Insert(ctx, User{Name: "other", Email: "ana@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	_, err = d.Insert(ctx, User{Name: "ana", Email: "other@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrUserNameExists)

	found, err := d.FindByName(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	found, err = d.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana", found.Name)

	_, err = d.FindByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionDAO(t *testing.T) {
	d := NewSessionDAO(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	_, err := d.Save(ctx, Session{ID: "live", CSRFToken: "t1", ExpiresAt: now.Add(time.Hour)})
	require.NoError(t, err)
	_, err = d.Save(ctx, Session{ID: "old", CSRFToken: "t2", ExpiresAt: now.Add(-time.Hour)})
	require.NoError(t, err)

	_, err = d.Save(ctx, Session{ID: "live", UserID: 4, CSRFToken: "t3", ExpiresAt: now.Add(2 * time.Hour)})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, uint(4), found.UserID)
	assert.Equal(t, "t3", found.CSRFToken)

	n, err := d.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, d.Delete(ctx, "live"))
	_, err = d.FindByID(ctx, "live")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEventDAO(t *testing.T) {
	d := NewEventDAO(newTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, Event{
		Name:               "Spring fair",
		Organization:       "PTA",
		EventPhotoURL:      "https://cdn/events/a.png",
		EventPhotoPublicID: "events/a",
	})
	require.NoError(t, err)

	created.Name = "Summer fair"
	created.EventPhotoURL = ""
	created.EventPhotoPublicID = ""
	_, err = d.Update(ctx, created)
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer fair", found.Name)
	assert.Empty(t, found.EventPhotoPublicID)
	assert.False(t, found.CreatedAt.IsZero())

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, d.Delete(ctx, created.ID))
	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrEventNotFound)

	_, err = d.Update(ctx, created)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRaffleDAOWinnerSetNullOnParticipantDelete(t *testing.T) {
	db := newTestDB(t)
	raffles := NewRaffleDAO(db)
	participants := NewParticipantDAO(db)
	ctx := context.Background()

	winner, err := participants.Insert(ctx, Participant{
		Name: "Bea", DocumentID: "12345678901", Position: "guest",
		Email: "bea@example.com", Photo: "", EventsID: 1,
	})
	require.NoError(t, err)

	name := "Bea"
	created, err := raffles.Insert(ctx, Raffle{
		Name: "Bike", Price: "a bike", EventsID: 1, WinnerID: &winner.ID, WinnerName: &name,
	})
	require.NoError(t, err)
	assert.False(t, created.IsPlayed)

	require.NoError(t, db.Delete(&Participant{}, winner.ID).Error)

	found, err := raffles.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found.WinnerID)
	require.NotNil(t, found.WinnerName)
	assert.Equal(t, "Bea", *found.WinnerName)
}

func TestRaffleDAOUpdateAndDelete(t *testing.T) {
	d := NewRaffleDAO(newTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, Raffle{Name: "Bike", Price: "a bike", EventsID: 3, IsPlayed: true})
	require.NoError(t, err)

	created.IsPlayed = false
	created.Price = "two bikes"
	_, err = d.Update(ctx, created)
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found.IsPlayed)
	assert.Equal(t, "two bikes", found.Price)

	require.NoError(t, d.Delete(ctx, created.ID))
	_, err = d.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRaffleNotFound)
}

func TestParticipantDAOExclusiveIsUnique(t *testing.T) {
	d := NewParticipantDAO(newTestDB(t))
	ctx := context.Background()

	_, err := d.InsertExclusive(ctx, 1, 2)
	require.NoError(t, err)

	_, err = d.InsertExclusive(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrAlreadyExclusive)

	_, err = d.InsertExclusive(ctx, 1, 3)
	assert.NoError(t, err)
}

func TestQueryErrorIsDataStoreFailure(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewEventDAO(db).FindAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataStore)
}
