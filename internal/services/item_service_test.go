package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemstore-backend/internal/dto"
)

func insertUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()
	res, err := db.Exec(
		"insert into users (username, email, password_hash, created_at) values (?, ?, ?, current_timestamp)",
		username, username+"@x.com", "hash",
	)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func itemReq(name string, price float64) *dto.ItemRequest {
	return &dto.ItemRequest{Name: name, Price: &price}
}

func TestItemCreateAndGet(t *testing.T) {
	db := setupDB(t)
	s := NewItemService(db)
	ctx := context.Background()
	userID := insertUser(t, db, "alice")

	desc := "a widget"
	tax := 0.2
	req := &dto.ItemRequest{Name: "widget", Description: &desc, Price: ptr(9.99), Tax: &tax}

	created, err := s.Create(ctx, req, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	require.NotNil(t, created.UserID)
	assert.Equal(t, userID, *created.UserID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "widget", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "a widget", *got.Description)
	assert.Equal(t, 9.99, got.Price)
	require.NotNil(t, got.Tax)
	assert.Equal(t, 0.2, *got.Tax)
	require.NotNil(t, got.UserID)
	assert.Equal(t, userID, *got.UserID)
}

func TestItemGet_NotFound(t *testing.T) {
	s := NewItemService(setupDB(t))

	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemList(t *testing.T) {
	db := setupDB(t)
	s := NewItemService(db)
	ctx := context.Background()
	userID := insertUser(t, db, "alice")

	for i := 1; i <= 5; i++ {
		_, err := s.Create(ctx, itemReq(fmt.Sprintf("item-%d", i), float64(i)), userID)
		require.NoError(t, err)
	}

	// newest first
	items, err := s.List(ctx, 0, 10, "")
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "item-5", items[0].Name)
	assert.Equal(t, "item-1", items[4].Name)

	// limit and offset slice the ordered sequence
	items, err = s.List(ctx, 1, 2, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item-4", items[0].Name)
	assert.Equal(t, "item-3", items[1].Name)

	// empty result is not an error
	items, err = s.List(ctx, 100, 10, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemList_Search(t *testing.T) {
	db := setupDB(t)
	s := NewItemService(db)
	ctx := context.Background()
	userID := insertUser(t, db, "alice")

	desc := "contains needle somewhere"
	_, err := s.Create(ctx, &dto.ItemRequest{Name: "plain", Description: &desc, Price: ptr(1.0)}, userID)
	require.NoError(t, err)
	_, err = s.Create(ctx, itemReq("needle holder", 2.0), userID)
	require.NoError(t, err)
	_, err = s.Create(ctx, itemReq("unrelated", 3.0), userID)
	require.NoError(t, err)

	items, err := s.List(ctx, 0, 10, "needle")
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = s.List(ctx, 0, 10, "nomatch")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemUpdate(t *testing.T) {
	db := setupDB(t)
	s := NewItemService(db)
	ctx := context.Background()
	userID := insertUser(t, db, "alice")

	created, err := s.Create(ctx, itemReq("widget", 9.99), userID)
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, itemReq("gadget", 19.99), userID)
	require.NoError(t, err)
	assert.Equal(t, "gadget", updated.Name)
	assert.Equal(t, 19.99, updated.Price)
	assert.Nil(t, updated.Description)

	// owner and creation time are immutable
	require.NotNil(t, updated.UserID)
	assert.Equal(t, userID, *updated.UserID)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

	_, err = s.Update(ctx, 42, itemReq("gadget", 19.99), userID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemUpdate_Forbidden(t *testing.T) {
	db := setupDB(t)
	s := NewItemService(db)
	ctx := context.Background()
	alice := insertUser(t, db, "alice")
	bob := insertUser(t, db, "bob")

	created, err := s.Create(ctx, itemReq("widget", 9.99), alice)
	require.NoError(t, err)

	_, err = s.Update(ctx, created.ID, itemReq("stolen", 0.01), bob)
	assert.ErrorIs(t, err, ErrItemForbidden)

	err = s.Delete(ctx, created.ID, bob)
	assert.ErrorIs(t, err, ErrItemForbidden)
}

func TestItemDelete(t *testing.T) {
	db := setupDB(t)
	s := NewItemService(db)
	ctx := context.Background()
	userID := insertUser(t, db, "alice")

	created, err := s.Create(ctx, itemReq("widget", 9.99), userID)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID, userID))

	// second delete finds nothing
	err = s.Delete(ctx, created.ID, userID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemIDsNotReused(t *testing.T) {
	db := setupDB(t)
	s := NewItemService(db)
	ctx := context.Background()
	userID := insertUser(t, db, "alice")

	first, err := s.Create(ctx, itemReq("one", 1.0), userID)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, first.ID, userID))

	second, err := s.Create(ctx, itemReq("two", 2.0), userID)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func ptr(f float64) *float64 {
	return &f
}
