package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"itemstore-backend/internal/dto"
	"itemstore-backend/internal/models"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrItemForbidden = errors.New("item belongs to another user")
)

type ItemService struct {
	db *sqlx.DB
}

func NewItemService(db *sqlx.DB) *ItemService {
	return &ItemService{db: db}
}

// List returns at most limit items, newest first, skipping skip rows.
// When search is non-empty it is matched as a substring against name or
// description. An empty result is not an error.
func (s *ItemService) List(ctx context.Context, skip, limit int, search string) ([]models.Item, error) {
	query := "select id, name, description, price, tax, user_id, created_at from items"
	args := []interface{}{}

	if search != "" {
		query += " where name like ? or description like ?"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	// Timestamps have second resolution; id breaks ties toward the
	// most recently inserted row.
	query += " order by created_at desc, id desc limit ? offset ?"
	args = append(args, limit, skip)

	items := []models.Item{}
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	query := "select id, name, description, price, tax, user_id, created_at from items where id = ?"

	if err := s.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

func (s *ItemService) Create(ctx context.Context, req *dto.ItemRequest, userID int64) (*models.Item, error) {
	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Tax:         req.Tax,
		UserID:      &userID,
		CreatedAt:   time.Now().UTC(),
	}

	query := `
		insert into items (name, description, price, tax, user_id, created_at)
		values (?, ?, ?, ?, ?, ?)
	`
	res, err := s.db.ExecContext(ctx, query, item.Name, item.Description, item.Price, item.Tax, item.UserID, item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	item.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get item id: %w", err)
	}

	return item, nil
}

// Update overwrites name, description, price and tax. Owner and creation
// time are immutable. Items owned by another user are rejected; rows with
// no recorded owner remain writable by any authenticated caller.
func (s *ItemService) Update(ctx context.Context, id int64, req *dto.ItemRequest, userID int64) (*models.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != nil && *item.UserID != userID {
		return nil, ErrItemForbidden
	}

	query := "update items set name = ?, description = ?, price = ?, tax = ? where id = ?"
	if _, err := s.db.ExecContext(ctx, query, req.Name, req.Description, *req.Price, req.Tax, id); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *ItemService) Delete(ctx context.Context, id int64, userID int64) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.UserID != nil && *item.UserID != userID {
		return ErrItemForbidden
	}

	res, err := s.db.ExecContext(ctx, "delete from items where id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
