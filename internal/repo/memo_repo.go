package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"

	"memopad/internal/model"
	appErr "memopad/internal/pkg/errors"
)

var memoFields = []string{"id", "user_id", "title", "content", "ctime"}

type MemoRepo struct {
	db *sqlx.DB
}

func NewMemoRepo(db *sqlx.DB) *MemoRepo {
	return &MemoRepo{db: db}
}

func (r *MemoRepo) Create(ctx context.Context, memo *model.Memo) error {
	data := map[string]interface{}{
		"user_id": memo.UserID,
		"title":   memo.Title,
		"content": memo.Content,
		"ctime":   memo.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("memos", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	memo.ID = id
	return nil
}

// GetByID looks the memo up by id alone; ownership is the service's
// concern so a foreign memo can be told apart from a missing one.
func (r *MemoRepo) GetByID(ctx context.Context, memoID int64) (*model.Memo, error) {
	where := map[string]interface{}{"id": memoID}
	sqlStr, args, err := builder.BuildSelect("memos", where, memoFields)
	if err != nil {
		return nil, err
	}
	var memo model.Memo
	if err := r.db.GetContext(ctx, &memo, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	return &memo, nil
}

func (r *MemoRepo) ListByUser(ctx context.Context, userID int64) ([]model.Memo, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "ctime desc, id desc",
	}
	sqlStr, args, err := builder.BuildSelect("memos", where, memoFields)
	if err != nil {
		return nil, err
	}
	memos := make([]model.Memo, 0)
	if err := r.db.SelectContext(ctx, &memos, sqlStr, args...); err != nil {
		return nil, err
	}
	return memos, nil
}

// Update overwrites title and content; ctime stays as written at insert.
func (r *MemoRepo) Update(ctx context.Context, memo *model.Memo) error {
	where := map[string]interface{}{
		"id":      memo.ID,
		"user_id": memo.UserID,
	}
	update := map[string]interface{}{
		"title":   memo.Title,
		"content": memo.Content,
	}
	sqlStr, args, err := builder.BuildUpdate("memos", where, update)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *MemoRepo) Delete(ctx context.Context, userID, memoID int64) error {
	where := map[string]interface{}{
		"id":      memoID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildDelete("memos", where)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
