package service

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"memopad/internal/model"
	appErr "memopad/internal/pkg/errors"
	"memopad/internal/pkg/timeutil"
	"memopad/internal/repo"
)

type MemoService struct {
	memos *repo.MemoRepo
}

func NewMemoService(memos *repo.MemoRepo) *MemoService {
	return &MemoService{memos: memos}
}

type MemoInput struct {
	Title   string
	Content string
}

func (s *MemoService) List(ctx context.Context, userID int64) ([]model.Memo, error) {
	return s.memos.ListByUser(ctx, userID)
}

// Get returns the memo only when userID owns it. A missing memo is
// ErrNotFound, a foreign one ErrForbidden.
func (s *MemoService) Get(ctx context.Context, userID, memoID int64) (*model.Memo, error) {
	memo, err := s.memos.GetByID(ctx, memoID)
	if err != nil {
		return nil, err
	}
	if memo.UserID != userID {
		return nil, appErr.ErrForbidden
	}
	return memo, nil
}

func (s *MemoService) Create(ctx context.Context, userID int64, input MemoInput) (*model.Memo, error) {
	if input.Title == "" {
		return nil, appErr.ErrInvalid
	}
	memo := &model.Memo{
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
		Ctime:   timeutil.NowUnix(),
	}
	if err := s.memos.Create(ctx, memo); err != nil {
		return nil, err
	}
	return memo, nil
}

func (s *MemoService) Update(ctx context.Context, userID, memoID int64, input MemoInput) error {
	memo, err := s.Get(ctx, userID, memoID)
	if err != nil {
		return err
	}
	memo.Title = input.Title
	memo.Content = input.Content
	return s.memos.Update(ctx, memo)
}

func (s *MemoService) Delete(ctx context.Context, userID, memoID int64) error {
	if _, err := s.Get(ctx, userID, memoID); err != nil {
		return err
	}
	if err := s.memos.Delete(ctx, userID, memoID); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("memo deleted", zap.Int64("user_id", userID), zap.Int64("memo_id", memoID))
	return nil
}
