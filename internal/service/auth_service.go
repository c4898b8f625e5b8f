package service

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"memopad/internal/model"
	appErr "memopad/internal/pkg/errors"
	"memopad/internal/pkg/password"
	"memopad/internal/pkg/session"
	"memopad/internal/pkg/timeutil"
	"memopad/internal/repo"
)

const (
	userCacheSize = 1024
	userCacheTTL  = 5 * time.Minute
)

type AuthService struct {
	users      *repo.UserRepo
	secret     []byte
	sessionTTL time.Duration
	userCache  *expirable.LRU[int64, *model.User]
}

func NewAuthService(users *repo.UserRepo, secret []byte, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		secret:     secret,
		sessionTTL: sessionTTL,
		userCache:  expirable.NewLRU[int64, *model.User](userCacheSize, nil, userCacheTTL),
	}
}

func (s *AuthService) Register(ctx context.Context, username, plainPassword string) (*model.User, error) {
	if username == "" || plainPassword == "" {
		return nil, appErr.ErrInvalid
	}
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, appErr.ErrConflict
	} else if !appErr.IsNotFound(err) {
		return nil, err
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Ctime:        timeutil.NowUnix(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logutil.GetLogger(ctx).Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login verifies the credentials and issues a signed session token.
// Unknown username and wrong password collapse into the same error so
// the response discloses neither.
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (*model.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return nil, "", appErr.ErrUnauthorized
	}
	token, err := session.Issue(user.ID, s.secret, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveSession maps a session cookie value back to its user.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	claims, err := session.Parse(token, s.secret)
	if err != nil {
		return nil, appErr.ErrUnauthorized
	}
	user, err := s.CurrentUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			return nil, appErr.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	if user, ok := s.userCache.Get(userID); ok {
		return user, nil
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.userCache.Add(userID, user)
	return user, nil
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
