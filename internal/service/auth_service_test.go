package service

import (
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"
	"vidtube/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	info, err := svc.Register(&dto.RegisterRequest{
		UserName: "alice",
		FullName: "Alice Wang",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", info.UserName)
	assert.Equal(t, "Alice Wang", info.FullName)
	assert.NotZero(t, info.ID)

	// 用户名唯一
	_, err = svc.Register(&dto.RegisterRequest{
		UserName: "alice",
		FullName: "Another Alice",
		Password: "password456",
	})
	assert.ErrorIs(t, err, ErrUserNameExists)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Register(&dto.RegisterRequest{
		UserName: "alice",
		FullName: "Alice Wang",
		Password: "password123",
	})
	require.NoError(t, err)

	data, err := svc.Login(&dto.LoginRequest{UserName: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", data.TokenType)
	assert.Equal(t, 3600, data.ExpiresIn)
	assert.Equal(t, "alice", data.User.UserName)

	// 签发的 token 能解析回本人
	claims, err := utils.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, data.User.ID, claims.UserID)
	assert.Equal(t, "alice", claims.UserName)
}

func TestLoginInvalidCredential(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	_, err := svc.Register(&dto.RegisterRequest{
		UserName: "alice",
		FullName: "Alice Wang",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{UserName: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	// 用户不存在和密码错误返回同一个错误，不泄露用户是否存在
	_, err = svc.Login(&dto.LoginRequest{UserName: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestGetCurrentUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	user := createTestUser(t, db, "alice")

	info, err := svc.GetCurrentUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.UserName)

	_, err = svc.GetCurrentUser(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
