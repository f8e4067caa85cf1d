package service

import (
	"errors"
	"testing"

	"go-productos-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	user *model.User
	err  error
}

func (s *stubUserRepo) FindByEmail(string) (*model.User, error) { return s.user, s.err }
func (s *stubUserRepo) FindByID(uuid.UUID) (*model.User, error) { return s.user, s.err }
func (s *stubUserRepo) Create(*model.User) error                { return s.err }

func TestLogin(t *testing.T) {
	user := &model.User{Email: "a@example.com", FullName: "Ada"}
	require.NoError(t, user.SetPassword("secret"))
	user.ID = uuid.New()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		svc := NewAuthService(&stubUserRepo{user: user})

		resp, err := svc.Login("a@example.com", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		svc := NewAuthService(&stubUserRepo{user: user})

		_, err := svc.Login("a@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects an unknown email without leaking the reason", func(t *testing.T) {
		svc := NewAuthService(&stubUserRepo{err: errors.New("record not found")})

		_, err := svc.Login("nobody@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
