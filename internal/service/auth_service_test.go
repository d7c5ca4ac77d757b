package service

import (
	"context"
	"testing"

	"jobtrail/internal/model"
	"jobtrail/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerReq(name, email string) model.RegisterRequest {
	return model.RegisterRequest{Name: name, Email: email, Password: "pw1"}
}

func TestRegister_Success(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	user, err := svc.Register(context.Background(), registerReq("alice", "a@x.com"))

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Len(t, user.AccessToken, utils.AccessTokenBytes*2)
	assert.NotEqual(t, "pw1", user.PasswordHash) // plaintext never stored
	assert.True(t, utils.CheckPasswordHash("pw1", user.PasswordHash))
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegister_DuplicateName(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), registerReq("alice", "a@x.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("alice", "other@x.com"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), registerReq("alice", "a@x.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("bob", "a@x.com"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin_ReturnsTokenIssuedAtSignup(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	created, err := svc.Register(context.Background(), registerReq("alice", "a@x.com"))
	require.NoError(t, err)

	// Logging in repeatedly always yields the signup token; it is never
	// rotated or re-minted.
	for i := 0; i < 3; i++ {
		user, err := svc.Login(context.Background(), "alice", "pw1")
		require.NoError(t, err)
		assert.Equal(t, created.AccessToken, user.AccessToken)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), registerReq("alice", "a@x.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownName_SameErrorAsWrongPassword(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), registerReq("alice", "a@x.com"))
	require.NoError(t, err)

	unknownErr := func() error {
		_, e := svc.Login(context.Background(), "nobody", "pw1")
		return e
	}()
	mismatchErr := func() error {
		_, e := svc.Login(context.Background(), "alice", "wrong")
		return e
	}()

	// A failed login must not reveal whether the name exists.
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, mismatchErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), mismatchErr.Error())
}

func TestAuthenticate(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	created, err := svc.Register(context.Background(), registerReq("alice", "a@x.com"))
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), created.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Authenticate(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
