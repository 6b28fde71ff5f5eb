package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitywatch/backend/internal/api/validate"
	"github.com/communitywatch/backend/internal/auth"
	"github.com/communitywatch/backend/internal/models"
	"github.com/communitywatch/backend/internal/repository"
	"github.com/communitywatch/backend/internal/repository/memory"
)

func newAuthFixture() (*AuthService, *memory.Users, *auth.TokenManager) {
	users := memory.NewUsers()
	tm := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(users, tm), users, tm
}

func validSignup() SignupInput {
	return SignupInput{
		FullName:        "A B",
		Username:        "ab1",
		Phone:           "+12345678901",
		Email:           "a@b.com",
		Location:        "X",
		Password:        "pw",
		ConfirmPassword: "pw",
	}
}

func TestSignupThenLogin(t *testing.T) {
	svc, _, tm := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, validSignup()))

	tok, err := svc.Login(ctx, "ab1", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
}

func TestSignup_PasswordMismatch(t *testing.T) {
	svc, users, _ := newAuthFixture()

	in := validSignup()
	in.ConfirmPassword = "other"
	err := svc.Signup(context.Background(), in)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Zero(t, users.Len(), "nothing may be persisted on mismatch")
}

func TestSignup_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignupInput)
	}{
		{"missing full name", func(in *SignupInput) { in.FullName = "" }},
		{"missing username", func(in *SignupInput) { in.Username = "" }},
		{"missing location", func(in *SignupInput) { in.Location = "" }},
		{"missing password", func(in *SignupInput) { in.Password = ""; in.ConfirmPassword = "" }},
		{"bad phone", func(in *SignupInput) { in.Phone = "12345" }},
		{"bad email", func(in *SignupInput) { in.Email = "not-an-email" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newAuthFixture()
			in := validSignup()
			tt.mutate(&in)

			err := svc.Signup(context.Background(), in)
			var errs validate.Errs
			require.ErrorAs(t, err, &errs)
			assert.Zero(t, users.Len())
		})
	}
}

func TestSignup_Conflicts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignupInput)
	}{
		{"identical signup", func(in *SignupInput) {}},
		{"same username", func(in *SignupInput) { in.Email = "c@d.com"; in.Phone = "+19876543210" }},
		{"same email", func(in *SignupInput) { in.Username = "cd2"; in.Phone = "+19876543210" }},
		{"same phone", func(in *SignupInput) { in.Username = "cd2"; in.Email = "c@d.com" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newAuthFixture()
			ctx := context.Background()
			require.NoError(t, svc.Signup(ctx, validSignup()))

			in := validSignup()
			tt.mutate(&in)
			assert.ErrorIs(t, svc.Signup(ctx, in), ErrUserExists)
			assert.Equal(t, 1, users.Len())
		})
	}
}

// raceUsers simulates a concurrent signup winning between the identity
// pre-check and the insert: the lookup misses but the unique index
// rejects the write.
type raceUsers struct{}

func (raceUsers) Create(context.Context, models.User) (models.User, error) {
	return models.User{}, repository.ErrDuplicate
}

func (raceUsers) FindByUsername(context.Context, string) (models.User, error) {
	return models.User{}, repository.ErrNotFound
}

func (raceUsers) FindByIdentity(context.Context, string, string, string) (models.User, error) {
	return models.User{}, repository.ErrNotFound
}

func TestSignup_DuplicateKeyRace(t *testing.T) {
	svc := NewAuthService(raceUsers{}, auth.NewTokenManager("test-secret", time.Hour))
	err := svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture()
	_, err := svc.Login(context.Background(), "nobody", "pw")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()
	require.NoError(t, svc.Signup(ctx, validSignup()))

	_, err := svc.Login(ctx, "ab1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
