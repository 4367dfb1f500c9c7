package auth

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/validation"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	st := store.New(db)
	tokens := NewTokenService("service-test-secret", time.Hour)
	svc := NewService(st, NewHasher(bcrypt.MinCost), tokens, zap.NewNop())
	return svc, st
}

func validSignup() SignupInput {
	return SignupInput{
		Name:     "Alice",
		Mobile:   "5550001111",
		Email:    "alice@example.com",
		Username: "Alice1!",
		Password: "Passw0rd!",
	}
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newTestService(t)

	signupToken, err := svc.Signup(validSignup())
	require.NoError(t, err)

	loginToken, err := svc.Login("Alice1!", "Passw0rd!")
	require.NoError(t, err)

	// Both tokens identify the same account.
	idFromSignup, err := svc.tokens.Verify(signupToken)
	require.NoError(t, err)
	idFromLogin, err := svc.tokens.Verify(loginToken)
	require.NoError(t, err)
	assert.Equal(t, idFromSignup, idFromLogin)
}

func TestSignupValidationFailsFast(t *testing.T) {
	svc, st := newTestService(t)

	in := validSignup()
	in.Password = "short"
	_, err := svc.Signup(in)
	assert.ErrorIs(t, err, validation.ErrPasswordTooShort)

	in = validSignup()
	in.Username = "alice"
	_, err = svc.Signup(in)
	assert.ErrorIs(t, err, validation.ErrUsernameWeak)

	// Nothing was persisted on either failure.
	_, err = st.UserByUsername("alice")
	assert.ErrorIs(t, err, store.ErrNotFound)
	exists, err := st.UserExists("alice@example.com", "Alice1!")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	dup := validSignup()
	dup.Username = "Bob99$"
	_, err = svc.Signup(dup)
	assert.ErrorIs(t, err, store.ErrDuplicateAccount)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	dup := validSignup()
	dup.Email = "other@example.com"
	_, err = svc.Signup(dup)
	assert.ErrorIs(t, err, store.ErrDuplicateAccount)
}

func TestSignupRaceCaughtByUniqueIndex(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	// Simulate a racing writer that beat the pre-check: inserting the same
	// email directly must map the storage violation, not a generic error.
	err = st.CreateUser(&models.User{
		Name:     "Racer",
		Email:    "alice@example.com",
		Username: "Racer9#",
		Password: "irrelevant-hash",
	})
	assert.ErrorIs(t, err, store.ErrDuplicateAccount)
}

func TestLoginUniformFailureMessage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, errWrongPassword := svc.Login("Alice1!", "WrongPass1!")
	_, errNoSuchUser := svc.Login("Nobody1!", "Passw0rd!")

	// An attacker cannot tell a bad password from an unknown username.
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoSuchUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errNoSuchUser.Error())
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	user, err := st.UserByUsername("Alice1!")
	require.NoError(t, err)
	assert.NotEmpty(t, user.Password)
	assert.NotEqual(t, "Passw0rd!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Passw0rd!")))
}
