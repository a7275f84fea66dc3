package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kdanso/campus-ministry-backend/config"
)

const testSecret = "test-secret"

func setupService(t *testing.T) (Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	cfg := &config.Config{
		JWTAccessSecret:   testSecret,
		JWTAccessTTLHours: 1,
	}
	return NewService(NewRepository(db), cfg, nil), db
}

func signup(t *testing.T, svc Service, username, password string) *User {
	user, err := svc.Signup(SignupInput{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test User",
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := setupService(t)

	user := signup(t, svc, "kwame", "s3cret")
	assert.Equal(t, "kwame", user.Username)
	assert.NotEqual(t, "s3cret", user.HashedPassword)

	token, err := svc.Login("kwame", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("kwame", "wrong")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Login("nobody", "s3cret")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := setupService(t)

	signup(t, svc, "kwame", "s3cret")

	_, err := svc.Signup(SignupInput{Username: "kwame", Password: "other"})
	assert.True(t, errors.Is(err, ErrUsernameTaken))
}

func TestResolveCurrentUser(t *testing.T) {
	svc, _ := setupService(t)

	signup(t, svc, "kwame", "s3cret")
	token, err := svc.Login("kwame", "s3cret")
	require.NoError(t, err)

	user, err := svc.ResolveCurrentUser(token)
	require.NoError(t, err)
	assert.Equal(t, "kwame", user.Username)
}

func TestResolveCurrentUserTamperedToken(t *testing.T) {
	svc, _ := setupService(t)

	signup(t, svc, "kwame", "s3cret")
	token, err := svc.Login("kwame", "s3cret")
	require.NoError(t, err)

	_, err = svc.ResolveCurrentUser(token + "x")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestResolveCurrentUserExpiredToken(t *testing.T) {
	svc, _ := setupService(t)
	signup(t, svc, "kwame", "s3cret")

	claims := jwt.MapClaims{
		"sub": "kwame",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ResolveCurrentUser(expired)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestResolveCurrentUserWrongSecret(t *testing.T) {
	svc, _ := setupService(t)
	signup(t, svc, "kwame", "s3cret")

	claims := jwt.MapClaims{
		"sub": "kwame",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = svc.ResolveCurrentUser(forged)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestResolveCurrentUserUnknownSubject(t *testing.T) {
	svc, _ := setupService(t)

	claims := jwt.MapClaims{
		"sub": "ghost",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ResolveCurrentUser(token)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestResetPassword(t *testing.T) {
	svc, _ := setupService(t)

	signup(t, svc, "kwame", "s3cret")

	require.NoError(t, svc.ResetPassword("kwame", "newpass", "", nil))

	_, err := svc.Login("kwame", "s3cret")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Login("kwame", "newpass")
	assert.NoError(t, err)

	err = svc.ResetPassword("nobody", "x", "", nil)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestDeleteUser(t *testing.T) {
	svc, _ := setupService(t)

	signup(t, svc, "kwame", "s3cret")

	require.NoError(t, svc.DeleteUser("kwame", "", nil))

	_, err := svc.GetUserByUsername("kwame")
	assert.True(t, errors.Is(err, ErrUserNotFound))

	assert.True(t, errors.Is(svc.DeleteUser("kwame", "", nil), ErrUserNotFound))
}

func TestListUsersOrderAndPagination(t *testing.T) {
	svc, _ := setupService(t)

	signup(t, svc, "ama", "pw")
	signup(t, svc, "kofi", "pw")
	signup(t, svc, "yaw", "pw")

	users, err := svc.ListUsers(0, 1000)
	require.NoError(t, err)
	require.Len(t, users, 3)

	page, err := svc.ListUsers(1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, users[1].Username, page[0].Username)
}

func TestSeedAdminUser(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "changeme")

	require.NoError(t, SeedAdminUser(db))

	repo := NewRepository(db)
	admin, err := repo.FindAdmin()
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, admin.IsAdmin)
	assert.True(t, VerifyPassword("changeme", admin.HashedPassword))

	// second run must not create a duplicate
	require.NoError(t, SeedAdminUser(db))
	var count int64
	require.NoError(t, db.Model(&User{}).Where("is_admin = ?", true).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedAdminUserSkipsWhenUnconfigured(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	require.NoError(t, SeedAdminUser(db))

	var count int64
	require.NoError(t, db.Model(&User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
