package auth

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kdanso/campus-ministry-backend/config"
	"github.com/kdanso/campus-ministry-backend/internal/auditlog"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Service interface {
	Signup(input SignupInput) (*User, error)
	Login(username, password string) (string, error)
	ResolveCurrentUser(token string) (*User, error)
	GetUserByUsername(username string) (*User, error)
	ListUsers(offset, limit int) ([]User, error)
	ResetPassword(username, newPassword string, ip string, actor *User) error
	DeleteUser(username string, ip string, actor *User) error
}

type service struct {
	repo         Repository
	auditSvc     auditlog.Service
	accessSecret string
	accessTTL    time.Duration
}

func NewService(r Repository, cfg *config.Config, auditSvc auditlog.Service) Service {
	return &service{
		repo:         r,
		auditSvc:     auditSvc,
		accessSecret: cfg.JWTAccessSecret,
		accessTTL:    time.Duration(cfg.JWTAccessTTLHours) * time.Hour,
	}
}

// =============================
// Signup
// =============================

type SignupInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

func (s *service) Signup(in SignupInput) (*User, error) {
	if existing, err := s.repo.FindByUsername(in.Username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:       in.Username,
		Email:          in.Email,
		FullName:       in.FullName,
		HashedPassword: hash,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// =============================
// Login
// =============================

// Login verifies credentials and returns a signed access token. A missing
// user and a wrong password produce the same error.
func (s *service) Login(username, password string) (string, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	return s.generateAccessToken(user)
}

func (s *service) generateAccessToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Username,
		"exp": time.Now().Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.accessSecret))
}

// =============================
// Token resolution
// =============================

// ResolveCurrentUser decodes and verifies a bearer token and loads the
// subject user. Any decoding failure, a missing subject claim, or an
// unknown user all collapse into ErrInvalidCredentials.
func (s *service) ResolveCurrentUser(tokenStr string) (*User, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// =============================
// User administration
// =============================

func (s *service) GetUserByUsername(username string) (*User, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) ListUsers(offset, limit int) ([]User, error) {
	return s.repo.List(offset, limit)
}

func (s *service) ResetPassword(username, newPassword string, ip string, actor *User) error {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return ErrUserNotFound
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(user.Username, hash); err != nil {
		return err
	}

	s.audit(actor, "USER_PASSWORD_RESET", map[string]interface{}{"username": username}, ip, "success")
	return nil
}

func (s *service) DeleteUser(username string, ip string, actor *User) error {
	if _, err := s.repo.FindByUsername(username); err != nil {
		return ErrUserNotFound
	}

	if err := s.repo.Delete(username); err != nil {
		return err
	}

	s.audit(actor, "USER_DELETED", map[string]interface{}{"username": username}, ip, "success")
	return nil
}

func (s *service) audit(actor *User, action string, details map[string]interface{}, ip, status string) {
	if s.auditSvc == nil {
		return
	}
	var actorName *string
	if actor != nil {
		actorName = &actor.Username
	}
	_ = s.auditSvc.LogAction(context.Background(), actorName, action, details, ip, status)
}

// =============================
// Password helpers
// =============================

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// =============================
// Startup seed
// =============================

// SeedAdminUser creates the initial admin account from ADMIN_USERNAME,
// ADMIN_EMAIL and ADMIN_PASSWORD. It is a no-op when an admin already
// exists or when the variables are not set.
func SeedAdminUser(db *gorm.DB) error {
	repo := NewRepository(db)

	if _, err := repo.FindAdmin(); err == nil {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ℹ️ No admin user configured; skipping admin seed")
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	admin := &User{
		Username:       username,
		Email:          email,
		FullName:       "Admin",
		HashedPassword: hash,
		IsAdmin:        true,
	}

	if err := repo.Create(admin); err != nil {
		return err
	}

	log.Printf("✅ Seeded admin user %q", username)
	return nil
}
