package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"peduli-kasih/internal/config"
	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountInactive    = errors.New("worker account is inactive")
)

type Claims struct {
	WorkerID uuid.UUID `json:"worker_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

type Service interface {
	Login(ctx context.Context, input domain.LoginInput) (*domain.Worker, *domain.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ValidateAccessToken(token string) (*Claims, error)
	GetWorkerByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error)
}

type service struct {
	workerRepo  repository.WorkerRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewService(workerRepo repository.WorkerRepository, sessionRepo repository.SessionRepository, cfg *config.Config) Service {
	return &service{
		workerRepo:  workerRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.Worker, *domain.TokenPair, error) {
	worker, err := s.workerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !worker.IsActive {
		return nil, nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, worker)
	if err != nil {
		return nil, nil, err
	}
	return worker, tokens, nil
}

func (s *service) issueTokens(ctx context.Context, worker *domain.Worker) (*domain.TokenPair, error) {
	now := time.Now()

	claims := &Claims{
		WorkerID: worker.ID,
		Email:    worker.Email,
		Role:     worker.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   worker.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTAccessExpiry)),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, err
	}
	refreshToken := hex.EncodeToString(tokenBytes)

	session := &repository.Session{
		ID:        uuid.New(),
		WorkerID:  worker.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: now.Add(s.cfg.JWTRefreshExpiry),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.JWTAccessExpiry.Seconds()),
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	session, err := s.sessionRepo.GetByTokenHash(ctx, hashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidToken
	}

	worker, err := s.workerRepo.GetByID(ctx, session.WorkerID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !worker.IsActive {
		return nil, ErrAccountInactive
	}

	// Rotate: the old refresh token is single use.
	if err := s.sessionRepo.Revoke(ctx, session.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, worker)
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.GetByTokenHash(ctx, hashToken(refreshToken))
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}
	return s.sessionRepo.Revoke(ctx, session.ID)
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *service) GetWorkerByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
	return s.workerRepo.GetByID(ctx, id)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
