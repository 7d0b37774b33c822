// Package auth sesiones del painel: signIn, getSession, onChange y signOut.
package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/pkg/jwt"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// EventType tipo de cambio de sesión.
type EventType string

// Eventos emitidos a los suscriptores de OnChange.
const (
	SignedIn  EventType = "SIGNED_IN"
	SignedOut EventType = "SIGNED_OUT"
)

// Event cambio de sesión.
type Event struct {
	Type   EventType
	UserID string
	Email  string
}

// Session sesión válida obtenida de un token.
type Session struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger

	mu        sync.RWMutex
	revoked   map[string]time.Time // jti -> expiración
	listeners map[uint64]func(Event)
	nextID    uint64
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtCfg:    jwtCfg,
		log:       log.Named("auth"),
		revoked:   map[string]time.Time{},
		listeners: map[uint64]func(Event){},
	}
}

// SignIn verifica email/password y genera la sesión.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.emit(Event{Type: SignedIn, UserID: user.ID, Email: user.Email})
	return &dto.SessionResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      toUserResponse(user),
	}, nil
}

// GetSession devuelve la sesión del token o nil si es inválido, expiró o fue cerrado.
func (uc *AuthUseCase) GetSession(token string) *Session {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil
	}
	uc.mu.RLock()
	_, revoked := uc.revoked[claims.ID]
	uc.mu.RUnlock()
	if revoked {
		return nil
	}
	s := &Session{
		UserID:  claims.UserID,
		Email:   claims.Email,
		Role:    claims.Role,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s
}

// Me datos del usuario de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, s *Session) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := toUserResponse(user)
	return &out, nil
}

// SignOut invalida el token hasta su expiración natural.
func (uc *AuthUseCase) SignOut(token string) error {
	s := uc.GetSession(token)
	if s == nil {
		return domain.ErrUnauthorized
	}
	now := time.Now()
	uc.mu.Lock()
	for id, exp := range uc.revoked {
		if exp.Before(now) {
			delete(uc.revoked, id)
		}
	}
	uc.revoked[s.TokenID] = s.ExpiresAt
	uc.mu.Unlock()
	uc.emit(Event{Type: SignedOut, UserID: s.UserID, Email: s.Email})
	return nil
}

// OnChange registra fn para cada cambio de sesión. Devuelve la función para desuscribirse.
func (uc *AuthUseCase) OnChange(fn func(Event)) (unsubscribe func()) {
	uc.mu.Lock()
	uc.nextID++
	id := uc.nextID
	uc.listeners[id] = fn
	uc.mu.Unlock()
	return func() {
		uc.mu.Lock()
		delete(uc.listeners, id)
		uc.mu.Unlock()
	}
}

func (uc *AuthUseCase) emit(ev Event) {
	uc.mu.RLock()
	fns := make([]func(Event), 0, len(uc.listeners))
	for _, fn := range uc.listeners {
		fns = append(fns, fn)
	}
	uc.mu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
	uc.log.Info().Str("event", string(ev.Type)).Str("user_id", ev.UserID).Msg("sessão alterada")
}

// CreateUser crea un usuario del painel con password hasheado. Lo usa el seed.
func (uc *AuthUseCase) CreateUser(ctx context.Context, email, password, fullName, role string) (*dto.UserResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = entity.RoleAdmin
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	name := u.FullName
	if name == "" {
		name = u.Email
	}
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      name,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}
}
