package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
	"github.com/jhoicas/logitrack-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: signup, login y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	activity *usecase.ActivityUseCase
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, activity *usecase.ActivityUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, activity: activity, jwtCfg: jwtCfg}
}

// Signup crea un usuario con rol fijo "user": hashea el password con bcrypt y
// persiste. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         domain.RoleUser, // el registro público nunca otorga otro rol
		Verified:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.activity.Record(user.Email, entity.ActivitySignup, fmt.Sprintf("Nuevo usuario registrado como %s", user.Role))
	return toUserResponse(user), nil
}

// Login verifica email/password y que el rol pedido coincida con el del usuario;
// un mismatch de rol se responde igual que un password incorrecto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Role != in.Role {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.activity.Record(user.Email, entity.ActivityLogin, fmt.Sprintf("Usuario ingresó como %s", user.Role))
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout registra la salida en la bitácora. El descarte del token es del cliente.
func (uc *AuthUseCase) Logout(email string) {
	uc.activity.Record(email, entity.ActivityLogout, "Usuario cerró sesión")
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}
