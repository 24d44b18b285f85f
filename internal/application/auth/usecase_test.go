package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/logitrack-api/internal/application/auth"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

type fakeActivityRepo struct{ records []*entity.ActivityRecord }

func (r *fakeActivityRepo) Create(a *entity.ActivityRecord) error {
	r.records = append(r.records, a)
	return nil
}
func (r *fakeActivityRepo) ListRecent(limit int) ([]*entity.ActivityRecord, error) {
	return r.records, nil
}

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeActivityRepo) {
	t.Helper()
	users := &fakeUserRepo{byEmail: make(map[string]*entity.User)}
	activityRepo := &fakeActivityRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	activityUC := usecase.NewActivityUseCase(activityRepo, log)
	uc := auth.NewAuthUseCase(users, activityUC, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "logitrack-test",
	})
	return uc, users, activityRepo
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	users.byEmail[email] = &entity.User{
		ID: "u-" + email, Email: email, PasswordHash: string(hash),
		Name: "Test", Role: role, Verified: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_CreaUsuarioConRolUser(t *testing.T) {
	uc, users, activity := newAuthUC(t)

	out, err := uc.Signup(dto.SignupRequest{
		Email: "nuevo@example.com", Password: "password123", Name: "Nuevo",
	})
	require.NoError(t, err)

	// El registro público nunca otorga otro rol
	assert.Equal(t, domain.RoleUser, out.Role)
	assert.Equal(t, "nuevo@example.com", out.Email)

	// El password queda hasheado, jamás en claro
	stored := users.byEmail["nuevo@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))

	require.Len(t, activity.records, 1)
	assert.Equal(t, entity.ActivitySignup, activity.records[0].Action)
}

func TestSignup_EmailDuplicado_Conflict(t *testing.T) {
	uc, users, _ := newAuthUC(t)
	seedUser(t, users, "dup@example.com", "whatever1", domain.RoleUser)

	_, err := uc.Signup(dto.SignupRequest{
		Email: "dup@example.com", Password: "password123", Name: "Dup",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_DevuelveToken(t *testing.T) {
	uc, users, activity := newAuthUC(t)
	seedUser(t, users, "manager@example.com", "manager123", domain.RoleManager)

	out, err := uc.Login(dto.LoginRequest{
		Email: "manager@example.com", Password: "manager123", Role: domain.RoleManager,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, domain.RoleManager, out.User.Role)

	require.Len(t, activity.records, 1)
	assert.Equal(t, entity.ActivityLogin, activity.records[0].Action)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc, users, _ := newAuthUC(t)
	seedUser(t, users, "manager@example.com", "manager123", domain.RoleManager)

	_, err := uc.Login(dto.LoginRequest{
		Email: "manager@example.com", Password: "incorrecto", Role: domain.RoleManager,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_Unauthorized(t *testing.T) {
	uc, _, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{
		Email: "nadie@example.com", Password: "whatever1", Role: domain.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y password incorrecto deben ser indistinguibles")
}

func TestLogin_RolDistinto_Unauthorized(t *testing.T) {
	uc, users, _ := newAuthUC(t)
	seedUser(t, users, "user@example.com", "password123", domain.RoleUser)

	// Pedir un rol superior al propio se trata como credenciales inválidas
	_, err := uc.Login(dto.LoginRequest{
		Email: "user@example.com", Password: "password123", Role: domain.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_RegistraActividad(t *testing.T) {
	uc, _, activity := newAuthUC(t)

	uc.Logout("manager@example.com")

	require.Len(t, activity.records, 1)
	assert.Equal(t, entity.ActivityLogout, activity.records[0].Action)
	assert.Equal(t, "manager@example.com", activity.records[0].UserEmail)
}
