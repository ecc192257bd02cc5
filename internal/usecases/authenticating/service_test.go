package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/profitlens/profit-dashboard-api/infrastructure/repository/mocks"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "segredo-de-teste"}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	t.Run("deve emitir token com o time do usuário", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := &domain.User{
			ID:           42,
			TeamID:       "team-1",
			Name:         "Maria",
			Email:        "maria@example.com",
			PasswordHash: hashPassword(t, "Senha@123"),
			Active:       true,
			RoleID:       1,
		}

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)

		token, err := service.LoginUser("Maria@Example.com", "Senha@123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "team-1", claims.TeamID)
	})

	t.Run("deve rejeitar senha incorreta", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := &domain.User{
			ID:           42,
			Email:        "maria@example.com",
			PasswordHash: hashPassword(t, "Senha@123"),
			Active:       true,
		}

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)

		_, err := service.LoginUser("maria@example.com", "outra-senha")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deve rejeitar usuário desativado", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := &domain.User{
			ID:           42,
			Email:        "maria@example.com",
			PasswordHash: hashPassword(t, "Senha@123"),
			Active:       false,
		}

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)

		_, err := service.LoginUser("maria@example.com", "Senha@123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("deve rejeitar usuário inexistente", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)

		_, err := service.LoginUser("ninguem@example.com", "Senha@123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("deve rejeitar token assinado com outro segredo", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := &domain.User{
			ID:           7,
			TeamID:       "team-1",
			Email:        "jose@example.com",
			PasswordHash: hashPassword(t, "Senha@123"),
			Active:       true,
		}

		userRepo.EXPECT().GetUserByEmail("jose@example.com").Return(user, nil)

		token, err := service.LoginUser("jose@example.com", "Senha@123")
		assert.NoError(t, err)

		other := NewService(nil, &config.Config{SecretKey: "outro-segredo"})
		_, err = other.ValidateToken(token)

		assert.Error(t, err)
	})
}

func TestRegisterUser(t *testing.T) {
	t.Run("deve criar usuário desativado com a senha criptografada", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := &domain.User{
			TeamID:       "team-1",
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        " Maria@Example.com ",
			PasswordHash: "Senha@123",
		}

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.Equal(t, "maria@example.com", u.Email)
			assert.False(t, u.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Senha@123")))
			return u, nil
		})

		created, err := service.RegisterUser(user)

		assert.NoError(t, err)
		assert.NotNil(t, created)
	})

	t.Run("deve rejeitar email já cadastrado", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := &domain.User{
			TeamID:       "team-1",
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@example.com",
			PasswordHash: "Senha@123",
		}

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.RegisterUser(user)

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("deve rejeitar senha fraca", func(t *testing.T) {
		service, _ := newTestService(t)

		user := &domain.User{
			TeamID:       "team-1",
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@example.com",
			PasswordHash: "fraca",
		}

		_, err := service.RegisterUser(user)

		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "senha válida", password: "Senha@123", wantErr: false},
		{name: "muito curta", password: "S@1a", wantErr: true},
		{name: "sem maiúscula", password: "senha@123", wantErr: true},
		{name: "sem número", password: "Senha@abc", wantErr: true},
		{name: "sem caractere especial", password: "Senha1234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
