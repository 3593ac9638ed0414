package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-dashboard-api/internal/config"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "test_secret_key"}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	activeUser := &domain.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "Correta@123"),
		Active:       true,
		RoleID:       1,
	}

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func()
		expectedErr error
	}{
		{
			name:     "Login com credenciais válidas gera token",
			email:    "ana@example.com",
			password: "Correta@123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("ana@example.com").Return(activeUser, nil)
			},
		},
		{
			name:     "Email é normalizado antes da consulta",
			email:    "  ANA@Example.com ",
			password: "Correta@123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("ana@example.com").Return(activeUser, nil)
			},
		},
		{
			name:        "Credenciais ausentes são rejeitadas",
			email:       "",
			password:    "",
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@example.com",
			password: "Qualquer@123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("ninguem@example.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada não loga",
			email:    "ana@example.com",
			password: "Correta@123",
			setup: func() {
				disabled := *activeUser
				disabled.Active = false
				mockUserRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&disabled, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@example.com",
			password: "Errada@123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail("ana@example.com").Return(activeUser, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			token, err := service.LoginUser(tt.email, tt.password)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	user := &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "Correta@123"),
		Active:       true,
		RoleID:       2,
	}

	mockUserRepo.EXPECT().GetUserByEmail("ana@example.com").Return(user, nil)

	token, err := service.LoginUser("ana@example.com", "Correta@123")
	require.NoError(t, err)

	t.Run("Token emitido no login é aceito e carrega a sessão", func(t *testing.T) {
		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "Ana", claims.UserName)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		_, err := service.ValidateToken(token + "x")
		assert.Error(t, err)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	t.Run("Usuário novo nasce desativado com papel padrão", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail("novo@example.com").Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.False(t, user.Active)
				assert.Equal(t, 3, user.RoleID)
				assert.NotEqual(t, "Senha@123", user.PasswordHash)
				return user, nil
			})

		_, err := service.CreateUser(&domain.User{
			Name:         "Novo",
			Lastname:     "Usuário",
			Email:        "Novo@Example.com",
			PasswordHash: "Senha@123",
		})
		require.NoError(t, err)
	})

	t.Run("Email já cadastrado é rejeitado", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("ana@example.com").
			Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Silva",
			Email:        "ana@example.com",
			PasswordHash: "Senha@123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes são rejeitados", func(t *testing.T) {
		_, err := service.CreateUser(&domain.User{Email: "x@example.com"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"Senha forte é aceita", "Forte@123", true},
		{"Senha curta é rejeitada", "Ab@1", false},
		{"Sem maiúscula é rejeitada", "fraca@123", false},
		{"Sem número é rejeitada", "Fraca@abc", false},
		{"Sem caractere especial é rejeitada", "Fraca1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
