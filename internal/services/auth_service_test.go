package services_test

import (
	"testing"

	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/repositories"
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func newAuthService() (*services.AuthService, *repositories.MockUserRepository) {
	repo := repositories.NewMockUserRepository()
	return services.NewAuthService(repo, testJWTSecret), repo
}

func TestAuthService_RegisterUser(t *testing.T) {
	service, repo := newAuthService()

	user := &models.User{Username: "admin", Email: "admin@example.com", Password: "password123"}
	require.NoError(t, service.RegisterUser(user))
	assert.NotEmpty(t, user.ID)

	// The stored password is a bcrypt hash, never the plaintext.
	stored, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestAuthService_RegisterUser_Duplicates(t *testing.T) {
	service, _ := newAuthService()

	require.NoError(t, service.RegisterUser(&models.User{
		Username: "admin", Email: "admin@example.com", Password: "password123",
	}))

	err := service.RegisterUser(&models.User{
		Username: "admin", Email: "other@example.com", Password: "password123",
	})
	require.Error(t, err)
	assert.Equal(t, "Conflict", apperrors.AsStandardError(err).Code)

	err = service.RegisterUser(&models.User{
		Username: "other", Email: "admin@example.com", Password: "password123",
	})
	require.Error(t, err)
	assert.Equal(t, "Conflict", apperrors.AsStandardError(err).Code)
}

func TestAuthService_LoginUser(t *testing.T) {
	service, _ := newAuthService()

	require.NoError(t, service.RegisterUser(&models.User{
		Username: "admin", Email: "admin@example.com", Password: "password123",
	}))

	token, err := service.LoginUser("admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Contains(t, claims, "user_id")
	assert.Contains(t, claims, "exp")
}

func TestAuthService_LoginUser_InvalidCredentials(t *testing.T) {
	service, _ := newAuthService()

	require.NoError(t, service.RegisterUser(&models.User{
		Username: "admin", Email: "admin@example.com", Password: "password123",
	}))

	// Wrong password and unknown user produce the same error.
	_, err := service.LoginUser("admin", "wrongpassword")
	require.Error(t, err)
	assert.Equal(t, "Unauthorized", apperrors.AsStandardError(err).Code)

	_, err = service.LoginUser("nobody", "password123")
	require.Error(t, err)
	assert.Equal(t, "Unauthorized", apperrors.AsStandardError(err).Code)
}

func TestAuthService_ValidateToken_Rejections(t *testing.T) {
	service, _ := newAuthService()

	_, err := service.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, "Unauthorized", apperrors.AsStandardError(err).Code)

	// A token signed with a different secret must not validate.
	otherService := services.NewAuthService(repositories.NewMockUserRepository(), "different_secret")
	require.NoError(t, otherService.RegisterUser(&models.User{
		Username: "intruder", Email: "intruder@example.com", Password: "password123",
	}))
	foreignToken, err := otherService.LoginUser("intruder", "password123")
	require.NoError(t, err)

	_, err = service.ValidateToken(foreignToken)
	require.Error(t, err)
	assert.Equal(t, "Unauthorized", apperrors.AsStandardError(err).Code)
}
