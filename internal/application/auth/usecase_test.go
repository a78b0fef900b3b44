package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelmp/gestao-loja-api/internal/application/apptest"
	"github.com/rafaelmp/gestao-loja-api/internal/application/auth"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	pkgjwt "github.com/rafaelmp/gestao-loja-api/pkg/jwt"
)

var cfgTeste = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "gestao-loja-test",
}

func TestRegisterUser_HasheiaSenhaENormalizaEmail(t *testing.T) {
	repo := apptest.NewUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, cfgTeste)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "  Dona@Loja.com.br ",
		Password: "senha-segura",
		Nome:     "Maria",
	})
	require.NoError(t, err)

	assert.Equal(t, "dona@loja.com.br", out.Email)
	guardado := repo.Usuarios[out.ID]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "senha-segura", guardado.PasswordHash,
		"a senha nunca deve ser persistida em claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := apptest.NewUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, cfgTeste)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "dona@loja.com.br", Password: "senha-segura"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "dona@loja.com.br", Password: "outra-senha-8"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_SenhaCurtaRejeitada(t *testing.T) {
	uc := auth.NewAuthUseCase(apptest.NewUsuarioRepo(), cfgTeste)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "dona@loja.com.br", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_SenhaCorretaDevolveTokenValido(t *testing.T) {
	repo := apptest.NewUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, cfgTeste)

	registrado, err := uc.RegisterUser(dto.RegisterRequest{Email: "dona@loja.com.br", Password: "senha-segura"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "dona@loja.com.br", Password: "senha-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, email, err := pkgjwt.Parse(cfgTeste.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registrado.ID, userID)
	assert.Equal(t, "dona@loja.com.br", email)
}

func TestLogin_SenhaErrada(t *testing.T) {
	repo := apptest.NewUsuarioRepo()
	uc := auth.NewAuthUseCase(repo, cfgTeste)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "dona@loja.com.br", Password: "senha-segura"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "dona@loja.com.br", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(apptest.NewUsuarioRepo(), cfgTeste)

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@loja.com.br", Password: "qualquer-senha"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
