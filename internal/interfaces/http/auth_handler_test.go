package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegistroLoginYMe(t *testing.T) {
	env := newTestEnv(t, 0)

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name": "Ana", "email": "Ana@Quimicos.co", "password": "secreto1",
	})
	body := decode(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Usuario registrado exitosamente", body["message"])
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "vendedor", user["role"])
	assert.Equal(t, "ana@quimicos.co", user["email"])
	assert.NotContains(t, user, "password_hash")

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "ana@quimicos.co", "password": "secreto1",
	})
	body = decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)

	resp = env.do(t, http.MethodGet, "/api/auth/me", "Bearer "+token, nil)
	body = decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ana", body["user"].(map[string]interface{})["name"])
}

func TestAuth_RegistroErrores(t *testing.T) {
	env := newTestEnv(t, 0)
	ok := map[string]interface{}{"name": "Ana", "email": "ana@quimicos.co", "password": "secreto1"}
	resp := env.do(t, http.MethodPost, "/api/auth/register", "", ok)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	cases := []struct {
		name string
		body map[string]interface{}
		code string
	}{
		{"email duplicado", ok, "EMAIL_EXISTS"},
		{"faltan campos", map[string]interface{}{"email": "b@quimicos.co"}, "MISSING_PARAMETERS"},
		{"password corto", map[string]interface{}{"name": "B", "email": "b@quimicos.co", "password": "123"}, "VALIDATION"},
		{"email inválido", map[string]interface{}{"name": "B", "email": "no-es-email", "password": "secreto1"}, "VALIDATION"},
		{"rol inválido", map[string]interface{}{"name": "B", "email": "b@quimicos.co", "password": "secreto1", "role": "root"}, "VALIDATION"},
		{"rol con mayúscula", map[string]interface{}{"name": "B", "email": "b@quimicos.co", "password": "secreto1", "role": "Administrador"}, "VALIDATION"},
		{"password de 80 bytes", map[string]interface{}{"name": "B", "email": "b@quimicos.co", "password": strings.Repeat("p", 80)}, "VALIDATION"},
		// 40 caracteres pero 80 bytes: pasa el tag max y lo rechaza el límite de bcrypt.
		{"password multibyte largo", map[string]interface{}{"name": "B", "email": "b@quimicos.co", "password": strings.Repeat("ñ", 40)}, "VALIDATION"},
		{"nombre de 151 caracteres", map[string]interface{}{"name": strings.Repeat("n", 151), "email": "b@quimicos.co", "password": "secreto1"}, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/api/auth/register", "", tc.body)
			body := decode(t, resp)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.code, body["code"])
		})
	}
}

func TestAuth_LoginCredencialesInvalidas(t *testing.T) {
	env := newTestEnv(t, 0)
	env.tokenFor(t, "vendedor")

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "nadie@quimicos.co", "password": "secreto1",
	})
	body := decode(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "nadie@quimicos.co", "password": strings.Repeat("p", 80),
	})
	body = decode(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestAuth_LimiteDeIntentos(t *testing.T) {
	env := newTestEnv(t, 2)
	creds := map[string]interface{}{"email": "nadie@quimicos.co", "password": "x"}

	for i := 0; i < 2; i++ {
		resp := env.do(t, http.MethodPost, "/api/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
	resp := env.do(t, http.MethodPost, "/api/auth/login", "", creds)
	body := decode(t, resp)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "TOO_MANY_REQUESTS", body["code"])
}

func TestAuth_MeSinToken(t *testing.T) {
	env := newTestEnv(t, 0)
	resp := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
