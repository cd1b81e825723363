package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/acardona/stock-api/internal/application/auth"
	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/application/stock"
	"github.com/acardona/stock-api/internal/application/usecase"
	httpiface "github.com/acardona/stock-api/internal/interfaces/http"
	"github.com/acardona/stock-api/internal/testutil"
)

const testSecret = "secreto-de-pruebas-http"

type fixture struct {
	app    *fiber.App
	mem    *testutil.Memoria
	authUC *auth.AuthUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := testutil.NewMemoria()
	txRunner := mem.TxRunner()

	productoUC := usecase.NewProductoUseCase(mem.Productos(), txRunner)
	stockUC := stock.NewUseCase(txRunner)
	movimientoUC := usecase.NewMovimientoUseCase(mem.Movimientos(), mem.Productos())
	reporteUC := usecase.NewReporteUseCase(mem.Productos())
	authUC := auth.NewAuthUseCase(mem.Administradores(), auth.JWTConfig{
		Secret:       testSecret,
		ExpMinutes:   60,
		RefreshHours: 24,
		Issuer:       "stock-api-test",
	})

	app := fiber.New(fiber.Config{ErrorHandler: httpiface.ErrorHandler})
	router := httpiface.NewRouter(
		httpiface.NewAuthHandler(authUC),
		httpiface.NewStockHandler(productoUC, stockUC, movimientoUC),
		httpiface.NewMovimientoHandler(movimientoUC),
		httpiface.NewReporteHandler(reporteUC),
		testSecret,
	)
	router.Setup(app)

	return &fixture{app: app, mem: mem, authUC: authUC}
}

// token registra un administrador y devuelve su access token.
func (f *fixture) token(t *testing.T, username string, superuser bool) string {
	t.Helper()
	_, err := f.authUC.Registrar(dto.RegistrarAdminRequest{
		Username:  username,
		Password:  "Secreto123",
		Superuser: superuser,
	})
	require.NoError(t, err)
	login, err := f.authUC.Login(dto.LoginRequest{Username: username, Password: "Secreto123"})
	require.NoError(t, err)
	return login.Access
}

// do ejecuta un request JSON contra la app de pruebas y decodifica la respuesta.
func (f *fixture) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "cuerpo no JSON: %s", raw)
	}
	return resp.StatusCode, decoded
}

// crearProducto crea un producto vía API y devuelve su ID.
func (f *fixture) crearProducto(t *testing.T, token string, nombre string, cantidad int64) string {
	t.Helper()
	status, body := f.do(t, fiber.MethodPost, "/api/stock/", token, map[string]any{
		"nombre":       nombre,
		"descripcion":  "producto de prueba",
		"precio":       "9.99",
		"cantidad":     cantidad,
		"stock_minimo": 5,
	})
	require.Equal(t, fiber.StatusCreated, status, "crear producto: %v", body)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func subtractPath(id string) string { return fmt.Sprintf("/api/stock/%s/subtract", id) }
func restockPath(id string) string  { return fmt.Sprintf("/api/stock/%s/restock", id) }
