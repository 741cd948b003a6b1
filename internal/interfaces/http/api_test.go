package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehouse-picking-api/internal/application/auth"
	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/application/usecase"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-picking-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/warehouse-picking-api/internal/interfaces/http"
	"github.com/jhoicas/warehouse-picking-api/pkg/logger"
)

// fakeLabelGenerator evita renderizar PDFs reales en los tests de rutas.
type fakeLabelGenerator struct{}

func (fakeLabelGenerator) GenerateLabelSheet(products []*entity.Product) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func newTestApp(t *testing.T) (*fiber.App, *memory.ProductRepo) {
	t.Helper()

	repo := memory.NewProductRepository([]*entity.Product{
		{Category: "Fabric Care", Brand: "Ariel", Barcode: "ARL-100", UPC: "U-100", BarcodeMRP: "AR1-MRP50-ARL-100", CountOfMRP: 2},
		{Category: "Hair Care", Brand: "Pantene", Barcode: "PTN-200", UPC: "U-200", BarcodeMRP: "PT1-MRP30-PTN-200", CountOfMRP: 3, ScanProducts: 3},
	})

	authUC, err := auth.NewAuthUseCase([]auth.Credential{
		{Username: "admin", Password: "admin123", Role: entity.RoleAdmin},
		{Username: "operator", Password: "operator123", Role: entity.RoleUser},
	})
	require.NoError(t, err)

	log := logger.Nop()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
		},
	})
	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: usecase.NewInventoryUseCase(repo, log),
		ScanUC:      usecase.NewScanUseCase(repo, usecase.NewScanLog(10), log),
		ProductUC:   usecase.NewProductUseCase(repo, log),
		LabelUC:     usecase.NewLabelUseCase(repo, fakeLabelGenerator{}),
		AuthUC:      authUC,
		Sessions:    session.New(session.Config{KeyLookup: "cookie:warehouse_session"}),
	})
	return app, repo
}

// login abre sesión y devuelve la cookie para las siguientes requests.
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username="+username+"&password="+password))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := resp.Header.Get(fiber.HeaderSetCookie)
	require.NotEmpty(t, cookie)
	if i := strings.Index(cookie, ";"); i > 0 {
		cookie = cookie[:i]
	}
	return cookie
}

func doJSON(t *testing.T, app *fiber.App, method, path, cookie, body string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if cookie != "" {
		req.Header.Set(fiber.HeaderCookie, cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth y sesiones
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_JSONDevuelveSesion(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "admin", "admin123")

	resp, raw := doJSON(t, app, http.MethodGet, "/api/me", cookie, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var me dto.SessionUserResponse
	require.NoError(t, json.Unmarshal(raw, &me))
	assert.Equal(t, "admin", me.Username)
	assert.Equal(t, entity.RoleAdmin, me.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=admin&password=wrong"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Invalid credentials", out.Error, "mensaje genérico, no revela el campo")
}

func TestLogin_BrowserRedirigeAlDashboard(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=operator&password=operator123"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestAPI_SinSesion401(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/summary", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Unauthorized", out.Error)
}

func TestDashboard_SinSesionRedirigeAlLogin(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestLogout_InvalidaLaCookie(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "admin", "admin123")

	resp, _ := doJSON(t, app, http.MethodGet, "/logout", cookie, "")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/summary", cookie, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario y escaneo
// ──────────────────────────────────────────────────────────────────────────────

func TestSummaryYProductos(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "operator", "operator123")

	resp, raw := doJSON(t, app, http.MethodGet, "/api/summary", cookie, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var s dto.SummaryResponse
	require.NoError(t, json.Unmarshal(raw, &s))
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Scanned)
	assert.Equal(t, 1, s.Remaining)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/products?status=PICKED", cookie, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "PTN-200", list[0].Barcode)
	assert.Equal(t, "PICKED", list[0].PickingStatus)
}

func TestScan_FlujoCompleto(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "operator", "operator123")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/scan", cookie, `{"barcode":"ARL-100"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ScanResultResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Success)
	assert.Equal(t, 1, out.NewCount)
	assert.Equal(t, "PENDING", out.PickingStatus)
}

func TestScan_CodigoInexistenteEs200(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "operator", "operator123")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/scan", cookie, `{"barcode":"NADA"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, "soft failure: nunca un error HTTP")

	var out dto.ScanResultResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.False(t, out.Success)
	assert.True(t, out.Warning)
	assert.Equal(t, "Barcode not found", out.Message)
}

func TestScan_BarcodeVacio400(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "operator", "operator123")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/scan", cookie, `{"barcode":"  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "barcode is required", out.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición de productos y guardas de rol
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_QuantityRequiereAdmin(t *testing.T) {
	app, repo := newTestApp(t)
	cookie := login(t, app, "operator", "operator123")

	resp, raw := doJSON(t, app, http.MethodPut, "/api/product/1", cookie, `{"quantity": 7}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Admin privileges required", out.Error)

	p, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.ScanProducts, "el conteo no cambia en el rechazo")
}

func TestUpdate_AdminSobreescribeQuantity(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "admin", "admin123")

	resp, raw := doJSON(t, app, http.MethodPut, "/api/product/1", cookie, `{"quantity": 2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.UpdateProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Success)
	assert.Equal(t, "Product updated", out.Message)
	require.NotNil(t, out.Product)
	assert.Equal(t, 2, out.Product.ScanProducts)
	assert.Equal(t, "PICKED", out.Product.PickingStatus)
}

func TestUpdate_SinCampos400(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "operator", "operator123")

	resp, raw := doJSON(t, app, http.MethodPut, "/api/product/1", cookie, `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "no updates provided", out.Error)
}

func TestUpdate_ProductoInexistenteEs200(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "operator", "operator123")

	resp, raw := doJSON(t, app, http.MethodPut, "/api/product/9999", cookie, `{"mrp": "10.00"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.UpdateProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.False(t, out.Success)
	assert.Equal(t, "Product not found", out.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas solo-admin y 404
// ──────────────────────────────────────────────────────────────────────────────

func TestScans_SoloAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	operator := login(t, app, "operator", "operator123")
	resp, _ := doJSON(t, app, http.MethodGet, "/api/scans", operator, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := login(t, app, "admin", "admin123")
	doJSON(t, app, http.MethodPost, "/api/scan", admin, `{"barcode":"ARL-100"}`)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/scans", admin, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var events []dto.ScanEventResponse
	require.NoError(t, json.Unmarshal(raw, &events))
	require.Len(t, events, 1)
	assert.Equal(t, "ARL-100", events[0].Barcode)
	assert.Equal(t, "admin", events[0].Username)
}

func TestLabels_SoloAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	operator := login(t, app, "operator", "operator123")
	resp, _ := doJSON(t, app, http.MethodGet, "/api/products/labels", operator, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := login(t, app, "admin", "admin123")
	resp, raw := doJSON(t, app, http.MethodGet, "/api/products/labels", admin, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestRutaInexistente404(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app, "admin", "admin123")

	resp, raw := doJSON(t, app, http.MethodGet, "/api/nope", cookie, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "not found", out.Error)
}
