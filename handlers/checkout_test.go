package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stayhub/handlers"
	"stayhub/models"
	"stayhub/routes"
	"stayhub/services/checkout"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	svc := &checkout.DefaultCheckoutService{
		Store:             checkout.NewSessionStore(time.Hour),
		Gateway:           &checkout.SimulatedGateway{Logger: logger},
		Catalog:           checkout.DefaultCatalog(),
		Logger:            logger,
		FeeRate:           0.10,
		CashbackRate:      0.05,
		HoldMinutes:       20,
		HoldExtendMinutes: 10,
		QRMinutes:         5,
	}
	r := gin.New()
	routes.RegisterCheckoutRoutes(r, handlers.NewCheckoutHandler(svc, logger), handlers.NewExportHandler(svc, logger))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) models.CheckoutSessionView {
	t.Helper()
	var view models.CheckoutSessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func guestBody() map[string]any {
	return map[string]any{
		"firstName":   "Linh",
		"lastName":    "Tran",
		"email":       "linh.tran@example.com",
		"countryCode": "+84",
		"phone":       "0912345678",
		"termsAgreed": true,
	}
}

func TestStartSessionEndpoint_DemoFallback(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/checkout/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeView(t, w)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, models.StepGuestInfo, view.Step)
	assert.Equal(t, "demo-hotel-001", view.Draft.HotelID)
	assert.Equal(t, int64(3_000_000), view.Breakdown.Subtotal)
}

func TestGetSessionEndpoint_NotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/checkout/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "sessionNotFound")
}

func TestGuestEndpoint_FieldErrors(t *testing.T) {
	r := newTestRouter()
	view := decodeView(t, doJSON(t, r, http.MethodPost, "/api/checkout/session", nil))

	bad := guestBody()
	bad["email"] = "not-an-email"
	w := doJSON(t, r, http.MethodPost, "/api/checkout/session/"+view.SessionID+"/guest", bad)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "email")
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	r := newTestRouter()
	view := decodeView(t, doJSON(t, r, http.MethodPost, "/api/checkout/session", nil))
	base := "/api/checkout/session/" + view.SessionID

	w := doJSON(t, r, http.MethodPost, base+"/guest", guestBody())
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, models.StepPayment, view.Step)
	require.NotNil(t, view.Hold)

	w = doJSON(t, r, http.MethodPut, base+"/payment-method", map[string]any{"method": "wallet"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, base+"/discount", map[string]any{"code": "SUMMER20"})
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	require.NotNil(t, view.Discount)
	assert.Equal(t, int64(600_000), view.Discount.Amount)

	w = doJSON(t, r, http.MethodPost, base+"/pay", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, models.StepConfirmation, view.Step)
	require.NotNil(t, view.Confirmation)
	assert.Equal(t, int64(2_700_000), view.Confirmation.Breakdown.GrandTotal)

	// Confirmation outputs.
	w = doJSON(t, r, http.MethodGet, base+"/confirmation/share", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), view.Confirmation.BookingID)

	w = doJSON(t, r, http.MethodGet, base+"/confirmation/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestDiscountEndpoint_RejectsUnknownCode(t *testing.T) {
	r := newTestRouter()
	view := decodeView(t, doJSON(t, r, http.MethodPost, "/api/checkout/session", nil))
	base := "/api/checkout/session/" + view.SessionID

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, base+"/guest", guestBody()).Code)

	w := doJSON(t, r, http.MethodPost, base+"/discount", map[string]any{"code": "NOPE"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "unknownCode")
}

func TestExportEndpoints_RequireConfirmation(t *testing.T) {
	r := newTestRouter()
	view := decodeView(t, doJSON(t, r, http.MethodPost, "/api/checkout/session", nil))

	w := doJSON(t, r, http.MethodGet, "/api/checkout/session/"+view.SessionID+"/confirmation/pdf", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "notConfirmed")
}

func TestAbandonEndpoint(t *testing.T) {
	r := newTestRouter()
	view := decodeView(t, doJSON(t, r, http.MethodPost, "/api/checkout/session", nil))
	base := "/api/checkout/session/" + view.SessionID

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, base+"/abandon", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, base, nil).Code)
}
