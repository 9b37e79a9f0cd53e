package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/handlers"
	"github.com/glsvc/ledger-backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwaggerTestRouter(isProduction bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	services := &portssvc.ServiceContainer{
		Account: new(MockAccountService),
		Tenant:  new(MockTenantService),
	}
	handlers.RegisterRoutes(router, &config.Config{IsProduction: isProduction}, services)
	return router
}

func TestSwaggerDocServed(t *testing.T) {
	router := newSwaggerTestRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// The registered document must resolve, not the swagger-ui fetch error.
	assert.Contains(t, w.Body.String(), `"Ledger Backend API"`)
	assert.Contains(t, w.Body.String(), `"/tenants/{tenant_id}/journals"`)
	assert.Contains(t, w.Body.String(), `"basePath": "/api/v1"`)
}

func TestSwaggerDisabledInProduction(t *testing.T) {
	router := newSwaggerTestRouter(true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
