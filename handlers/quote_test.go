package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sweeply/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubCatalog only backs lead creation; everything else is unused here.
type stubCatalog struct {
	leadErr error
	leads   []*models.Lead
}

func (s *stubCatalog) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCatalog) GetCategoriesWithServices(ctx context.Context) ([]models.CategoryWithServices, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCatalog) GetExtrasByIDs(ctx context.Context, ids []string) ([]models.Extra, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCatalog) GetRegions(ctx context.Context) ([]models.Region, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCatalog) GetSuburbsByRegion(ctx context.Context, regionID string) ([]models.Suburb, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCatalog) GetSuburbByID(ctx context.Context, id string) (*models.Suburb, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCatalog) CreateLead(ctx context.Context, lead *models.Lead) error {
	if s.leadErr != nil {
		return s.leadErr
	}
	s.leads = append(s.leads, lead)
	return nil
}

func postQuote(t *testing.T, catalog *stubCatalog, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewQuoteHandler(catalog, zap.NewNop())
	router.POST("/api/quotes", handler.SubmitQuote)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitQuote(t *testing.T) {
	catalog := &stubCatalog{}
	w := postQuote(t, catalog, `{"name":"Sam","email":"sam@example.com","suburb":"Newtown"}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	if assert.Len(t, catalog.leads, 1) {
		assert.Equal(t, "Sam", catalog.leads[0].Name)
		assert.NotEmpty(t, catalog.leads[0].ID)
	}
}

func TestSubmitQuote_StorageFailureStillAccepted(t *testing.T) {
	catalog := &stubCatalog{leadErr: errors.New("mongo down")}
	w := postQuote(t, catalog, `{"name":"Sam","email":"sam@example.com"}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestSubmitQuote_MissingFields(t *testing.T) {
	catalog := &stubCatalog{}

	w := postQuote(t, catalog, `{"name":"Sam"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postQuote(t, catalog, `{"name":"Sam","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, catalog.leads)
}
