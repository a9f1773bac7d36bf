// internal/handlers/order_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/florelle/orders-backend/internal/catalog"
	"github.com/florelle/orders-backend/internal/config"
	"github.com/florelle/orders-backend/internal/models"
	"github.com/florelle/orders-backend/internal/router"
	"github.com/florelle/orders-backend/internal/storage"
)

type OrderAPITestSuite struct {
	suite.Suite
	router     *gin.Engine
	ordersPath string
}

func (suite *OrderAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dir := suite.T().TempDir()
	suite.ordersPath = filepath.Join(dir, "orders.json")
	productsPath := filepath.Join(dir, "products.json")

	products := `{
		"products": {
			"Valentine Box": ["Red Roses Bouquet", "Box of chocolates"],
			"Birthday Box": ["Birthday cupcake", "Gift Card"]
		}
	}`
	require.NoError(suite.T(), os.WriteFile(productsPath, []byte(products), 0o644))

	suite.router = suite.buildRouter(productsPath)
}

func (suite *OrderAPITestSuite) buildRouter(productsPath string) *gin.Engine {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cat := catalog.Load(productsPath, log)
	store := storage.NewOrderStore(suite.ordersPath, cat, log)
	return router.Initialize(cfg, cat, store, log)
}

func (suite *OrderAPITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(suite.T(), err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validOrderBody() map[string]interface{} {
	return map[string]interface{}{
		"date": "2025-04-10",
		"products": []map[string]interface{}{
			{"name": "Valentine Box", "quantity": 2},
		},
		"address": map[string]string{
			"street":  "123 Main St",
			"country": "USA",
			"city":    "New York",
			"zipCode": "10001",
		},
		"status": "pending",
	}
}

func (suite *OrderAPITestSuite) createOrder() models.Order {
	w := suite.request(http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	var created models.Order
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func (suite *OrderAPITestSuite) TestListOrdersEmptyStore() {
	w := suite.request(http.MethodGet, "/api/orders", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), "[]", w.Body.String())
}

func (suite *OrderAPITestSuite) TestCreateOrderSetsLocationHeader() {
	w := suite.request(http.MethodPost, "/api/orders", validOrderBody())

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var created models.Order
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(suite.T(), created.ID)
	assert.Equal(suite.T(), "/api/orders/"+created.ID, w.Header().Get("Location"))
}

func (suite *OrderAPITestSuite) TestCreateThenGetByID() {
	created := suite.createOrder()

	w := suite.request(http.MethodGet, "/api/orders/"+created.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var fetched models.EnrichedOrder
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(suite.T(), created.ID, fetched.ID)
	require.Len(suite.T(), fetched.Products, 1)
	assert.Equal(suite.T(),
		[]string{"Red Roses Bouquet", "Box of chocolates"},
		fetched.Products[0].Items)
}

func (suite *OrderAPITestSuite) TestCreateOrderValidationFailure() {
	body := validOrderBody()
	body["products"] = []map[string]interface{}{}

	w := suite.request(http.MethodPost, "/api/orders", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error": "Order must contain at least one product"}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestCreateOrderUnknownProduct() {
	body := validOrderBody()
	body["products"] = []map[string]interface{}{
		{"name": "Mystery Box", "quantity": 1},
	}

	w := suite.request(http.MethodPost, "/api/orders", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error": "Invalid product name: Mystery Box"}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestCreateOrderMalformedBody() {
	req, err := http.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("not json"))
	require.NoError(suite.T(), err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error": "Invalid order format"}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestGetOrderNotFound() {
	w := suite.request(http.MethodGet, "/api/orders/order_missing", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error": "Order not found"}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestUpdateOrder() {
	created := suite.createOrder()

	body := validOrderBody()
	body["status"] = "shipped"

	w := suite.request(http.MethodPut, "/api/orders/"+created.ID, body)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Order
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(suite.T(), created.ID, updated.ID)
	assert.Equal(suite.T(), models.StatusShipped, updated.Status)
}

func (suite *OrderAPITestSuite) TestUpdateNotFoundAnswers400() {
	// update keeps the historical 400 for unknown ids; delete answers 404
	w := suite.request(http.MethodPut, "/api/orders/order_missing", validOrderBody())

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error": "Order not found"}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestUpdateValidationFailure() {
	created := suite.createOrder()

	body := validOrderBody()
	body["status"] = "going"

	w := suite.request(http.MethodPut, "/api/orders/"+created.ID, body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(),
		`{"error": "Invalid status. Must be one of: pending, shipped, delivered, canceled"}`,
		w.Body.String())
}

func (suite *OrderAPITestSuite) TestDeleteOrder() {
	created := suite.createOrder()

	w := suite.request(http.MethodDelete, "/api/orders/"+created.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Message string       `json:"message"`
		Order   models.Order `json:"order"`
	}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Order deleted", response.Message)
	assert.Equal(suite.T(), created.ID, response.Order.ID)

	w = suite.request(http.MethodGet, "/api/orders/"+created.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *OrderAPITestSuite) TestDeleteNotFoundAnswers404() {
	w := suite.request(http.MethodDelete, "/api/orders/order_missing", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error": "Order not found"}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestSummaryMissingParams() {
	w := suite.request(http.MethodGet, "/api/orders/summary?startDate=2025-04-01", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error": "Both startDate and endDate are required"}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestSummaryUnparseableDates() {
	w := suite.request(http.MethodGet, "/api/orders/summary?startDate=garbage&endDate=2025-04-30", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error": "Invalid date format"}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestSummaryExpandsProducts() {
	suite.createOrder() // Valentine Box x2 on 2025-04-10

	w := suite.request(http.MethodGet, "/api/orders/summary?startDate=2025-04-01&endDate=2025-04-30", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{
		"products": {
			"Red Roses Bouquet": 2,
			"Box of chocolates": 2
		}
	}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestSummaryInvertedRangeYieldsEmptyProducts() {
	suite.createOrder()

	w := suite.request(http.MethodGet, "/api/orders/summary?startDate=2025-04-30&endDate=2025-04-01", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"products": {}}`, w.Body.String())
}

func (suite *OrderAPITestSuite) TestListDropsUnknownProductsFromEnrichment() {
	// Seed the orders file directly with a line whose product has since
	// left the catalog; the API hides the line instead of erroring.
	seeded := `{
		"orders": [{
			"id": "order_seed_1",
			"date": "2025-04-10",
			"products": [
				{"name": "Discontinued Box", "quantity": 1},
				{"name": "Valentine Box", "quantity": 2}
			],
			"address": {"street": "1 A St", "country": "USA", "city": "NYC", "zipCode": "10001"},
			"status": "pending"
		}]
	}`
	require.NoError(suite.T(), os.WriteFile(suite.ordersPath, []byte(seeded), 0o644))

	dir := suite.T().TempDir()
	productsPath := filepath.Join(dir, "products.json")
	require.NoError(suite.T(), os.WriteFile(productsPath,
		[]byte(`{"products": {"Valentine Box": ["Red Roses Bouquet"]}}`), 0o644))
	suite.router = suite.buildRouter(productsPath)

	w := suite.request(http.MethodGet, "/api/orders", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var orders []models.EnrichedOrder
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(suite.T(), orders, 1)
	require.Len(suite.T(), orders[0].Products, 1)
	assert.Equal(suite.T(), "Valentine Box", orders[0].Products[0].Name)
}

func (suite *OrderAPITestSuite) TestHealthEndpoint() {
	w := suite.request(http.MethodGet, "/health", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "healthy")
}

func TestOrderAPISuite(t *testing.T) {
	suite.Run(t, new(OrderAPITestSuite))
}
