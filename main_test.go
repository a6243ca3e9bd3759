package main

import (
	"bytes"
	"encoding/json"
	"inventory-api/dto"
	"inventory-api/models"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SECRET_KEY", "integration-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Location{},
		&models.ItemLocation{},
		&models.BlacklistedToken{},
	))

	// The token blacklist shares the test database.
	return setupRouter(db, db)
}

func doRequest(t *testing.T, router *gin.Engine, method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, username string, email string, password string) string {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createItem(t *testing.T, router *gin.Engine, token string, name string, price float64) models.Item {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/items", token, gin.H{"name": name, "price": price})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func createLocation(t *testing.T, router *gin.Engine, token string, body gin.H) models.Location {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/locations", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Location `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := setupTestRouter(t)

	token := registerUser(t, router, "alice", "a@x.com", "pw1")
	assert.NotEmpty(t, token)

	// Duplicate registration conflicts.
	w := doRequest(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice", "email": "other@x.com", "password": "pw2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice", "password": "pw1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestsWithoutTokenAreUnauthorized(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/items", "/locations", "/itemlocations"} {
		w := doRequest(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doRequest(t, router, http.MethodGet, "/items", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Register → item → location → assignment → read back by item.
func TestInventoryScenario(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "alice", "a@x.com", "pw1")

	item := createItem(t, router, token, "Widget", 10.50)
	location := createLocation(t, router, token, gin.H{"name": "Shelf A", "locationType": "Shelf"})

	w := doRequest(t, router, http.MethodPost, "/itemlocations", token, gin.H{
		"itemId": item.ID, "locationId": location.ID, "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/itemlocations/byitem/"+itoa(item.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.ItemLocation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 5, resp.Data[0].Quantity)
	assert.Equal(t, item.ID, resp.Data[0].ItemID)
	assert.Equal(t, location.ID, resp.Data[0].LocationID)
}

func TestCrossTenantReadsAreNotFound(t *testing.T) {
	router := setupTestRouter(t)
	aliceToken := registerUser(t, router, "alice", "a@x.com", "pw1")
	bobToken := registerUser(t, router, "bob", "b@x.com", "pw2")

	item := createItem(t, router, aliceToken, "Widget", 10.50)

	w := doRequest(t, router, http.MethodGet, "/items/"+itoa(item.ID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/items/"+itoa(item.ID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Owner stamping: the item belongs to alice regardless of payload.
	assert.NotZero(t, item.UserID)
	w = doRequest(t, router, http.MethodGet, "/items/"+itoa(item.ID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestItemLocationValidationAndConflicts(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "alice", "a@x.com", "pw1")

	item := createItem(t, router, token, "Widget", 10.50)
	location := createLocation(t, router, token, gin.H{"name": "Shelf A"})

	// Negative quantity fails validation.
	w := doRequest(t, router, http.MethodPost, "/itemlocations", token, gin.H{
		"itemId": item.ID, "locationId": location.ID, "quantity": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/itemlocations", token, gin.H{
		"itemId": item.ID, "locationId": location.ID, "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same pair again conflicts.
	w = doRequest(t, router, http.MethodPost, "/itemlocations", token, gin.H{
		"itemId": item.ID, "locationId": location.ID, "quantity": 3,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestItemLocationStaleVersionConflicts(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "alice", "a@x.com", "pw1")

	item := createItem(t, router, token, "Widget", 10.50)
	location := createLocation(t, router, token, gin.H{"name": "Shelf A"})

	w := doRequest(t, router, http.MethodPost, "/itemlocations", token, gin.H{
		"itemId": item.ID, "locationId": location.ID, "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.ItemLocation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(t, router, http.MethodPut, "/itemlocations/"+itoa(created.Data.ID), token, gin.H{
		"quantity": 8, "version": created.Data.Version,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Replaying the old version must not overwrite the newer write.
	w = doRequest(t, router, http.MethodPut, "/itemlocations/"+itoa(created.Data.ID), token, gin.H{
		"quantity": 9, "version": created.Data.Version,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLocationCycleRejectedOverHTTP(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "alice", "a@x.com", "pw1")

	a := createLocation(t, router, token, gin.H{"name": "A"})
	b := createLocation(t, router, token, gin.H{"name": "B", "parentLocationId": a.ID})

	w := doRequest(t, router, http.MethodPut, "/locations/"+itoa(a.ID), token, gin.H{
		"name": "A", "parentLocationId": b.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationDeleteWithChildrenConflicts(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "alice", "a@x.com", "pw1")

	root := createLocation(t, router, token, gin.H{"name": "Root"})
	createLocation(t, router, token, gin.H{"name": "Child", "parentLocationId": root.ID})

	w := doRequest(t, router, http.MethodDelete, "/locations/"+itoa(root.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLocationPathEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "alice", "a@x.com", "pw1")

	root := createLocation(t, router, token, gin.H{"name": "Warehouse"})
	shelf := createLocation(t, router, token, gin.H{"name": "Shelf", "parentLocationId": root.ID})

	w := doRequest(t, router, http.MethodGet, "/locations/"+itoa(shelf.ID)+"/path", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Location `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Warehouse", resp.Data[0].Name)
	assert.Equal(t, "Shelf", resp.Data[1].Name)
}

func TestLogoutRevokesToken(t *testing.T) {
	router := setupTestRouter(t)
	token := registerUser(t, router, "alice", "a@x.com", "pw1")

	w := doRequest(t, router, http.MethodGet, "/items", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/items", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
