package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lucianobritez019-dotcom/autos-clasicos/internal/models"
	"github.com/lucianobritez019-dotcom/autos-clasicos/pkg/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB swaps the package-level handle for an isolated in-memory
// database per test.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Settings{}, &models.Vehicle{}))
	database.DB = db
}

func apiRouter() *gin.Engine {
	r := gin.New()
	settingsHandler := &SettingsHandler{}
	vehicleHandler := &VehicleHandler{}
	api := r.Group("/api")
	{
		api.GET("/settings", settingsHandler.GetSettings)
		api.POST("/settings", settingsHandler.SaveSettings)
		api.GET("/vehicles", vehicleHandler.ListVehicles)
		api.POST("/vehicles", vehicleHandler.SaveVehicle)
	}
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, w.Body.String())
}
