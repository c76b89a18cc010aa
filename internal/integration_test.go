package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wattcompare-backend/config"
	"wattcompare-backend/internal/api"
	"wattcompare-backend/internal/model"
	"wattcompare-backend/internal/report"
	"wattcompare-backend/internal/store"
)

// scriptedEngine returns one canned recognition result per call, simulating
// different labels being scanned in sequence.
type scriptedEngine struct {
	texts []string
	calls int
}

func (s *scriptedEngine) Name() string { return "scripted" }

func (s *scriptedEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	text := s.texts[s.calls%len(s.texts)]
	s.calls++
	return text, nil
}

// TestApplianceLifecycle walks the whole flow: two label scans are ingested,
// the records are listed, compared, and finally exported as a PDF report.
func TestApplianceLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, testDB.AutoMigrate(&model.Appliance{}))

	// 2. Wire the router with a scripted recognition engine.
	engine := &scriptedEngine{texts: []string{
		"Energy Consumption 500 kWh per year", // old fridge label
		"Energy Consumption 250 kWh per year", // new fridge label
	}}
	appStore := store.NewGormStore(testDB)
	cfg := &config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000, CacheTTLSeconds: 1}
	router := api.NewRouter(appStore, engine, report.NewGenerator(), cfg)

	// 3. Ingest both appliances through the API.
	addAppliance(t, router, "old fridge", "29999", "8")
	addAppliance(t, router, "new fridge", "41999", "8")

	// 4. List and verify both records round-tripped.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/list_appliances", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []model.Appliance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "old fridge", listed[0].Name)
	require.NotNil(t, listed[0].EnergyKwh)
	assert.Equal(t, 500.0, *listed[0].EnergyKwh)
	require.NotNil(t, listed[1].EnergyKwh)
	assert.Equal(t, 250.0, *listed[1].EnergyKwh)
	assert.Greater(t, listed[1].ID, listed[0].ID)

	// 5. Compare: the new fridge costs 250*8=2000 vs 500*8=4000.
	payload := fmt.Sprintf(`{"ids":[%d,%d]}`, listed[0].ID, listed[1].ID)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/compare", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var compared struct {
		Comparison struct {
			A struct {
				AnnualCost float64 `json:"annual_cost"`
				Carbon     float64 `json:"carbon"`
			} `json:"A"`
			B struct {
				AnnualCost float64 `json:"annual_cost"`
				Carbon     float64 `json:"carbon"`
			} `json:"B"`
			Recommended string `json:"recommended"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &compared))
	assert.Equal(t, 4000.0, compared.Comparison.A.AnnualCost)
	assert.Equal(t, 4000.0*0.82, compared.Comparison.A.Carbon)
	assert.Equal(t, 2000.0, compared.Comparison.B.AnnualCost)
	assert.Equal(t, "new fridge", compared.Comparison.Recommended)

	// 6. Export the report and verify it is a PDF download.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/export_pdf", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "WattCompare_Report.pdf")
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func addAppliance(t *testing.T, router *gin.Engine, name, price, rate string) {
	t.Helper()

	var buf bytes.Buffer
	mpw := multipart.NewWriter(&buf)
	require.NoError(t, mpw.WriteField("name", name))
	require.NoError(t, mpw.WriteField("price", price))
	require.NoError(t, mpw.WriteField("energy_rate", rate))
	fw, err := mpw.CreateFormFile("image", "label.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake label image"))
	require.NoError(t, err)
	require.NoError(t, mpw.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/add_appliance", &buf)
	req.Header.Set("Content-Type", mpw.FormDataContentType())
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
