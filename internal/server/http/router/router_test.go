package router

import (
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loyaltycampaign/internal/chart"
	"github.com/polkiloo/loyaltycampaign/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/loyaltycampaign/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	gallery := &testhelpers.GalleryStub{Items: []chart.Chart{
		{Name: "campaign-impact", Title: "Campaign Impact on Loyalty Program Memberships", SVG: []byte("<svg></svg>")},
	}}
	engine := Setup(gallery, logger)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for index, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `src="/charts/0"`) || !strings.Contains(body, "Close charts") {
		t.Fatalf("unexpected index page %q", body)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/charts/0", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for chart, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/charts", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for chart list, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/dismiss", nil))
	if resp.Code != http.StatusOK || gallery.Dismissed != 1 {
		t.Fatalf("expected dismissal, got status %d dismissed %d", resp.Code, gallery.Dismissed)
	}
}

func TestSetupWaitingPage(t *testing.T) {
	engine := Setup(&testhelpers.GalleryStub{}, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	body := resp.Body.String()
	if !strings.Contains(body, "Waiting for charts") || !strings.Contains(body, `http-equiv="refresh"`) {
		t.Fatalf("unexpected waiting page %q", body)
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	gallery := &testhelpers.GalleryStub{Items: []chart.Chart{{Name: "a", Title: "A", SVG: []byte(strings.Repeat("<svg/>", 100))}}}
	engine := Setup(gallery, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodGet, "/charts/0", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", resp.Header().Get("Content-Encoding"))
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("invalid gzip body: %v", err)
	}
	data, _ := io.ReadAll(reader)
	if !strings.HasPrefix(string(data), "<svg/>") {
		t.Fatalf("unexpected decompressed body %q", data)
	}
}

var _ handlers.ChartGallery = (*testhelpers.GalleryStub)(nil)
