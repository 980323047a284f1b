package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loyaltycampaign/internal/chart"
	domainErrors "github.com/polkiloo/loyaltycampaign/internal/domain/errors"
	"github.com/polkiloo/loyaltycampaign/internal/server/http/dto"
	testhelpers "github.com/polkiloo/loyaltycampaign/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGallery() *testhelpers.GalleryStub {
	return &testhelpers.GalleryStub{Items: []chart.Chart{
		{Name: "campaign-impact", Title: "Campaign Impact", SVG: []byte("<svg>impact</svg>")},
		{Name: "seasonal-flights", Title: "Summer", SVG: []byte("<svg>flights</svg>")},
	}}
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New(IndexTemplate).Parse(`{{range .Charts}}{{.URL}};{{end}}`)))
	router.Handle(method, route, handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestChartHandlerChart(t *testing.T) {
	h := NewChartHandler(newGallery())

	resp := performRequest(t, http.MethodGet, "/charts/:index", "/charts/1", h.Chart)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != chart.ContentType {
		t.Fatalf("expected svg content type, got %q", ct)
	}
	if resp.Body.String() != "<svg>flights</svg>" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestChartHandlerChartNotFound(t *testing.T) {
	h := NewChartHandler(newGallery())

	for _, path := range []string{"/charts/2", "/charts/-1", "/charts/abc"} {
		resp := performRequest(t, http.MethodGet, "/charts/:index", path, h.Chart)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", path, resp.Code)
		}
		if resp.Body.String() != domainErrors.ErrChartNotFound.Error() {
			t.Fatalf("unexpected body %q", resp.Body.String())
		}
	}
}

func TestChartHandlerList(t *testing.T) {
	h := NewChartHandler(newGallery())

	resp := performRequest(t, http.MethodGet, "/api/charts", "/api/charts", h.List)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var charts []dto.ChartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &charts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(charts) != 2 || charts[1].URL != "/charts/1" || charts[0].Name != "campaign-impact" {
		t.Fatalf("unexpected charts %+v", charts)
	}
}

func TestChartHandlerIndex(t *testing.T) {
	h := NewChartHandler(newGallery())

	resp := performRequest(t, http.MethodGet, "/", "/", h.Index)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, "/charts/0;/charts/1;") {
		t.Fatalf("unexpected index body %q", body)
	}
}

func TestChartHandlerDismiss(t *testing.T) {
	gallery := newGallery()
	h := NewChartHandler(gallery)

	resp := performRequest(t, http.MethodPost, "/dismiss", "/dismiss", h.Dismiss)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gallery.Dismissed != 1 {
		t.Fatalf("expected one dismissal, got %d", gallery.Dismissed)
	}
}
