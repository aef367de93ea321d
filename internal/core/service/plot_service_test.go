package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/core/ports"
	"github.com/iwacu250/listings-client/internal/transport"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newServiceClient(t *testing.T, register func(e *echo.Echo)) *transport.Client {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	if register != nil {
		register(e)
	}
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return transport.New(srv.URL, time.Second, staticToken("tok"), zerolog.Nop())
}

func TestPlotServiceListAppliesDefaults(t *testing.T) {
	var got url.Values
	client := newServiceClient(t, func(e *echo.Echo) {
		e.GET("/plots", func(c echo.Context) error {
			got = c.QueryParams()
			return c.JSON(http.StatusOK, map[string]any{"content": []any{}})
		})
	})
	svc := NewPlotService(client, zerolog.Nop(), 1<<20, 1<<20)

	if _, err := svc.List(context.Background(), ports.ListParams{}); err != nil {
		t.Fatalf("List: %v", err)
	}

	want := map[string]string{
		"page":    "0",
		"size":    "12",
		"sortBy":  "createdAt",
		"sortDir": "desc",
	}
	for key, value := range want {
		if got.Get(key) != value {
			t.Errorf("query %s = %q, want %q", key, got.Get(key), value)
		}
	}
	for _, absent := range []string{"type", "location", "minPrice", "maxPrice"} {
		if got.Has(absent) {
			t.Errorf("zero-valued filter %s must be omitted, got %q", absent, got.Get(absent))
		}
	}
}

func TestPlotServiceListForwardsFilters(t *testing.T) {
	var got url.Values
	client := newServiceClient(t, func(e *echo.Echo) {
		e.GET("/plots", func(c echo.Context) error {
			got = c.QueryParams()
			return c.JSON(http.StatusOK, []any{})
		})
	})
	svc := NewPlotService(client, zerolog.Nop(), 1<<20, 1<<20)

	_, err := svc.List(context.Background(), ports.ListParams{
		Page:     3,
		Size:     24,
		Location: "Kigali",
		MinPrice: 1000000,
		MaxSize:  2500,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got.Get("page") != "3" || got.Get("size") != "24" {
		t.Fatalf("paging not forwarded: %v", got)
	}
	if got.Get("location") != "Kigali" || got.Get("minPrice") != "1000000" || got.Get("maxSize") != "2500" {
		t.Fatalf("filters not forwarded: %v", got)
	}
}

func TestPlotServiceFeaturedDefaultLimit(t *testing.T) {
	var got url.Values
	client := newServiceClient(t, func(e *echo.Echo) {
		e.GET("/plots/getFeaturedPlots", func(c echo.Context) error {
			got = c.QueryParams()
			return c.JSON(http.StatusOK, []map[string]any{{"id": 1, "title": "Prime Plot"}})
		})
	})
	svc := NewPlotService(client, zerolog.Nop(), 1<<20, 1<<20)

	plots, err := svc.Featured(context.Background(), 0)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if got.Get("limit") != "6" {
		t.Fatalf("default limit = %q, want 6", got.Get("limit"))
	}
	if len(plots) != 1 || plots[0].Title != "Prime Plot" {
		t.Fatalf("unexpected plots %+v", plots)
	}
}

func TestPlotServiceCreateValidatesLocally(t *testing.T) {
	calls := 0
	client := newServiceClient(t, func(e *echo.Echo) {
		e.POST("/admin/plots/createPlot", func(c echo.Context) error {
			calls++
			return c.JSON(http.StatusOK, map[string]any{"id": 1})
		})
	})
	svc := NewPlotService(client, zerolog.Nop(), 1<<20, 1<<20)

	_, err := svc.Create(context.Background(), ports.PlotInput{
		Title: "Missing everything else",
		Size:  -5,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("invalid input must not reach the backend, saw %d request(s)", calls)
	}
}

func TestPlotServiceCreate(t *testing.T) {
	var body ports.PlotInput
	client := newServiceClient(t, func(e *echo.Echo) {
		e.POST("/admin/plots/createPlot", func(c echo.Context) error {
			if err := c.Bind(&body); err != nil {
				return err
			}
			return c.JSON(http.StatusCreated, map[string]any{"id": 7, "title": body.Title})
		})
	})
	svc := NewPlotService(client, zerolog.Nop(), 1<<20, 1<<20)

	plot, err := svc.Create(context.Background(), ports.PlotInput{
		Title:    "Prime Plot",
		Location: "Kigali",
		Size:     1200,
		Price:    15000000,
		Status:   "AVAILABLE",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if plot.ID != 7 {
		t.Fatalf("unexpected plot %+v", plot)
	}
	if body.Title != "Prime Plot" || body.Price != 15000000 {
		t.Fatalf("payload not forwarded: %+v", body)
	}
}

func TestPlotServiceUpdateStatus(t *testing.T) {
	var method string
	var body map[string]string
	client := newServiceClient(t, func(e *echo.Echo) {
		e.PATCH("/admin/plots/updatePlotStatus/7", func(c echo.Context) error {
			method = c.Request().Method
			if err := c.Bind(&body); err != nil {
				return err
			}
			return c.NoContent(http.StatusOK)
		})
	})
	svc := NewPlotService(client, zerolog.Nop(), 1<<20, 1<<20)

	if err := svc.UpdateStatus(context.Background(), 7, domain.StatusSold); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if method != http.MethodPatch {
		t.Fatalf("unexpected method %q", method)
	}
	if body["status"] != "SOLD" {
		t.Fatalf("status payload = %v", body)
	}
}

func TestPlotServiceGetNotFound(t *testing.T) {
	client := newServiceClient(t, func(e *echo.Echo) {
		e.GET("/plots/getPlotById/99", func(c echo.Context) error {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "plot not found"})
		})
	})
	svc := NewPlotService(client, zerolog.Nop(), 1<<20, 1<<20)

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
