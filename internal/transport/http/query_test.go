package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestQueryListMergesRepeatedAndCommaValues(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/destinations?continent=Asie,%20Europe%20&continent=Océanie&continent=", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	got := queryList(c, "continent")
	want := []string{"Asie", "Europe", "Océanie"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if queryList(c, "price_category") != nil {
		t.Fatalf("expected nil for a missing parameter")
	}
}

func TestParsePackageFilter(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/packages?min_price=100&max_price=2500.5&min_duration=7&skip=2", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	filter, err := parsePackageFilter(c)
	if err != nil {
		t.Fatalf("parsePackageFilter returned error: %v", err)
	}
	if filter.MinPrice == nil || *filter.MinPrice != 100 || filter.MaxPrice == nil || *filter.MaxPrice != 2500.5 {
		t.Fatalf("unexpected price bounds %v %v", filter.MinPrice, filter.MaxPrice)
	}
	if filter.MinDuration == nil || *filter.MinDuration != 7 || filter.Page.Skip != 2 || filter.Page.Limit != 0 {
		t.Fatalf("unexpected filter %+v", filter)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/packages?min_duration=1.5", nil)
	if _, err := parsePackageFilter(e.NewContext(req, httptest.NewRecorder())); err == nil {
		t.Fatalf("expected error for fractional duration")
	}
}

func TestParsePageRejectsNonPositiveLimit(t *testing.T) {
	e := echo.New()
	for _, target := range []string{"/api/destinations?limit=0", "/api/destinations?limit=-3"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if _, err := parsePage(e.NewContext(req, httptest.NewRecorder())); err == nil {
			t.Fatalf("%s: expected validation error", target)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/destinations", nil)
	page, err := parsePage(e.NewContext(req, httptest.NewRecorder()))
	if err != nil || page.Limit != 0 || page.Skip != 0 {
		t.Fatalf("expected an empty page for absent parameters, got %+v (%v)", page, err)
	}
}

func TestPathIDAcceptsAnyInteger(t *testing.T) {
	e := echo.New()
	for raw, want := range map[string]int64{"7": 7, "0": 0, "-1": -1} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)
		got, err := pathID(c, "id")
		if err != nil || got != want {
			t.Fatalf("pathID(%q) = %d, %v; want %d", raw, got, err, want)
		}
	}

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if _, err := pathID(c, "id"); err == nil {
		t.Fatalf("expected error for a non-integer id")
	}
}
