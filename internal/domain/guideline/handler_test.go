package guideline

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newSearchContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerSearch(t *testing.T) {
	h := NewHandler(Default(), 3)
	c, rec := newSearchContext(t, "/guidelines/search?q=fever&surgery=Knee+Replacement")

	if err := h.Search(c); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Query   string  `json:"query"`
		Total   int     `json:"total"`
		Results []Match `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Query != "fever" || body.Total == 0 {
		t.Errorf("body = %+v", body)
	}
	if body.Results[0].ID != "knee-replacement-infection-warning" {
		t.Errorf("top result = %q", body.Results[0].ID)
	}
}

func TestHandlerSearchRequiresQuery(t *testing.T) {
	h := NewHandler(Default(), 3)
	c, _ := newSearchContext(t, "/guidelines/search")

	err := h.Search(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestHandlerSearchRejectsBadLimit(t *testing.T) {
	h := NewHandler(Default(), 3)
	for _, target := range []string{
		"/guidelines/search?q=pain&limit=abc",
		"/guidelines/search?q=pain&limit=-1",
	} {
		c, _ := newSearchContext(t, target)
		err := h.Search(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Errorf("%s: err = %v, want 400", target, err)
		}
	}
}

func TestHandlerSearchCapsLimit(t *testing.T) {
	h := NewHandler(Default(), 2)
	c, rec := newSearchContext(t, "/guidelines/search?q=pain&limit=50")

	if err := h.Search(c); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	var body struct {
		Results []Match `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Results) > 2 {
		t.Errorf("got %d results, cap was 2", len(body.Results))
	}
}

func TestHandlerSearchNoMatches(t *testing.T) {
	h := NewHandler(Default(), 3)
	c, rec := newSearchContext(t, "/guidelines/search?q=zzqx")

	if err := h.Search(c); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	var body struct {
		Total   int     `json:"total"`
		Results []Match `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Total != 0 || body.Results == nil {
		t.Errorf("want empty result array, got %+v", body)
	}
}

func TestHandlerListBySurgery(t *testing.T) {
	h := NewHandler(Default(), 3)
	c, rec := newSearchContext(t, "/guidelines?surgery=Appendectomy")

	if err := h.ListBySurgery(c); err != nil {
		t.Fatalf("ListBySurgery() error = %v", err)
	}
	var body struct {
		Total   int        `json:"total"`
		Results []Document `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// 3 appendectomy documents plus 6 general ones.
	if body.Total != 9 {
		t.Errorf("Total = %d, want 9", body.Total)
	}
}

func TestHandlerListBySurgeryRequiresParam(t *testing.T) {
	h := NewHandler(Default(), 3)
	c, _ := newSearchContext(t, "/guidelines")

	err := h.ListBySurgery(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestHandlerListCritical(t *testing.T) {
	h := NewHandler(Default(), 3)
	c, rec := newSearchContext(t, "/guidelines/critical")

	if err := h.ListCritical(c); err != nil {
		t.Fatalf("ListCritical() error = %v", err)
	}
	var body struct {
		Results []Document `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, d := range body.Results {
		if d.Severity != SeverityCritical {
			t.Errorf("document %q is %q", d.ID, d.Severity)
		}
	}
}
