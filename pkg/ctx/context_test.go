package ctx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
)

func TestBindJSONValid(t *testing.T) {
	type input struct {
		ProductID uint `json:"product_id" validate:"required"`
		Quantity  int  `json:"quantity"   validate:"required,gte=1"`
	}

	r := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"product_id": 3, "quantity": 2}`))
	w := httptest.NewRecorder()

	c := &ctx.Context{W: w, R: r}

	var in input
	if !c.BindJSON(&in) {
		t.Fatalf("expected bind to succeed, body: %s", w.Body.String())
	}
	if in.ProductID != 3 || in.Quantity != 2 {
		t.Errorf("unexpected decode: %+v", in)
	}
}

func TestBindJSONValidationFailureWrites422(t *testing.T) {
	type input struct {
		Quantity int `json:"quantity" validate:"required,gte=1"`
	}

	r := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"quantity": 0}`))
	w := httptest.NewRecorder()

	c := &ctx.Context{W: w, R: r}

	var in input
	if c.BindJSON(&in) {
		t.Fatal("expected bind to fail")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := body.Errors["quantity"]; !ok {
		t.Errorf("expected field-level error for quantity, got %v", body.Errors)
	}
}

func TestBindJSONMalformedBodyWrites400(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()

	c := &ctx.Context{W: w, R: r}

	var in struct{}
	if c.BindJSON(&in) {
		t.Fatal("expected bind to fail")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
