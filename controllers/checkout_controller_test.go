package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type fakeCheckoutService struct {
	submitCalled int
	lastForm     models.ContactForm
	submitErr    *services.ServiceError
}

func (f *fakeCheckoutService) Submit(_ context.Context, sessionID string, form models.ContactForm, _ *multipart.FileHeader) (*models.Order, *services.ServiceError) {
	f.submitCalled++
	f.lastForm = form
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &models.Order{SessionID: sessionID, Name: form.Name, Status: models.OrderStatusSubmitted}, nil
}

func newCheckoutRouter(svc services.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	checkout := router.Group("/checkout")
	checkout.Use(middleware.Session())
	checkout.POST("", NewCheckoutController(svc).Checkout)
	return router
}

func checkoutBody(t *testing.T, fields map[string]string, receiptName, receiptType string, receiptContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %q: %v", key, err)
		}
	}
	if receiptName != "" {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="receipt"; filename="` + receiptName + `"`}
		header["Content-Type"] = []string{receiptType}
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(receiptContent); err != nil {
			t.Fatalf("write receipt: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"name":    "Aina",
		"address": "12 Jalan Besar",
		"phone":   "0123456789",
		"email":   "aina@example.com",
		"note":    "leave at door",
	}
}

func TestCheckoutSuccess(t *testing.T) {
	fakeService := &fakeCheckoutService{}
	router := newCheckoutRouter(fakeService)

	body, contentType := checkoutBody(t, validFields(), "receipt.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/checkout", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}
	if fakeService.submitCalled != 1 {
		t.Fatalf("expected submit to be called once, got %d", fakeService.submitCalled)
	}
	if fakeService.lastForm.Name != "Aina" || fakeService.lastForm.Note != "leave at door" {
		t.Fatalf("unexpected form passed to service: %+v", fakeService.lastForm)
	}
}

func TestCheckoutValidationFailureBlocksSubmission(t *testing.T) {
	fakeService := &fakeCheckoutService{}
	router := newCheckoutRouter(fakeService)

	fields := validFields()
	fields["phone"] = "123"
	fields["email"] = "not-an-email"
	body, contentType := checkoutBody(t, fields, "receipt.png", "image/png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/checkout", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, recorder.Code)
	}
	if fakeService.submitCalled != 0 {
		t.Fatalf("service must not be called on validation failure")
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if _, ok := resp.Errors["phone"]; !ok {
		t.Fatalf("expected a phone error, got %v", resp.Errors)
	}
	if _, ok := resp.Errors["email"]; !ok {
		t.Fatalf("expected an email error, got %v", resp.Errors)
	}
}

func TestCheckoutMissingReceiptBlocksSubmission(t *testing.T) {
	fakeService := &fakeCheckoutService{}
	router := newCheckoutRouter(fakeService)

	body, contentType := checkoutBody(t, validFields(), "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/checkout", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, recorder.Code)
	}
	if fakeService.submitCalled != 0 {
		t.Fatalf("service must not be called without a receipt")
	}
}

func TestCheckoutNonImageReceiptBlocksSubmission(t *testing.T) {
	fakeService := &fakeCheckoutService{}
	router := newCheckoutRouter(fakeService)

	body, contentType := checkoutBody(t, validFields(), "notes.txt", "text/plain", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/checkout", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, recorder.Code)
	}
	if fakeService.submitCalled != 0 {
		t.Fatalf("service must not be called for a non-image receipt")
	}
}

func TestCheckoutSubmissionFailurePropagatesStatus(t *testing.T) {
	fakeService := &fakeCheckoutService{
		submitErr: &services.ServiceError{StatusCode: http.StatusBadGateway, Message: "order submission failed"},
	}
	router := newCheckoutRouter(fakeService)

	body, contentType := checkoutBody(t, validFields(), "receipt.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/checkout", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, recorder.Code)
	}
}
