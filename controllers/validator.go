package controllers

import (
	"errors"
	"mime/multipart"
	"regexp"
	"strings"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validation constants
const (
	MaxReceiptSize = 5 * 1024 * 1024 // 5MB
)

var (
	// Malaysian mobile shape: 10-11 digits, optionally prefixed with the 60
	// country code, after stripping spaces, dashes and plus signs.
	phonePattern = regexp.MustCompile(`^(0\d{9,10}|60\d{9,10})$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	phoneStripper = strings.NewReplacer(" ", "", "-", "", "+", "")
)

// checkoutForm mirrors models.ContactForm with the required-field rules.
type checkoutForm struct {
	Name    string `validate:"required"`
	Address string `validate:"required"`
	Phone   string `validate:"required"`
	Email   string `validate:"required"`
}

// RequestValidator handles all input validation.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// ParseListParams validates and parses catalog filter parameters.
func (rv *RequestValidator) ParseListParams(c *gin.Context) (services.ListProductsParams, error) {
	params := services.ListProductsParams{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
		Sort:     strings.ToLower(strings.TrimSpace(c.Query("sort"))),
	}

	switch params.Sort {
	case "", services.SortNone, services.SortPriceAsc, services.SortPriceDesc:
		return params, nil
	default:
		return params, errors.New("invalid sort value")
	}
}

// ValidateCheckout runs all checkout field checks and returns a field-keyed
// error map. Submission is blocked while the map is non-empty. The receipt
// size and type checks happen here, before anything is read or sent.
func (rv *RequestValidator) ValidateCheckout(form models.ContactForm, receipt *multipart.FileHeader) map[string]string {
	fieldErrors := make(map[string]string)

	required := checkoutForm{
		Name:    strings.TrimSpace(form.Name),
		Address: strings.TrimSpace(form.Address),
		Phone:   strings.TrimSpace(form.Phone),
		Email:   strings.TrimSpace(form.Email),
	}
	if err := rv.validate.Struct(&required); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				fieldErrors[strings.ToLower(fieldErr.Field())] = fieldErr.Field() + " is required"
			}
		}
	}

	if _, seen := fieldErrors["phone"]; !seen && !ValidPhone(form.Phone) {
		fieldErrors["phone"] = "Please enter a valid Malaysian phone number (10-11 digits, e.g., 0123456789)"
	}
	if _, seen := fieldErrors["email"]; !seen && !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		fieldErrors["email"] = "Please enter a valid email address (e.g., example@gmail.com)"
	}

	switch {
	case receipt == nil:
		fieldErrors["receipt"] = "Please upload your payment receipt"
	case receipt.Size > MaxReceiptSize:
		fieldErrors["receipt"] = "File is too large! Please choose an image under 5MB."
	case !strings.HasPrefix(receipt.Header.Get("Content-Type"), "image/"):
		fieldErrors["receipt"] = "Please upload an image file (JPG, PNG, etc.)"
	}

	return fieldErrors
}

// ValidPhone reports whether the phone number has the expected Malaysian
// mobile shape once separators are stripped.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phoneStripper.Replace(strings.TrimSpace(phone)))
}
