package handler

import (
	"credit-approval/internal/api/handler/dto"
	"credit-approval/internal/domain/customer"
	"credit-approval/internal/pkg/apperrors"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler_RegisterCustomer(t *testing.T) {
	t.Run("registers customer", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, logger)

		reg := customer.Registration{FirstName: "Aaron", LastName: "Garcia", Age: 30, PhoneNumber: 9876543210, MonthlyIncome: 75000}
		svc.On("RegisterCustomer", mock.Anything, reg).Return(&customer.Customer{
			ID:            301,
			FirstName:     "Aaron",
			LastName:      "Garcia",
			Age:           30,
			PhoneNumber:   9876543210,
			MonthlySalary: 75000,
			ApprovedLimit: 2700000,
		}, nil).Once()

		body := `{"first_name":"Aaron","last_name":"Garcia","age":30,"monthly_income":75000,"phone_number":9876543210}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.RegisterCustomer(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{
			"customer_id": 301,
			"name": "Aaron Garcia",
			"age": 30,
			"monthly_income": 75000.00,
			"approved_limit": 2700000,
			"phone_number": 9876543210
		}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, logger)

		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"first_name":"Aaron","age":-1}`))
		rec := httptest.NewRecorder()

		h.RegisterCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		fields := make([]string, len(resp.Error.Details))
		for i, d := range resp.Error.Details {
			fields[i] = d.Field
		}
		assert.Equal(t, []string{"last_name", "age", "monthly_income", "phone_number"}, fields)
		svc.AssertNotCalled(t, "RegisterCustomer", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, logger)

		body := `{"first_name":"A","last_name":"B","age":30,"monthly_income":1,"phone_number":1,"salary":5}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.RegisterCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown field")
	})

	t.Run("database failure is a generic 500", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, logger)
		svc.On("RegisterCustomer", mock.Anything, mock.Anything).
			Return(nil, apperrors.WrapDatabaseError(fmt.Errorf("connection refused"), "failed to create customer")).Once()

		body := `{"first_name":"A","last_name":"B","age":30,"monthly_income":1,"phone_number":1}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.RegisterCustomer(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestNewCustomerHandler_PanicsOnNilService(t *testing.T) {
	assert.Panics(t, func() { NewCustomerHandler(nil, logger) })
}
