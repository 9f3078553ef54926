package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dayflow/internal/payroll"
	payrollerrors "dayflow/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	generateFn func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error)
	listFn     func(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollResponse, error)
	getByIDFn  func(ctx context.Context, id string) (payroll.PayrollResponse, error)
}

func (f *fakePayrollService) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	return f.generateFn(ctx, req)
}

func (f *fakePayrollService) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollResponse, error) {
	return f.listFn(ctx, filter)
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, id)
}

func TestPayrollHandler_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
				assert.Equal(t, 6, req.Month)
				assert.Equal(t, 2025, req.Year)
				return payroll.GeneratePayrollResponse{
					Generated: 2,
					Payroll:   []payroll.PayrollResponse{{Month: 6, Year: 2025}, {Month: 6, Year: 2025}},
				}, nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{"month":6,"year":2025}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Generate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var resp payroll.GeneratePayrollResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, 2, resp.Generated)
		assert.Len(t, resp.Payroll, 2)
	})

	t.Run("negative case - missing period fails binding", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})

	t.Run("negative case - no active employees maps to 400 EMPTY_RESULT", func(t *testing.T) {
		svc := &fakePayrollService{
			generateFn: func(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
				return payroll.GeneratePayrollResponse{}, payrollerrors.ErrNoActiveEmployees
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(`{"month":6,"year":2025}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "EMPTY_RESULT", env.Error.Code)
	})
}

func TestPayrollHandler_Get(t *testing.T) {
	t.Run("negative case - unknown payslip maps to 404 NOT_FOUND", func(t *testing.T) {
		svc := &fakePayrollService{
			getByIDFn: func(ctx context.Context, id string) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{}, payrollerrors.ErrPayrollNotFound
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/unknown", nil)
		c.Params = gin.Params{{Key: "id", Value: "unknown"}}

		h.Get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestPayrollHandler_List(t *testing.T) {
	svc := &fakePayrollService{
		listFn: func(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayrollResponse, error) {
			assert.Equal(t, 6, filter.Month)
			assert.Equal(t, 2025, filter.Year)
			assert.Equal(t, "abc", filter.EmployeeID)
			return []payroll.PayrollResponse{{Month: 6, Year: 2025, NetSalary: 29793}}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls?month=6&year=2025&employee_id=abc", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var resp []payroll.PayrollResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, int64(29793), resp[0].NetSalary)
}
