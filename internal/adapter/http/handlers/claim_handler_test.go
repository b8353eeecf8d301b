package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trustify_claims/internal/adapter/http/handlers/mocks"
	"trustify_claims/internal/adapter/http/middleware"
	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	testUser  = entities.Identity{SubjectID: "user-1", Email: "user@example.com", Roles: []string{entities.RoleUser}}
	testAdmin = entities.Identity{SubjectID: "admin-1", Email: "admin@example.com", Roles: []string{entities.RoleAdmin}}
)

func routerAs(id entities.Identity) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, id)
		c.Next()
	})
	return r
}

func sampleClaim(status entities.ClaimStatus) entities.Claim {
	return entities.Claim{
		ClaimNumber:   "CLM-12345678-ABCDEF01",
		PolicyNumber:  "POL-123",
		PolicyType:    entities.PolicyTypeCar,
		ClaimType:     entities.ClaimTypeAccident,
		UserID:        testUser.SubjectID,
		Email:         testUser.Email,
		Status:        status,
		ClaimedAmount: 1500,
		SubmittedAt:   time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

func TestClaimHandler_SubmitClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := routerAs(testUser)
		r.POST("/api/claims", h.SubmitClaim)

		req := httptest.NewRequest(http.MethodPost, "/api/claims", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad incident date format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		r := routerAs(testUser)
		r.POST("/api/claims", h.SubmitClaim)

		body := `{"policy_number":"POL-123","policy_type":"CAR","claim_type":"ACCIDENT_CLAIM","incident_date":"31/12/2025","claimed_amount":1500,"description":"Rear-ended at a stop light, bumper damaged"}`
		req := httptest.NewRequest(http.MethodPost, "/api/claims", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), testUser, gomock.AssignableToTypeOf(usecase.SubmitClaimInput{})).DoAndReturn(
			func(_ context.Context, _ entities.Identity, input usecase.SubmitClaimInput) (entities.Claim, error) {
				if input.PolicyNumber != "POL-123" || input.ClaimType != entities.ClaimTypeAccident {
					t.Fatalf("unexpected input: %+v", input)
				}
				if input.IncidentDate.Format("2006-01-02") != "2025-12-01" {
					t.Fatalf("unexpected incident date %v", input.IncidentDate)
				}
				return sampleClaim(entities.ClaimStatusSubmitted), nil
			},
		)

		r := routerAs(testUser)
		r.POST("/api/claims", h.SubmitClaim)

		body := `{"policy_number":"POL-123","policy_type":"CAR","claim_type":"ACCIDENT_CLAIM","incident_date":"2025-12-01","claimed_amount":1500,"description":"Rear-ended at a stop light, bumper damaged"}`
		req := httptest.NewRequest(http.MethodPost, "/api/claims", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["claim_number"] != "CLM-12345678-ABCDEF01" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("validation error carries fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), testUser, gomock.Any()).Return(entities.Claim{},
			&usecase.ValidationError{Fields: []usecase.FieldError{{Field: "description", Message: "description must be between 20 and 2000 characters"}}})

		r := routerAs(testUser)
		r.POST("/api/claims", h.SubmitClaim)

		body := `{"policy_number":"POL-123","policy_type":"CAR","claim_type":"ACCIDENT_CLAIM","incident_date":"2025-12-01","claimed_amount":1500,"description":"Rear-ended at a stop light, bumper damaged"}`
		req := httptest.NewRequest(http.MethodPost, "/api/claims", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var resp struct {
			Fields []struct {
				Field string `json:"field"`
			} `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp.Fields) != 1 || resp.Fields[0].Field != "description" {
			t.Fatalf("unexpected fields: %s", w.Body.String())
		}
	})
}

func TestClaimHandler_GetClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		uc.EXPECT().GetByNumber(gomock.Any(), testUser, "CLM-missing").Return(entities.Claim{}, usecase.ErrClaimNotFound)

		r := routerAs(testUser)
		r.GET("/api/claims/:claimNumber", h.GetClaim)

		req := httptest.NewRequest(http.MethodGet, "/api/claims/CLM-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		uc.EXPECT().GetByNumber(gomock.Any(), testUser, "CLM-1").Return(entities.Claim{}, usecase.ErrClaimForbidden)

		r := routerAs(testUser)
		r.GET("/api/claims/:claimNumber", h.GetClaim)

		req := httptest.NewRequest(http.MethodGet, "/api/claims/CLM-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		c := sampleClaim(entities.ClaimStatusSubmitted)
		uc.EXPECT().GetByNumber(gomock.Any(), testUser, c.ClaimNumber).Return(c, nil)

		r := routerAs(testUser)
		r.GET("/api/claims/:claimNumber", h.GetClaim)

		req := httptest.NewRequest(http.MethodGet, "/api/claims/"+c.ClaimNumber, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClaimHandler_CancelClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), testUser, "CLM-1").Return(entities.Claim{}, &usecase.InvalidTransitionError{
			Operation: "cancelled",
			Required:  []entities.ClaimStatus{entities.ClaimStatusSubmitted, entities.ClaimStatusUnderReview},
			Actual:    entities.ClaimStatusApproved,
		})

		r := routerAs(testUser)
		r.PATCH("/api/claims/:claimNumber/cancel", h.CancelClaim)

		req := httptest.NewRequest(http.MethodPatch, "/api/claims/CLM-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), testUser, "CLM-1").Return(sampleClaim(entities.ClaimStatusCancelled), nil)

		r := routerAs(testUser)
		r.PATCH("/api/claims/:claimNumber/cancel", h.CancelClaim)

		req := httptest.NewRequest(http.MethodPatch, "/api/claims/CLM-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClaimHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("my claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		uc.EXPECT().ListMine(gomock.Any(), testUser).Return([]entities.Claim{sampleClaim(entities.ClaimStatusSubmitted)}, nil)

		r := routerAs(testUser)
		r.GET("/api/claims/my-claims", h.GetMyClaims)

		req := httptest.NewRequest(http.MethodGet, "/api/claims/my-claims", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("expected one claim, got %d", len(resp))
		}
	})

	t.Run("repo failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc)

		uc.EXPECT().ListMine(gomock.Any(), testUser).Return(nil, errors.New("db"))

		r := routerAs(testUser)
		r.GET("/api/claims/my-claims", h.GetMyClaims)

		req := httptest.NewRequest(http.MethodGet, "/api/claims/my-claims", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAdminClaimHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewAdminClaimHandler(uc)

		uc.EXPECT().Approve(gomock.Any(), testAdmin, usecase.ApproveClaimInput{
			ClaimNumber:    "CLM-1",
			ApprovedAmount: 1200,
			AdminNotes:     "damage assessment complete",
		}).Return(sampleClaim(entities.ClaimStatusApproved), nil)

		r := routerAs(testAdmin)
		r.PATCH("/api/admin/claims/:claimNumber/approve", h.ApproveClaim)

		body := `{"approved_amount":1200,"admin_notes":"damage assessment complete"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/claims/CLM-1/approve", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("reject missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewAdminClaimHandler(uc)

		r := routerAs(testAdmin)
		r.PATCH("/api/admin/claims/:claimNumber/reject", h.RejectClaim)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/claims/CLM-1/reject", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("settle from wrong status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewAdminClaimHandler(uc)

		uc.EXPECT().Settle(gomock.Any(), testAdmin, "CLM-1").Return(entities.Claim{}, &usecase.InvalidTransitionError{
			Operation: "settled",
			Required:  []entities.ClaimStatus{entities.ClaimStatusApproved},
			Actual:    entities.ClaimStatusRejected,
		})

		r := routerAs(testAdmin)
		r.PATCH("/api/admin/claims/:claimNumber/settle", h.SettleClaim)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/claims/CLM-1/settle", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}

		var resp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		want := "claim can only be settled from APPROVED status. Current status: REJECTED"
		if resp.Message != want {
			t.Fatalf("unexpected message %q", resp.Message)
		}
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewAdminClaimHandler(uc)

		uc.EXPECT().MoveToUnderReview(gomock.Any(), testUser, "CLM-1").Return(entities.Claim{}, usecase.ErrAdminRequired)

		r := routerAs(testUser)
		r.PATCH("/api/admin/claims/:claimNumber/under-review", h.MoveToUnderReview)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/claims/CLM-1/under-review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("statistics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewAdminClaimHandler(uc)

		uc.EXPECT().Statistics(gomock.Any(), testAdmin).Return(entities.ClaimStatistics{
			Total: 5,
			ByStatus: map[entities.ClaimStatus]int64{
				entities.ClaimStatusSubmitted: 2,
				entities.ClaimStatusApproved:  3,
			},
		}, nil)

		r := routerAs(testAdmin)
		r.GET("/api/admin/claims/statistics", h.GetStatistics)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/claims/statistics", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["totalClaims"] != float64(5) || resp["approvedClaims"] != float64(3) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
