package handlers

import (
	"errors"
	"net/http"

	"trustify_claims/internal/adapter/http/dto/request"
	"trustify_claims/internal/adapter/http/dto/response"
	"trustify_claims/internal/adapter/http/middleware"
	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/usecase"
	"trustify_claims/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid claim payload", http.StatusBadRequest)
	errNoIdentity          = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// ClaimHandler handles the owner-facing claim endpoints. Admin transitions
// live on AdminClaimHandler.

type ClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewClaimHandler(uc usecase.IClaimUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	var payload request.SubmitClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	incidentDate, err := payload.ParseIncidentDate()
	if err != nil {
		appErr := pkg.NewValidationError("INVALID_CLAIM_INPUT", "Invalid claim payload",
			[]pkg.HTTPFieldError{{Field: "incident_date", Message: err.Error()}}, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.usecase.Submit(c.Request.Context(), caller, usecase.SubmitClaimInput{
		PolicyNumber:     payload.PolicyNumber,
		PolicyType:       entities.PolicyType(payload.PolicyType),
		ClaimType:        entities.ClaimType(payload.ClaimType),
		IncidentDate:     incidentDate,
		ClaimedAmount:    payload.ClaimedAmount,
		Description:      payload.Description,
		IncidentLocation: payload.IncidentLocation,
		DocumentsPath:    payload.DocumentsPath,
		Severity:         entities.Severity(payload.Severity),
	})
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClaim(claim))
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	claim, err := h.usecase.GetByNumber(c.Request.Context(), caller, c.Param("claimNumber"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *ClaimHandler) GetMyClaims(c *gin.Context) {
	h.list(c, func(caller entities.Identity) ([]entities.Claim, error) {
		return h.usecase.ListMine(c.Request.Context(), caller)
	})
}

func (h *ClaimHandler) GetMyClaimsByStatus(c *gin.Context) {
	h.list(c, func(caller entities.Identity) ([]entities.Claim, error) {
		return h.usecase.ListMineByStatus(c.Request.Context(), caller, entities.ClaimStatus(c.Param("status")))
	})
}

func (h *ClaimHandler) GetMyClaimsByPolicyType(c *gin.Context) {
	h.list(c, func(caller entities.Identity) ([]entities.Claim, error) {
		return h.usecase.ListMineByPolicyType(c.Request.Context(), caller, entities.PolicyType(c.Param("policyType")))
	})
}

func (h *ClaimHandler) GetClaimsByPolicy(c *gin.Context) {
	h.list(c, func(caller entities.Identity) ([]entities.Claim, error) {
		return h.usecase.ListByPolicy(c.Request.Context(), caller, c.Param("policyNumber"))
	})
}

func (h *ClaimHandler) CancelClaim(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	claim, err := h.usecase.Cancel(c.Request.Context(), caller, c.Param("claimNumber"))
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *ClaimHandler) list(c *gin.Context, fetch func(entities.Identity) ([]entities.Claim, error)) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	claims, err := fetch(caller)
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaims(claims))
}

// bindingError reshapes gin binding failures. Field-level validator hits keep
// their field names; anything else is an opaque bad payload.
func bindingError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]pkg.HTTPFieldError, 0, len(verrs))
		for _, ve := range verrs {
			fields = append(fields, pkg.HTTPFieldError{Field: ve.Field(), Message: "failed " + ve.Tag() + " validation"})
		}
		return pkg.NewValidationError("INVALID_CLAIM_INPUT", "Invalid claim payload", fields, http.StatusBadRequest)
	}
	return errInvalidClaimPayload
}

func mapClaimError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	var terr *usecase.InvalidTransitionError

	switch {
	case errors.As(err, &verr):
		fields := make([]pkg.HTTPFieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, pkg.HTTPFieldError{Field: f.Field, Message: f.Message})
		}
		return pkg.NewValidationError("VALIDATION_ERROR", "Invalid claim input", fields, http.StatusBadRequest)
	case errors.As(err, &terr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", terr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You don't have permission to access this claim", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAdminRequired):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidClaimNumber), errors.Is(err, usecase.ErrInvalidClaimStatus), errors.Is(err, usecase.ErrInvalidPolicyType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Referenced policy does not exist", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNumberConflict):
		return pkg.NewDomainErrorSimple("CLAIM_NUMBER_CONFLICT", "Claim number collision, retry the submission", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
