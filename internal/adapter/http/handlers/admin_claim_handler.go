package handlers

import (
	"net/http"

	"trustify_claims/internal/adapter/http/dto/request"
	"trustify_claims/internal/adapter/http/dto/response"
	"trustify_claims/internal/adapter/http/middleware"
	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminClaimHandler exposes the review-side transitions. RequireAdmin runs in
// front of these routes, but the usecase re-checks the role anyway.

type AdminClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewAdminClaimHandler(uc usecase.IClaimUseCase) *AdminClaimHandler {
	return &AdminClaimHandler{usecase: uc}
}

func (h *AdminClaimHandler) ListAllClaims(c *gin.Context) {
	h.list(c, func(caller entities.Identity) ([]entities.Claim, error) {
		return h.usecase.ListAll(c.Request.Context(), caller)
	})
}

func (h *AdminClaimHandler) ListClaimsByStatus(c *gin.Context) {
	h.list(c, func(caller entities.Identity) ([]entities.Claim, error) {
		return h.usecase.ListByStatus(c.Request.Context(), caller, entities.ClaimStatus(c.Param("status")))
	})
}

func (h *AdminClaimHandler) MoveToUnderReview(c *gin.Context) {
	h.transition(c, func(caller entities.Identity) (entities.Claim, error) {
		return h.usecase.MoveToUnderReview(c.Request.Context(), caller, c.Param("claimNumber"))
	})
}

func (h *AdminClaimHandler) ApproveClaim(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	var payload request.ApproveClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.usecase.Approve(c.Request.Context(), caller, usecase.ApproveClaimInput{
		ClaimNumber:    c.Param("claimNumber"),
		ApprovedAmount: payload.ApprovedAmount,
		AdminNotes:     payload.AdminNotes,
	})
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *AdminClaimHandler) RejectClaim(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	var payload request.RejectClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.usecase.Reject(c.Request.Context(), caller, usecase.RejectClaimInput{
		ClaimNumber:     c.Param("claimNumber"),
		RejectionReason: payload.RejectionReason,
		AdminNotes:      payload.AdminNotes,
	})
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func (h *AdminClaimHandler) SettleClaim(c *gin.Context) {
	h.transition(c, func(caller entities.Identity) (entities.Claim, error) {
		return h.usecase.Settle(c.Request.Context(), caller, c.Param("claimNumber"))
	})
}

func (h *AdminClaimHandler) GetStatistics(c *gin.Context) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	stats, err := h.usecase.Statistics(c.Request.Context(), caller)
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatistics(stats))
}

func (h *AdminClaimHandler) list(c *gin.Context, fetch func(entities.Identity) ([]entities.Claim, error)) {
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

func (h *AdminClaimHandler) transition(c *gin.Context, run func(entities.Identity) (entities.Claim, error)) {
	caller, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(errNoIdentity.HTTPStatus, errNoIdentity.ToHTTPError())
		return
	}

	claim, err := run(caller)
	if err != nil {
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaim(claim))
}
