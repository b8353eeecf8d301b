package routes

import (
	"trustify_claims/internal/adapter/http/handlers"
	"trustify_claims/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims      = "/claims"
	PathAdminClaims = "/admin/claims"
)

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler, adminHandler *handlers.AdminClaimHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", claimHandler.SubmitClaim)
		claims.GET("/my-claims", claimHandler.GetMyClaims)
		claims.GET("/my-claims/status/:status", claimHandler.GetMyClaimsByStatus)
		claims.GET("/my-claims/policy-type/:policyType", claimHandler.GetMyClaimsByPolicyType)
		claims.GET("/policy/:policyNumber", claimHandler.GetClaimsByPolicy)
		claims.GET("/:claimNumber", claimHandler.GetClaim)
		claims.PATCH("/:claimNumber/cancel", claimHandler.CancelClaim)
	}

	admin := rg.Group(PathAdminClaims)
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", adminHandler.ListAllClaims)
		admin.GET("/status/:status", adminHandler.ListClaimsByStatus)
		admin.GET("/statistics", adminHandler.GetStatistics)
		admin.PATCH("/:claimNumber/under-review", adminHandler.MoveToUnderReview)
		admin.PATCH("/:claimNumber/approve", adminHandler.ApproveClaim)
		admin.PATCH("/:claimNumber/reject", adminHandler.RejectClaim)
		admin.PATCH("/:claimNumber/settle", adminHandler.SettleClaim)
	}
}
