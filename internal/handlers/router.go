package handlers

import (
	"github.com/campushire/campushire/internal/auth"
	"github.com/campushire/campushire/internal/models"
	"github.com/gin-gonic/gin"
)

// Set bundles every resource handler for route registration.
type Set struct {
	Auth         *AuthHandler
	Company      *CompanyHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Profile      *ProfileHandler
	University   *UniversityHandler
}

// RegisterRoutes wires the full HTTP surface onto the router.
func RegisterRoutes(r *gin.Engine, jwtSecret string, h *Set) {
	api := r.Group("/api")

	api.GET("/health", HealthCheck)

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Public read-only profiles, keyed by the owning user's id.
	api.GET("/public/company/:id", h.Company.Public)
	api.GET("/public/student/:id", h.Profile.Public)
	api.GET("/public/university/:id", h.University.Public)

	// Public job board; applying requires a student account.
	api.GET("/jobs", h.Jobs.Browse)
	api.GET("/jobs/:jobId", h.Jobs.BrowseGet)
	api.POST("/jobs/:jobId/apply",
		auth.RequireAuth(jwtSecret), auth.RequireRole(models.RoleStudent), h.Jobs.Apply)

	company := api.Group("/company",
		auth.RequireAuth(jwtSecret), auth.RequireRole(models.RoleCompany))
	{
		company.GET("", h.Company.Get)
		company.PUT("", h.Company.Save)
		company.PUT("/social-links", h.Company.SaveSocialLinks)
		company.PATCH("/media", h.Company.UploadMedia)
		company.DELETE("/media/clear", h.Company.ClearMedia)

		company.POST("/publish", h.Jobs.Publish)
		company.GET("/publish", h.Jobs.List)
		company.GET("/publish/:postId", h.Jobs.Get)
		company.PUT("/publish/:postId", h.Jobs.Update)
		company.DELETE("/publish/:postId", h.Jobs.Delete)

		company.GET("/job/:jobId/applicants", h.Applications.Applicants)
		company.GET("/job/:jobId/application-stats", h.Applications.Stats)
		company.PUT("/applications/:applicationId/status", h.Applications.UpdateStatus)
		company.GET("/applicant/:studentId/profile", h.Applications.ApplicantProfile)
	}

	profile := api.Group("/profile",
		auth.RequireAuth(jwtSecret), auth.RequireRole(models.RoleStudent))
	{
		profile.GET("", h.Profile.Get)
		profile.PUT("", h.Profile.Save)
		profile.PATCH("/media", h.Profile.UploadMedia)
		profile.DELETE("/media/clear", h.Profile.ClearMedia)

		profile.POST("/education", h.Profile.AddEducation)
		profile.DELETE("/education/:id", h.Profile.DeleteEducation)
		profile.POST("/experience", h.Profile.AddExperience)
		profile.DELETE("/experience/:id", h.Profile.DeleteExperience)
		profile.POST("/certifications", h.Profile.AddCertification)
		profile.DELETE("/certifications/:id", h.Profile.DeleteCertification)
		profile.POST("/skills", h.Profile.AddSkill)
		profile.DELETE("/skills/:id", h.Profile.DeleteSkill)
	}

	university := api.Group("/university",
		auth.RequireAuth(jwtSecret), auth.RequireRole(models.RoleUniversity))
	{
		university.GET("", h.University.Get)
		university.PUT("", h.University.Save)
		university.PATCH("/media", h.University.UploadMedia)
		university.DELETE("/media/clear", h.University.ClearMedia)

		university.POST("/departments", h.University.AddDepartment)
		university.DELETE("/departments/:id", h.University.DeleteDepartment)
		university.POST("/programs", h.University.AddProgram)
		university.DELETE("/programs/:id", h.University.DeleteProgram)
		university.POST("/facilities", h.University.AddFacility)
		university.DELETE("/facilities/:id", h.University.DeleteFacility)
		university.POST("/placements", h.University.AddPlacement)
		university.DELETE("/placements/:id", h.University.DeletePlacement)
		university.POST("/rankings", h.University.AddRanking)
		university.DELETE("/rankings/:id", h.University.DeleteRanking)
		university.POST("/research", h.University.AddResearch)
		university.DELETE("/research/:id", h.University.DeleteResearch)
	}
}
