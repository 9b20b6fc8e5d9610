package adminController

import (
	"cultura/cms"
	"cultura/config"
	"cultura/database"
	"cultura/middleware"
	"cultura/models"
	courseModels "cultura/models/course"
	"cultura/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListUsers lists accounts for the admin console
func ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	role := c.Query("role")

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if role != "" {
		db = db.Where("role = ?", role)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ResetProgress empties a user's progress row for a course and bumps the
// epoch, so stale client caches cannot write the old completions back.
func ResetProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetProgress").(*struct {
		UserID   uint   `json:"userId"`
		CourseID string `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var row models.UserCourseProgress
	if err := db.Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).First(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No progress recorded for this user and course!", nil)
	}

	row.CompletedModuleIDs = "[]"
	row.Percent = nil
	row.LastModuleID = nil
	row.LastLessonID = nil
	row.Version++
	row.Epoch++

	if err := db.Save(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress reset successfully!", fiber.Map{
		"userId":   reqData.UserID,
		"courseId": reqData.CourseID,
		"epoch":    row.Epoch,
	})
}

// TriggerCatalogSync runs the CMS catalog sync on demand
func TriggerCatalogSync(c *fiber.Ctx) error {
	client := cms.NewClient(config.AppConfig.CMSBaseURL, config.AppConfig.CMSAPIKey)

	if err := cms.SyncCatalog(database.Database.Db, client); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Catalog sync failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Catalog sync completed!", nil)
}

// ListCertificateRequests lists pending certificate requests
func ListCertificateRequests(c *fiber.Ctx) error {
	status := c.Query("status", "PENDING")

	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", status, false).Order("requested_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificate requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate requests fetched!", fiber.Map{
		"requests": requests,
	})
}

// ApproveCertificate approves a pending request and issues the certificate
func ApproveCertificate(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(uint)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
	}

	db := database.Database.Db

	var request courseModels.CertificateRequest
	if err := db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate request already reviewed!", nil)
	}

	now := time.Now()
	request.Status = "APPROVED"
	request.ApprovedAt = &now
	request.ApprovedBy = &adminID

	certificate := courseModels.Certificate{
		UserID:            request.UserID,
		CourseCMSID:       request.CourseCMSID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          now,
	}

	tx := db.Begin()
	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve request!", nil)
	}
	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	tx.Commit()

	// Notify the learner, non-blocking
	go func(cert courseModels.Certificate) {
		var user models.User
		if err := database.Database.Db.Where("id = ?", cert.UserID).First(&user).Error; err != nil {
			return
		}
		var course courseModels.Course
		if err := database.Database.Db.Where("cms_id = ?", cert.CourseCMSID).First(&course).Error; err != nil {
			return
		}
		if err := utils.SendCertificateEmail(user.Email, user.Name, course.Title, cert.CertificateNumber); err != nil {
			log.Printf("Error sending certificate email to %s: %v", user.Email, err)
		}
	}(certificate)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate approved and issued!", fiber.Map{
		"request":     request,
		"certificate": certificate,
	})
}

// RejectCertificate rejects a pending certificate request
func RejectCertificate(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
	}

	reqData := new(struct {
		Reason string `json:"reason"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var request courseModels.CertificateRequest
	if err := db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate request already reviewed!", nil)
	}

	request.Status = "REJECTED"
	request.RejectionReason = reqData.Reason

	if err := db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected!", request)
}

// GetDashboard returns admin dashboard counters
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, paidUsers, totalCourses, totalPayments, pendingCertificates int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND has_access = ?", false, true).Count(&paidUsers)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&totalCourses)
	db.Model(&models.Payment{}).Where("is_deleted = ?", false).Count(&totalPayments)
	db.Model(&courseModels.CertificateRequest{}).Where("is_deleted = ? AND status = ?", false, "PENDING").Count(&pendingCertificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_users":          totalUsers,
		"paid_users":           paidUsers,
		"published_courses":    totalCourses,
		"total_payments":       totalPayments,
		"pending_certificates": pendingCertificates,
	})
}
