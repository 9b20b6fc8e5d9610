package staffController

import (
	"cultura/database"
	"cultura/middleware"
	"cultura/models"
	"cultura/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AssignSeat assigns one of the owner's seat credits to a staff email and
// sends the invite. The seat stays INVITED until the staff account accepts.
func AssignSeat(c *fiber.Ctx) error {
	owner, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssignSeat").(*struct {
		Email string `json:"email" validate:"required,email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if owner.SeatCredits < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No seat credits available. Purchase more seats first!", nil)
	}

	db := database.Database.Db

	// One live seat per email per owner
	var existingSeat models.StaffSeat
	if err := db.Where("owner_id = ? AND staff_email = ? AND status IN ? AND is_deleted = ?",
		owner.ID, reqData.Email, []string{models.SeatStatusInvited, models.SeatStatusActive}, false).
		First(&existingSeat).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A seat is already assigned to this email!", nil)
	}

	// Seats trace back to the purchase that funded them
	var payment models.Payment
	if err := db.Where("user_id = ? AND purpose = ? AND is_deleted = ?", owner.ID, models.PaymentPurposeStaffSeats, false).
		Order("created_at desc").First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No seat purchase found!", nil)
	}

	seat := models.StaffSeat{
		OwnerID:     owner.ID,
		PaymentID:   payment.ID,
		StaffEmail:  reqData.Email,
		InviteToken: uuid.NewString(),
		Status:      models.SeatStatusInvited,
	}

	// If the invitee already has an account, link it up front
	var staffUser models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&staffUser).Error; err == nil {
		seat.StaffUserID = &staffUser.ID
	}

	// Consume the credit and create the seat atomically
	tx := db.Begin()
	if err := tx.Create(&seat).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign seat!", nil)
	}

	owner.SeatCredits--
	if err := tx.Save(owner).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update seat credits!", nil)
	}
	tx.Commit()

	go func(email, ownerName, token string) {
		if err := utils.SendSeatInviteEmail(email, ownerName, token); err != nil {
			log.Printf("Error sending seat invite to %s: %v", email, err)
		}
	}(reqData.Email, owner.Name, seat.InviteToken)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Seat assigned and invite sent!", fiber.Map{
		"seat":             seat,
		"remainingCredits": owner.SeatCredits,
	})
}

// AcceptSeat activates an invited seat for the logged-in staff account
func AcceptSeat(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedAcceptSeat").(*struct {
		Token string `json:"token" validate:"required,uuid4"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var seat models.StaffSeat
	if err := db.Where("invite_token = ? AND status = ? AND is_deleted = ?", reqData.Token, models.SeatStatusInvited, false).First(&seat).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invite not found or already used!", nil)
	}

	if seat.StaffEmail != user.Email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This invite was issued for a different email address!", nil)
	}

	now := time.Now()
	seat.StaffUserID = &user.ID
	seat.Status = models.SeatStatusActive
	seat.AcceptedAt = &now

	user.HasAccess = true
	if user.Role == models.RoleIndividual {
		user.Role = models.RoleStaff
	}

	tx := db.Begin()
	if err := tx.Save(&seat).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept seat!", nil)
	}
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant access!", nil)
	}
	tx.Commit()

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seat accepted, course access granted!", fiber.Map{
		"seat": seat,
		"user": user,
	})
}

// RevokeSeat revokes a seat, returns the credit to the owner and withdraws the
// staff user's access unless they hold their own package purchase.
func RevokeSeat(c *fiber.Ctx) error {
	owner, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	seatID, err := c.ParamsInt("id")
	if err != nil || seatID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid seat ID!", nil)
	}

	db := database.Database.Db

	var seat models.StaffSeat
	if err := db.Where("id = ? AND owner_id = ? AND is_deleted = ?", seatID, owner.ID, false).First(&seat).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Seat not found!", nil)
	}

	if seat.Status == models.SeatStatusRevoked {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Seat already revoked!", nil)
	}

	now := time.Now()
	seat.Status = models.SeatStatusRevoked
	seat.RevokedAt = &now

	tx := db.Begin()
	if err := tx.Save(&seat).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to revoke seat!", nil)
	}

	owner.SeatCredits++
	if err := tx.Save(owner).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to return seat credit!", nil)
	}

	// Withdraw access unless the staff user bought their own package
	if seat.StaffUserID != nil {
		var staffUser models.User
		if err := tx.Where("id = ? AND is_deleted = ?", *seat.StaffUserID, false).First(&staffUser).Error; err == nil {
			var ownPackage models.Payment
			hasOwn := tx.Where("user_id = ? AND purpose = ? AND is_deleted = ?",
				staffUser.ID, models.PaymentPurposePackage, false).First(&ownPackage).Error == nil
			if !hasOwn {
				staffUser.HasAccess = false
				if err := tx.Save(&staffUser).Error; err != nil {
					tx.Rollback()
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to withdraw staff access!", nil)
				}
			}
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seat revoked!", fiber.Map{
		"seat":             seat,
		"remainingCredits": owner.SeatCredits,
	})
}

// ListSeats returns the owner's seats with their status
func ListSeats(c *fiber.Ctx) error {
	owner, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var seats []models.StaffSeat
	if err := database.Database.Db.Where("owner_id = ? AND is_deleted = ?", owner.ID, false).Order("created_at desc").Find(&seats).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch seats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Seats fetched successfully!", fiber.Map{
		"seats":            seats,
		"availableCredits": owner.SeatCredits,
	})
}
