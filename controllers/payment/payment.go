package paymentController

import (
	"cultura/config"
	"cultura/database"
	"cultura/middleware"
	"cultura/models"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
)

// InitStripe sets the Stripe API key from configuration. Called once at startup.
func InitStripe() {
	stripe.Key = config.AppConfig.StripeSecretKey
}

// CreateCheckoutSession creates a Stripe Checkout session for a package
// purchase or a staff seat bundle and returns the redirect URL. Fulfilment
// happens on the confirm endpoint, not via webhooks.
func CreateCheckoutSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCheckout").(*struct {
		Plan  string `json:"plan" validate:"required,oneof=individual business"`
		Seats int    `json:"seats" validate:"omitempty,min=1,max=500"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var priceID, purpose string
	quantity := int64(1)
	switch reqData.Plan {
	case "individual":
		priceID = config.AppConfig.StripePriceIndividual
		purpose = models.PaymentPurposePackage
	case "business":
		priceID = config.AppConfig.StripePriceSeat
		purpose = models.PaymentPurposeStaffSeats
		quantity = int64(reqData.Seats)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(quantity)},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(config.AppConfig.StripeReturnURL + "?status=success&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(config.AppConfig.StripeReturnURL + "?status=cancel"),
		CustomerEmail: stripe.String(user.Email),
		Metadata: map[string]string{
			"user_id": strconv.FormatUint(uint64(userID), 10),
			"purpose": purpose,
			"seats":   strconv.FormatInt(quantity, 10),
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		log.Printf("Error creating checkout session for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create checkout session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created!", fiber.Map{
		"sessionId":   sess.ID,
		"checkoutUrl": sess.URL,
	})
}

// ConfirmPayment verifies a checkout session with Stripe and records the
// immutable payment row, then applies the grant. The unique session ID makes
// re-confirmation idempotent.
func ConfirmPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedConfirm").(*struct {
		SessionID string `json:"sessionId" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Duplicate confirmation: already processed
	var existing models.Payment
	if err := db.Where("stripe_session_id = ? AND is_deleted = ?", reqData.SessionID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already processed!", existing)
	}

	sess, err := checkoutsession.Get(reqData.SessionID, nil)
	if err != nil {
		log.Printf("Error retrieving checkout session %s: %v", reqData.SessionID, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown checkout session!", nil)
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment not completed yet!", nil)
	}

	// The session must belong to the caller
	if sess.Metadata["user_id"] != strconv.FormatUint(uint64(userID), 10) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Checkout session belongs to another account!", nil)
	}

	purpose := sess.Metadata["purpose"]
	seats, _ := strconv.Atoi(sess.Metadata["seats"])
	if purpose != models.PaymentPurposeStaffSeats {
		seats = 0
	}

	paymentIntentID := ""
	if sess.PaymentIntent != nil {
		paymentIntentID = sess.PaymentIntent.ID
	}

	payment := models.Payment{
		UserID:                userID,
		Purpose:               purpose,
		Seats:                 seats,
		Amount:                sess.AmountTotal,
		Currency:              string(sess.Currency),
		Status:                models.PaymentStatusCompleted,
		StripeSessionID:       sess.ID,
		StripePaymentIntentID: paymentIntentID,
		PaidAt:                time.Now(),
	}

	// Record the payment and apply the grant atomically
	tx := db.Begin()
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	switch purpose {
	case models.PaymentPurposePackage:
		user.HasAccess = true
	case models.PaymentPurposeStaffSeats:
		user.SeatCredits += seats
		// Buying seats makes the account a business owner
		if user.Role == models.RoleIndividual {
			user.Role = models.RoleBusinessOwner
		}
	default:
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown payment purpose!", nil)
	}

	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply purchase!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed!", fiber.Map{
		"payment":     payment,
		"hasAccess":   user.HasAccess,
		"seatCredits": user.SeatCredits,
	})
}

// GetPaymentHistory returns the caller's payments
func GetPaymentHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Payment{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
