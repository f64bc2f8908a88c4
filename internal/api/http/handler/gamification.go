package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
	"github.com/trimsy-app/trimsy_backend/internal/service/loyalty"
)

type GamificationHandler struct {
	svc loyalty.Service
}

func NewGamificationHandler(svc loyalty.Service) *GamificationHandler {
	return &GamificationHandler{svc: svc}
}

func mapLoyaltyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, loyalty.ErrCustomerNotFound),
		errors.Is(err, loyalty.ErrRewardNotFound),
		errors.Is(err, loyalty.ErrBusinessNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, loyalty.ErrInsufficientPoints),
		errors.Is(err, loyalty.ErrOutOfStock):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /gamification/wallet?customer_id=...
func (h *GamificationHandler) Wallet(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	customerIDStr := c.Query("customer_id")
	if customerIDStr == "" {
		return badRequest(c, "customer_id is required")
	}
	customerID, err := uuid.Parse(customerIDStr)
	if err != nil {
		return badRequest(c, "invalid customer_id")
	}

	view, err := h.svc.GetWallet(c.Context(), businessID, customerID)
	if err != nil {
		return mapLoyaltyError(c, err)
	}

	return ok(c, fiber.Map{
		"current_points":      view.Wallet.CurrentPoints,
		"total_points_earned": view.Wallet.TotalPointsEarned,
		"current_level":       view.Wallet.CurrentLevel,
		"history":             view.History,
		"levels":              view.Levels,
	})
}

// GET /gamification/rewards
func (h *GamificationHandler) Rewards(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	rewards, err := h.svc.ListRewards(c.Context(), businessID)
	if err != nil {
		return mapLoyaltyError(c, err)
	}
	return ok(c, rewards)
}

// POST /gamification/bonus grants a manual point award, e.g. a goodwill
// gesture or a promotion.
func (h *GamificationHandler) Bonus(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		CustomerID  string `json:"customer_id"`
		Amount      int64  `json:"amount"`
		Description string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CustomerID == "" {
		return badRequest(c, "customer_id is required")
	}
	if body.Amount <= 0 {
		return badRequest(c, "amount must be positive")
	}
	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		return badRequest(c, "invalid customer_id")
	}

	desc := body.Description
	if desc == "" {
		desc = "Bonus points"
	}

	result, err := h.svc.AwardPoints(c.Context(), businessID, loyalty.AwardRequest{
		CustomerID:  customerID,
		Amount:      body.Amount,
		Type:        model.TransactionEarnBonus,
		Description: desc,
	})
	if err != nil {
		return mapLoyaltyError(c, err)
	}

	return ok(c, fiber.Map{
		"current_points":      result.Wallet.CurrentPoints,
		"total_points_earned": result.Wallet.TotalPointsEarned,
		"level_up":            result.LevelUp,
		"level":               result.Wallet.CurrentLevel,
	})
}

// POST /gamification/redeem
func (h *GamificationHandler) Redeem(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		CustomerID string `json:"customer_id"`
		RewardID   string `json:"reward_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CustomerID == "" || body.RewardID == "" {
		return badRequest(c, "customer_id and reward_id are required")
	}

	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		return badRequest(c, "invalid customer_id")
	}
	rewardID, err := uuid.Parse(body.RewardID)
	if err != nil {
		return badRequest(c, "invalid reward_id")
	}

	result, err := h.svc.RedeemReward(c.Context(), businessID, customerID, rewardID)
	if err != nil {
		return mapLoyaltyError(c, err)
	}

	return ok(c, fiber.Map{
		"redemption_id":    result.RedemptionID,
		"reward_id":        result.RewardID,
		"points_spent":     result.PointsSpent,
		"remaining_points": result.RemainingPoints,
	})
}
