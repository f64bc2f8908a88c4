package loyalty

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trimsy-app/trimsy_backend/internal/model"
	"github.com/trimsy-app/trimsy_backend/internal/store"
	"github.com/trimsy-app/trimsy_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AwardRequest struct {
	CustomerID  uuid.UUID
	Amount      int64 // signed: positive earns, negative redeems
	Type        model.TransactionType
	Description string
	ReferenceID *uuid.UUID
}

type AwardResult struct {
	Wallet  model.Wallet
	LevelUp bool
	Level   string
}

type RedemptionResult struct {
	RedemptionID    uuid.UUID
	RewardID        uuid.UUID
	PointsSpent     int64
	RemainingPoints int64
}

type WalletView struct {
	Wallet  model.Wallet
	History []model.PointsTransaction
	Levels  []model.LevelTier
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// AwardPoints runs the award in its own transaction.
	AwardPoints(ctx context.Context, businessID uuid.UUID, req AwardRequest) (*AwardResult, error)

	// Award runs the same ledger mutation on a caller-owned transaction, so
	// workflows like appointment completion stay all-or-nothing.
	Award(ctx context.Context, db store.Querier, businessID uuid.UUID, req AwardRequest) (*AwardResult, error)

	RedeemReward(ctx context.Context, businessID, customerID, rewardID uuid.UUID) (*RedemptionResult, error)
	GetWallet(ctx context.Context, businessID, customerID uuid.UUID) (*WalletView, error)
	ListRewards(ctx context.Context, businessID uuid.UUID) ([]model.Reward, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

const historyLimit = 50

type loyaltyService struct {
	db  *store.Store
	log *slog.Logger
}

func New(db *store.Store) Service {
	return &loyaltyService{db: db, log: slog.Default()}
}

func (s *loyaltyService) AwardPoints(ctx context.Context, businessID uuid.UUID, req AwardRequest) (*AwardResult, error) {
	var result *AwardResult
	err := s.db.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		result, err = s.Award(ctx, tx, businessID, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *loyaltyService) Award(ctx context.Context, db store.Querier, businessID uuid.UUID, req AwardRequest) (*AwardResult, error) {
	business, err := s.db.BusinessByID(ctx, db, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	// Zero amounts are legal but change nothing: log and report the wallet
	// as it stands.
	if req.Amount == 0 {
		s.log.InfoContext(ctx, "zero-point award skipped",
			"business_id", businessID,
			"customer_id", req.CustomerID,
			"type", req.Type,
		)
		wallet, err := s.db.Wallet(ctx, db, businessID, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if wallet == nil {
			wallet = s.emptyWallet(businessID, req.CustomerID, business.DefaultLevel)
		}
		return &AwardResult{Wallet: *wallet, Level: wallet.CurrentLevel}, nil
	}

	txn := &model.PointsTransaction{
		ID:          uuid.New(),
		BusinessID:  businessID,
		CustomerID:  req.CustomerID,
		Amount:      req.Amount,
		Type:        req.Type,
		Description: req.Description,
		ReferenceID: req.ReferenceID,
	}
	if err := s.db.InsertPointsTransaction(ctx, db, txn); err != nil {
		return nil, err
	}

	wallet, err := s.db.ApplyWalletDelta(ctx, db, businessID, req.CustomerID, req.Amount, business.DefaultLevel)
	if err != nil {
		return nil, err
	}

	result := &AwardResult{Wallet: *wallet, Level: wallet.CurrentLevel}

	// Levels follow lifetime earnings, so only positive awards can promote.
	if req.Amount > 0 {
		tiers, err := s.db.LevelTiers(ctx, db, businessID)
		if err != nil {
			return nil, err
		}
		if len(tiers) > 0 {
			level := levelFor(tiers, wallet.TotalPointsEarned, business.DefaultLevel)
			if level != wallet.CurrentLevel {
				if err := s.db.SetWalletLevel(ctx, db, businessID, req.CustomerID, level); err != nil {
					return nil, err
				}
				result.Wallet.CurrentLevel = level
				result.LevelUp = true
				result.Level = level

				s.log.InfoContext(ctx, "customer level changed",
					"business_id", businessID,
					"customer_id", req.CustomerID,
					"level", level,
				)
			}
		}
	}

	return result, nil
}

func (s *loyaltyService) RedeemReward(ctx context.Context, businessID, customerID, rewardID uuid.UUID) (*RedemptionResult, error) {
	var result *RedemptionResult

	err := s.db.WithinTx(ctx, func(tx pgx.Tx) error {
		// Lock the reward first: concurrent redemptions of the same reward
		// serialize here, so the stock check below cannot go stale.
		reward, err := s.db.RewardForUpdate(ctx, tx, businessID, rewardID)
		if err != nil {
			return err
		}
		if reward == nil {
			return ErrRewardNotFound
		}
		if !reward.InStock() {
			return ErrOutOfStock
		}

		// Lock the wallet so the balance check and the deduction are one
		// unit against concurrent awards or redemptions.
		wallet, err := s.db.WalletForUpdate(ctx, tx, businessID, customerID)
		if err != nil {
			return err
		}
		if wallet == nil || wallet.Apply(-reward.PointsCost).CurrentPoints < 0 {
			return ErrInsufficientPoints
		}

		award, err := s.Award(ctx, tx, businessID, AwardRequest{
			CustomerID:  customerID,
			Amount:      -reward.PointsCost,
			Type:        model.TransactionRedeemReward,
			Description: "Redeemed: " + reward.Name,
			ReferenceID: &reward.ID,
		})
		if err != nil {
			return err
		}

		redemption := &model.RewardRedemption{
			ID:         uuid.New(),
			BusinessID: businessID,
			CustomerID: customerID,
			RewardID:   reward.ID,
			PointsCost: reward.PointsCost,
			Status:     model.RedemptionRedeemed,
		}
		if err := s.db.InsertRedemption(ctx, tx, redemption); err != nil {
			return err
		}

		if reward.Stock != nil {
			taken, err := s.db.DecrementRewardStock(ctx, tx, reward.ID)
			if err != nil {
				return err
			}
			if !taken {
				return ErrOutOfStock
			}
		}

		result = &RedemptionResult{
			RedemptionID:    redemption.ID,
			RewardID:        reward.ID,
			PointsSpent:     reward.PointsCost,
			RemainingPoints: award.Wallet.CurrentPoints,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		"business_id", businessID,
		"customer_id", customerID,
		"reward_id", rewardID,
		"points", result.PointsSpent,
	}
	if actor, ok := reqctx.UserIDFromContext(ctx); ok {
		attrs = append(attrs, "actor_id", actor)
	}
	s.log.InfoContext(ctx, "reward redeemed", attrs...)
	return result, nil
}

func (s *loyaltyService) GetWallet(ctx context.Context, businessID, customerID uuid.UUID) (*WalletView, error) {
	pool := s.db.Pool()

	customer, err := s.db.CustomerByID(ctx, pool, businessID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	business, err := s.db.BusinessByID(ctx, pool, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	wallet, err := s.db.Wallet(ctx, pool, businessID, customerID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = s.emptyWallet(businessID, customerID, business.DefaultLevel)
	}

	history, err := s.db.PointsHistory(ctx, pool, businessID, customerID, historyLimit)
	if err != nil {
		return nil, err
	}

	tiers, err := s.db.LevelTiers(ctx, pool, businessID)
	if err != nil {
		return nil, err
	}

	return &WalletView{Wallet: *wallet, History: history, Levels: tiers}, nil
}

func (s *loyaltyService) ListRewards(ctx context.Context, businessID uuid.UUID) ([]model.Reward, error) {
	return s.db.ActiveRewards(ctx, s.db.Pool(), businessID)
}

// emptyWallet is the view of a customer who has never earned a point; the
// row itself is only created on first award.
func (s *loyaltyService) emptyWallet(businessID, customerID uuid.UUID, defaultLevel string) *model.Wallet {
	return &model.Wallet{
		BusinessID:   businessID,
		CustomerID:   customerID,
		CurrentLevel: defaultLevel,
	}
}
