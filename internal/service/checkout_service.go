package service

import (
	"errors"
	"time"

	"github.com/storelink/storelink/internal/constants"
	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService 购物车结算服务：原子地把购物车转换为订单并退役购物车
type CheckoutService struct {
	cartRepo    repository.CartRepository
	itemRepo    repository.CartItemRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(cartRepo repository.CartRepository, itemRepo repository.CartItemRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		itemRepo:    itemRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CheckoutItemInput 结算订单项输入
type CheckoutItemInput struct {
	ProductID uint
	Quantity  int
}

// CheckoutInput 结算输入。
// TotalAmount 可为空；给定时与目录重算结果比对，不一致则拒单。
type CheckoutInput struct {
	CustomerID  uint
	StoreID     uint
	Status      string
	TotalAmount *models.Money
	Items       []CheckoutItemInput
}

// Checkout 结算：锁定活跃购物车、校验金额、创建订单与订单项、清空并结算购物车。
// 全部步骤在同一事务内，任一步失败整体回滚。
func (s *CheckoutService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.CustomerID == 0 || input.StoreID == 0 {
		return nil, ErrOrderItemInvalid
	}
	items := mergeCheckoutItems(input.Items)
	if len(items) == 0 {
		return nil, ErrOrderItemInvalid
	}
	status := input.Status
	if status == "" {
		status = constants.OrderStatusPending
	}
	if !constants.OrderStatuses[status] {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	var order *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		itemRepo := s.itemRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		// 先锁定活跃购物车：没有可结算的购物车时不产生任何写入
		cart, err := cartRepo.GetActiveByStoreAndCustomer(input.StoreID, input.CustomerID, true)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrNoActiveCart
		}

		productIDs := make([]uint, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}
		prices, err := productRepo.MapPricesByIDs(input.StoreID, productIDs)
		if err != nil {
			return err
		}

		// 服务端按目录单价重算订单金额
		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			price, ok := prices[item.ProductID]
			if !ok {
				return ErrProductNotAvailable
			}
			total = total.Add(price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				StoreID:   input.StoreID,
				Quantity:  item.Quantity,
			})
		}
		total = total.Round(2)
		if input.TotalAmount != nil && !input.TotalAmount.Decimal.Round(2).Equal(total) {
			return ErrOrderTotalMismatch
		}

		created := &models.Order{
			CustomerID:  input.CustomerID,
			Status:      status,
			TotalAmount: models.NewMoneyFromDecimal(total),
			DateOrdered: now,
		}
		if err := orderRepo.Create(created, orderItems); err != nil {
			return err
		}
		if err := itemRepo.ClearByCart(cart.ID); err != nil {
			return err
		}
		if err := cartRepo.Complete(cart.ID, now); err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		for _, known := range []error{ErrNoActiveCart, ErrProductNotAvailable, ErrOrderTotalMismatch} {
			if errors.Is(err, known) {
				return nil, known
			}
		}
		logger.Errorw("checkout_failed",
			"store_id", input.StoreID,
			"customer_id", input.CustomerID,
			"error", err,
		)
		return nil, ErrOrderCreateFailed
	}
	return order, nil
}

// mergeCheckoutItems 合并重复商品并累加数量，过滤非法条目
func mergeCheckoutItems(items []CheckoutItemInput) []CheckoutItemInput {
	merged := make([]CheckoutItemInput, 0, len(items))
	index := make(map[uint]int, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return nil
		}
		if at, ok := index[item.ProductID]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
