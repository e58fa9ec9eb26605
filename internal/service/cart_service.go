package service

import (
	"time"

	"github.com/storelink/storelink/internal/constants"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"

	"gorm.io/gorm"
)

// CartService 购物车业务逻辑
type CartService struct {
	cartRepo    repository.CartRepository
	itemRepo    repository.CartItemRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, itemRepo repository.CartItemRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
	}
}

// GetOrCreateCartInput 获取或创建购物车输入
type GetOrCreateCartInput struct {
	StoreID    uint
	CustomerID uint
}

// GetOrCreateCart 获取或创建购物车。
// 同一 (store, customer) 至多一个购物车：已结算的原地复用，不存在才创建。
func (s *CartService) GetOrCreateCart(input GetOrCreateCartInput) (*models.Cart, bool, error) {
	if input.StoreID == 0 || input.CustomerID == 0 {
		return nil, false, ErrCartInvalid
	}

	var cart *models.Cart
	created := false
	now := time.Now()
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		existing, err := cartRepo.GetByStoreAndCustomer(input.StoreID, input.CustomerID)
		if err != nil {
			return err
		}
		if existing == nil {
			fresh := &models.Cart{
				StoreID:    input.StoreID,
				CustomerID: input.CustomerID,
				Status:     constants.CartStatusActive,
			}
			inserted, err := cartRepo.CreateIfAbsent(fresh)
			if err != nil {
				return err
			}
			// 并发竞争下对方先建成功：落到既有行上，必要时原地复用
			if !inserted && fresh.Status == constants.CartStatusCompleted {
				if err := cartRepo.Reactivate(fresh.ID, now); err != nil {
					return err
				}
				fresh.Status = constants.CartStatusActive
				fresh.UpdatedAt = now
			}
			cart = fresh
			created = inserted
			return nil
		}
		if existing.Status == constants.CartStatusCompleted {
			if err := cartRepo.Reactivate(existing.ID, now); err != nil {
				return err
			}
			existing.Status = constants.CartStatusActive
			existing.UpdatedAt = now
		}
		cart = existing
		return nil
	})
	if err != nil {
		return nil, false, ErrCartSaveFailed
	}
	return cart, created, nil
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	CartID    uint
	ProductID uint
	Quantity  int
}

// AddItem 加购：同商品累加数量，否则新增一行。
// 返回是否新增了购物车项。
func (s *CartService) AddItem(input AddCartItemInput) (bool, error) {
	if input.CartID == 0 || input.ProductID == 0 {
		return false, ErrCartItemInvalid
	}
	if input.Quantity < 1 {
		return false, ErrQuantityInvalid
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return false, ErrProductFetchFailed
	}
	if product == nil {
		return false, ErrProductNotAvailable
	}

	created := false
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		itemRepo := s.itemRepo.WithTx(tx)
		existing, err := itemRepo.GetByCartAndProduct(input.CartID, input.ProductID)
		if err != nil {
			return err
		}
		if existing == nil {
			created = true
			return itemRepo.Create(&models.CartItem{
				CartID:    input.CartID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
			})
		}
		return itemRepo.AddQuantity(existing.ID, input.Quantity)
	})
	if err != nil {
		return false, ErrCartSaveFailed
	}
	return created, nil
}

// ListItems 列出活跃购物车的展示用条目，没有活跃购物车时返回空列表
func (s *CartService) ListItems(storeID, customerID uint) ([]repository.CartItemDetail, error) {
	if storeID == 0 || customerID == 0 {
		return nil, ErrCartInvalid
	}
	cart, err := s.cartRepo.GetActiveByStoreAndCustomer(storeID, customerID, false)
	if err != nil {
		return nil, ErrCartFetchFailed
	}
	if cart == nil {
		return []repository.CartItemDetail{}, nil
	}
	items, err := s.itemRepo.ListDetailsByCart(cart.ID)
	if err != nil {
		return nil, ErrCartFetchFailed
	}
	return items, nil
}

// UpdateQuantity 覆盖购物车项数量
func (s *CartService) UpdateQuantity(itemID uint, quantity int) error {
	if itemID == 0 {
		return ErrCartItemInvalid
	}
	if quantity < 1 {
		return ErrQuantityInvalid
	}
	affected, err := s.itemRepo.UpdateQuantity(itemID, quantity)
	if err != nil {
		return ErrCartSaveFailed
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// RemoveItem 删除购物车项（幂等）
func (s *CartService) RemoveItem(itemID uint) error {
	if itemID == 0 {
		return ErrCartItemInvalid
	}
	if err := s.itemRepo.Delete(itemID); err != nil {
		return ErrCartSaveFailed
	}
	return nil
}
