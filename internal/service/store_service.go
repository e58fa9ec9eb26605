package service

import (
	"time"

	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"
)

// StoreService 店主侧店铺资料与经营数据
type StoreService struct {
	storeRepo    repository.StoreRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

// NewStoreService 创建店铺服务
func NewStoreService(storeRepo repository.StoreRepository, orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository) *StoreService {
	return &StoreService{
		storeRepo:    storeRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// GetProfile 获取店铺资料
func (s *StoreService) GetProfile(storeID uint) (*models.Store, error) {
	if storeID == 0 {
		return nil, ErrStoreNotFound
	}
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, ErrStoreFetchFailed
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

// UpdateProfile 部分更新店铺资料，只写入调用方给定的字段
func (s *StoreService) UpdateProfile(storeID uint, update repository.StoreProfileUpdate) (*models.Store, error) {
	if storeID == 0 {
		return nil, ErrStoreNotFound
	}
	if len(update.Changes()) == 0 {
		return nil, ErrStoreUpdateEmpty
	}
	affected, err := s.storeRepo.UpdateProfile(storeID, update, time.Now())
	if err != nil {
		logger.Errorw("store_profile_update_failed", "store_id", storeID, "error", err)
		return nil, ErrStoreUpdateFailed
	}
	if affected == 0 {
		return nil, ErrStoreNotFound
	}
	return s.GetProfile(storeID)
}

// ListOrders 店铺订单列表，支持状态过滤与分页
func (s *StoreService) ListOrders(filter repository.StoreOrderFilter) ([]repository.StoreOrderRow, int64, error) {
	if filter.StoreID == 0 {
		return nil, 0, ErrStoreNotFound
	}
	rows, total, err := s.orderRepo.ListByStore(filter)
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return rows, total, nil
}

// ListCustomers 店铺顾客列表
func (s *StoreService) ListCustomers(storeID uint) ([]models.Customer, error) {
	if storeID == 0 {
		return nil, ErrStoreNotFound
	}
	customers, err := s.customerRepo.ListByStore(storeID)
	if err != nil {
		return nil, ErrCustomerFetchFailed
	}
	return customers, nil
}
