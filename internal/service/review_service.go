package service

import (
	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"
)

// ReviewService 顾客侧店铺评价：提交评价与店铺详情页展示
type ReviewService struct {
	reviewRepo   repository.StoreReviewRepository
	customerRepo repository.CustomerRepository
	storeRepo    repository.StoreRepository
}

// NewReviewService 创建店铺评价服务
func NewReviewService(reviewRepo repository.StoreReviewRepository, customerRepo repository.CustomerRepository, storeRepo repository.StoreRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		customerRepo: customerRepo,
		storeRepo:    storeRepo,
	}
}

// SubmitReviewInput 提交评价输入
type SubmitReviewInput struct {
	StoreID    uint
	CustomerID uint
	Rating     int
	ReviewText string
}

// SubmitReview 提交店铺评价。顾客姓名在写入时冗余到评价行。
func (s *ReviewService) SubmitReview(input SubmitReviewInput) (*models.StoreReview, error) {
	if input.StoreID == 0 || input.CustomerID == 0 || input.ReviewText == "" {
		return nil, ErrReviewInvalid
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrReviewInvalid
	}

	customer, err := s.customerRepo.GetByID(input.CustomerID)
	if err != nil {
		return nil, ErrCustomerFetchFailed
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	review := &models.StoreReview{
		StoreID:      input.StoreID,
		CustomerName: customer.Name,
		Rating:       input.Rating,
		ReviewText:   input.ReviewText,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		logger.Errorw("store_review_save_failed",
			"store_id", input.StoreID,
			"customer_id", input.CustomerID,
			"error", err,
		)
		return nil, ErrReviewSaveFailed
	}
	return review, nil
}

// StoreDetail 店铺详情：资料加全部评价（新评价在前）
func (s *ReviewService) StoreDetail(storeID uint) (*models.Store, []models.StoreReview, error) {
	if storeID == 0 {
		return nil, nil, ErrStoreNotFound
	}
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, nil, ErrStoreFetchFailed
	}
	if store == nil {
		return nil, nil, ErrStoreNotFound
	}
	reviews, err := s.reviewRepo.ListByStore(storeID)
	if err != nil {
		return nil, nil, ErrReviewFetchFailed
	}
	return store, reviews, nil
}
