package service

import (
	"github.com/storelink/storelink/internal/repository"
)

// FeedbackService 店主侧顾客评价查询
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackService 创建评价服务
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// ListByStore 店铺评价列表（含顾客与商品名称）
func (s *FeedbackService) ListByStore(storeID uint) ([]repository.FeedbackRow, error) {
	if storeID == 0 {
		return nil, ErrStoreNotFound
	}
	rows, err := s.feedbackRepo.ListByStore(storeID)
	if err != nil {
		return nil, ErrFeedbackFetchFailed
	}
	return rows, nil
}
