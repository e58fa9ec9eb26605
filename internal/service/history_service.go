package service

import (
	"time"

	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"
)

// HistoryService 顾客订单历史查询
type HistoryService struct {
	orderRepo repository.OrderRepository
}

// NewHistoryService 创建订单历史服务
func NewHistoryService(orderRepo repository.OrderRepository) *HistoryService {
	return &HistoryService{orderRepo: orderRepo}
}

// OrderHistoryItem 历史订单中的单个商品行
type OrderHistoryItem struct {
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	Price       models.Money `json:"price"`
	ItemTotal   models.Money `json:"item_total"`
	ImageURL    string       `json:"image_url"`
}

// OrderHistoryView 按订单分组后的历史视图
type OrderHistoryView struct {
	OrderID     uint               `json:"order_id"`
	DateOrdered time.Time          `json:"date_ordered"`
	Status      string             `json:"status"`
	Items       []OrderHistoryItem `json:"items"`
	TotalAmount models.Money       `json:"total_amount"`
}

// ListCustomerOrders 顾客在某店铺的订单历史，按下单时间倒序分组。
// 没有历史订单时返回空列表。
func (s *HistoryService) ListCustomerOrders(customerID, storeID uint) ([]OrderHistoryView, error) {
	if customerID == 0 || storeID == 0 {
		return nil, ErrOrderItemInvalid
	}
	rows, err := s.orderRepo.ListHistoryRows(customerID, storeID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}

	// 行已按订单排好序，按出现顺序分组
	views := make([]OrderHistoryView, 0)
	index := make(map[uint]int)
	for _, row := range rows {
		at, ok := index[row.OrderID]
		if !ok {
			at = len(views)
			index[row.OrderID] = at
			views = append(views, OrderHistoryView{
				OrderID:     row.OrderID,
				DateOrdered: row.DateOrdered,
				Status:      row.Status,
				Items:       make([]OrderHistoryItem, 0, 2),
			})
		}
		lineTotal := row.Price.MulInt(row.Quantity)
		views[at].Items = append(views[at].Items, OrderHistoryItem{
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Price:       row.Price,
			ItemTotal:   lineTotal,
			ImageURL:    row.ImageURL,
		})
		views[at].TotalAmount = views[at].TotalAmount.AddMoney(lineTotal)
	}
	return views, nil
}
