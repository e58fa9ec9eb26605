package repository

import (
	"errors"
	"time"

	"github.com/storelink/storelink/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIDForUpdate(id uint) (*models.Order, error)
	UpdateStatusForStore(orderID, storeID uint, status string, now time.Time) (int64, error)
	MarkSalesRecorded(orderID uint, at time.Time) error
	ListSaleSources(orderID, storeID uint) ([]SaleSource, error)
	ListHistoryRows(customerID, storeID uint) ([]OrderHistoryRow, error)
	ListByStore(filter StoreOrderFilter) ([]StoreOrderRow, int64, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建订单及订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := r.db.Create(&items).Error; err != nil {
		return err
	}
	order.Items = items
	return nil
}

// GetByID 按ID查询订单，不存在返回 nil
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByIDForUpdate 按ID查询订单并加行级锁，不存在返回 nil
func (r *GormOrderRepository) GetByIDForUpdate(id uint) (*models.Order, error) {
	var order models.Order
	err := lockForUpdate(r.db).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatusForStore 按店铺归属更新订单状态（联表鉴权），返回受影响行数。
// 订单必须归属于该店铺的顾客，否则不会命中任何行。
func (r *GormOrderRepository) UpdateStatusForStore(orderID, storeID uint, status string, now time.Time) (int64, error) {
	result := r.db.Model(&models.Order{}).
		Where("id = ? AND customer_id IN (SELECT id FROM customers WHERE store_id = ?)", orderID, storeID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}

// MarkSalesRecorded 标记订单已完成销售入账
func (r *GormOrderRepository) MarkSalesRecorded(orderID uint, at time.Time) error {
	return r.db.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"sales_recorded_at": at,
		"updated_at":        at,
	}).Error
}

// ListSaleSources 联查送达入账所需的订单项、成交单价与订单元数据
func (r *GormOrderRepository) ListSaleSources(orderID, storeID uint) ([]SaleSource, error) {
	rows := make([]SaleSource, 0)
	err := r.db.Table("order_items").
		Select("order_items.product_id, order_items.quantity, products.price AS unit_price, orders.customer_id, orders.date_ordered").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ? AND order_items.store_id = ?", orderID, storeID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListHistoryRows 顾客订单历史扁平联查，按下单时间倒序
func (r *GormOrderRepository) ListHistoryRows(customerID, storeID uint) ([]OrderHistoryRow, error) {
	rows := make([]OrderHistoryRow, 0)
	err := r.db.Table("orders").
		Select("orders.id AS order_id, orders.date_ordered, orders.status, products.name AS product_name, order_items.quantity, products.price, products.image_url").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.customer_id = ? AND order_items.store_id = ?", customerID, storeID).
		Order("orders.date_ordered DESC, orders.id DESC, order_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByStore 店铺订单列表（联查顾客姓名），支持状态过滤与分页
func (r *GormOrderRepository) ListByStore(filter StoreOrderFilter) ([]StoreOrderRow, int64, error) {
	base := r.db.Table("orders").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("customers.store_id = ?", filter.StoreID)
	if filter.Status != "" {
		base = base.Where("orders.status = ?", filter.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]StoreOrderRow, 0)
	query := base.
		Select("orders.id AS order_id, orders.date_ordered, orders.status, orders.total_amount, orders.customer_id, customers.name AS customer_name").
		Order("orders.date_ordered DESC, orders.id DESC")
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
