package store

import (
	"sort"
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
)

const orderColumns = `order_id, user_id, status, total_amount, discount_amount, promo_code, gift_card_code,
	payment_method, payment_status, payment_details, delivery_address, created_at`

func scanOrder(scan func(...interface{}) error) (*models.Order, error) {
	var o models.Order
	err := scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.DiscountAmount, &o.PromoCode,
		&o.GiftCardCode, &o.PaymentMethod, &o.PaymentStatus, &o.PaymentDetails, &o.DeliveryAddress, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder persists the order, its by-user index row and every line item in
// a single logged batch: either the whole order lands or none of it does.
func (s *Store) CreateOrder(o *models.Order, items []models.OrderItem) error {
	session, err := s.db.OrdersSession()
	if err != nil {
		return err
	}

	if o.ID == (gocql.UUID{}) {
		o.ID = gocql.TimeUUID()
	}
	o.CreatedAt = time.Now()

	batch := session.NewBatch(gocql.LoggedBatch)
	batch.Query(`INSERT INTO ks_orders.orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.UserID, o.Status, o.TotalAmount, o.DiscountAmount, o.PromoCode, o.GiftCardCode,
		o.PaymentMethod, o.PaymentStatus, o.PaymentDetails, o.DeliveryAddress, o.CreatedAt)
	batch.Query(`INSERT INTO ks_orders.orders_by_user (user_id, created_at, order_id) VALUES (?, ?, ?)`,
		o.UserID, o.CreatedAt, o.ID)

	for i := range items {
		items[i].ID = gocql.TimeUUID()
		items[i].OrderID = o.ID
		batch.Query(`INSERT INTO ks_orders.order_items (order_id, item_id, product_id, product_name, quantity, price_at_time)
		             VALUES (?, ?, ?, ?, ?, ?)`,
			items[i].OrderID, items[i].ID, items[i].ProductID, items[i].ProductName,
			items[i].Quantity, items[i].PriceAtTime)
	}

	if err := session.ExecuteBatch(batch); err != nil {
		return err
	}
	o.Items = items
	return nil
}

func (s *Store) GetOrder(id gocql.UUID) (*models.Order, error) {
	session, err := s.db.OrdersSession()
	if err != nil {
		return nil, err
	}

	o, err := scanOrder(session.Query(`SELECT `+orderColumns+` FROM ks_orders.orders WHERE order_id = ?`, id).Scan)
	if err != nil {
		return nil, notFound(err)
	}

	items, err := s.GetOrderItems(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (s *Store) GetOrderItems(orderID gocql.UUID) ([]models.OrderItem, error) {
	session, err := s.db.OrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id, item_id, product_id, product_name, quantity, price_at_time
		FROM ks_orders.order_items WHERE order_id = ?`, orderID).Iter()

	var items []models.OrderItem
	var it models.OrderItem
	for iter.Scan(&it.OrderID, &it.ID, &it.ProductID, &it.ProductName, &it.Quantity, &it.PriceAtTime) {
		items = append(items, it)
		it = models.OrderItem{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetOrdersByUser walks the by-user index, newest first.
func (s *Store) GetOrdersByUser(userID gocql.UUID) ([]models.Order, error) {
	session, err := s.db.OrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id FROM ks_orders.orders_by_user WHERE user_id = ?`, userID).Iter()

	var orderIDs []gocql.UUID
	var id gocql.UUID
	for iter.Scan(&id) {
		orderIDs = append(orderIDs, id)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(orderIDs))
	for _, oid := range orderIDs {
		o, err := s.GetOrder(oid)
		if err != nil {
			if err == ErrNotFound {
				continue
			}
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}

// GetAllOrders scans the orders table and sorts newest first in memory.
// Fine at shop scale; revisit with a time-bucketed table if volume grows.
func (s *Store) GetAllOrders() ([]models.Order, error) {
	session, err := s.db.OrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT ` + orderColumns + ` FROM ks_orders.orders`).Iter()

	var orders []models.Order
	var o models.Order
	for iter.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.DiscountAmount, &o.PromoCode,
		&o.GiftCardCode, &o.PaymentMethod, &o.PaymentStatus, &o.PaymentDetails, &o.DeliveryAddress, &o.CreatedAt) {
		orders = append(orders, o)
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	for i := range orders {
		items, err := s.GetOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

// UpdateOrderStatus writes the already-validated status fields. Transition
// checking happens in the handler against the current row.
func (s *Store) UpdateOrderStatus(id gocql.UUID, status *models.OrderStatus, paymentStatus *models.PaymentStatus) error {
	session, err := s.db.OrdersSession()
	if err != nil {
		return err
	}

	if status != nil && paymentStatus != nil {
		return session.Query(`UPDATE ks_orders.orders SET status = ?, payment_status = ? WHERE order_id = ?`,
			*status, *paymentStatus, id).Exec()
	}
	if status != nil {
		return session.Query(`UPDATE ks_orders.orders SET status = ? WHERE order_id = ?`, *status, id).Exec()
	}
	if paymentStatus != nil {
		return session.Query(`UPDATE ks_orders.orders SET payment_status = ? WHERE order_id = ?`, *paymentStatus, id).Exec()
	}
	return nil
}
