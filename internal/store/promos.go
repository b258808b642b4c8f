package store

import (
	"strings"
	"time"

	"chaicraft_back_end/internal/models"

	"github.com/gocql/gocql"
)

// Promo and gift card rows live in the orders keyspace, keyed by code.

func (s *Store) CreatePromo(p *models.Promo) error {
	session, err := s.db.OrdersSession()
	if err != nil {
		return err
	}

	if p.ID == (gocql.UUID{}) {
		p.ID = gocql.TimeUUID()
	}
	p.Code = strings.ToUpper(p.Code)
	p.CreatedAt = time.Now()

	return session.Query(`INSERT INTO ks_orders.promos (code, promo_id, type, value, min_order_amount, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Code, p.ID, p.Type, p.Value, p.MinOrderAmount, p.IsActive, p.CreatedAt).Exec()
}

func (s *Store) GetPromoByCode(code string) (*models.Promo, error) {
	session, err := s.db.OrdersSession()
	if err != nil {
		return nil, err
	}

	var p models.Promo
	if err := session.Query(`SELECT code, promo_id, type, value, min_order_amount, is_active, created_at
		FROM ks_orders.promos WHERE code = ?`, strings.ToUpper(code)).Scan(
		&p.Code, &p.ID, &p.Type, &p.Value, &p.MinOrderAmount, &p.IsActive, &p.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *Store) GetAllPromos() ([]models.Promo, error) {
	session, err := s.db.OrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT code, promo_id, type, value, min_order_amount, is_active, created_at FROM ks_orders.promos`).Iter()

	var promos []models.Promo
	var p models.Promo
	for iter.Scan(&p.Code, &p.ID, &p.Type, &p.Value, &p.MinOrderAmount, &p.IsActive, &p.CreatedAt) {
		promos = append(promos, p)
		p = models.Promo{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return promos, nil
}

// UpdatePromo toggles activity and/or min order amount on an existing code.
func (s *Store) UpdatePromo(code string, isActive *bool, minOrderAmount *int) error {
	session, err := s.db.OrdersSession()
	if err != nil {
		return err
	}

	code = strings.ToUpper(code)
	if isActive != nil {
		if err := session.Query(`UPDATE ks_orders.promos SET is_active = ? WHERE code = ?`, *isActive, code).Exec(); err != nil {
			return err
		}
	}
	if minOrderAmount != nil {
		if err := session.Query(`UPDATE ks_orders.promos SET min_order_amount = ? WHERE code = ?`, *minOrderAmount, code).Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) DeletePromo(code string) error {
	session, err := s.db.OrdersSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM ks_orders.promos WHERE code = ?`, strings.ToUpper(code)).Exec()
}

// =============================================
// GIFT CARDS
// =============================================

func (s *Store) CreateGiftCard(g *models.GiftCard) error {
	session, err := s.db.OrdersSession()
	if err != nil {
		return err
	}

	if g.ID == (gocql.UUID{}) {
		g.ID = gocql.TimeUUID()
	}
	g.Code = strings.ToUpper(g.Code)
	g.CreatedAt = time.Now()

	return session.Query(`INSERT INTO ks_orders.gift_cards (code, gift_card_id, balance, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		g.Code, g.ID, g.Balance, g.IsActive, g.CreatedAt).Exec()
}

func (s *Store) GetGiftCardByCode(code string) (*models.GiftCard, error) {
	session, err := s.db.OrdersSession()
	if err != nil {
		return nil, err
	}

	var g models.GiftCard
	if err := session.Query(`SELECT code, gift_card_id, balance, is_active, created_at
		FROM ks_orders.gift_cards WHERE code = ?`, strings.ToUpper(code)).Scan(
		&g.Code, &g.ID, &g.Balance, &g.IsActive, &g.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &g, nil
}

func (s *Store) GetAllGiftCards() ([]models.GiftCard, error) {
	session, err := s.db.OrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT code, gift_card_id, balance, is_active, created_at FROM ks_orders.gift_cards`).Iter()

	var cards []models.GiftCard
	var g models.GiftCard
	for iter.Scan(&g.Code, &g.ID, &g.Balance, &g.IsActive, &g.CreatedAt) {
		cards = append(cards, g)
		g = models.GiftCard{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return cards, nil
}

// RedeemGiftCard decrements the balance by amount with a compare-and-set on
// the balance column, so two concurrent checkouts cannot both spend the same
// rupees. Retries a few times when racing, then gives up.
func (s *Store) RedeemGiftCard(code string, amount int) error {
	session, err := s.db.OrdersSession()
	if err != nil {
		return err
	}
	code = strings.ToUpper(code)

	for attempt := 0; attempt < 3; attempt++ {
		var balance int
		var active bool
		if err := session.Query(`SELECT balance, is_active FROM ks_orders.gift_cards WHERE code = ?`,
			code).Scan(&balance, &active); err != nil {
			return notFound(err)
		}
		if !active || balance < amount {
			return ErrInsufficientBalance
		}

		var prev int
		applied, err := session.Query(`UPDATE ks_orders.gift_cards SET balance = ? WHERE code = ? IF balance = ?`,
			balance-amount, code, balance).ScanCAS(&prev)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
		// Lost the race, re-read and try again.
	}
	return ErrConcurrentUpdate
}

// CreditGiftCard restores amount to the card. Used as compensation when the
// order batch fails after a redeem already went through.
func (s *Store) CreditGiftCard(code string, amount int) error {
	session, err := s.db.OrdersSession()
	if err != nil {
		return err
	}
	code = strings.ToUpper(code)

	for attempt := 0; attempt < 3; attempt++ {
		var balance int
		if err := session.Query(`SELECT balance FROM ks_orders.gift_cards WHERE code = ?`, code).Scan(&balance); err != nil {
			return notFound(err)
		}

		var prev int
		applied, err := session.Query(`UPDATE ks_orders.gift_cards SET balance = ? WHERE code = ? IF balance = ?`,
			balance+amount, code, balance).ScanCAS(&prev)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
	}
	return ErrConcurrentUpdate
}
