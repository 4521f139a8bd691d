package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"atelier/contexts/commerce/cart-service/domain/entities"
	domainerrors "atelier/contexts/commerce/cart-service/domain/errors"
	"atelier/contexts/commerce/cart-service/domain/valueobjects"
	"atelier/contexts/commerce/cart-service/ports"
	"atelier/internal/shared/events"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// Repository is the gorm-backed cart persistence gateway. Save writes cart
// state and outbox rows in one transaction.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

type cartModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (cartModel) TableName() string { return "carts" }

type cartItemModel struct {
	UserID    string          `gorm:"column:user_id;primaryKey"`
	ProductID string          `gorm:"column:product_id;primaryKey"`
	Title     string          `gorm:"column:title"`
	ImageURL  string          `gorm:"column:image_url"`
	Quantity  int             `gorm:"column:quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
	Currency  string          `gorm:"column:currency"`
}

func (cartItemModel) TableName() string { return "cart_items" }

type cartOutboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status;index"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (cartOutboxModel) TableName() string { return "cart_outbox" }

func (r *Repository) Load(ctx context.Context, userID string) (*entities.ShoppingCart, bool, error) {
	trimmed := strings.TrimSpace(userID)

	var row cartModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", trimmed).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var itemRows []cartItemModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", trimmed).
		Order("product_id ASC").
		Find(&itemRows).
		Error; err != nil {
		return nil, false, err
	}

	items := make([]entities.CartItem, 0, len(itemRows))
	for _, itemRow := range itemRows {
		price, err := valueobjects.NewMoney(itemRow.UnitPrice, itemRow.Currency)
		if err != nil {
			return nil, false, err
		}
		item, err := entities.NewCartItem(itemRow.ProductID, itemRow.Quantity, price, itemRow.Title, itemRow.ImageURL)
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)
	}

	return entities.RestoreShoppingCart(row.UserID, items, row.UpdatedAt.UTC()), true, nil
}

func (r *Repository) Save(ctx context.Context, cart *entities.ShoppingCart, drained []entities.DomainEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&cartModel{
			UserID:    cart.UserID,
			UpdatedAt: cart.UpdatedAt,
		}).Error; err != nil {
			return err
		}

		// Line set replacement keeps the row set exactly in sync with the
		// aggregate's items.
		if err := tx.Where("user_id = ?", cart.UserID).
			Delete(&cartItemModel{}).
			Error; err != nil {
			return err
		}
		items := cart.Items()
		if len(items) > 0 {
			rows := make([]cartItemModel, 0, len(items))
			for _, item := range items {
				rows = append(rows, cartItemModel{
					UserID:    cart.UserID,
					ProductID: item.ProductID,
					Title:     item.Title,
					ImageURL:  item.ImageURL,
					Quantity:  item.Quantity,
					UnitPrice: item.UnitPrice.Amount(),
					Currency:  item.UnitPrice.Currency(),
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				if isUniqueViolation(err) {
					return domainerrors.ErrInvalidProductID
				}
				return err
			}
		}

		for i, event := range drained {
			payload, err := json.Marshal(events.Envelope{
				EventID:        uuid.NewString(),
				EventType:      event.EventType(),
				SourceService:  "commerce/cart-service",
				OccurredAtUTC:  cart.UpdatedAt,
				EntityType:     "cart",
				EntityID:       cart.ID,
				PayloadVersion: 1,
				Payload:        event,
			})
			if err != nil {
				return err
			}
			if err := tx.Create(&cartOutboxModel{
				OutboxID:  uuid.NewString(),
				EventType: event.EventType(),
				Payload:   payload,
				Status:    "pending",
				CreatedAt: cart.UpdatedAt.Add(time.Duration(i)),
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	tx := r.db.WithContext(ctx).
		Where("status = ?", "pending").
		Order("created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []cartOutboxModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:  row.OutboxID,
			EventType: row.EventType,
			Payload:   append([]byte(nil), row.Payload...),
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	published := publishedAt.UTC()
	return r.db.WithContext(ctx).
		Model(&cartOutboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       "published",
			"published_at": &published,
		}).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
