package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"atelier/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "atelier/contexts/identity-access/authorization-service/domain/errors"
	"atelier/contexts/identity-access/authorization-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// Repository is the gorm-backed adapter for principal, role, ownership, and
// outbox ports.
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

type userModel struct {
	UserID   string `gorm:"column:user_id;primaryKey"`
	IsActive bool   `gorm:"column:is_active"`
	Role     string `gorm:"column:role"`
}

func (userModel) TableName() string { return "users" }

type roleAssignmentModel struct {
	AssignmentID string    `gorm:"column:assignment_id;primaryKey"`
	UserID       string    `gorm:"column:user_id;index"`
	Role         string    `gorm:"column:role"`
	AssignedBy   string    `gorm:"column:assigned_by"`
	Reason       string    `gorm:"column:reason"`
	AssignedAt   time.Time `gorm:"column:assigned_at"`
}

func (roleAssignmentModel) TableName() string { return "role_assignments" }

type artworkOwnerModel struct {
	ArtworkID    string `gorm:"column:artwork_id;primaryKey"`
	SellerUserID string `gorm:"column:seller_user_id"`
}

func (artworkOwnerModel) TableName() string { return "artworks" }

type orderModel struct {
	OrderID      string `gorm:"column:order_id;primaryKey"`
	BuyerUserID  string `gorm:"column:buyer_user_id"`
	SellerUserID string `gorm:"column:seller_user_id"`
}

func (orderModel) TableName() string { return "orders" }

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status;index"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "authz_outbox" }

func (r *Repository) FindPrincipal(ctx context.Context, userID string) (entities.Principal, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Principal{}, domainerrors.ErrPrincipalNotFound
		}
		return entities.Principal{}, err
	}
	return entities.Principal{
		UserID:   row.UserID,
		IsActive: row.IsActive,
		Roles:    entities.ParseRoles([]string{row.Role}),
	}, nil
}

// SaveRoleAssignment writes the assignment, the user's new role, and the
// outbox row in one transaction so the relay never publishes uncommitted state.
func (r *Repository) SaveRoleAssignment(ctx context.Context, input ports.AssignRoleInput) (entities.RoleAssignment, error) {
	assignment := entities.RoleAssignment{
		AssignmentID: input.AssignmentID,
		UserID:       input.UserID,
		Role:         input.Role,
		AssignedBy:   input.AssignedBy,
		Reason:       input.Reason,
		AssignedAt:   input.AssignedAt.UTC(),
	}
	payload, err := assignmentPayload(assignment)
	if err != nil {
		return entities.RoleAssignment{}, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := roleAssignmentModel{
			AssignmentID: assignment.AssignmentID,
			UserID:       assignment.UserID,
			Role:         string(assignment.Role),
			AssignedBy:   assignment.AssignedBy,
			Reason:       assignment.Reason,
			AssignedAt:   assignment.AssignedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidRole
			}
			return err
		}

		result := tx.Model(&userModel{}).
			Where("user_id = ?", assignment.UserID).
			Update("role", string(assignment.Role))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrPrincipalNotFound
		}

		return tx.Create(&outboxModel{
			OutboxID:  input.OutboxID,
			EventType: "authorization.role_changed",
			Payload:   payload,
			Status:    "pending",
			CreatedAt: assignment.AssignedAt,
		}).Error
	})
	if err != nil {
		return entities.RoleAssignment{}, err
	}
	return assignment, nil
}

func (r *Repository) ListUserRoles(ctx context.Context, userID string) ([]entities.RoleAssignment, error) {
	var rows []roleAssignmentModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("assigned_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.RoleAssignment, 0, len(rows))
	for _, row := range rows {
		role, _ := entities.ParseRole(row.Role)
		items = append(items, entities.RoleAssignment{
			AssignmentID: row.AssignmentID,
			UserID:       row.UserID,
			Role:         role,
			AssignedBy:   row.AssignedBy,
			Reason:       row.Reason,
			AssignedAt:   row.AssignedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) OwnerOf(ctx context.Context, resourceID string, kind entities.ResourceKind) (string, bool, error) {
	switch kind {
	case entities.ResourceArtwork, entities.ResourceProduct:
		var row artworkOwnerModel
		err := r.db.WithContext(ctx).
			Where("artwork_id = ?", strings.TrimSpace(resourceID)).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", false, nil
			}
			return "", false, err
		}
		return row.SellerUserID, true, nil
	case entities.ResourceUser, entities.ResourceCart:
		// A cart id equals the owning user id in this model.
		return strings.TrimSpace(resourceID), true, nil
	default:
		return "", false, nil
	}
}

func (r *Repository) IsOrderParticipant(ctx context.Context, orderID string, userID string) (bool, error) {
	var row orderModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", strings.TrimSpace(orderID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	trimmed := strings.TrimSpace(userID)
	return row.BuyerUserID == trimmed || row.SellerUserID == trimmed, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	tx := r.db.WithContext(ctx).
		Where("status = ?", "pending").
		Order("created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []outboxModel
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
		Model(&outboxModel{}).
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
