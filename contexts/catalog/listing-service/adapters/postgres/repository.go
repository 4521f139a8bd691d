package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"atelier/contexts/catalog/listing-service/domain/entities"
	domainerrors "atelier/contexts/catalog/listing-service/domain/errors"
	"atelier/contexts/catalog/listing-service/domain/valueobjects"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the gorm-backed adapter for the catalog persistence port.
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

type artistModel struct {
	ArtistID  string    `gorm:"column:artist_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;uniqueIndex"`
	Username  string    `gorm:"column:username;uniqueIndex"`
	Email     string    `gorm:"column:email"`
	Bio       string    `gorm:"column:bio"`
	Rating    float64   `gorm:"column:rating;type:numeric(2,1)"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (artistModel) TableName() string { return "artists" }

type artworkModel struct {
	ArtworkID   string          `gorm:"column:artwork_id;primaryKey"`
	ArtistID    string          `gorm:"column:artist_id;index"`
	Title       string          `gorm:"column:title"`
	Description string          `gorm:"column:description"`
	PriceAmount decimal.Decimal `gorm:"column:price_amount;type:numeric(12,2)"`
	Currency    string          `gorm:"column:currency;type:char(3)"`
	Status      string          `gorm:"column:status"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (artworkModel) TableName() string { return "artworks" }

func (r *Repository) GetArtist(ctx context.Context, artistID string) (entities.Artist, error) {
	var row artistModel
	err := r.db.WithContext(ctx).First(&row, "artist_id = ?", artistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Artist{}, domainerrors.ErrArtistNotFound
	}
	if err != nil {
		return entities.Artist{}, err
	}
	return artistFromModel(row)
}

func (r *Repository) SaveArtist(ctx context.Context, artist entities.Artist) error {
	row := artistModel{
		ArtistID:  artist.ArtistID,
		UserID:    artist.UserID,
		Username:  artist.Username.String(),
		Email:     artist.Email.String(),
		Bio:       artist.Bio,
		Rating:    artist.Rating.Value().InexactFloat64(),
		CreatedAt: artist.CreatedAt,
		UpdatedAt: artist.UpdatedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "artist_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "bio", "rating", "updated_at"}),
	}).Create(&row).Error
}

func (r *Repository) GetArtwork(ctx context.Context, artworkID string) (entities.Artwork, error) {
	var row artworkModel
	err := r.db.WithContext(ctx).First(&row, "artwork_id = ?", artworkID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Artwork{}, domainerrors.ErrArtworkNotFound
	}
	if err != nil {
		return entities.Artwork{}, err
	}
	return artworkFromModel(row), nil
}

func (r *Repository) SaveArtwork(ctx context.Context, artwork entities.Artwork) error {
	row := artworkModel{
		ArtworkID:   artwork.ArtworkID,
		ArtistID:    artwork.ArtistID,
		Title:       artwork.Title,
		Description: artwork.Description,
		PriceAmount: artwork.PriceAmount,
		Currency:    artwork.Currency,
		Status:      string(artwork.Status),
		CreatedAt:   artwork.CreatedAt,
		UpdatedAt:   artwork.UpdatedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "artwork_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "price_amount", "status", "updated_at"}),
	}).Create(&row).Error
}

func (r *Repository) ListArtworksByArtist(ctx context.Context, artistID string) ([]entities.Artwork, error) {
	var rows []artworkModel
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	artworks := make([]entities.Artwork, 0, len(rows))
	for _, row := range rows {
		artworks = append(artworks, artworkFromModel(row))
	}
	return artworks, nil
}

func artistFromModel(row artistModel) (entities.Artist, error) {
	username, err := valueobjects.NewUsername(row.Username)
	if err != nil {
		return entities.Artist{}, err
	}
	email, err := valueobjects.NewEmail(row.Email)
	if err != nil {
		return entities.Artist{}, err
	}
	rating, err := valueobjects.NewRating(row.Rating)
	if err != nil {
		return entities.Artist{}, err
	}
	return entities.Artist{
		ArtistID:  row.ArtistID,
		UserID:    row.UserID,
		Username:  username,
		Email:     email,
		Bio:       row.Bio,
		Rating:    rating,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func artworkFromModel(row artworkModel) entities.Artwork {
	return entities.Artwork{
		ArtworkID:   row.ArtworkID,
		ArtistID:    row.ArtistID,
		Title:       row.Title,
		Description: row.Description,
		PriceAmount: row.PriceAmount,
		Currency:    row.Currency,
		Status:      entities.ArtworkStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
