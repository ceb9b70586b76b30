package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ocene/backend/internal/models"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when a create collides with an existing id.
	ErrDuplicateID = errors.New("duplicate id")
)

type Storage interface {
	ListRatings(ctx context.Context) ([]models.Rating, error)
	GetRating(ctx context.Context, id int) (*models.Rating, error)
	SaveRating(ctx context.Context, rating *models.Rating) error
	DeleteRating(ctx context.Context, id int) error

	ListComplaints(ctx context.Context) ([]models.Complaint, error)
	GetComplaint(ctx context.Context, id int) (*models.Complaint, error)
	SaveComplaint(ctx context.Context, complaint *models.Complaint) error
	DeleteComplaint(ctx context.Context, id int) error

	Ping(ctx context.Context) error
}

type Service struct {
	DB *gorm.DB
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Migrate creates the ratings and complaints tables when they do not
// exist yet.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(&models.Rating{}, &models.Complaint{})
}

// Ping reports whether the database is reachable. Used by the liveness
// probe.
func (s *Service) Ping(ctx context.Context) error {
	db, err := s.DB.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// ListRatings returns every stored rating ordered by id, padding trimmed.
func (s *Service) ListRatings(ctx context.Context) ([]models.Rating, error) {
	var rows []models.Rating
	if err := s.DB.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	ratings := make([]models.Rating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, row.Trimmed())
	}
	return ratings, nil
}

// GetRating returns the rating with the given id or ErrNotFound.
func (s *Service) GetRating(ctx context.Context, id int) (*models.Rating, error) {
	var rating models.Rating
	err := s.DB.WithContext(ctx).First(&rating, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	trimmed := rating.Trimmed()
	return &trimmed, nil
}

// SaveRating inserts a new rating. Ids are caller-supplied, so a clash
// with an existing row is reported as ErrDuplicateID rather than
// silently accepted.
func (s *Service) SaveRating(ctx context.Context, rating *models.Rating) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Rating{}).
		Where("id = ?", rating.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateID
	}

	err := s.DB.WithContext(ctx).Create(rating).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

// DeleteRating removes the rating with the given id. Absence is detected
// through the affected-row count of the parameterized delete.
func (s *Service) DeleteRating(ctx context.Context, id int) error {
	result := s.DB.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListComplaints returns every stored complaint ordered by id, padding
// trimmed.
func (s *Service) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	var rows []models.Complaint
	if err := s.DB.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	complaints := make([]models.Complaint, 0, len(rows))
	for _, row := range rows {
		complaints = append(complaints, row.Trimmed())
	}
	return complaints, nil
}

// GetComplaint returns the complaint with the given id or ErrNotFound.
func (s *Service) GetComplaint(ctx context.Context, id int) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.WithContext(ctx).First(&complaint, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	trimmed := complaint.Trimmed()
	return &trimmed, nil
}

// SaveComplaint inserts a new complaint, rejecting duplicate ids.
func (s *Service) SaveComplaint(ctx context.Context, complaint *models.Complaint) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Complaint{}).
		Where("id = ?", complaint.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateID
	}

	err := s.DB.WithContext(ctx).Create(complaint).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

// DeleteComplaint removes the complaint with the given id or returns
// ErrNotFound.
func (s *Service) DeleteComplaint(ctx context.Context, id int) error {
	result := s.DB.WithContext(ctx).Delete(&models.Complaint{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
