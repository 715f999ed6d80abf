package repository

import (
	"anime-gallery-server/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) List(params ListImagesParams) ([]model.Image, error) {
	var images []model.Image

	query := r.db.Model(&model.Image{})
	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title LIKE ? OR tags LIKE ?", pattern, pattern)
	}

	// created_at 在 SQLite 下为秒级精度，追加 id 保证同秒内顺序稳定
	query = query.Order("created_at desc, id desc").Offset(params.Offset)
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}

	if err := query.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) UpdateDetails(id uint, userID uint, title, description, tags string) (int64, error) {
	result := r.db.Model(&model.Image{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"tags":        tags,
		})
	return result.RowsAffected, result.Error
}

func (r *ImageRepository) Delete(image *model.Image) error {
	return r.db.Delete(image).Error
}
