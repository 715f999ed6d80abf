package repository

import "anime-gallery-server/internal/model"

// ListImagesParams 图片列表查询条件
type ListImagesParams struct {
	// Search 对 title 或 tags 做 LIKE 子串匹配，空串表示不过滤
	Search string
	// UserID 非 nil 时只返回该用户的图片
	UserID *uint
	Offset int
	// Limit <= 0 表示不限制条数
	Limit int
}

// ImageStore 图片表的数据访问接口
type ImageStore interface {
	Create(image *model.Image) error
	FindByID(id uint) (*model.Image, error)
	List(params ListImagesParams) ([]model.Image, error)
	// UpdateDetails 按 (id, userID) 范围更新 title/description/tags，
	// 返回实际修改的行数
	UpdateDetails(id uint, userID uint, title, description, tags string) (int64, error)
	Delete(image *model.Image) error
}
