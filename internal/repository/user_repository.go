package repository

import "anime-gallery-server/internal/model"

// UserStore 用户表的数据访问接口，便于在测试中替换实现
type UserStore interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
}
