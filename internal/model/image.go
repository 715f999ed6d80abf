package model

import "time"

// 图片方向分类，上传时根据原始宽高推导
const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
	OrientationSquare    = "square"
	OrientationUnknown   = "unknown"
)

type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Tags        string    `json:"tags"`
	Orientation string    `json:"orientation"`
	Filename    string    `json:"filename" gorm:"not null;unique"`
	URL         string    `json:"url" gorm:"not null"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Username    string    `json:"username" gorm:"not null"` // 上传时冗余的用户名快照
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	User        User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
