package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"anime-gallery-server/internal/config"
	"anime-gallery-server/internal/consts"
	"anime-gallery-server/internal/model"
	"anime-gallery-server/internal/repository"
	"anime-gallery-server/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageService struct {
	imageStore repository.ImageStore
	uploadRoot string
	urlPrefix  string
}

func NewImageService(imageStore repository.ImageStore, uploadCfg config.UploadConfig) *ImageService {
	uploadRoot := uploadCfg.Path
	if uploadRoot == "" {
		uploadRoot = "uploads"
	}
	urlPrefix := uploadCfg.URLPrefix
	if urlPrefix == "" {
		urlPrefix = "/uploads/"
	}
	return &ImageService{
		imageStore: imageStore,
		uploadRoot: uploadRoot,
		urlPrefix:  urlPrefix,
	}
}

// validateImageFile 校验上传文件的大小与类型（声明的 MIME + 内容嗅探）
func validateImageFile(file *multipart.FileHeader, data []byte) error {
	if file.Size > int64(consts.MaxUploadSizeBytes) {
		return NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", consts.MaxUploadSizeBytes/1024/1024))
	}

	declared := file.Header.Get("Content-Type")
	if !strings.HasPrefix(declared, "image/") {
		return NewValidationError("仅支持图片文件")
	}

	// 检查文件内容 (Magic Bytes)
	sniffLen := len(data)
	if sniffLen > 512 {
		sniffLen = 512
	}
	contentType := http.DetectContentType(data[:sniffLen])
	if !strings.HasPrefix(contentType, "image/") {
		return NewValidationError("文件内容不是有效的图片")
	}

	return nil
}

// ProcessImageUpload 处理图片上传核心业务。
// 流程：校验 -> 推导方向 -> 压缩重编码 -> 落盘 -> 写入元数据。
// 数据库写入失败时删除已落盘的文件。
func (s *ImageService) ProcessImageUpload(actorID uint, actorName string, file *multipart.FileHeader, title, description, tags string) (*model.Image, error) {
	if file == nil {
		return nil, NewValidationError("请选择文件")
	}

	src, err := file.Open()
	if err != nil {
		return nil, NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, NewInternalError("无法读取上传文件")
	}

	if err := validateImageFile(file, data); err != nil {
		return nil, err
	}

	// 方向推导失败不阻断上传
	orientation := utils.DetectOrientation(data)

	resized, err := utils.FitPNG(data, consts.ResizeBound)
	if err != nil {
		return nil, NewInternalError("上传失败: " + err.Error())
	}

	// 自动创建上传目录
	if err := os.MkdirAll(s.uploadRoot, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return nil, NewInternalError("系统错误: 无法创建存储目录")
	}

	// 防碰撞文件名，保留上传者前缀便于排查
	filename := fmt.Sprintf("%d_%s.png", actorID, uuid.New().String())
	dst := filepath.Join(s.uploadRoot, filename)

	if err := os.WriteFile(dst, resized, 0644); err != nil {
		log.Printf("WriteFile error: %v\n", err)
		return nil, NewInternalError("文件保存失败")
	}

	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}

	record := model.Image{
		Title:       title,
		Description: description,
		Tags:        tags,
		Orientation: orientation,
		Filename:    filename,
		URL:         s.urlPrefix + filename,
		UserID:      actorID,
		Username:    actorName,
	}

	if err := s.imageStore.Create(&record); err != nil {
		_ = os.Remove(dst) // 回滚文件
		log.Printf("Process upload DB error: %v\n", err)
		return nil, NewInternalError("数据库错误: " + err.Error())
	}

	return &record, nil
}

// ListGallery 分页查询公共图片库，可按 title/tags 子串过滤
func (s *ImageService) ListGallery(search string, page int) ([]model.Image, error) {
	if page < 1 {
		page = 1
	}
	images, err := s.imageStore.List(repository.ListImagesParams{
		Search: search,
		Offset: (page - 1) * consts.GalleryPageSize,
		Limit:  consts.GalleryPageSize,
	})
	if err != nil {
		return nil, NewInternalError("加载图片列表失败")
	}
	return images, nil
}

// ListUserImages 查询指定用户的全部图片，按时间倒序
func (s *ImageService) ListUserImages(userID uint) ([]model.Image, error) {
	images, err := s.imageStore.List(repository.ListImagesParams{
		UserID: &userID,
	})
	if err != nil {
		return nil, NewInternalError("加载图片列表失败")
	}
	return images, nil
}

// GetImage 按 id 查询单张图片
func (s *ImageService) GetImage(id uint) (*model.Image, error) {
	image, err := s.imageStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("找不到请求的图片")
		}
		return nil, NewInternalError("查询图片失败")
	}
	return image, nil
}

// canMutate 统一的所有权判定：只有上传者本人可以修改或删除图片
func canMutate(actorID uint, image *model.Image) bool {
	return image.UserID == actorID
}

// GetOwnedImage 查询图片并校验所有权，供编辑表单使用
func (s *ImageService) GetOwnedImage(id uint, actorID uint) (*model.Image, error) {
	image, err := s.GetImage(id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actorID, image) {
		return nil, NewForbiddenError("更新失败或无权操作")
	}
	return image, nil
}

// UpdateImage 更新图片的 title/description/tags，仅限上传者本人
func (s *ImageService) UpdateImage(id uint, actorID uint, title, description, tags string) error {
	image, err := s.GetImage(id)
	if err != nil {
		return err
	}
	if !canMutate(actorID, image) {
		return NewForbiddenError("更新失败或无权操作")
	}

	rows, err := s.imageStore.UpdateDetails(id, actorID, title, description, tags)
	if err != nil {
		return NewInternalError("更新失败或无权操作")
	}
	if rows == 0 {
		return NewForbiddenError("更新失败或无权操作")
	}
	return nil
}

// DeleteImage 删除图片记录及其磁盘文件，仅限上传者本人。
// 先删记录后删文件：失败时宁可留下孤立文件，也不留下指向空文件的记录。
func (s *ImageService) DeleteImage(id uint, actorID uint) error {
	image, err := s.GetImage(id)
	if err != nil {
		return err
	}
	if !canMutate(actorID, image) {
		return NewForbiddenError("删除失败或无权操作")
	}

	if err := s.imageStore.Delete(image); err != nil {
		log.Printf("Delete image DB error: %v\n", err)
		return NewInternalError("删除图片失败")
	}

	fullPath := filepath.Join(s.uploadRoot, image.Filename)
	if err := os.Remove(fullPath); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Delete file error: %v, path: %s\n", err, fullPath)
		}
	}

	return nil
}
