package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"anime-gallery-server/internal/middleware"
	"anime-gallery-server/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"title": "首页"})
}

func (h *Handler) ShowUpload(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{"title": "上传图片"})
}

func (h *Handler) UploadImage(c *gin.Context) {
	uid := c.GetUint(middleware.ContextUserID)
	username := c.GetString(middleware.ContextUsername)

	file, err := c.FormFile("image")
	if err != nil {
		c.HTML(http.StatusBadRequest, "upload.html", gin.H{
			"title": "上传图片",
			"error": "请选择文件",
		})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	tags := c.PostForm("tags")

	if _, err := h.imageService.ProcessImageUpload(uid, username, file, title, description, tags); err != nil {
		c.HTML(errorStatusOf(err), "upload.html", gin.H{
			"title": "上传图片",
			"error": err.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, "upload.html", gin.H{
		"title":   "上传图片",
		"success": "图片上传成功！",
	})
}

// MyImages 当前用户的全部图片
func (h *Handler) MyImages(c *gin.Context) {
	uid := c.GetUint(middleware.ContextUserID)

	images, err := h.imageService.ListUserImages(uid)
	if err != nil {
		RenderError(c, err, "加载图片列表失败")
		return
	}

	c.HTML(http.StatusOK, "my-image-list.html", gin.H{
		"title":  "我的图片",
		"images": images,
	})
}

// Gallery 公共图片库，支持搜索与分页
func (h *Handler) Gallery(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	images, err := h.imageService.ListGallery(search, page)
	if err != nil {
		// 与上传页一致：在列表页上回显错误，images 置空
		c.HTML(errorStatusOf(err), "imagelist.html", gin.H{
			"title":  "图片库",
			"error":  "加载图片列表失败",
			"images": []interface{}{},
		})
		return
	}

	c.HTML(http.StatusOK, "imagelist.html", gin.H{
		"title":  "图片库",
		"images": images,
		"search": search,
		"page":   page,
	})
}

func (h *Handler) ImageDetail(c *gin.Context) {
	id, ok := parseImageID(c)
	if !ok {
		return
	}

	image, err := h.imageService.GetImage(id)
	if err != nil {
		RenderError(c, err, "查询图片失败")
		return
	}

	c.HTML(http.StatusOK, "imagedetail.html", gin.H{
		"title": image.Title,
		"image": image,
	})
}

func (h *Handler) ShowEditImage(c *gin.Context) {
	uid := c.GetUint(middleware.ContextUserID)
	id, ok := parseImageID(c)
	if !ok {
		return
	}

	image, err := h.imageService.GetOwnedImage(id, uid)
	if err != nil {
		RenderError(c, err, "查询图片失败")
		return
	}

	c.HTML(http.StatusOK, "edit-image.html", gin.H{
		"title": fmt.Sprintf("编辑 %s", image.Title),
		"image": image,
	})
}

func (h *Handler) EditImage(c *gin.Context) {
	uid := c.GetUint(middleware.ContextUserID)
	id, ok := parseImageID(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	tags := c.PostForm("tags")

	if err := h.imageService.UpdateImage(id, uid, title, description, tags); err != nil {
		RenderError(c, err, "更新失败或无权操作")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/images/%d", id))
}

func (h *Handler) DeleteImage(c *gin.Context) {
	uid := c.GetUint(middleware.ContextUserID)
	id, ok := parseImageID(c)
	if !ok {
		return
	}

	if err := h.imageService.DeleteImage(id, uid); err != nil {
		RenderError(c, err, "删除失败")
		return
	}

	c.Redirect(http.StatusFound, "/images")
}

// parseImageID 解析路径参数 :id，非法时直接渲染 404
func parseImageID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		RenderError(c, service.NewNotFoundError("找不到请求的图片"), "找不到请求的图片")
		return 0, false
	}
	return uint(id), true
}
