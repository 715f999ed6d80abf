package consts

const (
	ApplicationName    = "Anime Gallery Server"
	ApplicationVersion = "v1.0.0"
)

const (
	// MaxUploadSizeBytes 上传文件大小上限 (5 MiB)
	MaxUploadSizeBytes = 5 * 1024 * 1024

	// GalleryPageSize 图片库每页条数
	GalleryPageSize = 9

	// ResizeBound 图片压缩后的最长边 (px)，不放大
	ResizeBound = 1200
)
