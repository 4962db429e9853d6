package domain

// ImageType represents the accepted image formats for token artwork.
type ImageType string

const (
	ImageTypePNG  ImageType = "png"
	ImageTypeJPEG ImageType = "jpeg"
	ImageTypeJPG  ImageType = "jpg"
	ImageTypeGIF  ImageType = "gif"
	ImageTypeWEBP ImageType = "webp"
)

// AllowedImageTypes maps declared MIME types to ImageType.
var AllowedImageTypes = map[string]ImageType{
	"image/png":  ImageTypePNG,
	"image/jpeg": ImageTypeJPEG,
	"image/jpg":  ImageTypeJPG,
	"image/gif":  ImageTypeGIF,
	"image/webp": ImageTypeWEBP,
}

// MaxImageSize is the largest accepted image, in bytes (5 MiB).
const MaxImageSize int64 = 5 * 1024 * 1024

// UploadSource names the strategy that produced a resolved image URL.
type UploadSource string

const (
	SourcePinata      UploadSource = "pinata"
	SourceWeb3Storage UploadSource = "web3.storage"
	SourceFilebase    UploadSource = "filebase"
	SourceInline      UploadSource = "inline"
)
