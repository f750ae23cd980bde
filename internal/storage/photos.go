package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/fadehouse/fadehouse-api/internal/config"
	"github.com/fadehouse/fadehouse-api/internal/httperr"
)

const (
	maxUploadSize = 5 * 1024 * 1024
	maxPhotoEdge  = 800
	webpQuality   = 80
)

// PhotoStore converts uploaded barber portraits to bounded webp and
// keeps them in an S3 bucket under uuid keys.
type PhotoStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &PhotoStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

// UploadBarberPhoto reads a jpeg/png upload, resizes it to fit
// maxPhotoEdge, re-encodes as webp and uploads it. Returns the public URL.
func (s *PhotoStore) UploadBarberPhoto(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", httperr.ErrBusiness("photo_too_large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return "", err
	}
	if len(raw) > maxUploadSize {
		return "", httperr.ErrBusiness("photo_too_large")
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", httperr.ErrBusiness("unsupported_image")
	}

	img = fitWithin(img, maxPhotoEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("barbers/%s.webp", uuid.New().String())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

// fitWithin scales the image down (never up) so its longest edge is at
// most maxEdge, keeping aspect ratio.
func fitWithin(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
