package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/ats-screener/internal/models"
)

var ErrFileTooLarge = errors.New("file too large")

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".txt":  {},
}

type UploadService interface {
	ReadFile(file *multipart.FileHeader) (*models.Upload, error)
	MaxFileSize() int64
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{maxFileSize: maxFileSize}
}

func (s *uploadService) MaxFileSize() int64 {
	return s.maxFileSize
}

// ReadFile implements UploadService. Uploads are kept in memory only.
func (s *uploadService) ReadFile(file *multipart.FileHeader) (*models.Upload, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, &UnsupportedFormatError{Format: ext}
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	var reader io.Reader = src
	if s.maxFileSize > 0 {
		reader = io.LimitReader(src, s.maxFileSize+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	return &models.Upload{
		ID:          uuid.New(),
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
