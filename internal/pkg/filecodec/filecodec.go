// Package filecodec turns uploaded files into inline base64 payloads stored
// with their owning records. Content is read fully into memory; size is
// bounded by the caps enforced here.
package filecodec

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/alawael/platform/internal/pkg/apperrors"
)

// MaxUploadSize is the largest accepted upload (10 MiB).
const MaxUploadSize = 10 << 20

// DocumentTypes is the allow-list for homework submissions and course files.
var DocumentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// ImageTypes is the allow-list for avatar uploads.
var ImageTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
}

// extensionTypes maps file extensions to MIME types for clients that do not
// set a Content-Type on the multipart part.
var extensionTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// InlineFile is a validated, base64-encoded upload.
type InlineFile struct {
	Name     string
	MimeType string
	Size     int64
	Content  string
}

// DetectType returns the MIME type of an uploaded part, falling back to the
// filename extension when the part carries no Content-Type.
func DetectType(fileHeader *multipart.FileHeader) string {
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" {
		// Strip parameters such as "; charset=utf-8"
		if idx := strings.Index(ct, ";"); idx >= 0 {
			ct = ct[:idx]
		}
		return strings.TrimSpace(ct)
	}
	return extensionTypes[strings.ToLower(filepath.Ext(fileHeader.Filename))]
}

// Validate checks an upload's type and size against an allow-list without
// reading its content.
func Validate(name, mimeType string, size int64, allowed []string) error {
	ok := false
	for _, t := range allowed {
		if mimeType == t {
			ok = true
			break
		}
	}
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrUnsupportedFileType,
			fmt.Sprintf("file type %q is not accepted", mimeType)).
			WithDetails(map[string]interface{}{"fileName": name, "fileType": mimeType})
	}

	if size > MaxUploadSize {
		return apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("file exceeds the %d MiB limit", MaxUploadSize>>20)).
			WithDetails(map[string]interface{}{"fileName": name, "fileSize": size})
	}

	return nil
}

// EncodeMultipart validates an uploaded part against the allow-list and
// returns it as an inline payload.
func EncodeMultipart(fileHeader *multipart.FileHeader, allowed []string) (*InlineFile, error) {
	mimeType := DetectType(fileHeader)
	if err := Validate(fileHeader.Filename, mimeType, fileHeader.Size, allowed); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	return Encode(file, fileHeader.Filename, mimeType)
}

// Encode reads the whole content and base64-encodes it. The declared size
// must already have passed Validate; the read is still capped so a lying
// client cannot exceed the limit.
func Encode(r io.Reader, name, mimeType string) (*InlineFile, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("file exceeds the %d MiB limit", MaxUploadSize>>20))
	}

	return &InlineFile{
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Content:  base64.StdEncoding.EncodeToString(data),
	}, nil
}
