package utils

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
)

// ValidateImageContentType checks the declared content type of an uploaded
// file against the allowed MIME types. The declared type is what the browser
// sent; the storage layer never trusts it for anything beyond labeling the
// object.
func ValidateImageContentType(fileHeader *multipart.FileHeader, allowedMIMETypes []string) error {
	if fileHeader == nil {
		return errors.New("no file provided")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	for _, allowed := range allowedMIMETypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}

func ValidateImageSize(fileHeader *multipart.FileHeader, maxSizeBytes int64) error {
	if fileHeader == nil {
		return errors.New("no file provided")
	}

	if fileHeader.Size > maxSizeBytes {
		return fmt.Errorf("file size %d exceeds the maximum limit of %d bytes", fileHeader.Size, maxSizeBytes)
	}
	return nil
}

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := uuid.Parse(param)
	if err != nil {
		return err
	}

	return nil
}
