package service

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/docker/go-units"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

const (
	ErrUnknownField  = "UNKNOWN_FIELD"
	ErrInvalidFormat = "INVALID_FORMAT"
	ErrFileTooLarge  = "FILE_TOO_LARGE"
	ErrTooManyFiles  = "TOO_MANY_FILES"
	ErrUploadFailed  = "UPLOAD_FAILED"
)

// IncomingFile is one file of a multipart request. Open may be called more
// than once and must return the content from the start each time.
type IncomingFile struct {
	Field    string
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// NewMemoryFile wraps in-memory content as an IncomingFile.
func NewMemoryFile(field, filename string, data []byte) IncomingFile {
	return IncomingFile{
		Field:    field,
		Filename: filename,
		Size:     int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// FileGate admits or rejects files before anything is uploaded.
type FileGate struct {
	rules      MediaRules
	inspectPDF bool
}

func NewFileGate(rules MediaRules, inspectPDF bool) *FileGate {
	return &FileGate{
		rules:      rules,
		inspectPDF: inspectPDF,
	}
}

func (g *FileGate) Rules() MediaRules {
	return g.rules
}

// Check decides a single file given how many files of the same field were
// already accepted in this request.
func (g *FileGate) Check(file IncomingFile, accepted int) error {
	rule, ok := g.rules[file.Field]
	if !ok {
		return errors.Upload(ErrUnknownField, fmt.Sprintf("Unexpected file field: %s", file.Field), nil)
	}

	if !rule.Class.Allows(file.Filename) {
		return errors.Upload(ErrInvalidFormat,
			fmt.Sprintf("Invalid file type for %s. Allowed types: %s", file.Field, strings.Join(rule.Class.Extensions(), ", ")), nil)
	}

	if file.Size > rule.MaxSize {
		return errors.Upload(ErrFileTooLarge,
			fmt.Sprintf("File too large for %s. Maximum size is %s", file.Field, units.BytesSize(float64(rule.MaxSize))), nil)
	}

	if accepted >= rule.MaxCount {
		return errors.Upload(ErrTooManyFiles,
			fmt.Sprintf("Too many files for %s. Maximum is %d", file.Field, rule.MaxCount), nil)
	}

	if rule.Class == MediaPDF && g.inspectPDF {
		if err := inspectPDF(file); err != nil {
			return errors.Upload(ErrInvalidFormat, fmt.Sprintf("%s is not a readable PDF document", file.Filename), err)
		}
	}

	return nil
}

// Admit checks every file in order and groups the accepted ones by field.
func (g *FileGate) Admit(files []IncomingFile) (map[string][]IncomingFile, error) {
	groups := make(map[string][]IncomingFile)
	for _, file := range files {
		if err := g.Check(file, len(groups[file.Field])); err != nil {
			logger.Warn("Rejected upload %q in field %s: %v", file.Filename, file.Field, err)
			return nil, err
		}
		groups[file.Field] = append(groups[file.Field], file)
	}
	return groups, nil
}

func inspectPDF(file IncomingFile) error {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	pages, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return err
	}
	logger.Debug("PDF %s has %d pages", file.Filename, pages)
	return nil
}
