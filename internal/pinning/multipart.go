package pinning

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"

	"degenlauncher/internal/domain"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// FormField is an extra non-file multipart field.
type FormField struct {
	Name  string
	Value string
}

// BuildMultipartBody writes image under the "file" field followed by fields.
// It returns the encoded body and its Content-Type header value.
func BuildMultipartBody(image domain.ImageCandidate, fields ...FormField) (*bytes.Buffer, string, error) {
	rc, err := image.OpenLimited()
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = rc.Close() }()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(uploadFilename(image.Name))))
	h.Set("Content-Type", image.MediaType)
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, rc); err != nil {
		if errors.Is(err, domain.ErrImageTooLarge) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("%w: %v", domain.ErrReadFailed, err)
	}

	for _, f := range fields {
		if err := writer.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("writing field %s: %w", f.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

// uploadFilename strips directories from a client-supplied name.
func uploadFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "image"
	}
	return base
}
