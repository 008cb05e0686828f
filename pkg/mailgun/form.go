package mailgun

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeForm writes the payload as multipart/form-data.
// Returns the body and its Content-Type header value.
func encodeForm(payload *Payload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range payload.fields {
		if f.Key == FieldAttachment {
			list, _ := f.Value.([]Attachment)
			for i, a := range list {
				if err := writeAttachment(w, a); err != nil {
					return nil, "", errors.Join(ErrAttachmentFailed, fmt.Errorf("attachment %d: %w", i, err))
				}
			}
			continue
		}

		for _, v := range formValues(f.Value) {
			if err := w.WriteField(f.Key, v); err != nil {
				return nil, "", fmt.Errorf("mailgun: write field %s: %w", f.Key, err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("mailgun: close form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

func writeAttachment(w *multipart.Writer, a Attachment) error {
	filename := a.Filename
	if filename == "" && a.Path != "" {
		filename = filepath.Base(a.Path)
	}
	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FieldAttachment, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}

	if len(a.Content) > 0 {
		_, err = part.Write(a.Content)
		return err
	}

	if a.Path == "" {
		return nil
	}

	file, err := os.Open(a.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(part, file)
	return err
}

// formValues converts a payload value into form values.
// Slices produce one form value per element.
func formValues(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return []string{val}
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, formValues(item)...)
		}
		return out
	case map[string]any:
		data, err := json.Marshal(val)
		if err != nil {
			return []string{fmt.Sprint(val)}
		}
		return []string{string(data)}
	default:
		return []string{formValue(val)}
	}
}

func formValue(v any) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(time.RFC1123Z)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
