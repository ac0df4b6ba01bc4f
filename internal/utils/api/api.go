package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
)

// set of supported api header keys
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"
	HeaderUserAgent     = "User-Agent"
)

// set of supported api media types
const (
	MediaTypeJSON        = "application/json"
	MediaTypeOctetStream = "application/octet-stream"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body        io.Reader
	ContentType string
	Header      http.Header
	Query       url.Values

	// NoAuth sends the request without the session's bearer token
	// and disables the session refresh on a 401 response
	NoAuth bool

	// PreventRefresh attaches the bearer token but disables the session refresh on a 401 response
	PreventRefresh bool
}

// JSONRequestOptions returns RequestOptions configured to send the provided payload as JSON
func JSONRequestOptions(payload interface{}) (RequestOptions, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return RequestOptions{}, fmt.Errorf("failed to encode request body: %w", err)
	}
	return RequestOptions{
		Body:        bytes.NewReader(body),
		ContentType: MediaTypeJSON,
	}, nil
}

// FormFile is a file part of a multipart form
type FormFile struct {
	Field    string
	Filename string
	Content  io.Reader
}

// MultipartRequestOptions returns RequestOptions configured to send the provided
// fields and files as a multipart form
// The content type carries the boundary generated for the body
func MultipartRequestOptions(fields map[string]string, files ...FormFile) (RequestOptions, error) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return RequestOptions{}, fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	for _, file := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(file.Field), escapeQuotes(file.Filename)))

		contentType, ok := ContentTypeByExtension(filepath.Ext(file.Filename))
		if !ok {
			contentType = MediaTypeOctetStream
		}
		h.Set(HeaderContentType, contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return RequestOptions{}, fmt.Errorf("failed to create form file %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return RequestOptions{}, fmt.Errorf("failed to write form file %s: %w", file.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return RequestOptions{}, fmt.Errorf("failed to close form: %w", err)
	}

	return RequestOptions{
		Body:        body,
		ContentType: w.FormDataContentType(),
	}, nil
}

// ContentTypeByExtension returns the media type registered for the file extension
func ContentTypeByExtension(ext string) (string, bool) {
	if ext == "" {
		return "", false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	contentType := mime.TypeByExtension(strings.ToLower(ext))
	if contentType == "" {
		return "", false
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType, true
	}
	return contentType, true
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
