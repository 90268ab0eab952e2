package controllers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/emmanuelcheru/estate_backend/models"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// fakeRepo is an in-memory PropertyRepository that mimics the partial-merge
// semantics of the document database.
type fakeRepo struct {
	seq     int
	keys    []string
	records map[string]models.PropertyData
	err     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]models.PropertyData)}
}

func (f *fakeRepo) Create(ctx context.Context, data models.PropertyData) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	key := fmt.Sprintf("-prop%03d", f.seq)
	f.keys = append(f.keys, key)
	f.records[key] = data
	return &models.Property{ID: key, PropertyData: data}, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	properties := make([]models.Property, 0, len(f.keys))
	for _, key := range f.keys {
		properties = append(properties, models.Property{ID: key, PropertyData: f.records[key]})
	}
	return properties, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return &models.Property{ID: id, PropertyData: data}, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	record := f.records[id]
	for key, value := range fields {
		switch key {
		case "name":
			record.Name = value.(string)
		case "location":
			record.Location = value.(string)
		case "description":
			record.Description = value.(string)
		case "price":
			record.Price = value.(float64)
		case "bedrooms":
			record.Bedrooms = value.(int)
		case "bathrooms":
			record.Bathrooms = value.(int)
		case "propertyType":
			record.PropertyType = value.(string)
		case "period":
			record.Period = value.(string)
		case "imageUrl":
			record.ImageURL = value.(string)
		}
	}
	f.records[id] = record
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.records, id)
	for i, key := range f.keys {
		if key == id {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUploader struct {
	calls int
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, originalName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.calls++
	return fmt.Sprintf("https://blob.example.com/uploads/%d_%s", f.calls, originalName), nil
}

type sentMail struct {
	to          []string
	subject     string
	contentType string
	body        string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to []string, subject, contentType, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, contentType: contentType, body: body})
	return nil
}

// newMultipartRequest builds a multipart request with the given form fields
// and, when imageName is non-empty, an attached image file.
func newMultipartRequest(t *testing.T, method, target string, fields map[string]string, imageName string, imageData []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	if imageName != "" {
		fw, err := writer.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		fw.Write(imageData)
	}
	writer.Close()

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}
