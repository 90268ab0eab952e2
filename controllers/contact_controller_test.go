package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContactTestController(t *testing.T, mailer *fakeMailer) *ContactController {
	t.Helper()

	dir := t.TempDir()
	successPage := filepath.Join(dir, "success.html")
	errorPage := filepath.Join(dir, "error.html")
	os.WriteFile(successPage, []byte("<html><body>submission ok</body></html>"), 0644)
	os.WriteFile(errorPage, []byte("<html><body>submission failed</body></html>"), 0644)

	return NewContactController(mailer, successPage, errorPage)
}

func newContactRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestSubmitSendsMailAndServesSuccessPage(t *testing.T) {
	e := newTestEcho()
	mailer := &fakeMailer{}
	cc := newContactTestController(t, mailer)

	form := url.Values{
		"name":       {"Jane Doe"},
		"telephone":  {"+4512345678"},
		"email":      {"jane@example.com"},
		"travelDate": {"2026-10-01"},
		"city":       {"Copenhagen"},
		"guests":     {"4"},
		"rooms":      {"2"},
		"houseType":  {"Villa"},
	}
	rec := httptest.NewRecorder()

	if err := cc.Submit(e.NewContext(newContactRequest(form), rec)); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "submission ok") {
		t.Errorf("got status %d body %q, want the success page", rec.Code, rec.Body.String())
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("got %d mails, want 1", len(mailer.sent))
	}
	mail := mailer.sent[0]
	if mail.contentType != "text/html" {
		t.Errorf("got content type %q, want text/html", mail.contentType)
	}
	for _, field := range []string{"Jane Doe", "+4512345678", "jane@example.com", "Copenhagen", "Villa"} {
		if !strings.Contains(mail.body, field) {
			t.Errorf("mail body is missing submitted field %q", field)
		}
	}
}

func TestSubmitEscapesFormFields(t *testing.T) {
	e := newTestEcho()
	mailer := &fakeMailer{}
	cc := newContactTestController(t, mailer)

	form := url.Values{"name": {`<script>alert("x")</script>`}}
	rec := httptest.NewRecorder()

	if err := cc.Submit(e.NewContext(newContactRequest(form), rec)); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("got %d mails, want 1", len(mailer.sent))
	}
	body := mailer.sent[0].body
	if strings.Contains(body, "<script>") {
		t.Error("form input must not reach the mail body unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("form input should appear HTML-escaped in the mail body")
	}
}

func TestSubmitServesErrorPageOnMailFailure(t *testing.T) {
	e := newTestEcho()
	cc := newContactTestController(t, &fakeMailer{err: errors.New("smtp down")})

	rec := httptest.NewRecorder()
	if err := cc.Submit(e.NewContext(newContactRequest(url.Values{"name": {"Jane"}}), rec)); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "submission failed") {
		t.Errorf("got body %q, want the error page", rec.Body.String())
	}
}
