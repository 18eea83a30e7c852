package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/studentjobsgroningen/site-services/api/internal/catalog"
	"github.com/studentjobsgroningen/site-services/api/internal/employer/application"
	"github.com/studentjobsgroningen/site-services/api/internal/employer/domain"
)

// ==========================
// Fakes
// ==========================

type fakeSubmissionRepo struct {
	mu       sync.Mutex
	id       string
	err      error
	inserted []domain.Submission
}

func (r *fakeSubmissionRepo) Insert(_ context.Context, submission domain.Submission) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.inserted = append(r.inserted, submission)
	return r.id, nil
}

func (r *fakeSubmissionRepo) records() []domain.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Submission(nil), r.inserted...)
}

type fakeLogoStore struct {
	mu      sync.Mutex
	url     string
	err     error
	uploads []application.LogoUpload
}

func (s *fakeLogoStore) Upload(_ context.Context, upload application.LogoUpload) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.uploads = append(s.uploads, upload)
	return s.url, nil
}

func (s *fakeLogoStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads)
}

type fakeNotifier struct {
	staffErr    error
	employerErr error
	calls       chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan string, 2)}
}

func (n *fakeNotifier) NotifyStaff(_ context.Context, _ domain.Submission, _ string) error {
	n.calls <- "staff"
	return n.staffErr
}

func (n *fakeNotifier) ConfirmEmployer(_ context.Context, _ domain.Submission, _ string) error {
	n.calls <- "employer"
	return n.employerErr
}

func (n *fakeNotifier) waitForBoth(t *testing.T) []string {
	t.Helper()
	received := make([]string, 0, 2)
	for len(received) < 2 {
		select {
		case call := <-n.calls:
			received = append(received, call)
		case <-time.After(2 * time.Second):
			t.Fatalf("expected 2 notification dispatches, got %d (%v)", len(received), received)
		}
	}
	return received
}

// ==========================
// Helpers
// ==========================

type testDeps struct {
	repo     *fakeSubmissionRepo
	logos    *fakeLogoStore
	notifier *fakeNotifier
	router   chi.Router
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	deps := &testDeps{
		repo:     &fakeSubmissionRepo{id: "66b2f0a1c3d4e5f601234567"},
		logos:    &fakeLogoStore{url: "https://media.example.com/logos/cafe-de-sigaar/logo.png"},
		notifier: newFakeNotifier(),
	}

	handler := NewHandler(Config{
		Logger:      zap.NewNop(),
		Catalog:     catalog.Default(),
		Submissions: application.NewSubmitService(deps.repo),
		Logos:       deps.logos,
		Notifier:    deps.notifier,
		DefaultCity: "Groningen",
		Region:      "groningen",
	})

	deps.router = chi.NewRouter()
	handler.Register(deps.router)
	return deps
}

type logoPart struct {
	filename    string
	contentType string
	data        []byte
}

func validFields() map[string]string {
	return map[string]string{
		"company":     "Cafe De Sigaar",
		"name":        "Jan de Vries",
		"email":       "jan@example.com",
		"title":       "Barista",
		"description": strings.Repeat("Serve coffee and keep the terrace running through the rush. ", 2),
	}
}

func postLead(t *testing.T, router chi.Router, fields map[string]string, logo *logoPart) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if logo != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="logo"; filename=%q`, logo.filename))
		header.Set("Content-Type", logo.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(logo.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/employer-lead", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type leadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

func decodeLead(t *testing.T, rec *httptest.ResponseRecorder) leadResponse {
	t.Helper()
	var resp leadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ==========================
// Honeypot
// ==========================

func TestEmployerLead_HoneypotIsSilentlyDropped(t *testing.T) {
	deps := newTestDeps(t)

	fields := validFields()
	fields["website"] = "https://spam.example.com"

	rec := postLead(t, deps.router, fields, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeLead(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Job submitted successfully", resp.Message)
	assert.Empty(t, resp.ID)

	assert.Empty(t, deps.repo.records(), "honeypot submissions must never reach the store")
	assert.Zero(t, deps.logos.count())
	select {
	case call := <-deps.notifier.calls:
		t.Fatalf("unexpected notification %q for honeypot submission", call)
	case <-time.After(50 * time.Millisecond):
	}
}

// ==========================
// Server-side validation
// ==========================

func TestEmployerLead_MissingRequiredFields(t *testing.T) {
	for _, missing := range []string{"company", "name", "email", "title", "description"} {
		t.Run(missing, func(t *testing.T) {
			deps := newTestDeps(t)

			fields := validFields()
			delete(fields, missing)

			rec := postLead(t, deps.router, fields, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Missing required fields. Please fill out all required fields.", decodeLead(t, rec).Error)
			assert.Empty(t, deps.repo.records())
		})
	}
}

func TestEmployerLead_InvalidEmail(t *testing.T) {
	for _, email := range []string{"jan", "jan@example", "jan example.com", "@example.com"} {
		t.Run(email, func(t *testing.T) {
			deps := newTestDeps(t)

			fields := validFields()
			fields["email"] = email

			rec := postLead(t, deps.router, fields, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Please enter a valid email address.", decodeLead(t, rec).Error)
			assert.Empty(t, deps.repo.records())
		})
	}
}

func TestEmployerLead_SalaryMinAboveMaxIsAccepted(t *testing.T) {
	// The min>max rule belongs to the interactive form; the API deliberately
	// does not re-check it.
	deps := newTestDeps(t)

	fields := validFields()
	fields["baseSalaryMin"] = "18"
	fields["baseSalaryMax"] = "12"

	rec := postLead(t, deps.router, fields, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	records := deps.repo.records()
	require.Len(t, records, 1)
	assert.Equal(t, 18.0, *records[0].BaseSalaryMin)
	assert.Equal(t, 12.0, *records[0].BaseSalaryMax)
}

// ==========================
// Logo upload
// ==========================

func TestEmployerLead_LogoWithDisallowedTypeFailsRequest(t *testing.T) {
	deps := newTestDeps(t)

	rec := postLead(t, deps.router, validFields(), &logoPart{
		filename:    "logo.gif",
		contentType: "image/gif",
		data:        []byte("GIF89a"),
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid file type. Allowed types: image/jpeg, image/jpg, image/png, image/webp", decodeLead(t, rec).Error)
	assert.Empty(t, deps.repo.records(), "a rejected logo must block the whole submission")
	assert.Zero(t, deps.logos.count())
}

func TestEmployerLead_OversizedLogoFailsRequest(t *testing.T) {
	deps := newTestDeps(t)

	rec := postLead(t, deps.router, validFields(), &logoPart{
		filename:    "logo.png",
		contentType: "image/png",
		data:        bytes.Repeat([]byte{0xAB}, 2*1024*1024+1),
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File size must be less than 2MB", decodeLead(t, rec).Error)
	assert.Empty(t, deps.repo.records())
	assert.Zero(t, deps.logos.count())
}

func TestEmployerLead_LogoStoreFailureFailsBeforeWrite(t *testing.T) {
	deps := newTestDeps(t)
	deps.logos.err = errors.New("bucket unavailable")

	rec := postLead(t, deps.router, validFields(), &logoPart{
		filename:    "logo.png",
		contentType: "image/png",
		data:        []byte{0x89, 'P', 'N', 'G'},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Failed to upload logo", decodeLead(t, rec).Error)
	assert.Empty(t, deps.repo.records(), "upload must complete before persistence is attempted")
}

func TestEmployerLead_PlaceholderLogoPartIsIgnored(t *testing.T) {
	deps := newTestDeps(t)

	rec := postLead(t, deps.router, validFields(), &logoPart{
		filename:    "undefined",
		contentType: "application/octet-stream",
		data:        []byte("x"),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, deps.logos.count())
	records := deps.repo.records()
	require.Len(t, records, 1)
	assert.Empty(t, records[0].LogoURL)
}

func TestEmployerLead_SuccessWithLogo(t *testing.T) {
	deps := newTestDeps(t)

	fields := validFields()
	fields["logoAlt"] = "Cafe De Sigaar logo"

	rec := postLead(t, deps.router, fields, &logoPart{
		filename:    "logo.png",
		contentType: "image/png",
		data:        []byte{0x89, 'P', 'N', 'G'},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeLead(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "66b2f0a1c3d4e5f601234567", resp.ID)

	require.Equal(t, 1, deps.logos.count())
	assert.Equal(t, "Cafe De Sigaar", deps.logos.uploads[0].Company)
	assert.Equal(t, "image/png", deps.logos.uploads[0].ContentType)

	records := deps.repo.records()
	require.Len(t, records, 1)
	assert.Equal(t, deps.logos.url, records[0].LogoURL)
	assert.Equal(t, "Cafe De Sigaar logo", records[0].LogoAlt)
}

// ==========================
// Store write and response
// ==========================

func TestEmployerLead_SuccessWithoutLogoLeavesLogoAbsent(t *testing.T) {
	deps := newTestDeps(t)

	rec := postLead(t, deps.router, validFields(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	records := deps.repo.records()
	require.Len(t, records, 1)
	assert.Empty(t, records[0].LogoURL, "no logo means no logo_url, not an empty placeholder")
	assert.Equal(t, domain.StatusPending, records[0].Status)
}

func TestEmployerLead_StoreErrorsAreMappedTo500(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantMsg  string
	}{
		{"duplicate", errors.New("unique index violation"), application.MsgDuplicateSubmission},
		{"network", errors.New("network unreachable"), application.MsgNetworkFailure},
		{"other", errors.New("boom"), application.MsgSubmitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(t)
			deps.repo.err = tt.storeErr

			rec := postLead(t, deps.router, validFields(), nil)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeLead(t, rec).Error)
		})
	}
}

// ==========================
// Notifications
// ==========================

func TestEmployerLead_DispatchesBothNotifications(t *testing.T) {
	deps := newTestDeps(t)

	rec := postLead(t, deps.router, validFields(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "66b2f0a1c3d4e5f601234567", decodeLead(t, rec).ID)

	received := deps.notifier.waitForBoth(t)
	assert.ElementsMatch(t, []string{"staff", "employer"}, received)
}

// ==========================
// Assembly
// ==========================

func TestAssembleSubmission(t *testing.T) {
	handler := NewHandler(Config{
		Logger:      zap.NewNop(),
		DefaultCity: "Groningen",
		Region:      "groningen",
	})

	fieldFunc := func(fields map[string]string) func(string) string {
		return func(name string) string { return fields[name] }
	}

	t.Run("defaults for omitted fields", func(t *testing.T) {
		got := handler.assembleSubmission(fieldFunc(validFields()))

		assert.Equal(t, domain.DefaultEmploymentType, got.EmploymentType)
		assert.Equal(t, domain.DefaultCategory, got.Category)
		assert.Equal(t, domain.DefaultPlan, got.Plan)
		assert.Equal(t, "Groningen", got.City)
		assert.Equal(t, "groningen", got.Region)
		assert.Equal(t, domain.StatusPending, got.Status)
		assert.False(t, got.EnglishFriendly)
		assert.Nil(t, got.BaseSalaryMin)
		assert.Nil(t, got.BaseSalaryMax)
		assert.Empty(t, got.Phone)
		assert.Empty(t, got.Area)
		assert.Empty(t, got.ExternalURL)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		fields := validFields()
		fields["employmentType"] = "INTERNSHIP"
		fields["category"] = "logistics"
		fields["city"] = "Haren"
		fields["plan"] = "featured"
		fields["plan_price_eur"] = "49"

		got := handler.assembleSubmission(fieldFunc(fields))

		assert.Equal(t, "INTERNSHIP", got.EmploymentType)
		assert.Equal(t, "logistics", got.Category)
		assert.Equal(t, "Haren", got.City)
		assert.Equal(t, "featured", got.Plan)
		assert.Equal(t, "49", got.PlanPriceEUR)
	})

	t.Run("english friendly checkbox coerces on to true", func(t *testing.T) {
		fields := validFields()
		fields["englishFriendly"] = "on"

		assert.True(t, handler.assembleSubmission(fieldFunc(fields)).EnglishFriendly)
	})

	t.Run("any other checkbox value stays false", func(t *testing.T) {
		for _, v := range []string{"", "true", "yes", "ON"} {
			fields := validFields()
			fields["englishFriendly"] = v
			assert.False(t, handler.assembleSubmission(fieldFunc(fields)).EnglishFriendly, "value %q", v)
		}
	})

	t.Run("values are trimmed", func(t *testing.T) {
		fields := validFields()
		fields["company"] = "  Cafe De Sigaar  "
		fields["email"] = " jan@example.com "

		got := handler.assembleSubmission(fieldFunc(fields))

		assert.Equal(t, "Cafe De Sigaar", got.Company)
		assert.Equal(t, "jan@example.com", got.Email)
	})

	t.Run("unparseable salary becomes absent", func(t *testing.T) {
		fields := validFields()
		fields["baseSalaryMin"] = "twelve"
		fields["baseSalaryMax"] = "15.50"

		got := handler.assembleSubmission(fieldFunc(fields))

		assert.Nil(t, got.BaseSalaryMin)
		require.NotNil(t, got.BaseSalaryMax)
		assert.Equal(t, 15.5, *got.BaseSalaryMax)
	})
}

func TestEmployerLead_NotificationFailuresDoNotAffectResponse(t *testing.T) {
	deps := newTestDeps(t)
	deps.notifier.staffErr = errors.New("ses throttled")
	deps.notifier.employerErr = errors.New("address suppressed")

	rec := postLead(t, deps.router, validFields(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeLead(t, rec)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)

	deps.notifier.waitForBoth(t)
	require.Len(t, deps.repo.records(), 1, "a failed notification never rolls back the write")
}
