package public

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/studentjobsgroningen/site-services/api/internal/employer/application"
	"github.com/studentjobsgroningen/site-services/api/internal/employer/domain"
	"github.com/studentjobsgroningen/site-services/api/internal/employer/validation"
	"github.com/studentjobsgroningen/site-services/api/internal/interfaces/http/common"
)

const (
	// honeypotField is invisible in the form layout; humans leave it empty.
	honeypotField = "website"

	maxRequestBody    = 10 << 20
	multipartMemLimit = 4 << 20

	submitSuccessMessage = "Job submitted successfully"
	notifyTimeout        = 30 * time.Second
)

type submitSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// employerLeadHandler runs the submission pipeline: honeypot check, the
// server-side validation subset, optional logo upload, assembly, store write,
// then the response, with notifications dispatched in the background.
func (h *Handler) employerLeadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		if err := r.ParseMultipartForm(multipartMemLimit); err != nil {
			common.Error(h.logger, w, http.StatusBadRequest, "Invalid form submission.")
			return
		}

		// Bots fill every field; a non-empty honeypot gets a success-shaped
		// response with nothing written, indistinguishable from the real thing.
		if r.FormValue(honeypotField) != "" {
			common.WriteJSON(h.logger, w, http.StatusOK, submitSuccessResponse{
				Success: true,
				Message: submitSuccessMessage,
			})
			return
		}

		if !validation.Required(r.FormValue) {
			common.Error(h.logger, w, http.StatusBadRequest, "Missing required fields. Please fill out all required fields.")
			return
		}
		if !validation.Email(strings.TrimSpace(r.FormValue("email"))) {
			common.Error(h.logger, w, http.StatusBadRequest, "Please enter a valid email address.")
			return
		}

		logoURL, err := h.uploadLogoIfPresent(r)
		if err != nil {
			h.logger.Error("logo upload rejected", zap.Error(err))
			common.Error(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		submission := h.assembleSubmission(r.FormValue)
		submission.LogoURL = logoURL

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		id, err := h.submissions.Submit(ctx, submission)
		if err != nil {
			h.logger.Error("submission write failed",
				zap.String("company", submission.Company),
				zap.Error(err))
			var storeErr *application.StoreWriteError
			if errors.As(err, &storeErr) {
				common.Error(h.logger, w, http.StatusInternalServerError, storeErr.Message)
				return
			}
			common.Error(h.logger, w, http.StatusInternalServerError, application.MsgSubmitFailure)
			return
		}

		h.logger.Info("employer submission stored",
			zap.String("id", id),
			zap.String("company", submission.Company),
			zap.String("jobTitle", submission.JobTitle),
			zap.String("plan", submission.Plan))

		// The write is durable; notifications are best-effort and must not
		// gate the response.
		h.dispatchNotifications(submission, id)

		common.WriteJSON(h.logger, w, http.StatusOK, submitSuccessResponse{
			Success: true,
			Message: submitSuccessMessage,
			ID:      id,
		})
	}
}

// uploadLogoIfPresent validates and stores an attached logo, returning its
// public URL, or "" when no usable file was attached. Unlike the form, where
// a bad logo only clears that field, a bad logo here fails the request.
func (h *Handler) uploadLogoIfPresent(r *http.Request) (string, error) {
	file, header, err := r.FormFile("logo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", errors.New("Failed to upload logo")
	}
	defer file.Close()

	// Browsers submit a placeholder part for an empty file input.
	if header.Size == 0 || header.Filename == "undefined" {
		return "", nil
	}

	contentType := header.Header.Get("Content-Type")
	if err := validation.Logo(contentType, header.Size); err != nil {
		return "", err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.New("Failed to upload logo")
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	url, err := h.logos.Upload(ctx, application.LogoUpload{
		Data:        data,
		Filename:    header.Filename,
		ContentType: contentType,
		Company:     strings.TrimSpace(r.FormValue("company")),
	})
	if err != nil {
		h.logger.Error("logo upload failed", zap.Error(err))
		return "", errors.New("Failed to upload logo")
	}
	return url, nil
}

// assembleSubmission normalizes the raw form fields into the canonical
// submission: trimmed strings, defaults, numeric coercion, and empty optional
// fields left absent rather than stored as "".
func (h *Handler) assembleSubmission(field func(name string) string) domain.Submission {
	trimmed := func(name string) string { return strings.TrimSpace(field(name)) }

	valueOrDefault := func(name, fallback string) string {
		if v := trimmed(name); v != "" {
			return v
		}
		return fallback
	}

	return domain.Submission{
		Company:         trimmed("company"),
		ContactName:     trimmed("name"),
		Email:           trimmed("email"),
		Phone:           trimmed("phone"),
		JobTitle:        trimmed("title"),
		Description:     trimmed("description"),
		EmploymentType:  valueOrDefault("employmentType", domain.DefaultEmploymentType),
		Category:        valueOrDefault("category", domain.DefaultCategory),
		City:            valueOrDefault("city", h.defaultCity),
		Area:            trimmed("area"),
		Region:          h.region,
		BaseSalaryMin:   parseOptionalFloat(trimmed("baseSalaryMin")),
		BaseSalaryMax:   parseOptionalFloat(trimmed("baseSalaryMax")),
		EnglishFriendly: field("englishFriendly") == "on",
		ExternalURL:     trimmed("externalUrl"),
		LogoAlt:         trimmed("logoAlt"),
		Plan:            valueOrDefault("plan", domain.DefaultPlan),
		PlanPriceEUR:    trimmed("plan_price_eur"),
		Status:          domain.StatusPending,
	}
}

// parseOptionalFloat coerces a numeric form field; absent or unparseable
// input becomes nil, never zero or NaN.
func parseOptionalFloat(value string) *float64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// dispatchNotifications fires the internal alert and the employer
// confirmation as independent background sends. Failures are logged and
// dropped; there is no retry and neither outcome affects the response.
func (h *Handler) dispatchNotifications(submission domain.Submission, id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.NotifyStaff(ctx, submission, id); err != nil {
			h.logger.Error("staff notification failed", zap.String("id", id), zap.Error(err))
		}
	}()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.ConfirmEmployer(ctx, submission, id); err != nil {
			h.logger.Error("employer confirmation failed", zap.String("id", id), zap.Error(err))
		}
	}()
}
