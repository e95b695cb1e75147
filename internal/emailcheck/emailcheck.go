// Package emailcheck оценивает, может ли адрес принимать почту.
//
// Проверка эвристическая: формат, набор подозрительных шаблонов локальной части
// и, если задан ключ, внешний сервис Abstract Email Validation.
package emailcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/avc-dev/shortlink/internal/config"
	"go.uber.org/zap"
)

// Типы проверки, попадающие в Result.ValidationType
const (
	TypeFormatOnly              = "format_only"
	TypeAPIDeliverable          = "api_confirmed_deliverable"
	TypeEducationalOverride     = "educational_domain_override"
	TypeEducationalSMTPOverride = "educational_domain_smtp_override"
)

// Причины отказа
const (
	ReasonInvalidFormat = "Invalid email format"
	ReasonSuspicious    = "Email address appears to be invalid"
	ReasonUndeliverable = "Email address does not exist or is undeliverable."
	ReasonSMTPFailed    = "Email address failed SMTP validation."
	ReasonUnavailable   = "Unable to validate email address."
)

var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result итог проверки адреса
type Result struct {
	Valid          bool
	Reason         string
	ValidationType string
	Warning        string
}

// Checker проверяет адреса перед регистрацией
type Checker struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewChecker создает Checker. Без ключа API проверяются только формат и эвристики.
func NewChecker(cfg config.EmailCheckConfig, logger *zap.Logger) *Checker {
	return &Checker{
		apiKey: cfg.APIKey,
		apiURL: cfg.APIURL,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Check проверяет адрес. Ошибки транспорта не возвращаются, а превращаются в отказ.
func (c *Checker) Check(ctx context.Context, email string) Result {
	if !emailFormat.MatchString(email) {
		return Result{Reason: ReasonInvalidFormat}
	}

	local, domain := splitAddress(email)
	if pattern := suspiciousPattern(local); pattern != "" {
		c.logger.Info("email rejected by heuristic",
			zap.String("email", email),
			zap.String("pattern", pattern),
		)
		return Result{Reason: ReasonSuspicious}
	}

	if c.apiKey == "" {
		return Result{Valid: true, ValidationType: TypeFormatOnly}
	}

	resp, err := c.callAPI(ctx, email)
	if err != nil {
		c.logger.Error("email validation API failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return Result{Reason: ReasonUnavailable}
	}

	return evaluate(resp, domain)
}

type flag struct {
	Value bool `json:"value"`
}

type apiResponse struct {
	Deliverability string `json:"deliverability"`
	IsValidFormat  *flag  `json:"is_valid_format"`
	IsMXFound      *flag  `json:"is_mx_found"`
	IsSMTPValid    *flag  `json:"is_smtp_valid"`
}

func (r *apiResponse) formatAndMX() bool {
	return r.IsValidFormat != nil && r.IsValidFormat.Value && r.IsMXFound != nil && r.IsMXFound.Value
}

func (c *Checker) callAPI(ctx context.Context, email string) (*apiResponse, error) {
	endpoint, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}
	q := endpoint.Query()
	q.Set("api_key", c.apiKey)
	q.Set("email", email)
	q.Set("auto_correct", "false")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &body, nil
}

func evaluate(resp *apiResponse, domain string) Result {
	educational := isEducationalDomain(domain)

	if resp.Deliverability == "UNDELIVERABLE" {
		if educational && resp.formatAndMX() {
			return Result{
				Valid:          true,
				ValidationType: TypeEducationalOverride,
				Warning:        "Educational domain - validation overridden due to potential API limitations",
			}
		}
		return Result{Reason: ReasonUndeliverable}
	}

	if resp.IsSMTPValid != nil && !resp.IsSMTPValid.Value {
		if educational && resp.formatAndMX() {
			return Result{
				Valid:          true,
				ValidationType: TypeEducationalSMTPOverride,
				Warning:        "Educational domain - SMTP validation overridden",
			}
		}
		return Result{Reason: ReasonSMTPFailed}
	}

	if resp.Deliverability == "DELIVERABLE" {
		return Result{Valid: true, ValidationType: TypeAPIDeliverable}
	}

	deliverability := strings.ToLower(resp.Deliverability)
	if deliverability == "" {
		deliverability = "unknown"
	}
	return Result{Valid: true, ValidationType: "api_" + deliverability}
}

func splitAddress(email string) (local, domain string) {
	at := strings.LastIndex(email, "@")
	return email[:at], strings.ToLower(email[at+1:])
}

func isEducationalDomain(domain string) bool {
	for _, suffix := range []string{".edu.pk", ".edu.bd", ".ac.uk", ".edu.au"} {
		if strings.HasSuffix(domain, suffix) {
			return true
		}
	}
	return strings.Contains(domain, ".edu.")
}
