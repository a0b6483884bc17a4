// Package winja provides a client for the Winja platform admin API.
// It implements a complete REST client with support for opportunities,
// partners, users, referrals and rewards, moderation, ad campaigns,
// subscription plans, and system settings.
package winja

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client defines the interface for interacting with the Winja admin API.
// Every method performs exactly one remote operation.
type Client interface {
	// Login authenticates an administrator and returns the resulting session.
	Login(ctx context.Context, email, password string) (Session, error)

	// Register creates a new account and returns the resulting session.
	Register(ctx context.Context, params RegisterParams) (Session, error)

	// OpportunityTypes retrieves all opportunity types.
	OpportunityTypes(ctx context.Context) ([]OpportunityType, error)

	// CreateOpportunityType creates a new opportunity type with the given name.
	CreateOpportunityType(ctx context.Context, name string) (OpportunityType, error)

	// UpdateOpportunityType renames an existing opportunity type.
	UpdateOpportunityType(ctx context.Context, id int64, name string) (OpportunityType, error)

	// DeleteOpportunityType deletes an opportunity type.
	DeleteOpportunityType(ctx context.Context, id int64) error

	// Opportunities retrieves the current page of opportunities.
	Opportunities(ctx context.Context) ([]Opportunity, error)

	// CreateOpportunity creates an opportunity. The request is sent as
	// multipart form data so an image can travel with it.
	CreateOpportunity(ctx context.Context, params OpportunityParams) (Opportunity, error)

	// UpdateOpportunity replaces an opportunity. Multipart bodies cannot be
	// carried by a native PUT against this backend, so the request is a POST
	// with a _method=PUT override.
	UpdateOpportunity(ctx context.Context, id int64, params OpportunityParams) (Opportunity, error)

	// DeleteOpportunity deletes an opportunity.
	DeleteOpportunity(ctx context.Context, id int64) error

	// SponsoredOpportunities retrieves all sponsored opportunity placements.
	SponsoredOpportunities(ctx context.Context) ([]SponsoredOpportunity, error)

	// CreateSponsorship creates a sponsored placement for an opportunity.
	CreateSponsorship(ctx context.Context, params SponsorshipParams) (SponsoredOpportunity, error)

	// UpdateSponsorship updates an existing sponsored placement.
	UpdateSponsorship(ctx context.Context, id int64, params SponsorshipParams) (SponsoredOpportunity, error)

	// DeleteSponsorship removes a sponsored placement.
	DeleteSponsorship(ctx context.Context, id int64) error

	// Users retrieves users matching the given filters.
	Users(ctx context.Context, filters UserFilters) ([]User, error)

	// User retrieves a single user by ID.
	User(ctx context.Context, id int64) (User, error)

	// UpdateUser updates a user's profile or role.
	UpdateUser(ctx context.Context, id int64, params UserParams) (User, error)

	// BanUser bans the given user.
	BanUser(ctx context.Context, id int64) error

	// DeactivateUser deactivates the given user.
	DeactivateUser(ctx context.Context, id int64) error

	// ActivateUser re-activates the given user.
	ActivateUser(ctx context.Context, id int64) error

	// Partners retrieves partners matching the given filters.
	Partners(ctx context.Context, filters PartnerFilters) ([]Partner, error)

	// AllPartners retrieves every partner, for dropdowns and membership checks.
	AllPartners(ctx context.Context) ([]Partner, error)

	// Partner retrieves a single partner by ID.
	Partner(ctx context.Context, id int64) (Partner, error)

	// UpdatePartner updates a partner. The request is multipart so a company
	// logo can travel with it, POSTed with a _method=PUT override.
	UpdatePartner(ctx context.Context, id int64, params PartnerParams) (Partner, error)

	// PartnerSponsorships retrieves the sponsored placements for one partner.
	PartnerSponsorships(ctx context.Context, id int64) ([]SponsoredOpportunity, error)

	// PartnerMetrics retrieves engagement metrics for one partner.
	PartnerMetrics(ctx context.Context, id int64) (PartnerMetrics, error)

	// OpportunityAnalytics retrieves aggregate opportunity analytics.
	OpportunityAnalytics(ctx context.Context) (OpportunityAnalytics, error)

	// UserEngagement retrieves user engagement analytics.
	UserEngagement(ctx context.Context) (EngagementAnalytics, error)

	// RevenueAnalytics retrieves revenue analytics.
	RevenueAnalytics(ctx context.Context) (RevenueAnalytics, error)

	// Trends retrieves trend chart data points.
	Trends(ctx context.Context) ([]TrendPoint, error)

	// ExportOpportunitiesCSV downloads the opportunity analytics export as CSV.
	ExportOpportunitiesCSV(ctx context.Context) ([]byte, error)

	// ExportOpportunitiesPDF downloads the opportunity analytics export as PDF.
	ExportOpportunitiesPDF(ctx context.Context) ([]byte, error)

	// IncrementOpportunityCounter increments a named counter (e.g. "views",
	// "clicks") on an opportunity.
	IncrementOpportunityCounter(ctx context.Context, id int64, counter string) error

	// ActivityLogs retrieves recent admin activity log entries.
	ActivityLogs(ctx context.Context) ([]ActivityLog, error)

	// SavedOpportunities retrieves opportunities users have saved.
	SavedOpportunities(ctx context.Context) ([]SavedOpportunity, error)

	// Referrals retrieves all referrals together with aggregate stats.
	Referrals(ctx context.Context) ([]Referral, ReferralStats, error)

	// CreateReferral invites a friend by name and email.
	CreateReferral(ctx context.Context, name, email string) (Referral, error)

	// CompleteReferral marks a referral completed.
	CompleteReferral(ctx context.Context, id int64) error

	// ReferralLeaderboard retrieves the referral leaderboard.
	ReferralLeaderboard(ctx context.Context) ([]LeaderboardEntry, error)

	// Badges retrieves all reward badges.
	Badges(ctx context.Context) ([]Badge, error)

	// CheckBadgeEligibility asks the server to award any newly earned badges
	// and returns them.
	CheckBadgeEligibility(ctx context.Context) ([]Badge, error)

	// PointsSettings retrieves the reward points configuration.
	PointsSettings(ctx context.Context) (PointsSettings, error)

	// UpdatePointsSettings updates the reward points configuration.
	UpdatePointsSettings(ctx context.Context, settings PointsSettings) (PointsSettings, error)

	// PointsOverview retrieves aggregate points issuance numbers.
	PointsOverview(ctx context.Context) (PointsOverview, error)

	// Withdrawals retrieves withdrawal requests matching the given filters.
	Withdrawals(ctx context.Context, filters WithdrawalFilters) ([]WithdrawalRequest, error)

	// Withdrawal retrieves a single withdrawal request by ID.
	Withdrawal(ctx context.Context, id int64) (WithdrawalRequest, error)

	// ApproveWithdrawal approves a withdrawal request with optional notes.
	ApproveWithdrawal(ctx context.Context, id int64, notes string) error

	// RejectWithdrawal rejects a withdrawal request with optional notes.
	RejectWithdrawal(ctx context.Context, id int64, notes string) error

	// WithdrawalStats retrieves aggregate withdrawal numbers.
	WithdrawalStats(ctx context.Context) (WithdrawalStats, error)

	// ModerationReports retrieves all moderation reports.
	ModerationReports(ctx context.Context) ([]Report, error)

	// ModerationReport retrieves a single moderation report by ID.
	ModerationReport(ctx context.Context, id int64) (Report, error)

	// TakeModerationAction applies a moderation action to a report.
	TakeModerationAction(ctx context.Context, id int64, action ModerationAction) error

	// ModerationStats retrieves aggregate moderation numbers.
	ModerationStats(ctx context.Context) (ModerationStats, error)

	// AutoFlaggedContent retrieves content flagged automatically.
	AutoFlaggedContent(ctx context.Context) ([]FlaggedContent, error)

	// UserModerationHistory retrieves past reports against one user.
	UserModerationHistory(ctx context.Context, userID int64) ([]Report, error)

	// Settings retrieves the system settings.
	Settings(ctx context.Context) (Settings, error)

	// UpdateSettings replaces the system settings.
	UpdateSettings(ctx context.Context, settings Settings) (Settings, error)

	// PushNotifications retrieves all push notifications.
	PushNotifications(ctx context.Context) ([]PushNotification, error)

	// CreatePushNotification creates a push notification.
	CreatePushNotification(ctx context.Context, params PushNotificationParams) (PushNotification, error)

	// UpdatePushNotification edits a push notification in place.
	UpdatePushNotification(ctx context.Context, id int64, params PushNotificationParams) (PushNotification, error)

	// DeletePushNotification deletes a push notification.
	DeletePushNotification(ctx context.Context, id int64) error

	// SubscriptionPlans retrieves all subscription plans.
	SubscriptionPlans(ctx context.Context) ([]SubscriptionPlan, error)

	// CreateSubscriptionPlan creates a subscription plan.
	CreateSubscriptionPlan(ctx context.Context, params SubscriptionPlanParams) (SubscriptionPlan, error)

	// UpdateSubscriptionPlan updates a subscription plan.
	UpdateSubscriptionPlan(ctx context.Context, id int64, params SubscriptionPlanParams) (SubscriptionPlan, error)

	// DeleteSubscriptionPlan deletes a subscription plan.
	DeleteSubscriptionPlan(ctx context.Context, id int64) error

	// AdCampaigns retrieves all ad campaigns.
	AdCampaigns(ctx context.Context) ([]AdCampaign, error)

	// ApproveAdCampaign approves a pending ad campaign.
	ApproveAdCampaign(ctx context.Context, id int64) error

	// RejectAdCampaign rejects a pending ad campaign.
	RejectAdCampaign(ctx context.Context, id int64) error

	// AdPricing retrieves the ad pricing settings.
	AdPricing(ctx context.Context) ([]AdPricingSetting, error)

	// UpdateAdPricing updates one ad pricing setting.
	UpdateAdPricing(ctx context.Context, id int64, params AdPricingParams) (AdPricingSetting, error)

	// AdAnalytics retrieves aggregate ad performance numbers.
	AdAnalytics(ctx context.Context) (AdAnalytics, error)

	// AdRevenue retrieves aggregate ad revenue numbers.
	AdRevenue(ctx context.Context) (AdRevenue, error)
}

type clientOption struct {
	baseURL     string
	token       string
	tokenSource func() string
	doRetry     bool
	maxTries    uint
	timeout     time.Duration
	httpClient  *http.Client
	logger      *zap.Logger
}

type winjaClient struct {
	opts   clientOption
	client *http.Client
	logger *zap.Logger
}

// ClientOption defines a function type for configuring client options.
type ClientOption func(*clientOption)

// WithBaseURL returns a ClientOption that sets the base URL for the Winja API.
// The base URL is configured once per process and never negotiated at runtime.
func WithBaseURL(url string) ClientOption {
	return func(opt *clientOption) {
		opt.baseURL = url
	}
}

// WithToken returns a ClientOption that sets a static bearer token.
func WithToken(token string) ClientOption {
	return func(opt *clientOption) {
		opt.token = token
	}
}

// WithTokenSource returns a ClientOption that supplies the bearer token
// dynamically before every request, so a login performed mid-flight is picked
// up without rebuilding the client. An empty token means the request is sent
// unauthenticated; the failure then surfaces as an authorization error from
// the server.
func WithTokenSource(source func() string) ClientOption {
	return func(opt *clientOption) {
		opt.tokenSource = source
	}
}

// WithRetry returns a ClientOption that enables bounded retry with
// exponential backoff for idempotent reads. Writes are never retried.
func WithRetry() ClientOption {
	return func(opt *clientOption) {
		opt.doRetry = true
	}
}

// WithTimeout returns a ClientOption that overrides the per-request timeout.
// If not provided, defaults to 30 seconds.
func WithTimeout(d time.Duration) ClientOption {
	return func(opt *clientOption) {
		opt.timeout = d
	}
}

// WithHTTPClient returns a ClientOption that replaces the underlying HTTP
// client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(opt *clientOption) {
		opt.httpClient = hc
	}
}

// WithLogger returns a ClientOption that attaches a logger. Request lines are
// logged at debug level together with their request IDs.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(opt *clientOption) {
		opt.logger = logger
	}
}

// NewClient creates a new Winja API client with the provided options.
// A base URL must be provided using WithBaseURL, otherwise an error is
// returned.
func NewClient(options ...ClientOption) (Client, error) {
	clientOptions := clientOption{
		timeout:  30 * time.Second,
		maxTries: 4,
	}

	for _, option := range options {
		option(&clientOptions)
	}

	if clientOptions.baseURL == "" {
		return nil, errors.New("missing base URL!")
	}

	hc := clientOptions.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: clientOptions.timeout}
	}

	logger := clientOptions.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &winjaClient{
		opts:   clientOptions,
		client: hc,
		logger: logger,
	}, nil
}

func (c *winjaClient) bearerToken() string {
	if c.opts.tokenSource != nil {
		return c.opts.tokenSource()
	}
	return c.opts.token
}

// do is the single request funnel: every remote operation goes through here.
func (c *winjaClient) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.opts.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("issuing request",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Debug("request failed",
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, newAPIError(resp.StatusCode, respBody, requestID)
	}

	return respBody, nil
}

// get issues a GET, retrying with exponential backoff when retries are
// enabled. Reads are the only operations ever retried: GETs carry no body
// and are idempotent against this backend.
func (c *winjaClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	if !c.opts.doRetry {
		return c.do(ctx, http.MethodGet, endpoint, nil, "")
	}

	operation := func() ([]byte, error) {
		respBody, err := c.do(ctx, http.MethodGet, endpoint, nil, "")
		if err != nil && !canRetry(err) {
			return nil, backoff.Permanent(err)
		}
		return respBody, err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(c.opts.maxTries),
	)
}

// canRetry reports whether an error is worth retrying: transport failures
// and server-side 5xx responses qualify, client errors do not.
func canRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}

func (c *winjaClient) postJSON(ctx context.Context, endpoint string, body any) ([]byte, error) {
	return c.writeJSON(ctx, http.MethodPost, endpoint, body)
}

func (c *winjaClient) putJSON(ctx context.Context, endpoint string, body any) ([]byte, error) {
	return c.writeJSON(ctx, http.MethodPut, endpoint, body)
}

func (c *winjaClient) writeJSON(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}
	return c.do(ctx, method, endpoint, reqBody, "application/json")
}

func (c *winjaClient) postMultipart(ctx context.Context, endpoint string, payload *multipartPayload) ([]byte, error) {
	body, contentType, err := payload.encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode multipart body: %w", err)
	}
	return c.do(ctx, http.MethodPost, endpoint, body, contentType)
}

func (c *winjaClient) deleteResource(ctx context.Context, endpoint string) error {
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, "")
	return err
}
