package statuspage

import (
	"time"
)

// Image is an uploaded page asset.
type Image struct {
	UpdatedAt *time.Time `json:"updated_at" yaml:"updated_at"`
	Size      *int       `json:"size"       yaml:"size"`
	URL       string     `json:"url"        yaml:"url"`
}

// FullImage is an image asset with resized variants.
type FullImage struct {
	Image `yaml:",inline"`

	OriginalURL string `json:"original_url" yaml:"original_url"`
	NormalURL   string `json:"normal_url"   yaml:"normal_url"`
	RetinaURL   string `json:"retina_url"   yaml:"retina_url"`
}

// Page drives the basic settings of a status page: company name, notification
// preferences, time zone and branding.
type Page struct {
	ID                       string     `json:"id"                          yaml:"id"`
	CreatedAt                time.Time  `json:"created_at"                  yaml:"created_at"`
	UpdatedAt                *time.Time `json:"updated_at"                  yaml:"updated_at"`
	Name                     string     `json:"name"                        yaml:"name"`
	PageDescription          *string    `json:"page_description"            yaml:"page_description"`
	Headline                 string     `json:"headline"                    yaml:"headline"`
	Branding                 string     `json:"branding"                    yaml:"branding"`
	Subdomain                string     `json:"subdomain"                   yaml:"subdomain"`
	Domain                   string     `json:"domain"                      yaml:"domain"`
	URL                      string     `json:"url"                         yaml:"url"`
	SupportURL               string     `json:"support_url"                 yaml:"support_url"`
	HiddenFromSearch         bool       `json:"hidden_from_search"          yaml:"hidden_from_search"`
	AllowPageSubscribers     bool       `json:"allow_page_subscribers"      yaml:"allow_page_subscribers"`
	AllowIncidentSubscribers bool       `json:"allow_incident_subscribers"  yaml:"allow_incident_subscribers"`
	AllowEmailSubscribers    bool       `json:"allow_email_subscribers"     yaml:"allow_email_subscribers"`
	AllowSMSSubscribers      bool       `json:"allow_sms_subscribers"       yaml:"allow_sms_subscribers"`
	AllowRSSAtomFeeds        bool       `json:"allow_rss_atom_feeds"        yaml:"allow_rss_atom_feeds"`
	AllowWebhookSubscribers  bool       `json:"allow_webhook_subscribers"   yaml:"allow_webhook_subscribers"`
	NotificationsFromEmail   *string    `json:"notifications_from_email"    yaml:"notifications_from_email"`
	NotificationsEmailFooter string     `json:"notifications_email_footer"  yaml:"notifications_email_footer"`
	ActivityScore            float64    `json:"activity_score"              yaml:"activity_score"`
	TwitterUsername          string     `json:"twitter_username"            yaml:"twitter_username"`
	ViewersMustBeTeamMembers bool       `json:"viewers_must_be_team_members" yaml:"viewers_must_be_team_members"`
	IPRestrictions           *string    `json:"ip_restrictions"             yaml:"ip_restrictions"`
	City                     *string    `json:"city"                        yaml:"city"`
	State                    *string    `json:"state"                       yaml:"state"`
	Country                  *string    `json:"country"                     yaml:"country"`
	TimeZone                 string     `json:"time_zone"                   yaml:"time_zone"`

	// CSS colours of the page theme.
	CSSBodyBackgroundColor string `json:"css_body_background_color" yaml:"css_body_background_color"`
	CSSFontColor           string `json:"css_font_color"            yaml:"css_font_color"`
	CSSLightFontColor      string `json:"css_light_font_color"      yaml:"css_light_font_color"`
	CSSGreens              string `json:"css_greens"                yaml:"css_greens"`
	CSSYellows             string `json:"css_yellows"               yaml:"css_yellows"`
	CSSOranges             string `json:"css_oranges"               yaml:"css_oranges"`
	CSSBlues               string `json:"css_blues"                 yaml:"css_blues"`
	CSSReds                string `json:"css_reds"                  yaml:"css_reds"`
	CSSBorderColor         string `json:"css_border_color"          yaml:"css_border_color"`
	CSSGraphColor          string `json:"css_graph_color"           yaml:"css_graph_color"`
	CSSLinkColor           string `json:"css_link_color"            yaml:"css_link_color"`
	CSSNoData              string `json:"css_no_data"               yaml:"css_no_data"`

	FaviconLogo       *Image     `json:"favicon_logo"       yaml:"favicon_logo"`
	TransactionalLogo *FullImage `json:"transactional_logo" yaml:"transactional_logo"`
	HeroCover         *FullImage `json:"hero_cover"         yaml:"hero_cover"`
	EmailLogo         *FullImage `json:"email_logo"         yaml:"email_logo"`
	TwitterLogo       *Image     `json:"twitter_logo"       yaml:"twitter_logo"`
}

// ComponentStatus is the operational state of a component.
type ComponentStatus string

// Component statuses.
const (
	ComponentStatusOperational         ComponentStatus = "operational"
	ComponentStatusUnderMaintenance    ComponentStatus = "under_maintenance"
	ComponentStatusDegradedPerformance ComponentStatus = "degraded_performance"
	ComponentStatusPartialOutage       ComponentStatus = "partial_outage"
	ComponentStatusMajorOutage         ComponentStatus = "major_outage"
)

// Component is a monitored service shown on a page.
type Component struct {
	ID                 string          `json:"id"                    yaml:"id"`
	PageID             string          `json:"page_id"               yaml:"page_id"`
	GroupID            *string         `json:"group_id"              yaml:"group_id"`
	CreatedAt          time.Time       `json:"created_at"            yaml:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"            yaml:"updated_at"`
	Group              bool            `json:"group"                 yaml:"group"`
	Name               string          `json:"name"                  yaml:"name"`
	Description        *string         `json:"description"           yaml:"description"`
	Position           int             `json:"position"              yaml:"position"`
	Status             ComponentStatus `json:"status"                yaml:"status"`
	Showcase           bool            `json:"showcase"              yaml:"showcase"`
	OnlyShowIfDegraded bool            `json:"only_show_if_degraded" yaml:"only_show_if_degraded"`
	AutomationEmail    string          `json:"automation_email"      yaml:"automation_email"`
	// StartDate is a calendar date such as "2024-01-31".
	StartDate *string `json:"start_date" yaml:"start_date"`
}

// ComponentUptime is the uptime summary of a component over a date range.
type ComponentUptime struct {
	ID               string         `json:"id"                yaml:"id"`
	Name             string         `json:"name"              yaml:"name"`
	RangeStart       string         `json:"range_start"       yaml:"range_start"`
	RangeEnd         string         `json:"range_end"         yaml:"range_end"`
	UptimePercentage float64        `json:"uptime_percentage" yaml:"uptime_percentage"`
	MajorOutage      int            `json:"major_outage"      yaml:"major_outage"`
	PartialOutage    int            `json:"partial_outage"    yaml:"partial_outage"`
	Warnings         []string       `json:"warnings"          yaml:"warnings"`
	RelatedEvents    []RelatedEvent `json:"related_events"    yaml:"related_events"`
}

// RelatedEvent references an incident counted in an uptime calculation.
type RelatedEvent struct {
	ID string `json:"id" yaml:"id"`
}

// IncidentStatus is the lifecycle state of an incident or maintenance.
type IncidentStatus string

// Incident statuses. The first four apply to realtime incidents, the rest to
// scheduled maintenances.
const (
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusIdentified    IncidentStatus = "identified"
	IncidentStatusMonitoring    IncidentStatus = "monitoring"
	IncidentStatusResolved      IncidentStatus = "resolved"
	IncidentStatusScheduled     IncidentStatus = "scheduled"
	IncidentStatusInProgress    IncidentStatus = "in_progress"
	IncidentStatusVerifying     IncidentStatus = "verifying"
	IncidentStatusCompleted     IncidentStatus = "completed"
)

// IncidentImpact is the severity of an incident.
type IncidentImpact string

// Incident impacts.
const (
	IncidentImpactNone        IncidentImpact = "none"
	IncidentImpactMinor       IncidentImpact = "minor"
	IncidentImpactMajor       IncidentImpact = "major"
	IncidentImpactCritical    IncidentImpact = "critical"
	IncidentImpactMaintenance IncidentImpact = "maintenance"
)

// Incident is an event affecting one or more components of a page.
type Incident struct {
	ID             string           `json:"id"               yaml:"id"`
	PageID         string           `json:"page_id"          yaml:"page_id"`
	Name           string           `json:"name"             yaml:"name"`
	Status         IncidentStatus   `json:"status"           yaml:"status"`
	Impact         IncidentImpact   `json:"impact"           yaml:"impact"`
	ImpactOverride *IncidentImpact  `json:"impact_override"  yaml:"impact_override"`
	Components     []Component      `json:"components"       yaml:"components"`
	Updates        []IncidentUpdate `json:"incident_updates" yaml:"incident_updates"`
	Metadata       map[string]any   `json:"metadata"         yaml:"metadata"`
	Shortlink      string           `json:"shortlink"        yaml:"shortlink"`
	CreatedAt      time.Time        `json:"created_at"       yaml:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"       yaml:"updated_at"`
	MonitoringAt   *time.Time       `json:"monitoring_at"    yaml:"monitoring_at"`
	ResolvedAt     *time.Time       `json:"resolved_at"      yaml:"resolved_at"`

	PostmortemBody                *string    `json:"postmortem_body"                  yaml:"postmortem_body"`
	PostmortemBodyLastUpdatedAt   *time.Time `json:"postmortem_body_last_updated_at"  yaml:"postmortem_body_last_updated_at"`
	PostmortemIgnored             bool       `json:"postmortem_ignored"               yaml:"postmortem_ignored"`
	PostmortemNotifiedSubscribers bool       `json:"postmortem_notified_subscribers"  yaml:"postmortem_notified_subscribers"`
	PostmortemNotifiedTwitter     bool       `json:"postmortem_notified_twitter"      yaml:"postmortem_notified_twitter"`
	PostmortemPublishedAt         *time.Time `json:"postmortem_published_at"          yaml:"postmortem_published_at"`

	ScheduledFor            *time.Time `json:"scheduled_for"              yaml:"scheduled_for"`
	ScheduledUntil          *time.Time `json:"scheduled_until"            yaml:"scheduled_until"`
	ScheduledRemindPrior    bool       `json:"scheduled_remind_prior"     yaml:"scheduled_remind_prior"`
	ScheduledRemindedAt     *time.Time `json:"scheduled_reminded_at"      yaml:"scheduled_reminded_at"`
	ScheduledAutoInProgress bool       `json:"scheduled_auto_in_progress" yaml:"scheduled_auto_in_progress"`
	ScheduledAutoCompleted  bool       `json:"scheduled_auto_completed"   yaml:"scheduled_auto_completed"`

	AutoTransitionDeliverNotificationsAtEnd   *bool `json:"auto_transition_deliver_notifications_at_end"   yaml:"auto_transition_deliver_notifications_at_end"`
	AutoTransitionDeliverNotificationsAtStart *bool `json:"auto_transition_deliver_notifications_at_start" yaml:"auto_transition_deliver_notifications_at_start"`
	AutoTransitionToMaintenanceState          *bool `json:"auto_transition_to_maintenance_state"           yaml:"auto_transition_to_maintenance_state"`
	AutoTransitionToOperationalState          *bool `json:"auto_transition_to_operational_state"           yaml:"auto_transition_to_operational_state"`
}

// AffectedComponent records a component status transition within an incident update.
type AffectedComponent struct {
	Code      string          `json:"code"       yaml:"code"`
	Name      string          `json:"name"       yaml:"name"`
	OldStatus ComponentStatus `json:"old_status" yaml:"old_status"`
	NewStatus ComponentStatus `json:"new_status" yaml:"new_status"`
}

// IncidentUpdate is one timestamped entry in an incident's history.
type IncidentUpdate struct {
	ID                   string              `json:"id"                    yaml:"id"`
	IncidentID           string              `json:"incident_id"           yaml:"incident_id"`
	AffectedComponents   []AffectedComponent `json:"affected_components"   yaml:"affected_components"`
	Body                 string              `json:"body"                  yaml:"body"`
	Status               IncidentStatus      `json:"status"                yaml:"status"`
	CreatedAt            time.Time           `json:"created_at"            yaml:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"            yaml:"updated_at"`
	DisplayAt            *time.Time          `json:"display_at"            yaml:"display_at"`
	CustomTweet          *string             `json:"custom_tweet"          yaml:"custom_tweet"`
	DeliverNotifications bool                `json:"deliver_notifications" yaml:"deliver_notifications"`
	TweetID              *string             `json:"tweet_id"              yaml:"tweet_id"`
	TwitterUpdatedAt     *time.Time          `json:"twitter_updated_at"    yaml:"twitter_updated_at"`
	WantsTwitterUpdate   bool                `json:"wants_twitter_update"  yaml:"wants_twitter_update"`
}

// Metric is the display configuration of a time series shown on a page.
type Metric struct {
	ID                 string     `json:"id"                  yaml:"id"`
	MetricsProviderID  string     `json:"metrics_provider_id" yaml:"metrics_provider_id"`
	MetricIdentifier   string     `json:"metric_identifier"   yaml:"metric_identifier"`
	Name               string     `json:"name"                yaml:"name"`
	Display            bool       `json:"display"             yaml:"display"`
	TooltipDescription string     `json:"tooltip_description" yaml:"tooltip_description"`
	Backfilled         bool       `json:"backfilled"          yaml:"backfilled"`
	YAxisMin           *float64   `json:"y_axis_min"          yaml:"y_axis_min"`
	YAxisMax           *float64   `json:"y_axis_max"          yaml:"y_axis_max"`
	YAxisHidden        bool       `json:"y_axis_hidden"       yaml:"y_axis_hidden"`
	Suffix             string     `json:"suffix"              yaml:"suffix"`
	DecimalPlaces      int        `json:"decimal_places"      yaml:"decimal_places"`
	MostRecentDataAt   *time.Time `json:"most_recent_data_at" yaml:"most_recent_data_at"`
	CreatedAt          time.Time  `json:"created_at"          yaml:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"          yaml:"updated_at"`
	LastFetchedAt      *time.Time `json:"last_fetched_at"     yaml:"last_fetched_at"`
	BackfillPercentage float64    `json:"backfill_percentage" yaml:"backfill_percentage"`
	ReferenceName      string     `json:"reference_name"      yaml:"reference_name"`
}

// MetricPoint is a single metric sample.
type MetricPoint struct {
	// Timestamp is a Unix timestamp in seconds.
	Timestamp int64   `json:"timestamp" yaml:"timestamp"`
	Value     float64 `json:"value"     yaml:"value"`
}

// MetricData maps metric identifiers to the samples submitted for them.
type MetricData map[string][]MetricPoint

// MetricProvider configures an external metrics source for a page.
type MetricProvider struct {
	ID                string     `json:"id"                  yaml:"id"`
	PageID            string     `json:"page_id"             yaml:"page_id"`
	Type              string     `json:"type"                yaml:"type"`
	Disabled          bool       `json:"disabled"            yaml:"disabled"`
	MetricBaseURI     string     `json:"metric_base_uri"     yaml:"metric_base_uri"`
	LastRevalidatedAt *time.Time `json:"last_revalidated_at" yaml:"last_revalidated_at"`
	CreatedAt         time.Time  `json:"created_at"          yaml:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"          yaml:"updated_at"`
}
