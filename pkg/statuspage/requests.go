package statuspage

import "time"

// PageUpdateRequest is the payload for updating a page. Only non-nil fields
// are sent, so a partial update touches just the fields that are set; a
// replace should set every field.
type PageUpdateRequest struct {
	Name                     *string `json:"name,omitempty"                         yaml:"name,omitempty"`
	Domain                   *string `json:"domain,omitempty"                       yaml:"domain,omitempty"`
	Subdomain                *string `json:"subdomain,omitempty"                    yaml:"subdomain,omitempty"`
	URL                      *string `json:"url,omitempty"                          yaml:"url,omitempty"`
	Branding                 *string `json:"branding,omitempty"                     yaml:"branding,omitempty"`
	CSSBodyBackgroundColor   *string `json:"css_body_background_color,omitempty"    yaml:"css_body_background_color,omitempty"`
	CSSFontColor             *string `json:"css_font_color,omitempty"               yaml:"css_font_color,omitempty"`
	CSSLightFontColor        *string `json:"css_light_font_color,omitempty"         yaml:"css_light_font_color,omitempty"`
	CSSGreens                *string `json:"css_greens,omitempty"                   yaml:"css_greens,omitempty"`
	CSSYellows               *string `json:"css_yellows,omitempty"                  yaml:"css_yellows,omitempty"`
	CSSOranges               *string `json:"css_oranges,omitempty"                  yaml:"css_oranges,omitempty"`
	CSSReds                  *string `json:"css_reds,omitempty"                     yaml:"css_reds,omitempty"`
	CSSBlues                 *string `json:"css_blues,omitempty"                    yaml:"css_blues,omitempty"`
	CSSBorderColor           *string `json:"css_border_color,omitempty"             yaml:"css_border_color,omitempty"`
	CSSGraphColor            *string `json:"css_graph_color,omitempty"              yaml:"css_graph_color,omitempty"`
	CSSLinkColor             *string `json:"css_link_color,omitempty"               yaml:"css_link_color,omitempty"`
	CSSNoData                *string `json:"css_no_data,omitempty"                  yaml:"css_no_data,omitempty"`
	HiddenFromSearch         *bool   `json:"hidden_from_search,omitempty"           yaml:"hidden_from_search,omitempty"`
	ViewersMustBeTeamMembers *bool   `json:"viewers_must_be_team_members,omitempty" yaml:"viewers_must_be_team_members,omitempty"`
	AllowPageSubscribers     *bool   `json:"allow_page_subscribers,omitempty"       yaml:"allow_page_subscribers,omitempty"`
	AllowIncidentSubscribers *bool   `json:"allow_incident_subscribers,omitempty"   yaml:"allow_incident_subscribers,omitempty"`
	AllowEmailSubscribers    *bool   `json:"allow_email_subscribers,omitempty"      yaml:"allow_email_subscribers,omitempty"`
	AllowSMSSubscribers      *bool   `json:"allow_sms_subscribers,omitempty"        yaml:"allow_sms_subscribers,omitempty"`
	AllowRSSAtomFeeds        *bool   `json:"allow_rss_atom_feeds,omitempty"         yaml:"allow_rss_atom_feeds,omitempty"`
	AllowWebhookSubscribers  *bool   `json:"allow_webhook_subscribers,omitempty"    yaml:"allow_webhook_subscribers,omitempty"`
	NotificationsFromEmail   *string `json:"notifications_from_email,omitempty"     yaml:"notifications_from_email,omitempty"`
	TimeZone                 *string `json:"time_zone,omitempty"                    yaml:"time_zone,omitempty"`
	NotificationsEmailFooter *string `json:"notifications_email_footer,omitempty"   yaml:"notifications_email_footer,omitempty"`
}

// ComponentCreateRequest is the payload for creating a component.
type ComponentCreateRequest struct {
	Name               string          `json:"name"                            yaml:"name"`
	Description        string          `json:"description,omitempty"           yaml:"description,omitempty"`
	Status             ComponentStatus `json:"status,omitempty"                yaml:"status,omitempty"`
	OnlyShowIfDegraded *bool           `json:"only_show_if_degraded,omitempty" yaml:"only_show_if_degraded,omitempty"`
	GroupID            string          `json:"group_id,omitempty"              yaml:"group_id,omitempty"`
	Showcase           *bool           `json:"showcase,omitempty"              yaml:"showcase,omitempty"`
	StartDate          string          `json:"start_date,omitempty"            yaml:"start_date,omitempty"`
}

// ComponentUpdateRequest is the payload for updating a component.
type ComponentUpdateRequest struct {
	Name               *string          `json:"name,omitempty"                  yaml:"name,omitempty"`
	Description        *string          `json:"description,omitempty"           yaml:"description,omitempty"`
	Status             *ComponentStatus `json:"status,omitempty"                yaml:"status,omitempty"`
	OnlyShowIfDegraded *bool            `json:"only_show_if_degraded,omitempty" yaml:"only_show_if_degraded,omitempty"`
	GroupID            *string          `json:"group_id,omitempty"              yaml:"group_id,omitempty"`
	Showcase           *bool            `json:"showcase,omitempty"              yaml:"showcase,omitempty"`
	StartDate          *string          `json:"start_date,omitempty"            yaml:"start_date,omitempty"`
}

// IncidentCreateRequest is the payload for creating an incident or scheduled
// maintenance. Updates reuse it with only the changed fields set.
type IncidentCreateRequest struct {
	Name           string         `json:"name,omitempty"            yaml:"name,omitempty"`
	Status         IncidentStatus `json:"status,omitempty"          yaml:"status,omitempty"`
	ImpactOverride IncidentImpact `json:"impact_override,omitempty" yaml:"impact_override,omitempty"`
	Body           string         `json:"body,omitempty"            yaml:"body,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"        yaml:"metadata,omitempty"`

	// Components maps component ids to the status they move to.
	Components   map[string]ComponentStatus `json:"components,omitempty"    yaml:"components,omitempty"`
	ComponentIDs []string                   `json:"component_ids,omitempty" yaml:"component_ids,omitempty"`

	ScheduledFor                              *time.Time `json:"scheduled_for,omitempty"                                  yaml:"scheduled_for,omitempty"`
	ScheduledUntil                            *time.Time `json:"scheduled_until,omitempty"                                yaml:"scheduled_until,omitempty"`
	ScheduledRemindPrior                      *bool      `json:"scheduled_remind_prior,omitempty"                         yaml:"scheduled_remind_prior,omitempty"`
	ScheduledAutoInProgress                   *bool      `json:"scheduled_auto_in_progress,omitempty"                     yaml:"scheduled_auto_in_progress,omitempty"`
	ScheduledAutoCompleted                    *bool      `json:"scheduled_auto_completed,omitempty"                       yaml:"scheduled_auto_completed,omitempty"`
	ScheduledAutoTransition                   *bool      `json:"scheduled_auto_transition,omitempty"                      yaml:"scheduled_auto_transition,omitempty"`
	AutoTransitionToMaintenanceState          *bool      `json:"auto_transition_to_maintenance_state,omitempty"           yaml:"auto_transition_to_maintenance_state,omitempty"`
	AutoTransitionToOperationalState          *bool      `json:"auto_transition_to_operational_state,omitempty"           yaml:"auto_transition_to_operational_state,omitempty"`
	AutoTransitionDeliverNotificationsAtStart *bool      `json:"auto_transition_deliver_notifications_at_start,omitempty" yaml:"auto_transition_deliver_notifications_at_start,omitempty"`
	AutoTransitionDeliverNotificationsAtEnd   *bool      `json:"auto_transition_deliver_notifications_at_end,omitempty"   yaml:"auto_transition_deliver_notifications_at_end,omitempty"`

	DeliverNotifications   *bool  `json:"deliver_notifications,omitempty"      yaml:"deliver_notifications,omitempty"`
	AutoTweetAtBeginning   *bool  `json:"auto_tweet_at_beginning,omitempty"    yaml:"auto_tweet_at_beginning,omitempty"`
	AutoTweetOnCompletion  *bool  `json:"auto_tweet_on_completion,omitempty"   yaml:"auto_tweet_on_completion,omitempty"`
	AutoTweetOnCreation    *bool  `json:"auto_tweet_on_creation,omitempty"     yaml:"auto_tweet_on_creation,omitempty"`
	AutoTweetOneHourBefore *bool  `json:"auto_tweet_one_hour_before,omitempty" yaml:"auto_tweet_one_hour_before,omitempty"`
	BackfillDate           string `json:"backfill_date,omitempty"              yaml:"backfill_date,omitempty"`
	Backfilled             *bool  `json:"backfilled,omitempty"                 yaml:"backfilled,omitempty"`
}

// IncidentUpdateRequest is the payload for writing an incident update.
type IncidentUpdateRequest struct {
	WantsTwitterUpdate   *bool      `json:"wants_twitter_update,omitempty"  yaml:"wants_twitter_update,omitempty"`
	Body                 *string    `json:"body,omitempty"                  yaml:"body,omitempty"`
	DisplayAt            *time.Time `json:"display_at,omitempty"            yaml:"display_at,omitempty"`
	DeliverNotifications *bool      `json:"deliver_notifications,omitempty" yaml:"deliver_notifications,omitempty"`
}

// MetricUpdateRequest is the payload for updating a metric.
type MetricUpdateRequest struct {
	Name             *string `json:"name,omitempty"              yaml:"name,omitempty"`
	MetricIdentifier *string `json:"metric_identifier,omitempty" yaml:"metric_identifier,omitempty"`
}

// MetricCreateRequest is the payload for adding a metric to a metrics provider.
type MetricCreateRequest struct {
	Name               string  `json:"name"                yaml:"name"`
	MetricIdentifier   string  `json:"metric_identifier"   yaml:"metric_identifier"`
	Transform          string  `json:"transform"           yaml:"transform"`
	Suffix             string  `json:"suffix"              yaml:"suffix"`
	YAxisMin           float64 `json:"y_axis_min"          yaml:"y_axis_min"`
	YAxisMax           float64 `json:"y_axis_max"          yaml:"y_axis_max"`
	YAxisHidden        bool    `json:"y_axis_hidden"       yaml:"y_axis_hidden"`
	Display            bool    `json:"display"             yaml:"display"`
	DecimalPlaces      int     `json:"decimal_places"      yaml:"decimal_places"`
	TooltipDescription string  `json:"tooltip_description" yaml:"tooltip_description"`
}

// MetricsProviderCreateRequest is the payload for creating a metrics provider.
// Which credential fields are required depends on Type.
type MetricsProviderCreateRequest struct {
	Email          string `json:"email,omitempty"           yaml:"email,omitempty"`
	Password       string `json:"password,omitempty"        yaml:"password,omitempty"`
	APIKey         string `json:"api_key,omitempty"         yaml:"api_key,omitempty"`
	APIToken       string `json:"api_token,omitempty"       yaml:"api_token,omitempty"`
	ApplicationKey string `json:"application_key,omitempty" yaml:"application_key,omitempty"`
	Type           string `json:"type,omitempty"            yaml:"type,omitempty"`
	MetricBaseURI  string `json:"metric_base_uri,omitempty" yaml:"metric_base_uri,omitempty"`
}

// MetricsProviderUpdateRequest is the payload for updating a metrics provider.
type MetricsProviderUpdateRequest struct {
	Type          *string `json:"type,omitempty"            yaml:"type,omitempty"`
	MetricBaseURI *string `json:"metric_base_uri,omitempty" yaml:"metric_base_uri,omitempty"`
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float64 returns a pointer to f.
func Float64(f float64) *float64 { return &f }

// Status returns a pointer to a component status.
func Status(s ComponentStatus) *ComponentStatus { return &s }
