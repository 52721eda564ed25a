package statuspage

import (
	"net/url"
	"strconv"
)

// ListOptions holds the pagination parameters accepted by list endpoints.
// Zero values are treated as absent and never sent.
type ListOptions struct {
	Page    int
	PerPage int
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithPage sets the page number.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.Page = page

	return o
}

// WithPerPage sets the page size.
func (o *ListOptions) WithPerPage(perPage int) *ListOptions {
	o.PerPage = perPage

	return o
}

// ToValues converts the options to URL query values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	setPositive(values, "page", o.Page)
	setPositive(values, "per_page", o.PerPage)

	return values
}

// IncidentListOptions filters the incident search endpoint.
type IncidentListOptions struct {
	// Q matches against incident names and bodies.
	Q       string
	Limit   int
	Page    int
	PerPage int
}

// ToValues converts the options to URL query values.
func (o *IncidentListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Q != "" {
		values.Set("q", o.Q)
	}

	setPositive(values, "limit", o.Limit)
	setPositive(values, "page", o.Page)
	setPositive(values, "per_page", o.PerPage)

	return values
}

// UptimeOptions bounds a component uptime query. Dates use the YYYY-MM-DD form.
type UptimeOptions struct {
	Start string
	End   string
}

// ToValues converts the options to URL query values.
func (o *UptimeOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Start != "" {
		values.Set("start", o.Start)
	}

	if o.End != "" {
		values.Set("end", o.End)
	}

	return values
}

func setPositive(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}
