package noko

import "time"

// Reference types mirror the abbreviated objects Noko nests inside other
// resources.

// UserRef is a reference to a user in nested objects.
type UserRef struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
	URL             string `json:"url"`
}

// ProjectRef is a reference to a project in nested objects.
type ProjectRef struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	BillingIncrement int    `json:"billing_increment"`
	Enabled          bool   `json:"enabled"`
	Billable         bool   `json:"billable"`
	Color            string `json:"color"`
	URL              string `json:"url"`
}

// InvoiceRef is a reference to an invoice in nested objects.
type InvoiceRef struct {
	ID          int64   `json:"id"`
	Reference   string  `json:"reference"`
	InvoiceDate string  `json:"invoice_date"`
	State       string  `json:"state"`
	TotalAmount float64 `json:"total_amount"`
	URL         string  `json:"url"`
}

// Tag represents a Noko tag. A trailing "*" in the name marks the tag
// unbillable.
type Tag struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Billable      bool   `json:"billable"`
	FormattedName string `json:"formatted_name"`
	URL           string `json:"url"`
}

// Entry represents a Noko time entry. Date is the day the time was
// logged against, in YYYY-MM-DD form.
type Entry struct {
	ID          int64       `json:"id"`
	Date        string      `json:"date"`
	User        *UserRef    `json:"user"`
	Billable    bool        `json:"billable"`
	Minutes     int         `json:"minutes"`
	Description string      `json:"description"`
	Project     *ProjectRef `json:"project"`
	Tags        []Tag       `json:"tags"`
	SourceURL   string      `json:"source_url"`
	InvoicedAt  *time.Time  `json:"invoiced_at"`
	Invoice     *InvoiceRef `json:"invoice"`
	ApprovedAt  *time.Time  `json:"approved_at"`
	ApprovedBy  *UserRef    `json:"approved_by"`
	URL         string      `json:"url"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Project represents a Noko project with its rolled-up minute counters.
type Project struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	BillingIncrement  int           `json:"billing_increment"`
	Enabled           bool          `json:"enabled"`
	Billable          bool          `json:"billable"`
	Color             string        `json:"color"`
	URL               string        `json:"url"`
	Group             *ProjectGroup `json:"group"`
	Minutes           int           `json:"minutes"`
	BillableMinutes   int           `json:"billable_minutes"`
	UnbillableMinutes int           `json:"unbillable_minutes"`
	InvoicedMinutes   int           `json:"invoiced_minutes"`
	RemainingMinutes  int           `json:"remaining_minutes"`
	BudgetedMinutes   int           `json:"budgeted_minutes"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ProjectGroup represents a named group of projects.
type ProjectGroup struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	URL       string       `json:"url"`
	Projects  []ProjectRef `json:"projects"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Invoice represents a Noko invoice.
type Invoice struct {
	ID               int64      `json:"id"`
	State            string     `json:"state"`
	Number           int        `json:"number"`
	InvoiceDate      string     `json:"invoice_date"`
	Reference        string     `json:"reference"`
	ProjectName      string     `json:"project_name"`
	CompanyName      string     `json:"company_name"`
	CompanyDetails   string     `json:"company_details"`
	RecipientDetails string     `json:"recipient_details"`
	Description      string     `json:"description"`
	Footer           string     `json:"footer"`
	TotalAmount      float64    `json:"total_amount"`
	PaidAt           *time.Time `json:"paid_at"`
	URL              string     `json:"url"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Expense represents a Noko expense.
type Expense struct {
	ID          int64       `json:"id"`
	Date        string      `json:"date"`
	Price       float64     `json:"price"`
	Description string      `json:"description"`
	Taxable     bool        `json:"taxable"`
	User        *UserRef    `json:"user"`
	Project     *ProjectRef `json:"project"`
	Invoice     *InvoiceRef `json:"invoice"`
	URL         string      `json:"url"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// User represents a Noko user account.
type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	State           string    `json:"state"`
	Role            string    `json:"role"`
	URL             string    `json:"url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Team represents a named team of users.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Users     []UserRef `json:"users"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
