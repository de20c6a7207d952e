package noko

import (
	"context"
	"fmt"
	"net/http"
)

// Rate calculation methods accepted by Noko.
var validRateCalculations = []string{"custom_hourly_rates", "standard_hourly_rate", "flat_rate"}

// Invoice states accepted as a list filter.
var validInvoiceStates = []string{"unpaid", "awaiting_payment", "in_progress", "paid", "none"}

// RateCalculation describes how an invoice's totals are derived. The
// CalculationMethod discriminator fixes which other fields are required:
// "flat_rate" needs FlatRate, "standard_hourly_rate" needs either
// StandardHourlyRate or CustomHourlyRates, and "custom_hourly_rates"
// needs CustomHourlyRates.
type RateCalculation struct {
	CalculationMethod  string
	FlatRate           *float64
	StandardHourlyRate *float64
	CustomHourlyRates  []CustomRate
}

// CustomRate is a per-user hourly rate inside a rate calculation.
type CustomRate struct {
	UserID any // int or numeric string
	Rate   float64
}

// normalize validates the discriminator and its dependent fields,
// reporting failures against the rate_calculation field.
func (rc *RateCalculation) normalize(errs *fieldErrors) any {
	if rc == nil {
		return nil
	}
	const field = "rate_calculation"
	if rc.CalculationMethod == "" {
		errs.addEnum(field, validRateCalculations, "")
		return nil
	}
	if checkEnum(rc.CalculationMethod, field, validRateCalculations, errs) == nil {
		return nil
	}
	switch rc.CalculationMethod {
	case "flat_rate":
		if rc.FlatRate == nil {
			errs.add(field, MissingField, "calculation_method flat_rate requires the flat_rate field")
			return nil
		}
	case "standard_hourly_rate":
		if rc.StandardHourlyRate == nil && len(rc.CustomHourlyRates) == 0 {
			errs.add(field, MissingField, "calculation_method standard_hourly_rate requires standard_hourly_rate or custom hourly rates")
			return nil
		}
	case "custom_hourly_rates":
		if len(rc.CustomHourlyRates) == 0 {
			errs.add(field, MissingField, "calculation_method custom_hourly_rates requires custom hourly rates")
			return nil
		}
	}
	out := Params{"calculation_method": rc.CalculationMethod}
	out.setFloat("flat_rate", rc.FlatRate)
	out.setFloat("standard_hourly_rate", rc.StandardHourlyRate)
	if len(rc.CustomHourlyRates) > 0 {
		rates := make([]Params, len(rc.CustomHourlyRates))
		for i, r := range rc.CustomHourlyRates {
			rates[i] = Params{"rate": r.Rate}
			rates[i].set("user_id", coerceID(r.UserID, field, errs))
		}
		out["custom_hourly_rates"] = rates
	}
	return out
}

// Tax is one tax line applied to an invoice. Percentage is required.
type Tax struct {
	Percentage *float64
	Name       string
}

// normalizeTaxes validates that every tax carries a percentage.
func normalizeTaxes(taxes []Tax, errs *fieldErrors) any {
	if taxes == nil {
		return nil
	}
	out := make([]Params, len(taxes))
	for i, t := range taxes {
		if t.Percentage == nil {
			errs.add("taxes", MissingField, "tax at index %d is missing the required percentage", i)
			continue
		}
		out[i] = Params{"percentage": *t.Percentage}
		out[i].setString("name", t.Name)
	}
	return out
}

// CreateInvoiceParameters holds the fields for creating an invoice.
// The Show* display flags accept a bool or "true"/"false" string;
// ShowHoursWorked defaults to true when unset, the others to false,
// matching Noko's own defaults.
type CreateInvoiceParameters struct {
	InvoiceDate                any // required
	Reference                  string
	ProjectName                string
	CompanyName                string
	CompanyDetails             string
	RecipientDetails           string
	Description                string
	Footer                     string
	ShowHoursWorked            any
	ShowFullReport             any
	ShowUserSummaries          any
	ShowProjectSummaries       any
	ShowProjectNameForExpenses any
	RateCalculation            *RateCalculation
	EntryIDs                   any
	ExpenseIDs                 any
	Taxes                      []Tax
	Customization              map[string]any
}

// Normalize validates the parameters and produces the wire-ready set.
func (p CreateInvoiceParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := p.normalizeShared(&errs)
	out.set("invoice_date", formatDate(requireSet(p.InvoiceDate, "invoice_date", &errs), "invoice_date", &errs))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeShared handles every field except the date, shared with the
// edit variant.
func (p CreateInvoiceParameters) normalizeShared(errs *fieldErrors) Params {
	out := Params{}
	out.setString("reference", p.Reference)
	out.setString("project_name", p.ProjectName)
	out.setString("company_name", p.CompanyName)
	out.setString("company_details", p.CompanyDetails)
	out.setString("recipient_details", p.RecipientDetails)
	out.setString("description", p.Description)
	out.setString("footer", p.Footer)
	out["show_hours_worked"] = boolOrDefault(p.ShowHoursWorked, true)
	out["show_full_report"] = boolOrDefault(p.ShowFullReport, false)
	out["show_user_summaries"] = boolOrDefault(p.ShowUserSummaries, false)
	out["show_project_summaries"] = boolOrDefault(p.ShowProjectSummaries, false)
	out["show_project_name_for_expenses"] = boolOrDefault(p.ShowProjectNameForExpenses, false)
	out.set("rate_calculation", p.RateCalculation.normalize(errs))
	if p.EntryIDs != nil {
		out["entry_ids"] = idListToInts(p.EntryIDs)
	}
	if p.ExpenseIDs != nil {
		out["expense_ids"] = idListToInts(p.ExpenseIDs)
	}
	out.set("taxes", normalizeTaxes(p.Taxes, errs))
	if p.Customization != nil {
		out["customization"] = p.Customization
	}
	return out
}

// boolOrDefault applies the wire boolean conversion, falling back to a
// default when the flag was left unset.
func boolOrDefault(v any, def bool) any {
	if v == nil {
		return boolToWire(def)
	}
	return boolToWire(v)
}

// EditInvoiceParameters holds the fields for editing an invoice. Same
// shape as the create variant, but the date is optional.
type EditInvoiceParameters CreateInvoiceParameters

// Normalize validates the parameters and produces the wire-ready set.
func (p EditInvoiceParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := CreateInvoiceParameters(p).normalizeShared(&errs)
	out.set("invoice_date", formatDate(p.InvoiceDate, "invoice_date", &errs))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInvoicesParameters are the filters for listing invoices.
type GetInvoicesParameters struct {
	State                      string
	Reference                  string
	InvoiceDateFrom            any
	InvoiceDateTo              any
	ProjectName                string
	TotalAmountFrom            *float64
	TotalAmountTo              *float64
	RecipientDetails           string
	ProjectIDs                 any
	CompanyName                string
	CompanyDetails             string
	Description                string
	Footer                     string
	HasOnlinePaymentDetails    any
	HasCustomHTML              any
	ShowHoursWorked            any
	ShowFullReport             any
	ShowUserSummaries          any
	ShowProjectSummaries       any
	ShowProjectNameForExpenses any
	Locale                     string
	CurrencyCode               string
	CurrencySymbol             string
	RateCalculation            string
	UpdatedFrom                any
	UpdatedTo                  any
}

// Normalize validates the filters and produces the wire-ready set.
func (p GetInvoicesParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.set("state", checkEnum(p.State, "state", validInvoiceStates, &errs))
	out.setString("reference", p.Reference)
	out.set("invoice_date_from", formatDate(p.InvoiceDateFrom, "invoice_date_from", &errs))
	out.set("invoice_date_to", formatDate(p.InvoiceDateTo, "invoice_date_to", &errs))
	out.setString("project_name", p.ProjectName)
	out.setFloat("total_amount_from", p.TotalAmountFrom)
	out.setFloat("total_amount_to", p.TotalAmountTo)
	out.setString("recipient_details", p.RecipientDetails)
	out.set("project_ids", idListToWire(p.ProjectIDs))
	out.setString("company_name", p.CompanyName)
	out.setString("company_details", p.CompanyDetails)
	out.setString("description", p.Description)
	out.setString("footer", p.Footer)
	out.set("has_online_payment_details", boolToWire(p.HasOnlinePaymentDetails))
	out.set("has_custom_html", boolToWire(p.HasCustomHTML))
	out.set("show_hours_worked", boolToWire(p.ShowHoursWorked))
	out.set("show_full_report", boolToWire(p.ShowFullReport))
	out.set("show_user_summaries", boolToWire(p.ShowUserSummaries))
	out.set("show_project_summaries", boolToWire(p.ShowProjectSummaries))
	out.set("show_project_name_for_expenses", boolToWire(p.ShowProjectNameForExpenses))
	out.setString("locale", p.Locale)
	out.setString("currency_code", p.CurrencyCode)
	out.setString("currency_symbol", p.CurrencySymbol)
	out.set("rate_calculation", checkEnum(p.RateCalculation, "rate_calculation", validRateCalculations, &errs))
	out.set("updated_from", formatTimestamp(p.UpdatedFrom, "updated_from", &errs))
	out.set("updated_to", formatTimestamp(p.UpdatedTo, "updated_to", &errs))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInvoices returns every invoice matching the given filters.
func (c *Client) ListInvoices(ctx context.Context, p GetInvoicesParameters) ([]Invoice, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, "invoices", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Invoice](raw)
}

// GetInvoice retrieves a single invoice by ID.
func (c *Client) GetInvoice(ctx context.Context, invoiceID int64) (*Invoice, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("invoices/%d", invoiceID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[Invoice](raw)
}

// CreateInvoice creates a new invoice from the given entries and
// expenses.
func (c *Client) CreateInvoice(ctx context.Context, p CreateInvoiceParameters) (*Invoice, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPost, "invoices", nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Invoice](raw)
}

// EditInvoice updates an existing invoice. Paid invoices cannot be
// edited.
func (c *Client) EditInvoice(ctx context.Context, invoiceID int64, p EditInvoiceParameters) (*Invoice, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("invoices/%d", invoiceID), nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Invoice](raw)
}

// MarkInvoicePaid marks an invoice as paid.
func (c *Client) MarkInvoicePaid(ctx context.Context, invoiceID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("invoices/%d/paid", invoiceID), nil, nil, nil)
	return err
}

// MarkInvoiceUnpaid marks an invoice as unpaid.
func (c *Client) MarkInvoiceUnpaid(ctx context.Context, invoiceID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("invoices/%d/unpaid", invoiceID), nil, nil, nil)
	return err
}

// DeleteInvoice deletes an invoice. Paid invoices cannot be deleted.
func (c *Client) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, fmt.Sprintf("invoices/%d", invoiceID), nil, nil, nil)
	return err
}
