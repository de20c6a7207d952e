package noko

import (
	"context"
	"fmt"
	"net/http"
)

// CreateExpenseParameters holds the fields for recording an expense.
type CreateExpenseParameters struct {
	Date        any // required
	ProjectID   any // required
	Price       float64
	UserID      any
	Taxable     any
	Description string
}

// Normalize validates the parameters and produces the wire-ready set.
func (p CreateExpenseParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.set("date", formatDate(requireSet(p.Date, "date", &errs), "date", &errs))
	out.set("project_id", coerceID(requireSet(p.ProjectID, "project_id", &errs), "project_id", &errs))
	out["price"] = p.Price
	out.set("user_id", coerceID(p.UserID, "user_id", &errs))
	out.set("taxable", boolToWire(p.Taxable))
	out.setString("description", p.Description)
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EditExpenseParameters holds the fields for editing an expense. All
// optional.
type EditExpenseParameters struct {
	Date        any
	ProjectID   any
	Price       *float64
	UserID      any
	Taxable     any
	Description string
}

// Normalize validates the parameters and produces the wire-ready set.
func (p EditExpenseParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.set("date", formatDate(p.Date, "date", &errs))
	out.set("project_id", coerceID(p.ProjectID, "project_id", &errs))
	out.setFloat("price", p.Price)
	out.set("user_id", coerceID(p.UserID, "user_id", &errs))
	out.set("taxable", boolToWire(p.Taxable))
	out.setString("description", p.Description)
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetExpensesParameters are the filters for listing expenses. From and
// To remap to the wire keys "from"/"to", like the entries filters.
type GetExpensesParameters struct {
	UserIDs     any
	Description string
	ProjectIDs  any
	InvoiceIDs  any
	From        any
	To          any
	PriceFrom   *float64
	PriceTo     *float64
	Taxable     any
	Invoiced    any
}

// Normalize validates the filters and produces the wire-ready set.
func (p GetExpensesParameters) Normalize() (Params, error) {
	var errs fieldErrors
	out := Params{}
	out.set("user_ids", idListToWire(p.UserIDs))
	out.setString("description", p.Description)
	out.set("project_ids", idListToWire(p.ProjectIDs))
	out.set("invoice_ids", idListToWire(p.InvoiceIDs))
	out.set("from", formatDate(p.From, "from", &errs))
	out.set("to", formatDate(p.To, "to", &errs))
	out.setFloat("price_from", p.PriceFrom)
	out.setFloat("price_to", p.PriceTo)
	out.set("taxable", boolToWire(p.Taxable))
	out.set("invoiced", boolToWire(p.Invoiced))
	if err := errs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListExpenses returns every expense matching the given filters.
func (c *Client) ListExpenses(ctx context.Context, p GetExpensesParameters) ([]Expense, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodGet, "expenses", nil, params, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Expense](raw)
}

// GetExpense retrieves a single expense by ID.
func (c *Client) GetExpense(ctx context.Context, expenseID int64) (*Expense, error) {
	raw, err := c.FetchJSON(ctx, http.MethodGet, fmt.Sprintf("expenses/%d", expenseID), nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[Expense](raw)
}

// CreateExpense records a new expense.
func (c *Client) CreateExpense(ctx context.Context, p CreateExpenseParameters) (*Expense, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPost, "expenses", nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Expense](raw)
}

// EditExpense updates an existing expense.
func (c *Client) EditExpense(ctx context.Context, expenseID int64, p EditExpenseParameters) (*Expense, error) {
	params, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	raw, err := c.FetchJSON(ctx, http.MethodPut, fmt.Sprintf("expenses/%d", expenseID), nil, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeOne[Expense](raw)
}

// DeleteExpense deletes an expense. Invoiced expenses cannot be deleted.
func (c *Client) DeleteExpense(ctx context.Context, expenseID int64) error {
	_, err := c.FetchJSON(ctx, http.MethodDelete, fmt.Sprintf("expenses/%d", expenseID), nil, nil, nil)
	return err
}
