package core

import "time"

// SummaryFilter describes the optional restrictions applied to a summary.
// A zero Month means no month filter; an empty Category means no
// category filter.
type SummaryFilter struct {
	Month    Month
	Category string
}

// SummaryReport is the outcome of summarizing a document.
type SummaryReport struct {
	Total    Money
	Count    int // expenses that matched the filter
	Recorded int // expenses in the document before filtering
	Month    Month
	Year     int // the year the month filter was applied against
	Category string

	Budget    Money
	HasBudget bool
}

// Overspent reports whether the total exceeds the month's budget.
func (r SummaryReport) Overspent() bool {
	return r.HasBudget && r.Total.Cents > r.Budget.Cents
}

// Summarize filters the document's expenses and sums their amounts.
//
// The month filter restricts to expenses of that month in the year of
// the supplied instant; expenses from the same month of other years are
// excluded. The category filter is an exact match against the
// normalized form.
func Summarize(doc Document, f SummaryFilter, now time.Time) (SummaryReport, error) {
	report := SummaryReport{Recorded: len(doc.Expenses)}

	if f.Month != 0 {
		if err := f.Month.Validate(); err != nil {
			return SummaryReport{}, err
		}
		report.Month = f.Month
		report.Year = now.Year()
	}
	if f.Category != "" {
		report.Category = NormalizeCategory(f.Category)
	}

	for _, e := range doc.Expenses {
		if f.Month != 0 && (e.Date.Month() != f.Month || e.Date.Year() != now.Year()) {
			continue
		}
		if report.Category != "" && e.Category != report.Category {
			continue
		}
		report.Total = report.Total.Add(e.Amount)
		report.Count++
	}

	if f.Month != 0 {
		if budget, ok := doc.BudgetFor(f.Month); ok {
			report.Budget = budget
			report.HasBudget = true
		}
	}

	return report, nil
}
