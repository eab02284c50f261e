package v1

import (
	"fmt"

	"github.com/finledger/backend/internal/models"
	"github.com/finledger/backend/internal/money"
	"github.com/finledger/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type MonthEditable struct {
	Month types.Month `json:"month" example:"2026-09-01T00:00:00Z"`           // The calendar month, any day within it works
	Note  string      `json:"note" example:"Tight month, car repair" default:""` // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable MonthEditable) model() models.BudgetMonth {
	return models.BudgetMonth{
		Month: editable.Month,
		Note:  editable.Note,
	}
}

// MonthStatisticStrings are the month aggregates formatted for display,
// e.g. "-$1,141.13".
type MonthStatisticStrings struct {
	ProjectedIncome    string `json:"projectedIncome" example:"$13,200.00"`
	ProjectedExpenses  string `json:"projectedExpenses" example:"$14,341.13"`
	ProjectedRemainder string `json:"projectedRemainder" example:"-$1,141.13"`
	LiveIncome         string `json:"liveIncome" example:"$9,000.00"`
	LiveExpenses       string `json:"liveExpenses" example:"$8,948.13"`
	PaymentDue         string `json:"paymentDue" example:"$5,393.00"`
	LiveRemainder      string `json:"liveRemainder" example:"$3,607.00"`
}

func newMonthStatisticStrings(s models.MonthStatistics) MonthStatisticStrings {
	return MonthStatisticStrings{
		ProjectedIncome:    money.Format(s.ProjectedIncome),
		ProjectedExpenses:  money.Format(s.ProjectedExpenses),
		ProjectedRemainder: money.Format(s.ProjectedRemainder),
		LiveIncome:         money.Format(s.LiveIncome),
		LiveExpenses:       money.Format(s.LiveExpenses),
		PaymentDue:         money.Format(s.PaymentDue),
		LiveRemainder:      money.Format(s.LiveRemainder),
	}
}

type MonthLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/months/d430d7c3-d14c-4712-9336-ee56965a6673"`                    // The month itself
	LineItems     string `json:"lineItems" example:"https://example.com/api/v1/line-items?month=d430d7c3-d14c-4712-9336-ee56965a6673"`     // Line items of the month
	IncomeEntries string `json:"incomeEntries" example:"https://example.com/api/v1/income-entries?month=d430d7c3-d14c-4712-9336-ee56965a6673"` // Income entries of the month
}

// Month is the representation of a BudgetMonth in API v1.
type Month struct {
	models.DefaultModel
	MonthEditable
	Name  string     `json:"name" example:"September 2026"` // Human readable month name
	Links MonthLinks `json:"links"`
}

// MonthDetail is the full representation of a BudgetMonth: the month itself,
// the live aggregates of both tracks and all contained resources.
type MonthDetail struct {
	Month
	Statistics    models.MonthStatistics `json:"statistics"`    // Live aggregates, recomputed on every request
	Formatted     MonthStatisticStrings  `json:"formatted"`     // The aggregates as display strings
	LineItems     []LineItem             `json:"lineItems"`     // Line items of the month, in display order
	IncomeEntries []IncomeEntry          `json:"incomeEntries"` // Income entries of the month
}

// newMonth returns the API v1 representation of the resource
func newMonth(c *gin.Context, model models.BudgetMonth) Month {
	url := c.GetString(string(models.DBContextURL))

	return Month{
		DefaultModel: model.DefaultModel,
		MonthEditable: MonthEditable{
			Month: model.Month,
			Note:  model.Note,
		},
		Name: model.Month.Name(),
		Links: MonthLinks{
			Self:          fmt.Sprintf("%s/v1/months/%s", url, model.ID),
			LineItems:     fmt.Sprintf("%s/v1/line-items?month=%s", url, model.ID),
			IncomeEntries: fmt.Sprintf("%s/v1/income-entries?month=%s", url, model.ID),
		},
	}
}

// newMonthDetail computes the full representation including the aggregates.
func newMonthDetail(c *gin.Context, model models.BudgetMonth) (MonthDetail, error) {
	statistics, err := model.Statistics(models.DB)
	if err != nil {
		return MonthDetail{}, err
	}

	items, err := model.LineItems(models.DB)
	if err != nil {
		return MonthDetail{}, err
	}

	entries, err := model.IncomeEntries(models.DB)
	if err != nil {
		return MonthDetail{}, err
	}

	lineItems := make([]LineItem, 0)
	for _, item := range items {
		lineItems = append(lineItems, newLineItem(c, item))
	}

	incomeEntries := make([]IncomeEntry, 0)
	for _, entry := range entries {
		incomeEntries = append(incomeEntries, newIncomeEntry(c, entry))
	}

	return MonthDetail{
		Month:         newMonth(c, model),
		Statistics:    statistics,
		Formatted:     newMonthStatisticStrings(statistics),
		LineItems:     lineItems,
		IncomeEntries: incomeEntries,
	}, nil
}

type MonthListResponse struct {
	Data  []Month `json:"data"`                                                          // List of months
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MonthResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Month  `json:"data"`                                                          // The month data, if the request was successful
}

type MonthDetailResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *MonthDetail `json:"data"`                                                          // The month with aggregates and contained resources
}
