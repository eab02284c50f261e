package v1_test

import (
	"net/http"

	v1 "github.com/finledger/backend/internal/controllers/v1"
	"github.com/finledger/backend/internal/types"
	"github.com/finledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateTemplate() {
	template := suite.createTestTemplate(suite.T(), v1.TemplateEditable{
		Name:   "Rent",
		Amount: decimal.NewFromFloat(1500),
		Active: true,
	})

	suite.Assert().Equal("recurring", string(template.Data.Frequency), "Frequency must default to recurring")
	suite.Assert().Equal("$1,500.00", template.Data.FormattedAmount)
	suite.Assert().Equal("Recurring", template.Data.FrequencyBadge.Label)
	suite.Assert().Equal("green", template.Data.FrequencyBadge.Color)
}

func (suite *TestSuiteStandard) TestCreateTemplateInvalidFrequency() {
	suite.createTestTemplate(suite.T(), v1.TemplateEditable{
		Name:      "Gym",
		Frequency: "weekly",
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTemplatesGlobFilter() {
	suite.createTestTemplate(suite.T(), v1.TemplateEditable{Name: "Renters insurance"})
	suite.createTestTemplate(suite.T(), v1.TemplateEditable{Name: "Car insurance"})
	suite.createTestTemplate(suite.T(), v1.TemplateEditable{Name: "Rent"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/templates?name=*insurance", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TemplateListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetTemplatesFilterFrequency() {
	suite.createTestTemplate(suite.T(), v1.TemplateEditable{Name: "Rent", Frequency: "recurring"})
	suite.createTestTemplate(suite.T(), v1.TemplateEditable{Name: "Car repair", Frequency: "one_off"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/templates?frequency=one_off", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TemplateListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Car repair", response.Data[0].Name)
	suite.Assert().Equal("One-off", response.Data[0].FrequencyBadge.Label)
	suite.Assert().Equal("yellow", response.Data[0].FrequencyBadge.Color)
}

func (suite *TestSuiteStandard) TestUpdateTemplateDeactivate() {
	template := suite.createTestTemplate(suite.T(), v1.TemplateEditable{
		Name:   "Old gym membership",
		Active: true,
	})

	r := test.Request(suite.T(), http.MethodPatch, template.Data.Links.Self, map[string]any{
		"active": false,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, template.Data.Links.Self, "")
	var response v1.TemplateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.Active)
}

func (suite *TestSuiteStandard) TestUpdateTemplateNegativeAmount() {
	template := suite.createTestTemplate(suite.T(), v1.TemplateEditable{Name: "Internet"})

	r := test.Request(suite.T(), http.MethodPatch, template.Data.Links.Self, map[string]string{
		"amount": "-5.00",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteTemplateClearsLineItemReference() {
	template := suite.createTestTemplate(suite.T(), v1.TemplateEditable{
		Name:   "Rent",
		Amount: decimal.NewFromFloat(1500),
		Active: true,
	})

	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})
	suite.Require().Len(month.Data.LineItems, 1)

	item := month.Data.LineItems[0]
	suite.Require().NotNil(item.TemplateID)

	r := test.Request(suite.T(), http.MethodDelete, template.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, item.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LineItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.TemplateID, "Line items must not reference deleted templates")
}

func (suite *TestSuiteStandard) TestDeleteTemplate() {
	template := suite.createTestTemplate(suite.T(), v1.TemplateEditable{})

	r := test.Request(suite.T(), http.MethodDelete, template.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, template.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
