package v1_test

import (
	"net/http"

	v1 "github.com/finledger/backend/internal/controllers/v1"
	"github.com/finledger/backend/internal/types"
	"github.com/finledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateCategoryDuplicateName() {
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Housing"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "already exists")
}

func (suite *TestSuiteStandard) TestGetCategoriesSorted() {
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Utilities", SortOrder: 2})
	suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing", SortOrder: 1})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Housing", response.Data[0].Name)
	suite.Assert().Equal("Utilities", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing"})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]string{
		"color": "#38bdf8",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Housing", response.Data.Name)
	suite.Assert().Equal("#38bdf8", response.Data.Color)
}

func (suite *TestSuiteStandard) TestDeleteCategoryClearsReferences() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Housing"})

	template := suite.createTestTemplate(suite.T(), v1.TemplateEditable{
		Name:       "Rent",
		CategoryID: &category.Data.ID,
		Amount:     decimal.NewFromFloat(1500),
		Active:     true,
	})

	month := suite.createTestMonth(suite.T(), v1.MonthEditable{Month: types.NewMonth(2026, 9)})
	suite.Require().Len(month.Data.LineItems, 1)

	item := month.Data.LineItems[0]
	suite.Require().NotNil(item.CategoryID)

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, template.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var templateResponse v1.TemplateResponse
	test.DecodeResponse(suite.T(), &r, &templateResponse)
	suite.Assert().Nil(templateResponse.Data.CategoryID, "Templates must not reference deleted categories")

	r = test.Request(suite.T(), http.MethodGet, item.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var itemResponse v1.LineItemResponse
	test.DecodeResponse(suite.T(), &r, &itemResponse)
	suite.Assert().Nil(itemResponse.Data.CategoryID, "Line items must not reference deleted categories")
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
