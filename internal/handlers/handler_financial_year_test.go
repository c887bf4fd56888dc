package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/mock"
)

func testFinancialYear(id string, active bool) *domain.FinancialYear {
	return &domain.FinancialYear{
		FinancialYearID: id,
		BusinessID:      testBizID,
		Name:            "FY 2024",
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:        active,
	}
}

func (s *HandlerTestSuite) TestCreateFinancialYear() {
	s.years.On("CreateFinancialYear", mock.Anything, testBizID, mock.MatchedBy(func(req dto.CreateFinancialYearRequest) bool {
		return req.Name == "FY 2024" && req.Activate &&
			req.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			req.EndDate.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	}), testUserID).Return(testFinancialYear("fy-1", true), nil).Once()

	w := s.do(http.MethodPost, "/financial-years", `{
		"name": "FY 2024", "startDate": "2024-01-01", "endDate": "2024-12-31", "activate": true}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.FinancialYearResponse
	s.decode(w, &resp)
	s.Equal("fy-1", resp.FinancialYearID)
	s.True(resp.IsActive)
}

func (s *HandlerTestSuite) TestCreateFinancialYear_EndBeforeStart() {
	w := s.do(http.MethodPost, "/financial-years", `{
		"name": "Backwards", "startDate": "2024-12-31T00:00:00Z", "endDate": "2024-01-01T00:00:00Z"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetActiveFinancialYear_NoneActive() {
	s.years.On("GetActiveFinancialYear", mock.Anything, testBizID).
		Return(nil, apperrors.NewNotFoundError("active financial year", testBizID)).Once()

	w := s.do(http.MethodGet, "/financial-years/active", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestActivateFinancialYear() {
	s.years.On("ActivateFinancialYear", mock.Anything, testBizID, "fy-2", testUserID).
		Return(testFinancialYear("fy-2", true), nil).Once()

	w := s.do(http.MethodPost, "/financial-years/fy-2/activate", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.FinancialYearResponse
	s.decode(w, &resp)
	s.Equal("fy-2", resp.FinancialYearID)
}

func (s *HandlerTestSuite) TestListFinancialYears() {
	s.years.On("ListFinancialYears", mock.Anything, testBizID).
		Return([]domain.FinancialYear{*testFinancialYear("fy-1", false), *testFinancialYear("fy-2", true)}, nil).Once()

	w := s.do(http.MethodGet, "/financial-years", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []dto.FinancialYearResponse
	s.decode(w, &resp)
	s.Len(resp, 2)
}
