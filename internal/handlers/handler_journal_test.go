package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/stretchr/testify/mock"
)

func testEntry(id string, status domain.JournalStatus, debit, credit string) *domain.JournalEntry {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &domain.JournalEntry{
		EntryID:         id,
		BusinessID:      testBizID,
		FinancialYearID: "fy-2024",
		ReferenceNumber: "JE-1",
		EntryDate:       at,
		Narration:       "Owner capital",
		Status:          status,
		Source:          domain.SourceManual,
		Items: []domain.JournalItem{
			{ItemID: "i-1", EntryID: id, AccountID: "cash", Type: domain.Debit, Amount: domain.MustParseMoney(debit)},
			{ItemID: "i-2", EntryID: id, AccountID: "capital", Type: domain.Credit, Amount: domain.MustParseMoney(credit)},
		},
		AuditFields: domain.NewAuditFields(testUserID, at),
	}
}

const validJournalBody = `{
	"entryDate": "2024-03-01",
	"narration": "Owner capital",
	"items": [
		{"accountID": "cash", "type": "DEBIT", "amount": "1000.00"},
		{"accountID": "capital", "type": "CREDIT", "amount": 1000}
	]
}`

func (s *HandlerTestSuite) TestCreateJournal_Success() {
	s.journals.On("CreateJournal", mock.Anything, testBizID, mock.MatchedBy(func(req dto.CreateJournalRequest) bool {
		return len(req.Items) == 2 &&
			req.EntryDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			req.Items[0].Amount.Equal(domain.MoneyFromInt(1000)) &&
			req.Items[1].Type == domain.Credit &&
			req.ReferenceNumber == nil &&
			req.FinancialYearID == nil
	}), testUserID).Return(testEntry("je-1", domain.StatusDraft, "1000", "1000"), nil).Once()

	w := s.do(http.MethodPost, "/journals", validJournalBody)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalResponse
	s.decode(w, &resp)
	s.Equal(domain.StatusDraft, resp.Status)
	s.Equal("JE-1", resp.ReferenceNumber)
	s.Equal("1000.00", resp.TotalDebit.String())
	s.Equal("1000.00", resp.TotalCredit.String())
	s.Len(resp.Items, 2)
}

func (s *HandlerTestSuite) TestCreateJournal_BindingRejects() {
	cases := map[string]string{
		"zero amount": `{"entryDate":"2024-03-01T00:00:00Z","narration":"x","items":[
			{"accountID":"cash","type":"DEBIT","amount":"0"},
			{"accountID":"capital","type":"CREDIT","amount":"0"}]}`,
		"negative amount": `{"entryDate":"2024-03-01T00:00:00Z","narration":"x","items":[
			{"accountID":"cash","type":"DEBIT","amount":"-5"},
			{"accountID":"capital","type":"CREDIT","amount":"5"}]}`,
		"single item": `{"entryDate":"2024-03-01T00:00:00Z","narration":"x","items":[
			{"accountID":"cash","type":"DEBIT","amount":"5"}]}`,
		"unknown item type": `{"entryDate":"2024-03-01T00:00:00Z","narration":"x","items":[
			{"accountID":"cash","type":"DR","amount":"5"},
			{"accountID":"capital","type":"CREDIT","amount":"5"}]}`,
		"malformed amount": `{"entryDate":"2024-03-01T00:00:00Z","narration":"x","items":[
			{"accountID":"cash","type":"DEBIT","amount":"five"},
			{"accountID":"capital","type":"CREDIT","amount":"5"}]}`,
		"more than two decimal places": `{"entryDate":"2024-03-01","narration":"x","items":[
			{"accountID":"cash","type":"DEBIT","amount":"100.004"},
			{"accountID":"capital","type":"CREDIT","amount":"100.00"}]}`,
		"sub-cent amount": `{"entryDate":"2024-03-01","narration":"x","items":[
			{"accountID":"cash","type":"DEBIT","amount":0.004},
			{"accountID":"capital","type":"CREDIT","amount":0.004}]}`,
		"unparseable date": `{"entryDate":"01/03/2024","narration":"x","items":[
			{"accountID":"cash","type":"DEBIT","amount":"5"},
			{"accountID":"capital","type":"CREDIT","amount":"5"}]}`,
		"missing date": `{"narration":"x","items":[
			{"accountID":"cash","type":"DEBIT","amount":"5"},
			{"accountID":"capital","type":"CREDIT","amount":"5"}]}`,
		"missing narration": `{"entryDate":"2024-03-01T00:00:00Z","items":[
			{"accountID":"cash","type":"DEBIT","amount":"5"},
			{"accountID":"capital","type":"CREDIT","amount":"5"}]}`,
	}
	for name, body := range cases {
		s.Run(name, func() {
			w := s.do(http.MethodPost, "/journals", body)
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	s.journals.AssertNotCalled(s.T(), "CreateJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateJournal_TimestampDate() {
	s.journals.On("CreateJournal", mock.Anything, testBizID, mock.MatchedBy(func(req dto.CreateJournalRequest) bool {
		return req.EntryDate.Equal(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC))
	}), testUserID).Return(testEntry("je-1", domain.StatusDraft, "5", "5"), nil).Once()

	w := s.do(http.MethodPost, "/journals", `{"entryDate":"2024-03-01T10:30:00Z","narration":"x","items":[
		{"accountID":"cash","type":"DEBIT","amount":"5"},
		{"accountID":"capital","type":"CREDIT","amount":"5"}]}`)

	s.Equal(http.StatusCreated, w.Code)
}

func (s *HandlerTestSuite) TestCreateJournal_DuplicateReference() {
	s.journals.On("CreateJournal", mock.Anything, testBizID, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: reference JE-1 already used", apperrors.ErrDuplicate)).Once()

	w := s.do(http.MethodPost, "/journals", validJournalBody)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestPostJournal_Unbalanced() {
	s.journals.On("PostJournal", mock.Anything, testBizID, "je-1", testUserID).
		Return(nil, fmt.Errorf("%w: debit 1000.00, credit 900.00", apperrors.ErrUnbalancedEntry)).Once()

	w := s.do(http.MethodPost, "/journals/je-1/post", nil)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(s.errorMessage(w), "not balanced")
}

func (s *HandlerTestSuite) TestPostJournal_Success() {
	s.journals.On("PostJournal", mock.Anything, testBizID, "je-1", testUserID).
		Return(testEntry("je-1", domain.StatusPosted, "1000", "1000"), nil).Once()

	w := s.do(http.MethodPost, "/journals/je-1/post", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.JournalResponse
	s.decode(w, &resp)
	s.Equal(domain.StatusPosted, resp.Status)
}

func (s *HandlerTestSuite) TestCancelJournal_DraftIsInvalidState() {
	s.journals.On("CancelJournal", mock.Anything, testBizID, "je-1", testUserID).
		Return(nil, fmt.Errorf("%w: only posted entries can be cancelled", apperrors.ErrInvalidState)).Once()

	w := s.do(http.MethodPost, "/journals/je-1/cancel", nil)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestDeleteJournal() {
	s.journals.On("DeleteJournal", mock.Anything, testBizID, "je-1").Return(nil).Once()
	s.journals.On("DeleteJournal", mock.Anything, testBizID, "je-2").
		Return(fmt.Errorf("%w: only draft entries can be deleted", apperrors.ErrInvalidState)).Once()

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/journals/je-1", nil).Code)
	s.Equal(http.StatusConflict, s.do(http.MethodDelete, "/journals/je-2", nil).Code)
}

func (s *HandlerTestSuite) TestListJournals_PassesPagingThrough() {
	next := "token-2"
	s.journals.On("ListJournals", mock.Anything, testBizID, mock.MatchedBy(func(p dto.ListJournalsParams) bool {
		return p.Status == "POSTED" && p.Limit == 2 && p.NextToken != nil && *p.NextToken == "token-1"
	})).Return([]domain.JournalEntry{
		*testEntry("je-3", domain.StatusPosted, "10", "10"),
		*testEntry("je-2", domain.StatusPosted, "10", "10"),
	}, &next, nil).Once()

	w := s.do(http.MethodGet, "/journals?status=POSTED&limit=2&nextToken=token-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalsResponse
	s.decode(w, &resp)
	s.Len(resp.Entries, 2)
	s.Equal("je-3", resp.Entries[0].EntryID)
	s.Require().NotNil(resp.NextToken)
	s.Equal("token-2", *resp.NextToken)
}

func (s *HandlerTestSuite) TestListJournals_InvalidStatus() {
	w := s.do(http.MethodGet, "/journals?status=VOID", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetJournal_OtherBusinessIsNotFound() {
	s.journals.On("GetJournal", mock.Anything, testBizID, "je-of-another-business").
		Return(nil, apperrors.NewNotFoundError("journal entry", "je-of-another-business")).Once()

	w := s.do(http.MethodGet, "/journals/je-of-another-business", nil)

	s.Equal(http.StatusNotFound, w.Code)
}
