package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// calendarDate decodes a request date given either as YYYY-MM-DD or as an RFC 3339 timestamp.
type calendarDate time.Time

func (d *calendarDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	for _, layout := range []string{reportDateFormat, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = calendarDate(t)
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", s)
}

// UnmarshalJSON accepts entryDate as a plain calendar date.
func (r *CreateJournalRequest) UnmarshalJSON(b []byte) error {
	type plain CreateJournalRequest
	aux := struct {
		*plain
		EntryDate calendarDate `json:"entryDate"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.EntryDate = time.Time(aux.EntryDate)
	return nil
}

// UnmarshalJSON accepts date as a plain calendar date.
func (r *BankTransactionRequest) UnmarshalJSON(b []byte) error {
	type plain BankTransactionRequest
	aux := struct {
		*plain
		Date calendarDate `json:"date"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.Date = time.Time(aux.Date)
	return nil
}

// UnmarshalJSON accepts date as a plain calendar date.
func (r *TransferRequest) UnmarshalJSON(b []byte) error {
	type plain TransferRequest
	aux := struct {
		*plain
		Date calendarDate `json:"date"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.Date = time.Time(aux.Date)
	return nil
}

// UnmarshalJSON accepts statementDate as a plain calendar date.
func (r *ReconcileRequest) UnmarshalJSON(b []byte) error {
	type plain ReconcileRequest
	aux := struct {
		*plain
		StatementDate calendarDate `json:"statementDate"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.StatementDate = time.Time(aux.StatementDate)
	return nil
}

// UnmarshalJSON accepts startDate and endDate as plain calendar dates.
func (r *CreateFinancialYearRequest) UnmarshalJSON(b []byte) error {
	type plain CreateFinancialYearRequest
	aux := struct {
		*plain
		StartDate calendarDate `json:"startDate"`
		EndDate   calendarDate `json:"endDate"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.StartDate = time.Time(aux.StartDate)
	r.EndDate = time.Time(aux.EndDate)
	return nil
}
