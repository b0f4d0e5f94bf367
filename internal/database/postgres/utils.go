package postgres

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// textToPtr converts a nullable text column to *string
func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// ptrToText converts *string to a nullable text parameter
func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
