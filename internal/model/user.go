// Package model defines the core domain types shared across the application.
package model

import "strings"

// SafetyScores holds the three tracked wellbeing percentages (0-100).
type SafetyScores struct {
	EmotionalAwareness int `json:"emotionalAwareness"`
	ScamResistance     int `json:"scamResistance"`
	DecisionStability  int `json:"decisionStability"`
}

// DefaultScores returns the scores assigned to a freshly created user.
func DefaultScores() SafetyScores {
	return SafetyScores{
		EmotionalAwareness: 85,
		ScamResistance:     78,
		DecisionStability:  92,
	}
}

// Contact is a trusted person eligible to receive a hand-off request.
// Owned exclusively by its UserRecord.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UserRecord is the persisted per-user state. The username is immutable
// once the record is created.
type UserRecord struct {
	Username        string       `json:"username"`
	TrustedContacts []Contact    `json:"trustedContacts"`
	Scores          SafetyScores `json:"scores"`
}

// NewUserRecord creates a user record with default scores and no contacts.
func NewUserRecord(username string) *UserRecord {
	return &UserRecord{
		Username:        strings.TrimSpace(username),
		TrustedContacts: []Contact{},
		Scores:          DefaultScores(),
	}
}

// ContactByID returns the contact with the given id, or nil.
func (u *UserRecord) ContactByID(id string) *Contact {
	for i := range u.TrustedContacts {
		if u.TrustedContacts[i].ID == id {
			return &u.TrustedContacts[i]
		}
	}
	return nil
}
