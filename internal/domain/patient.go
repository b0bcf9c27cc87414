package domain

import "time"

// Patient models a clinic patient record.
type Patient struct {
	ID                    string
	FullName              string
	Gender                Gender
	DateOfBirth           time.Time
	Phone                 string
	Email                 string
	Address               *string
	AllergiesText         *string
	MedicalConditionsText *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
