package models

import (
	"errors"
)

var (
	ErrGeneral         = errors.New("an error occurred on the server during your request")
	ErrDatabaseClosed  = errors.New("there is a problem with the database connection, please contact your server administrator")
	ErrBudgetReference = errors.New("there is no budget matching the budget_id you specified")
	ErrBalanceOverflow = errors.New("the new balance of the envelope is out of range")
)
