package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrPropertyNameNotUnique = errors.New("the property name is already in use")
	ErrCategoryNotUnique     = errors.New("the category name is already in use for this kind")
	ErrTransactionMatched    = errors.New("the transaction already has a committed match result")

	ErrRuleFieldInvalid     = errors.New("the rule field must be one of: description, amount, date, category, accountName")
	ErrRuleConditionInvalid = errors.New("the rule condition must be one of: contains, equals, starts_with, ends_with, greater_than, less_than")
	ErrRuleValueNotNumeric  = errors.New("the rule value must be a number for greater_than and less_than conditions")

	ErrActionKindInvalid       = errors.New("the action kind must be payment or expense")
	ErrActionPercentageInvalid = errors.New("the action percentage must be between 0 and 100")
	ErrActionCategoryKind      = errors.New("the action category must belong to the vocabulary for the action kind")

	ErrMatchModeInvalid = errors.New("the match mode must be manual or automatic")
)
