package transaction

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// Validator checks mutation inputs before any storage work happens, so
// malformed requests fail without touching the unit of work
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreate validates the full field set of a create or update request
func (v *Validator) ValidateCreate(input usecase.CreateTransactionInput) error {
	if !entity.IsValidType(input.Type) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidType, input.Type)
	}

	if err := v.validateAmount(input.Amount); err != nil {
		return err
	}

	if !entity.IsValidCategory(entity.TransactionType(input.Type), input.Category) {
		return errs.NewCategoryError(input.Type, input.Category)
	}

	return v.validateDescription(input.Description)
}

// ValidateAddMoney validates an account top-up request
func (v *Validator) ValidateAddMoney(input usecase.AddMoneyInput) error {
	if err := v.validateAmount(input.Amount); err != nil {
		return err
	}
	return v.validateDescription(input.Description)
}

func (v *Validator) validateAmount(amount string) error {
	if strings.TrimSpace(amount) == "" {
		return errs.ErrInvalidAmount
	}
	_, err := entity.ParseAmount(amount)
	return err
}

func (v *Validator) validateDescription(description string) error {
	if len(strings.TrimSpace(description)) > entity.MaxDescriptionLength {
		return errs.ErrDescriptionTooLong
	}
	return nil
}
