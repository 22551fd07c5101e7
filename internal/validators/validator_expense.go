package validators

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-expense-keeper/models"
)

const (
	FieldName             = "name"
	FieldColor            = "color"
	FieldAmount           = "amount"
	FieldDescription      = "description"
	FieldCategoryID       = "category_id"
	FieldExpenseDate      = "expense_date"
	FieldReceiptImagePath = "receipt_image_path"

	maxNameLength        = 255
	maxDescriptionLength = 1000
	dateLayout           = "2006-01-02"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ExpenseValidator checks category and expense requests before they are
// sent or stored.
type ExpenseValidator struct {
}

func NewExpenseValidator() Validator {
	return &ExpenseValidator{}
}

// Validate dispatches on the request type. fields limits the checks to the
// named fields; an empty list checks every field of the type.
func (v *ExpenseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CategoryRequest:
		return v.validateCategory(value, fields...)
	case *models.CategoryRequest:
		return v.validateCategory(*value, fields...)

	case models.CreateExpenseRequest:
		return v.validateCreateExpense(value, fields...)
	case *models.CreateExpenseRequest:
		return v.validateCreateExpense(*value, fields...)

	case models.ExpenseUpdate:
		return v.validateExpenseUpdate(value, fields...)
	case *models.ExpenseUpdate:
		return v.validateExpenseUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ExpenseValidator) validateCategory(req models.CategoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldColor}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := checkName(req.Name); err != nil {
				return err
			}
		case FieldColor:
			if err := checkColor(req.Color); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *ExpenseValidator) validateCreateExpense(req models.CreateExpenseRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmount, FieldDescription, FieldCategoryID, FieldExpenseDate, FieldReceiptImagePath}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAmount:
			err = checkAmount(req.Amount)
		case FieldDescription:
			err = checkDescription(req.Description)
		case FieldCategoryID:
			err = checkCategoryID(req.CategoryID)
		case FieldExpenseDate:
			err = checkDate(req.ExpenseDate)
		case FieldReceiptImagePath:
			if req.ReceiptImagePath != nil {
				err = checkReceipt(*req.ReceiptImagePath)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// validateExpenseUpdate only checks fields that are present; at least one
// must be.
func (v *ExpenseValidator) validateExpenseUpdate(upd models.ExpenseUpdate, fields ...string) error {
	if upd.Amount == nil && upd.Description == nil && upd.CategoryID == nil &&
		upd.ExpenseDate == nil && upd.ReceiptImagePath == nil {
		return ErrNoFieldsToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldAmount, FieldDescription, FieldCategoryID, FieldExpenseDate, FieldReceiptImagePath}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAmount:
			if upd.Amount != nil {
				err = checkAmount(*upd.Amount)
			}
		case FieldDescription:
			if upd.Description != nil {
				err = checkDescription(*upd.Description)
			}
		case FieldCategoryID:
			if upd.CategoryID != nil {
				err = checkCategoryID(*upd.CategoryID)
			}
		case FieldExpenseDate:
			if upd.ExpenseDate != nil {
				err = checkDate(*upd.ExpenseDate)
			}
		case FieldReceiptImagePath:
			if upd.ReceiptImagePath != nil {
				err = checkReceipt(*upd.ReceiptImagePath)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func checkName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fieldError(FieldName, ErrEmptyName)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fieldError(FieldName, ErrNameTooLong)
	}
	return nil
}

func checkColor(color *string) error {
	if color == nil || *color == "" {
		return nil
	}
	if !colorPattern.MatchString(*color) {
		return fieldError(FieldColor, ErrInvalidColor)
	}
	return nil
}

func checkAmount(amount float64) error {
	if amount <= 0 {
		return fieldError(FieldAmount, ErrInvalidAmount)
	}
	return nil
}

func checkDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return fieldError(FieldDescription, ErrDescriptionLong)
	}
	return nil
}

func checkCategoryID(id int64) error {
	if id <= 0 {
		return fieldError(FieldCategoryID, ErrInvalidCategory)
	}
	return nil
}

func checkDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fieldError(FieldExpenseDate, ErrInvalidDate)
	}
	return nil
}

func checkReceipt(path string) error {
	if strings.TrimSpace(path) == "" {
		return fieldError(FieldReceiptImagePath, ErrEmptyReceipt)
	}
	return nil
}
