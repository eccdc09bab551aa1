package paymentslip

import (
	"unicode/utf8"
)

// Validate performs the full cross-field validation of a payment order
// and aggregates every violation into one list. A nil result means the
// order is valid and can be encoded.
func (o PaymentOrder) Validate() ValidationErrors {
	var errs ValidationErrors

	add := func(field string, reason Reason) {
		errs = append(errs, OrderError{Field: field, Reason: reason})
	}

	account := NormalizeIBAN(o.Account)
	accountValid := IsSwissIBAN(account)
	if !accountValid {
		add("account", ReasonInvalidAccount)
	}

	if o.Amount != nil {
		amt := *o.Amount
		if amt.IsNegative() || amt.GreaterThan(MaxAmount) {
			add("amount", ReasonAmountRange)
		}
		if !amt.Equal(amt.Truncate(2)) {
			add("amount", ReasonAmountPrecision)
		}
	}

	if !o.Currency.IsValid() {
		add("currency", ReasonUnsupportedCurrency)
	}

	reference := NormalizeReference(o.Reference)
	switch o.ReferenceType {
	case ReferenceTypeQRR:
		if accountValid && !IsQRIBAN(account) {
			add("account", ReasonAccountTypeMismatch)
		}
		if reference == "" {
			add("reference", ReasonReferenceMissing)
		} else if !VerifyReference(reference) {
			add("reference", ReasonInvalidReference)
		}
	case ReferenceTypeSCOR:
		if accountValid && IsQRIBAN(account) {
			add("account", ReasonAccountTypeMismatch)
		}
		if reference == "" {
			add("reference", ReasonReferenceMissing)
		} else if !IsValidCreditorReference(reference) {
			add("reference", ReasonInvalidReference)
		}
	case ReferenceTypeNON:
		if accountValid && IsQRIBAN(account) {
			add("account", ReasonAccountTypeMismatch)
		}
		if reference != "" {
			add("reference", ReasonInvalidReference)
		}
	default:
		add("reference_type", ReasonInvalidReference)
	}

	errs = append(errs, addressErrors("creditor", o.Creditor)...)
	if o.UltimateCreditor != nil {
		errs = append(errs, addressErrors("ultimate_creditor", *o.UltimateCreditor)...)
	}
	if o.Debtor != nil {
		errs = append(errs, addressErrors("debtor", *o.Debtor)...)
	}

	if utf8.RuneCountInString(Sanitize(o.UnstructuredMessage, SanitizeSingleLine)) > MaxUnstructuredMessageLength {
		add("unstructured_message", ReasonTooLong)
	}
	if utf8.RuneCountInString(Sanitize(o.BillInformation, SanitizeSingleLine)) > MaxBillInformationLength {
		add("bill_information", ReasonTooLong)
	}
	if len(o.AlternativeProcedures) > maxAlternativeProcedures {
		add("alternative_procedures", ReasonTooLong)
	}

	return errs
}

// addressErrors validates one nested address and lifts its field errors
// into order errors with a dotted field path.
func addressErrors(prefix string, a Address) ValidationErrors {
	fieldErrs := a.Validate()
	if len(fieldErrs) == 0 {
		return nil
	}
	errs := make(ValidationErrors, len(fieldErrs))
	for i, fe := range fieldErrs {
		errs[i] = OrderError{Field: prefix + "." + fe.Field, Reason: fe.Reason}
	}
	return errs
}
