// Package paymentslip contains the Swiss payment-slip bounded context.
// It turns a payment order (creditor, debtor, amount, reference) into the
// Swiss Payment Code text payload embedded in the scannable code of a
// QR-bill, and provides the self-checking reference numbers and character
// sanitization the payment standard mandates.
//
// Everything in this package is a pure function over immutable inputs.
// Rendering the payload as a scannable symbol and drawing the slip onto a
// page belong to external collaborators.
package paymentslip
