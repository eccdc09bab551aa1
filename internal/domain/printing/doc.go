// Package printing contains the Printing bounded context for the payment
// slip: the millimeter geometry of the printed QR-bill (page split,
// receipt and payment panels, code and emblem boxes) and the font table
// for the two textual panels. All values are standards-mandated constants;
// the package only computes and converts, a rendering backend draws.
package printing
