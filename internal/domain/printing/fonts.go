package printing

// FontWeight represents the weight of a printed text role
type FontWeight string

const (
	FontWeightRegular FontWeight = "REGULAR"
	FontWeightBold    FontWeight = "BOLD"
)

// IsValid checks if the FontWeight is a valid value
func (w FontWeight) IsValid() bool {
	return w == FontWeightRegular || w == FontWeightBold
}

// TextRole identifies a semantic kind of text on the printed panels
type TextRole string

const (
	// RoleSectionTitle is the panel title ("Payment part" / "Receipt").
	RoleSectionTitle TextRole = "SECTION_TITLE"
	// RoleFieldLabel is a bold heading above a value block.
	RoleFieldLabel TextRole = "FIELD_LABEL"
	// RoleFieldContent is a value block on the payment panel.
	RoleFieldContent TextRole = "FIELD_CONTENT"
	// RoleSmallContent is a value block on the receipt panel and for
	// auxiliary lines.
	RoleSmallContent TextRole = "SMALL_CONTENT"
)

// FontSpec is the mandated size and weight for one text role
type FontSpec struct {
	SizePt float64    `json:"size_pt"`
	Weight FontWeight `json:"weight"`
}

// FontTable maps text roles to their font specifications
type FontTable map[TextRole]FontSpec

// DefaultFontTable returns the font table mandated by the payment
// standard's style guide. Each call returns an independent map.
func DefaultFontTable() FontTable {
	return FontTable{
		RoleSectionTitle: {SizePt: 11, Weight: FontWeightBold},
		RoleFieldLabel:   {SizePt: 8, Weight: FontWeightBold},
		RoleFieldContent: {SizePt: 10, Weight: FontWeightRegular},
		RoleSmallContent: {SizePt: 7, Weight: FontWeightRegular},
	}
}
