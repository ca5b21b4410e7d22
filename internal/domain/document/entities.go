package document

import "time"

// Type enumerates the document kinds an application can carry. The set is
// fixed and partitioned into required and optional types.
type Type string

const (
	TypeAadhaar               Type = "aadhaar"
	TypePAN                   Type = "pan"
	TypeSalarySlips           Type = "salary_slips"
	TypeBankStatements        Type = "bank_statements"
	TypeEmploymentCertificate Type = "employment_certificate"
	TypePhoto                 Type = "photo"
	TypeAddressProof          Type = "address_proof"
	TypeITR                   Type = "itr"
)

func RequiredTypes() []Type {
	return []Type{
		TypeAadhaar,
		TypePAN,
		TypeSalarySlips,
		TypeBankStatements,
		TypeEmploymentCertificate,
		TypePhoto,
	}
}

func OptionalTypes() []Type {
	return []Type{TypeAddressProof, TypeITR}
}

func (t Type) Valid() bool {
	switch t {
	case TypeAadhaar, TypePAN, TypeSalarySlips, TypeBankStatements,
		TypeEmploymentCertificate, TypePhoto, TypeAddressProof, TypeITR:
		return true
	}
	return false
}

func (t Type) IsRequired() bool {
	for _, r := range RequiredTypes() {
		if t == r {
			return true
		}
	}
	return false
}

// MissingRequired returns the required types absent from uploaded, in the
// canonical RequiredTypes order.
func MissingRequired(uploaded []Type) []Type {
	present := make(map[Type]bool, len(uploaded))
	for _, t := range uploaded {
		present[t] = true
	}
	var missing []Type
	for _, r := range RequiredTypes() {
		if !present[r] {
			missing = append(missing, r)
		}
	}
	return missing
}

// Document is the record of one uploaded file for one application. At most
// one current document exists per (application, type); a re-upload supersedes.
// The engine only tracks presence; file bytes live elsewhere, behind FileRef.
type Document struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID uint64    `gorm:"column:application_id;uniqueIndex:ux_documents_app_type" json:"-"`
	Type          Type      `gorm:"column:document_type;size:32;uniqueIndex:ux_documents_app_type" json:"document_type"`
	FileRef       string    `gorm:"type:text" json:"file_ref"`
	FileName      string    `gorm:"type:text" json:"file_name"`
	UploadedAt    time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

func (Document) TableName() string { return "documents" }

// Requirement describes one slot of the document checklist for display.
type Requirement struct {
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

func Requirements() []Requirement {
	return []Requirement{
		{Name: "Aadhaar Card", Type: TypeAadhaar, Required: true,
			Description: "Government issued identity proof with 12-digit unique number"},
		{Name: "PAN Card", Type: TypePAN, Required: true,
			Description: "Permanent Account Number card for tax identification"},
		{Name: "Salary Slips (Last 3 months)", Type: TypeSalarySlips, Required: true,
			Description: "Recent salary certificates showing current income"},
		{Name: "Bank Statements (Last 6 months)", Type: TypeBankStatements, Required: true,
			Description: "Bank account statements for financial verification"},
		{Name: "Employment Certificate", Type: TypeEmploymentCertificate, Required: true,
			Description: "Letter from employer confirming current employment status"},
		{Name: "Photo", Type: TypePhoto, Required: true,
			Description: "Recent passport-size photograph for identification"},
		{Name: "Address Proof", Type: TypeAddressProof, Required: false,
			Description: "Utility bill or rent agreement showing current address"},
		{Name: "Income Tax Returns", Type: TypeITR, Required: false,
			Description: "IT returns for additional income verification"},
	}
}
