package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compliance document statuses derived from the days left until expiry.
const (
	ComplianceStatusValid    = "VALID"
	ComplianceStatusExpiring = "EXPIRING"
	ComplianceStatusExpired  = "EXPIRED"
)

// Compliance document types
const (
	DocumentTypeInspection        = "inspection"
	DocumentTypeInsurance         = "insurance"
	DocumentTypeCommercialLicense = "commercial_license"
	DocumentTypeTransportLicense  = "transport_license"
)

// ComplianceDocument holds the structure for the complianceDocuments collection
// in mongo. Status and DaysToExpiry are stored for dashboard queries but are
// always recomputed wherever they are read back (report generation, the nightly
// refresh job) so the stored values can never drift from the expiry date.
type ComplianceDocument struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TruckID           string             `json:"truckId" bson:"truckId"`
	DocumentType      string             `json:"documentType" bson:"documentType"`
	CertificateNumber string             `json:"certificateNumber" bson:"certificateNumber"`
	IssueDate         time.Time          `json:"issueDate" bson:"issueDate"`
	ExpiryDate        time.Time          `json:"expiryDate" bson:"expiryDate"`
	IssuingAuthority  string             `json:"issuingAuthority" bson:"issuingAuthority"`
	Cost              float64            `json:"cost" bson:"cost"`
	Status            string             `json:"status" bson:"status"`
	DaysToExpiry      int                `json:"daysToExpiry" bson:"daysToExpiry"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
}

// DaysToExpiry returns the signed number of days between now and the expiry
// date, rounded up. Negative means the document already expired.
func DaysToExpiry(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// ComplianceStatusForDays classifies a document from its days-to-expiry. Every
// call site that derives a status must go through this function so creation
// time, the refresh job and report generation can never disagree.
func ComplianceStatusForDays(days int) string {
	switch {
	case days < 0:
		return ComplianceStatusExpired
	case days <= 30:
		return ComplianceStatusExpiring
	default:
		return ComplianceStatusValid
	}
}
