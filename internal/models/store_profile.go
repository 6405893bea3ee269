package models

// StoreProfile holds the configuration of one store: the header and footer
// lines printed on its receipts and the contact numbers shown to customers.
// Multiple profiles may coexist; which one is active is session state owned by
// the store profile service, not part of the persisted record.
type StoreProfile struct {
	ProfileID     string `json:"profileID"`
	StoreName     string `json:"storeName"` // Non-empty
	StoreAddress  string `json:"storeAddress,omitempty"`
	StorePhone    string `json:"storePhone,omitempty"`
	StoreWhatsapp string `json:"storeWhatsapp,omitempty"`
	StoreFooter   string `json:"storeFooter,omitempty"`
	StoreLogo     string `json:"storeLogo,omitempty"` // Asset reference, not managed here
	AuditFields
}
