package dto

import "github.com/adreenastore/pos_backend/internal/models"

// UpdateStoreProfileRequest defines the data allowed for updating the active
// store profile. Pointers differentiate omitted fields from zero-value fields;
// omitted fields keep their current value.
type UpdateStoreProfileRequest struct {
	StoreName     *string `json:"storeName" binding:"omitempty,min=1"`
	StoreAddress  *string `json:"storeAddress"`
	StorePhone    *string `json:"storePhone"`
	StoreWhatsapp *string `json:"storeWhatsapp"`
	StoreFooter   *string `json:"storeFooter"`
	StoreLogo     *string `json:"storeLogo"`
}

// SwitchStoreProfileRequest selects another profile as active for the session.
type SwitchStoreProfileRequest struct {
	ProfileID string `json:"profileID" binding:"required"`
}

// StoreProfileResponse is a store profile as returned to the client.
type StoreProfileResponse struct {
	ProfileID     string `json:"profileID"`
	StoreName     string `json:"storeName"`
	StoreAddress  string `json:"storeAddress,omitempty"`
	StorePhone    string `json:"storePhone,omitempty"`
	StoreWhatsapp string `json:"storeWhatsapp,omitempty"`
	StoreFooter   string `json:"storeFooter,omitempty"`
	StoreLogo     string `json:"storeLogo,omitempty"`
}

// ListStoreProfilesResponse wraps all known profiles plus the session's
// active selection.
type ListStoreProfilesResponse struct {
	Profiles        []StoreProfileResponse `json:"profiles"`
	ActiveProfileID string                 `json:"activeProfileID"`
}

// ToStoreProfileResponse converts a models.StoreProfile to its response DTO.
func ToStoreProfileResponse(p *models.StoreProfile) StoreProfileResponse {
	return StoreProfileResponse{
		ProfileID:     p.ProfileID,
		StoreName:     p.StoreName,
		StoreAddress:  p.StoreAddress,
		StorePhone:    p.StorePhone,
		StoreWhatsapp: p.StoreWhatsapp,
		StoreFooter:   p.StoreFooter,
		StoreLogo:     p.StoreLogo,
	}
}
