package request

type RecordScanRequest struct {
	Code       string  `json:"code" binding:"required"`
	VenueID    string  `json:"venue_id" binding:"required"`
	EntranceID string  `json:"entrance_id" binding:"required"`
	GuestName  *string `json:"guest_name,omitempty"`
	PartySize  *int    `json:"party_size,omitempty" binding:"omitempty,gte=1"`
}

type BindDeviceRequest struct {
	StaffUserID string `json:"staff_user_id" binding:"required"`
	VenueID     string `json:"venue_id" binding:"required"`
}

type ReachabilityRequest struct {
	Online *bool `json:"online" binding:"required"`
}
