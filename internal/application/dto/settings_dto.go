package dto

// SettingResponse one key/value setting entry.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpdateSettingRequest body for PUT /api/settings/:key (admin only).
type UpdateSettingRequest struct {
	Value string `json:"value"`
}
