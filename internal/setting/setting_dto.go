package setting

type UpsertSettingRequest struct {
	Value string `json:"value" binding:"required,max=5000"`
}

type SettingResponse struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at"`
}
