package winja

import "context"

// Settings is the system-wide configuration editable from the admin surface.
type Settings struct {
	AppName             string `json:"app_name"`
	SupportEmail        string `json:"support_email"`
	MaintenanceMode     Flag   `json:"maintenance_mode"`
	NotifyByEmail       Flag   `json:"notify_by_email"`
	NotifyByPush        Flag   `json:"notify_by_push"`
	WhatsappIntegration Flag   `json:"whatsapp_integration"`
}

func (c *winjaClient) Settings(ctx context.Context) (Settings, error) {
	resp, err := c.get(ctx, "/settings")
	if err != nil {
		return Settings{}, err
	}
	return decodeObject[Settings](resp)
}

func (c *winjaClient) UpdateSettings(ctx context.Context, settings Settings) (Settings, error) {
	resp, err := c.putJSON(ctx, "/settings", settings)
	if err != nil {
		return Settings{}, err
	}
	return decodeObject[Settings](resp)
}
