package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"port": 8080,
		},
		"database": map[string]interface{}{
			"driver":            DriverSQLite,
			"dsn":               "reminders.db",
			"firestore_project": "",
		},
		"time": map[string]interface{}{
			"timezone": "UTC",
		},
		"digest": map[string]interface{}{
			"enabled": false,
			"cron":    "0 0 8 * * *", // 08:00:00 every day, with seconds
		},
		"line": map[string]interface{}{
			"channel_secret":       "",
			"channel_access_token": "",
		},
		"log": map[string]interface{}{
			"level": "info",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
