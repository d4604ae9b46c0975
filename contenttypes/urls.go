package contenttypes

import (
	"fmt"

	"reviews/config"
)

// adminBase returns the configured admin mount point, falling back to
// /admin when config has not been loaded.
func adminBase() string {
	if config.AppConfig != nil && config.AppConfig.AdminBasePath != "" {
		return config.AppConfig.AdminBasePath
	}
	return "/admin"
}

// ChangelistURL reverses the admin list page URL for a content type key.
func ChangelistURL(key string) string {
	return fmt.Sprintf("%s/%s/list", adminBase(), key)
}

// ChangeURL reverses the admin edit page URL for a specific record.
func ChangeURL(key string, id uint) string {
	return fmt.Sprintf("%s/%s/%d/change", adminBase(), key, id)
}
