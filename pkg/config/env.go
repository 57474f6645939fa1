package config

import "strings"

// envReplacer maps nested keys such as api.url onto ADVCONTROL_API_URL.
var envReplacer = strings.NewReplacer(".", "_")
