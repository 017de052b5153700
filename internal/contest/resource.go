package contest

import "strings"

// resourceRule maps a substring of an aggregator resource identifier to a
// platform. Rules are evaluated in order; the first match wins.
type resourceRule struct {
	substring string
	platform  Platform
}

// resourceRules is configuration data: adding a platform means adding a rule
// here, not touching any resolver logic.
var resourceRules = []resourceRule{
	{"leetcode.com", PlatformLeetcode},
	{"codechef.com", PlatformCodechef},
}

// PlatformForResource resolves an aggregator resource identifier to a
// platform by case-insensitive substring match. Unmatched resources yield an
// empty platform, which every platform filter then drops silently.
func PlatformForResource(resource string) Platform {
	lower := strings.ToLower(resource)
	for _, rule := range resourceRules {
		if strings.Contains(lower, rule.substring) {
			return rule.platform
		}
	}
	return ""
}
