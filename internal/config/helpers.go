package config

func stringPtr(s string) *string { return &s }
func intPtr(n int) *int          { return &n }

func derefString(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func derefInt(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}
