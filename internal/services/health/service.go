package health

// Service encapsulates health-related checks.
type Service struct {
	provider     string
	hasServerKey bool
}

// NewService constructs a new health service.
func NewService(provider string, hasServerKey bool) *Service {
	return &Service{provider: provider, hasServerKey: hasServerKey}
}

// Status reports liveness plus which provider requests are routed to.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":         true,
		"provider":   s.provider,
		"server_key": s.hasServerKey,
	}
}
