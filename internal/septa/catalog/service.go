package catalog

import "strings"

// ServiceType is the service tier of a train. Values outside the known set
// keep the text the API sent.
type ServiceType string

const (
	ServiceExpress ServiceType = "EXPRESS"
	ServiceLocal   ServiceType = "LOCAL"
)

// ParseServiceType never fails.
func ParseServiceType(s string) ServiceType {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.EqualFold(trimmed, string(ServiceExpress)):
		return ServiceExpress
	case strings.EqualFold(trimmed, string(ServiceLocal)):
		return ServiceLocal
	}
	return ServiceType(trimmed)
}

// Known reports whether s is one of the documented tiers.
func (s ServiceType) Known() bool {
	return s == ServiceExpress || s == ServiceLocal
}

func (s *ServiceType) UnmarshalText(text []byte) error {
	*s = ParseServiceType(string(text))
	return nil
}
