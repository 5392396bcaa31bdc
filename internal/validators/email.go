package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the part after the last "@" resolves to a
// mail host: MX records first, then a plain A/AAAA lookup for domains that
// receive mail on their apex. Syntax beyond "has a domain" is left to the
// binding-level email validator.
func IsEmailDomainValid(email string) bool {
	domain := domainPart(email)
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func domainPart(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}
