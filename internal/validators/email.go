package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid checa sintaxe (RFC 5322) e, em seguida, se o
// domínio resolve — MX primeiro, A/AAAA como fallback para domínios
// que recebem e-mail sem registro MX. Usado só no cadastro; login não
// repete a resolução.
func IsEmailDomainValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || at == len(addr.Address)-1 {
		return false
	}
	domain := addr.Address[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
