package timezone

import "time"

// DefaultTimezone é o fuso assumido quando o pet shop não configurou um.
const DefaultTimezone = "America/Sao_Paulo"

var defaultLoc = mustLoad(DefaultTimezone)

func mustLoad(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve um nome IANA, caindo no fuso padrão para nomes
// vazios ou desconhecidos.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return defaultLoc
}

func Now() time.Time {
	return time.Now().In(defaultLoc)
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayOf trunca um instante para 00:00 do mesmo dia, no mesmo fuso.
// O dia-calendário resultante é a chave usada pelo livro-caixa.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
