package finance

import (
	"math"

	"github.com/petshopsuite/petshop-api/internal/models"
)

// Diferenças menores que isso são arredondamento de float, não quebra
// de caixa.
const DiscrepancyTolerance = 0.01

type DiscrepancyStatus string

const (
	DiscrepancyMatched  DiscrepancyStatus = "matched"
	DiscrepancyOverage  DiscrepancyStatus = "overage"
	DiscrepancyShortage DiscrepancyStatus = "shortage"
)

// ExpectedCash calcula quanto dinheiro o caixa deveria ter:
// fundo de troco + receitas em dinheiro − despesas em dinheiro do dia.
// Função pura; a ordem dos lançamentos não importa. Lançamentos com
// outros métodos de pagamento são ignorados mesmo que apareçam na lista.
func ExpectedCash(openingFloat float64, records []models.FinancialRecord) float64 {
	total := openingFloat

	for _, rec := range records {
		if !IsCashLike(rec.PaymentMethod) {
			continue
		}

		switch rec.Type {
		case TypeIncome:
			total += rec.Amount
		case TypeExpense:
			total -= rec.Amount
		}
	}

	return total
}

// ClassifyDiscrepancy compara contado x esperado. O valor retornado é
// contado − esperado; o status é só classificação para relatório, não
// tem efeito colateral nenhum.
func ClassifyDiscrepancy(counted, expected float64) (float64, DiscrepancyStatus) {
	diff := counted - expected

	if math.Abs(diff) < DiscrepancyTolerance {
		return diff, DiscrepancyMatched
	}

	if diff > 0 {
		return diff, DiscrepancyOverage
	}
	return diff, DiscrepancyShortage
}
