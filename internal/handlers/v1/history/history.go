package history

import (
	"time"

	"golang.org/x/text/language"

	"github.com/carson-networks/history-server/internal/i18n"
	"github.com/carson-networks/history-server/internal/service"
)

const shortIDLength = 8

// Day is one date section of the history response.
type Day struct {
	Date      string `json:"date" doc:"Calendar day, YYYY-MM-DD in the history timezone"`
	Label     string `json:"label" doc:"Localized day label, e.g. Today / Yesterday / 02 Jan 2024"`
	Purchases []Card `json:"purchases" doc:"Purchases of that day, newest first"`
}

// Card is the rendered history entry for one purchase.
type Card struct {
	ID                string    `json:"id" doc:"Purchase UUID"`
	ShortID           string    `json:"shortID" doc:"Truncated identifier for display"`
	PurchasedAt       string    `json:"purchasedAt" doc:"RFC3339 purchase time"`
	Total             string    `json:"total" doc:"Decimal total"`
	TotalLabel        string    `json:"totalLabel" doc:"Localized formatted total"`
	LoanID            string    `json:"loanID,omitempty" doc:"Loan identifier when purchase is loan-financed"`
	LoanBadge         string    `json:"loanBadge,omitempty" doc:"Localized loan badge text, absent without a loan"`
	ReceiptPending    bool      `json:"receiptPending" doc:"True until the goods receipt is confirmed"`
	GoodsReceiptTotal string    `json:"goodsReceiptTotal,omitempty" doc:"Total recorded at confirmation"`
	Items             []ItemRow `json:"items" doc:"Line items"`
}

// ItemRow is one rendered line item.
type ItemRow struct {
	Name          string `json:"name" doc:"Item name"`
	Quantity      int    `json:"quantity" doc:"Quantity"`
	QuantityLabel string `json:"quantityLabel" doc:"Localized quantity text, e.g. x2"`
	Price         string `json:"price" doc:"Decimal unit price"`
	PriceLabel    string `json:"priceLabel" doc:"Localized formatted unit price"`
}

func renderDay(translator *i18n.Translator, tag language.Tag, group service.DayGroup, now time.Time) Day {
	day := Day{
		Date:      group.Date.Format("2006-01-02"),
		Label:     translator.DayLabel(tag, group.Date, now),
		Purchases: make([]Card, len(group.Purchases)),
	}
	for i, p := range group.Purchases {
		day.Purchases[i] = renderCard(translator, tag, p)
	}
	return day
}

func renderCard(translator *i18n.Translator, tag language.Tag, p service.Purchase) Card {
	card := Card{
		ID:             p.ID.String(),
		ShortID:        shortID(p.ID.String()),
		PurchasedAt:    p.PurchasedAt.Format(time.RFC3339),
		Total:          p.Total.String(),
		TotalLabel:     translator.T(tag, "history.total", translator.Amount(tag, p.Total)),
		LoanID:         p.LoanID,
		ReceiptPending: !p.HasGoodsReceipt,
		Items:          make([]ItemRow, len(p.Items)),
	}
	if p.LoanID != "" {
		card.LoanBadge = translator.T(tag, "history.loan_badge", p.LoanID)
	}
	if p.HasGoodsReceipt {
		card.GoodsReceiptTotal = p.GoodsReceiptTotal.String()
	}
	for i, item := range p.Items {
		card.Items[i] = ItemRow{
			Name:          item.Name,
			Quantity:      item.Quantity,
			QuantityLabel: translator.T(tag, "history.quantity", item.Quantity),
			Price:         item.Price.String(),
			PriceLabel:    translator.Amount(tag, item.Price),
		}
	}
	return card
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}
