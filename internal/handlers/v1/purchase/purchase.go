package purchase

import (
	"time"

	"github.com/carson-networks/history-server/internal/service"
)

// Purchase is the API response model for a purchase.
// It is used only for responses, not for request bodies.
type Purchase struct {
	ID                string `json:"id" doc:"Purchase UUID"`
	PurchasedAt       string `json:"purchasedAt" doc:"RFC3339 purchase time"`
	Total             string `json:"total" doc:"Decimal total"`
	LoanID            string `json:"loanID,omitempty" doc:"Loan identifier when purchase is loan-financed"`
	HasGoodsReceipt   bool   `json:"hasGoodsReceipt" doc:"Whether the goods receipt is confirmed"`
	GoodsReceiptTotal string `json:"goodsReceiptTotal,omitempty" doc:"Total recorded at confirmation"`
	Items             []Item `json:"items" doc:"Line items"`
}

// Item is the API response model for one line item.
type Item struct {
	Name     string `json:"name" doc:"Item name"`
	Quantity int    `json:"quantity" doc:"Quantity"`
	Price    string `json:"price" doc:"Decimal unit price"`
}

func toAPIPurchase(p *service.Purchase) Purchase {
	result := Purchase{
		ID:              p.ID.String(),
		PurchasedAt:     p.PurchasedAt.Format(time.RFC3339),
		Total:           p.Total.String(),
		LoanID:          p.LoanID,
		HasGoodsReceipt: p.HasGoodsReceipt,
		Items:           make([]Item, len(p.Items)),
	}
	if p.HasGoodsReceipt {
		result.GoodsReceiptTotal = p.GoodsReceiptTotal.String()
	}
	for i, item := range p.Items {
		result.Items[i] = Item{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.String(),
		}
	}
	return result
}
