package extract

// Keywords holds the lexical cues the amount pipeline matches lines against.
// Entries must be lowercase; lines are lowercased before comparison. The
// lists are plain data so tests and localized deployments can swap them out
// without touching the pipeline.
type Keywords struct {
	// Positive marks a line as likely stating the payable total.
	Positive []string

	// Negative disqualifies a line outright: an amount on it is never the
	// total (tendered cash, change given, refunds, running subtotals).
	Negative []string

	// Noise penalizes a line without excluding it: quantity and unit words
	// that usually sit next to per-item prices rather than the total.
	Noise []string
}

// DefaultKeywords returns the stock English keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		Positive: []string{
			"total",
			"grand total",
			"amount due",
			"amount payable",
			"to pay",
			"balance due",
			"vat included",
			"incl. vat",
			"gross",
		},
		Negative: []string{
			"subtotal",
			"sub-total",
			"sub total",
			"cash",
			"change",
			"tendered",
			"refund",
			"cashback",
		},
		Noise: []string{
			"qty",
			"quantity",
			"pcs",
			"item",
			"weight",
			"kg",
			"pack",
			"sku",
			"each",
			"@",
		},
	}
}
