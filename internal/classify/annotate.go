package classify

import "github.com/shiwake-dev/shiwake/internal/model"

// Review flag reasons attached to rows that need a human pass.
const (
	FlagUnclassified     = "unclassified merchant"
	FlagMissingRatio     = "missing apportionment ratio"
	FlagProvisionalRatio = "provisional apportionment ratio"
)

// Annotate runs the per-row pipeline: normalize, classify, low-value
// override, account assignment, apportionment. The override runs before
// account assignment and apportionment since it changes which branch both
// take. The returned reasons mark the row for manual review.
func (e *Engine) Annotate(txn model.Transaction) (model.AnnotatedRecord, []string) {
	key := e.Normalize(txn.Description)
	usage := e.Usage(key)

	// Small purchases from the designated mixed-use merchant are assumed
	// personal; larger ones keep the default apportionment.
	if usage == model.UsageApportioned && key == e.lowValueMerchant &&
		txn.Amount.Abs().Cmp(e.lowValueThreshold) <= 0 {
		usage = model.UsagePersonal
	}

	rec := model.AnnotatedRecord{
		Date:           txn.Date,
		Account:        e.Account(key, usage, txn.Amount),
		Merchant:       key,
		Amount:         txn.Amount,
		Usage:          usage,
		BusinessAmount: e.BusinessAmount(usage, key, txn.Amount),
	}

	var reasons []string
	switch usage {
	case model.UsageUnclassified:
		reasons = append(reasons, FlagUnclassified)
	case model.UsageApportioned:
		if _, ok := e.ratios[key]; !ok {
			reasons = append(reasons, FlagMissingRatio)
		} else if _, ok := e.provisional[key]; ok {
			reasons = append(reasons, FlagProvisionalRatio)
		}
	}
	return rec, reasons
}

// AnnotateAll annotates a batch of transactions in input order.
func (e *Engine) AnnotateAll(txns []model.Transaction) []model.AnnotatedRecord {
	recs := make([]model.AnnotatedRecord, 0, len(txns))
	for _, txn := range txns {
		rec, _ := e.Annotate(txn)
		recs = append(recs, rec)
	}
	return recs
}
